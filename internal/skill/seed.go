package skill

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedSkill struct {
	name        string
	description string
	levels      [6]string
}

var seedCategories = []Category{
	{Slug: "facilitacion", Label: "Facilitación", Description: "Habilidades para diseñar, liderar y gestionar workshops colaborativos, promoviendo dinámicas efectivas y toma de decisiones grupales."},
	{Slug: "experimentacion", Label: "Experimentación", Description: "Capacidad de formular hipótesis, diseñar experimentos y analizar resultados para validar soluciones y generar aprendizajes."},
	{Slug: "diseno-interaccion", Label: "Diseño e Interacción", Description: "Creación de prototipos, microinteracciones y documentación para desarrollo que permitan validar ideas y mejorar la experiencia del usuario."},
	{Slug: "estrategia-contenido", Label: "Estrategia de Contenido", Description: "Uso de storytelling, consistencia, propuesta de valor y microcopy para comunicar mensajes claros y alineados con la estrategia del producto."},
	{Slug: "usabilidad", Label: "Usabilidad", Description: "Planificación y ejecución de pruebas de usabilidad y evaluaciones heurísticas para asegurar experiencias intuitivas y eficientes."},
	{Slug: "negocio-estrategia", Label: "Negocio y Estrategia", Description: "Integración del diseño con objetivos de negocio y necesidades de usuario, gestionando comunicación con stakeholders y presentando resultados accionables."},
	{Slug: "liderazgo-ux", Label: "Liderazgo UX", Description: "Capacidad de inspirar, guiar y desarrollar equipos a través de visión estratégica, mentoring y promoción de madurez de diseño en la organización."},
	{Slug: "investigacion", Label: "Investigación / Research", Description: "Planeación y ejecución de investigaciones cualitativas y cuantitativas, desde la formulación de preguntas hasta la generación de insights."},
	{Slug: "data-driven", Label: "Data Driven", Description: "Uso de métricas, análisis de funnels y decisiones basadas en datos para fundamentar el diseño y optimizar productos."},
	{Slug: "arquitectura-informacion", Label: "Arquitectura de la Información", Description: "Organización de contenidos mediante wireframes y taxonomías que construyan interfaces claras y navegables."},
	{Slug: "diseno-visual", Label: "Diseño Visual", Description: "Aplicación de design systems, patrones visuales y visualización de datos para lograr interfaces coherentes y efectivas."},
	{Slug: "pensamiento-producto", Label: "Pensamiento de Producto", Description: "Definición de visión, priorización de funcionalidades y alineación del diseño con objetivos estratégicos de la empresa."},
	{Slug: "sistemas-diseno", Label: "Sistemas de Diseño", Description: "Creación, documentación y mantenimiento de sistemas de diseño escalables que aseguren consistencia en interfaces."},
	{Slug: "accesibilidad", Label: "Accesibilidad", Description: "Diseño inclusivo basado en estándares WCAG, principios de diseño universal y pruebas de accesibilidad para garantizar experiencias accesibles."},
	{Slug: "ia-tecnologias", Label: "IA y Tecnologías Emergentes", Description: "Uso de herramientas de inteligencia artificial para prototipado, automatización y eficiencia en el flujo de diseño."},
}

var seedSkills = map[string][]seedSkill{
	"facilitacion": {
		{
			name:        "Diseñar workshops colaborativos",
			description: "Preparar workshops con stakeholders y usuarios, incluyendo actividades y logística.",
			levels: [6]string{
				"No conoce el concepto de workshops colaborativos.",
				"Entiende su propósito y estructura básica.",
				"Diseña workshops simples con supervisión.",
				"Planea workshops personalizados sin ayuda.",
				"Guía a otros en diseño de workshops efectivos.",
				"Innova en metodologías de workshops.",
			},
		},
		{
			name:        "Facilitación de workshops",
			description: "Liderar workshops para alcanzar objetivos, gestionando dinámicas y tiempo.",
			levels: [6]string{
				"No sabe cómo facilitar un taller.",
				"Reconoce la importancia de guiar grupos.",
				"Facilita con apoyo, ajustando dinámicas básicas.",
				"Ejecuta talleres adaptándose en tiempo real.",
				"Supervisa a facilitadores en el equipo.",
				"Redefine procesos de facilitación estratégica.",
			},
		},
		{
			name:        "Toma de decisiones grupales",
			description: "Usar métodos como consenso o mayoría para decisiones en equipo.",
			levels: [6]string{
				"No conoce métodos de decisión grupal.",
				"Entiende conceptos como consenso o votación.",
				"Aplica métodos básicos con guía.",
				"Adapta métodos al contexto sin supervisión.",
				"Enseña métodos a otros en el equipo.",
				"Crea nuevos enfoques para decisiones complejas.",
			},
		},
	},
	"experimentacion": {
		{
			name:        "Definición de hipótesis",
			description: "Formular hipótesis claras, medibles y relevantes para orientar validación.",
			levels: [6]string{
				"No sabe qué es una hipótesis.",
				"Entiende la importancia de tener hipótesis.",
				"Formula hipótesis simples con supervisión.",
				"Define hipótesis relevantes sin ayuda.",
				"Guía a otros en formular hipótesis.",
				"Innova en hipótesis estratégicas complejas.",
			},
		},
		{
			name:        "Análisis de resultados",
			description: "Interpretar datos de experimentos para validar hipótesis y obtener insights.",
			levels: [6]string{
				"No conoce análisis de datos experimentales.",
				"Reconoce su importancia para validar hipótesis.",
				"Lee resultados básicos con apoyo.",
				"Analiza datos y extrae insights autónomamente.",
				"Enseña análisis de resultados al equipo.",
				"Lidera análisis para decisiones de alto impacto.",
			},
		},
	},
	"diseno-interaccion": {
		{
			name:        "Prototipado",
			description: "Crear prototipos para validar ideas en etapas tempranas.",
			levels: [6]string{
				"No familiarizado con prototipado.",
				"Entiende su propósito en diseño.",
				"Crea prototipos básicos con guía.",
				"Desarrolla prototipos interactivos sin ayuda.",
				"Supervisa prototipado en el equipo.",
				"Innova en prototipos de alta complejidad.",
			},
		},
	},
	"usabilidad": {
		{
			name:        "Pruebas de usabilidad",
			description: "Planificar y ejecutar tests para medir éxito/fracaso.",
			levels: [6]string{
				"No familiarizado con pruebas de usabilidad.",
				"Sabe su propósito en UX.",
				"Asiste en pruebas simples con guía.",
				"Planea y ejecuta pruebas sin supervisión.",
				"Guía al equipo en pruebas efectivas.",
				"Innova en metodologías de pruebas avanzadas.",
			},
		},
		{
			name:        "Evaluación heurística",
			description: "Analizar interfaces con heurísticas de usabilidad.",
			levels: [6]string{
				"No conoce heurísticas.",
				"Entiende su rol en análisis UX.",
				"Identifica problemas básicos con apoyo.",
				"Realiza evaluaciones completas autónomamente.",
				"Enseña heurísticas al equipo.",
				"Transforma procesos de evaluación heurística.",
			},
		},
	},
	"negocio-estrategia": {
		{
			name:        "Comunicación con stakeholders",
			description: "Mantener alineación y gestionar expectativas con interesados.",
			levels: [6]string{
				"No sabe cómo interactuar con stakeholders.",
				"Reconoce su importancia en proyectos.",
				"Comunica ideas básicas con apoyo.",
				"Gestiona expectativas sin supervisión.",
				"Lidera comunicación estratégica con el equipo.",
				"Innova en alineación con stakeholders clave.",
			},
		},
		{
			name:        "Balance usuario-negocio",
			description: "Equilibrar necesidades del usuario con objetivos de negocio.",
			levels: [6]string{
				"No familiarizado con este balance.",
				"Entiende su relevancia para el diseño.",
				"Identifica necesidades básicas con guía.",
				"Encuentra soluciones equilibradas autónomas.",
				"Guía a otros en este balance.",
				"Diseña estrategias de largo plazo usuario-negocio.",
			},
		},
	},
}

// Seed upserts the static category/skill reference data. Safe to run on
// every startup: existing rows are matched by their natural key and left
// with their original IDs.
func Seed(db *gorm.DB) error {
	for _, category := range seedCategories {
		c := category
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"label", "description", "updated_at"}),
		}).Create(&c).Error
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.Slug, err)
		}
	}

	for slug, entries := range seedSkills {
		for _, entry := range entries {
			s := Skill{
				Name:         entry.name,
				Description:  entry.description,
				CategorySlug: slug,
				Levels:       BuildLevels(entry.levels),
			}
			err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"description", "category_slug", "levels", "normalized_name", "updated_at"}),
			}).Create(&s).Error
			if err != nil {
				return fmt.Errorf("seed skill %q: %w", s.Name, err)
			}
		}
	}
	return nil
}
