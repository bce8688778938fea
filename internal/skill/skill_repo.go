package skill

import (
	"errors"

	"gorm.io/gorm"
)

type SkillRepository interface {
	GetSkillByID(id uint) (*Skill, error)
	FindSkillByName(name string) (*Skill, error)
	GetAllSkills() ([]Skill, error)
	GetSkillsByCategory(categorySlug string) ([]Skill, error)

	GetAllCategories() ([]Category, error)
	GetCategoryBySlug(slug string) (*Category, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new instance of SkillRepository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) GetSkillByID(id uint) (*Skill, error) {
	var s Skill
	err := r.db.First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // not found is not an "error" for the caller
		}
		return nil, err
	}
	return &s, nil
}

// FindSkillByName resolves a free-text title case- and diacritic-insensitively.
func (r *skillRepository) FindSkillByName(name string) (*Skill, error) {
	var s Skill
	err := r.db.Where("normalized_name = ?", NormalizeName(name)).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *skillRepository) GetAllSkills() ([]Skill, error) {
	var skills []Skill
	err := r.db.Order("category_slug ASC, name ASC").Find(&skills).Error
	return skills, err
}

func (r *skillRepository) GetSkillsByCategory(categorySlug string) ([]Skill, error) {
	var skills []Skill
	err := r.db.Where("category_slug = ?", categorySlug).Order("name ASC").Find(&skills).Error
	return skills, err
}

func (r *skillRepository) GetAllCategories() ([]Category, error) {
	var categories []Category
	err := r.db.Order("label ASC").Find(&categories).Error
	return categories, err
}

func (r *skillRepository) GetCategoryBySlug(slug string) (*Category, error) {
	var c Category
	err := r.db.Where("slug = ?", slug).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
