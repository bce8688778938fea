package skill

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "skillboard.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Category{}, &Skill{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}

	var categories, skills int64
	if err := db.Model(&Category{}).Count(&categories).Error; err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if err := db.Model(&Skill{}).Count(&skills).Error; err != nil {
		t.Fatalf("count skills: %v", err)
	}
	if categories == 0 || skills == 0 {
		t.Fatalf("seed left empty catalog: %d categories, %d skills", categories, skills)
	}

	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var categories2, skills2 int64
	db.Model(&Category{}).Count(&categories2)
	db.Model(&Skill{}).Count(&skills2)
	if categories2 != categories || skills2 != skills {
		t.Fatalf("reseed changed counts: categories %d->%d, skills %d->%d",
			categories, categories2, skills, skills2)
	}
}

func TestFindSkillByNameIgnoresAccentsAndCase(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewSkillRepository(db)

	s := &Skill{
		Name:         "Investigación",
		CategorySlug: "investigacion",
		Levels:       BuildLevels(LevelLabels),
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("create skill: %v", err)
	}

	for _, query := range []string{"Investigación", "investigacion", "INVESTIGACION", " investigación "} {
		got, err := repo.FindSkillByName(query)
		if err != nil {
			t.Fatalf("FindSkillByName(%q): %v", query, err)
		}
		if got == nil {
			t.Fatalf("FindSkillByName(%q) found nothing", query)
		}
		if got.ID != s.ID {
			t.Fatalf("FindSkillByName(%q) = skill %d, want %d", query, got.ID, s.ID)
		}
	}

	missing, err := repo.FindSkillByName("no existe")
	if err != nil {
		t.Fatalf("FindSkillByName(missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown skill, got %+v", missing)
	}
}

func TestLevelsSurviveRoundTrip(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	s := &Skill{
		Name:         "Prototipado",
		CategorySlug: "experimentacion",
		Levels:       BuildLevels(LevelLabels),
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("create skill: %v", err)
	}

	var got Skill
	if err := db.First(&got, s.ID).Error; err != nil {
		t.Fatalf("reload skill: %v", err)
	}
	if len(got.Levels) != 6 {
		t.Fatalf("expected 6 level descriptors, got %d", len(got.Levels))
	}
	if got.Levels[0].Label != LevelLabels[0] || got.Levels[5].Label != LevelLabels[5] {
		t.Fatalf("level labels lost in storage: %+v", got.Levels)
	}
}
