package assessment

import (
	"testing"
	"time"

	"gorm.io/gorm"
)

func approvedRow(id, skillID uint, level int, approvedAt time.Time) SkillAssessment {
	return SkillAssessment{
		Model:        gorm.Model{ID: id, CreatedAt: approvedAt, UpdatedAt: approvedAt},
		SkillID:      skillID,
		NumericLevel: intPtr(level),
		Level:        LegacyLevel(level),
		Status:       StatusApproved,
		ApprovedAt:   &approvedAt,
	}
}

func TestOverallAverageEmpty(t *testing.T) {
	t.Parallel()

	avg, count := OverallAverage(nil)
	if avg != 0 || count != 0 {
		t.Fatalf("OverallAverage(nil) = (%v, %d), want (0, 0)", avg, count)
	}
}

func TestOverallAverageRoundsToOneDecimal(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := []SkillAssessment{
		approvedRow(1, 10, 2, base),
		approvedRow(2, 11, 4, base),
		approvedRow(3, 12, 5, base),
	}
	avg, count := OverallAverage(rows)
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
	// (2+4+5)/3 = 3.666... -> 3.7
	if avg != 3.7 {
		t.Fatalf("average = %v, want 3.7", avg)
	}
}

func TestOverallAverageDedupsPerSkill(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := []SkillAssessment{
		approvedRow(1, 10, 1, base),
		approvedRow(2, 10, 5, base.Add(time.Hour)), // newer record for the same skill
		approvedRow(3, 11, 3, base),
	}
	avg, count := OverallAverage(rows)
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if avg != 4.0 {
		t.Fatalf("average = %v, want 4.0", avg)
	}
}

func TestLatestPerSkillTieKeepsLaterSeen(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := []SkillAssessment{
		approvedRow(1, 10, 1, at),
		approvedRow(2, 10, 5, at), // same timestamp, later in input
	}
	out := LatestPerSkill(rows)
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if out[0].ID != 2 {
		t.Fatalf("tie kept record %d, want 2", out[0].ID)
	}
}

func TestLatestPerSkillPreservesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := []SkillAssessment{
		approvedRow(1, 20, 2, at),
		approvedRow(2, 10, 3, at),
		approvedRow(3, 20, 4, at.Add(time.Hour)),
	}
	out := LatestPerSkill(rows)
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].SkillID != 20 || out[1].SkillID != 10 {
		t.Fatalf("order = [%d, %d], want [20, 10]", out[0].SkillID, out[1].SkillID)
	}
}

func TestCategoryAverages(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := []SkillAssessment{
		approvedRow(1, 10, 2, base),
		approvedRow(2, 11, 4, base),
		approvedRow(3, 12, 5, base),
	}
	categories := map[uint]string{10: "usabilidad", 11: "usabilidad", 12: "facilitacion"}

	out := CategoryAverages(rows, categories)
	if len(out) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(out))
	}
	// Sorted by category name.
	if out[0].Category != "facilitacion" || out[0].Average != 5.0 || out[0].Count != 1 {
		t.Fatalf("facilitacion rollup = %+v", out[0])
	}
	if out[1].Category != "usabilidad" || out[1].Average != 3.0 || out[1].Count != 2 {
		t.Fatalf("usabilidad rollup = %+v", out[1])
	}
}

func TestProgressAverage(t *testing.T) {
	t.Parallel()

	if got := ProgressAverage(nil); got != 0 {
		t.Fatalf("ProgressAverage(nil) = %d, want 0", got)
	}

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := []SkillAssessment{
		approvedRow(1, 10, 3, base), // 60
		approvedRow(2, 11, 4, base), // 80
		approvedRow(3, 12, 2, base), // 40
	}
	if got := ProgressAverage(rows); got != 60 {
		t.Fatalf("ProgressAverage = %d, want 60", got)
	}
}

func TestRankHighlights(t *testing.T) {
	t.Parallel()

	skills := []RatedSkill{
		{ID: 1, Name: "Figma", NumericLevel: 2},
		{ID: 2, Name: "Research", NumericLevel: 5},
		{ID: 3, Name: "Prototipado", NumericLevel: 4},
		{ID: 4, Name: "Facilitación", NumericLevel: 1},
		{ID: 5, Name: "Accesibilidad", NumericLevel: 3},
	}

	strengths, opportunities := RankHighlights(skills)

	if len(strengths) != 3 {
		t.Fatalf("expected 3 strengths, got %d", len(strengths))
	}
	if strengths[0].ID != 2 || strengths[1].ID != 3 || strengths[2].ID != 5 {
		t.Fatalf("strengths = [%d %d %d], want [2 3 5]",
			strengths[0].ID, strengths[1].ID, strengths[2].ID)
	}

	if len(opportunities) != 3 {
		t.Fatalf("expected 3 opportunities, got %d", len(opportunities))
	}
	if opportunities[0].ID != 4 || opportunities[1].ID != 1 || opportunities[2].ID != 5 {
		t.Fatalf("opportunities = [%d %d %d], want [4 1 5]",
			opportunities[0].ID, opportunities[1].ID, opportunities[2].ID)
	}
}

func TestRankHighlightsShortList(t *testing.T) {
	t.Parallel()

	skills := []RatedSkill{
		{ID: 1, NumericLevel: 2},
		{ID: 2, NumericLevel: 4},
	}
	strengths, opportunities := RankHighlights(skills)
	if len(strengths) != 2 || len(opportunities) != 2 {
		t.Fatalf("lengths = (%d, %d), want (2, 2)", len(strengths), len(opportunities))
	}
	if strengths[0].ID != 2 || opportunities[0].ID != 1 {
		t.Fatalf("strengths[0]=%d opportunities[0]=%d, want 2 and 1",
			strengths[0].ID, opportunities[0].ID)
	}
}
