package assessment

import (
	"math"
	"sort"
	"time"
)

// statusTime orders records for the "latest approved" dedup: approval time
// first, then the bookkeeping timestamps.
func statusTime(a *SkillAssessment) time.Time {
	if a.ApprovedAt != nil {
		return *a.ApprovedAt
	}
	if !a.UpdatedAt.IsZero() {
		return a.UpdatedAt
	}
	return a.CreatedAt
}

// LatestPerSkill keeps, for each skill id, the most recent record. The
// upsert key makes duplicates impossible in practice, but aggregation never
// assumes uniqueness. Ties keep the later-seen row.
func LatestPerSkill(rows []SkillAssessment) []SkillAssessment {
	latest := make(map[uint]SkillAssessment, len(rows))
	order := make([]uint, 0, len(rows))
	for _, row := range rows {
		prev, seen := latest[row.SkillID]
		if !seen {
			order = append(order, row.SkillID)
			latest[row.SkillID] = row
			continue
		}
		if !statusTime(&row).Before(statusTime(&prev)) {
			latest[row.SkillID] = row
		}
	}
	out := make([]SkillAssessment, 0, len(order))
	for _, id := range order {
		out = append(out, latest[id])
	}
	return out
}

// OverallAverage computes the mean 0-5 level across the deduplicated
// records, rounded to one decimal. Records with no usable level are
// skipped. Zero usable records yield (0, 0) rather than NaN so callers can
// tell "no data" apart from a real zero average.
func OverallAverage(rows []SkillAssessment) (average float64, count int) {
	var sum float64
	for _, row := range LatestPerSkill(rows) {
		lvl, ok := CurrentLevel(row.NumericLevel, row.Level)
		if !ok {
			continue
		}
		sum += lvl
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return math.Round(sum/float64(count)*10) / 10, count
}

// CategoryAverage is one category's rollup over a user's approved records.
type CategoryAverage struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

// CategoryAverages groups the deduplicated records by the category of
// their skill and averages each group. Records whose skill resolves to no
// category are reported under the empty category name. Output is sorted by
// category for stable responses.
func CategoryAverages(rows []SkillAssessment, categoryBySkillID map[uint]string) []CategoryAverage {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, row := range LatestPerSkill(rows) {
		lvl, ok := CurrentLevel(row.NumericLevel, row.Level)
		if !ok {
			continue
		}
		category := categoryBySkillID[row.SkillID]
		sums[category] += lvl
		counts[category]++
	}

	out := make([]CategoryAverage, 0, len(counts))
	for category, count := range counts {
		out = append(out, CategoryAverage{
			Category: category,
			Average:  math.Round(sums[category]/float64(count)*10) / 10,
			Count:    count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// ProgressAverage is the flat mean of per-record progress percentages
// across a cohort's assessments, rounded to the nearest integer.
func ProgressAverage(rows []SkillAssessment) int {
	if len(rows) == 0 {
		return 0
	}
	total := 0
	for i := range rows {
		total += Progress(rows[i].NumericLevel, rows[i].Level)
	}
	return int(math.Round(float64(total) / float64(len(rows))))
}

// RatedSkill is one resolved (skill, level) pair used by the
// strengths/opportunities ranking.
type RatedSkill struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	NumericLevel float64 `json:"numeric_level"`
	Status       string  `json:"status"`
}

// RankHighlights sorts a member's rated skills by level descending and
// returns the top three as strengths and the bottom three (reversed) as
// opportunities. The sort is stable, so equal levels keep input order.
func RankHighlights(skills []RatedSkill) (strengths, opportunities []RatedSkill) {
	sorted := make([]RatedSkill, len(skills))
	copy(sorted, skills)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].NumericLevel > sorted[j].NumericLevel
	})

	top := len(sorted)
	if top > 3 {
		top = 3
	}
	strengths = append(strengths, sorted[:top]...)

	reversed := make([]RatedSkill, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		reversed = append(reversed, sorted[i])
	}
	bottom := len(reversed)
	if bottom > 3 {
		bottom = 3
	}
	opportunities = append(opportunities, reversed[:bottom]...)
	return strengths, opportunities
}
