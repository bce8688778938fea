package assessment

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNonFiniteLevel is returned when a submitted level is NaN or infinite.
var ErrNonFiniteLevel = errors.New("numeric level must be a finite number")

// NormalizeLevel rounds a raw submitted level to the nearest integer and
// clamps it to [0, 5]. Out-of-range values are clamped, not rejected:
// tolerant-input policy for self-service forms.
func NormalizeLevel(raw float64) (int, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, ErrNonFiniteLevel
	}
	// Clamp before converting: a huge float would overflow the int
	// conversion and wrap negative.
	if raw < 0 {
		raw = 0
	}
	if raw > 5 {
		raw = 5
	}
	return int(math.Round(raw)), nil
}

// LegacyLevel maps a normalized 0-5 level onto the legacy three-bucket
// textual scale: 0,1 -> basic; 2,3 -> intermediate; 4,5 -> advanced.
func LegacyLevel(n int) string {
	switch {
	case n <= 1:
		return LevelBasic
	case n <= 3:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}

// CurrentLevel resolves the effective 0-5 level of a record. The numeric
// column wins when present; otherwise the legacy text column is read as a
// number if it holds one, or mapped to its bucket midpoint (basic=1,
// intermediate=3, advanced=5). Returns false when the record carries no
// usable level ("not rated").
func CurrentLevel(numeric *int, legacy string) (float64, bool) {
	if numeric != nil {
		return float64(*numeric), true
	}
	legacy = strings.ToLower(strings.TrimSpace(legacy))
	if legacy == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(legacy); err == nil {
		return float64(n), true
	}
	switch legacy {
	case LevelBasic:
		return 1, true
	case LevelIntermediate:
		return 3, true
	case LevelAdvanced:
		return 5, true
	}
	return 0, false
}

// Progress converts a record's level to a 0-100 percentage (level x 20).
// Only numeric levels count; a purely textual legacy level reports 0, which
// matches how the dashboards have always scored pre-migration rows.
func Progress(numeric *int, legacy string) int {
	var n int
	switch {
	case numeric != nil:
		n = *numeric
	default:
		parsed, err := strconv.Atoi(strings.TrimSpace(legacy))
		if err != nil {
			return 0
		}
		n = parsed
	}
	p := n * 20
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
