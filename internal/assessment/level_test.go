package assessment

import (
	"math"
	"testing"
)

func TestNormalizeLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   float64
		want int
	}{
		{"exact", 3, 3},
		{"rounds up", 2.6, 3},
		{"rounds down", 2.4, 2},
		{"half away from zero", 2.5, 3},
		{"clamped high", 7.8, 5},
		{"clamped low", -2, 0},
		{"huge positive clamps high", 1e300, 5},
		{"huge negative clamps low", -1e300, 0},
		{"largest finite float", math.MaxFloat64, 5},
		{"zero", 0, 0},
		{"top", 5, 5},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := NormalizeLevel(tc.in)
			if err != nil {
				t.Fatalf("NormalizeLevel(%v) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("NormalizeLevel(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeLevelRejectsNonFinite(t *testing.T) {
	t.Parallel()

	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := NormalizeLevel(in); err == nil {
			t.Fatalf("NormalizeLevel(%v) expected error, got nil", in)
		}
	}
}

func TestLegacyLevel(t *testing.T) {
	t.Parallel()

	want := map[int]string{
		0: LevelBasic,
		1: LevelBasic,
		2: LevelIntermediate,
		3: LevelIntermediate,
		4: LevelAdvanced,
		5: LevelAdvanced,
	}
	for n, expected := range want {
		if got := LegacyLevel(n); got != expected {
			t.Errorf("LegacyLevel(%d) = %q, want %q", n, got, expected)
		}
	}
}

func intPtr(n int) *int { return &n }

func TestCurrentLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		numeric *int
		legacy  string
		want    float64
		rated   bool
	}{
		{"numeric wins over text", intPtr(4), "basic", 4, true},
		{"numeric zero is a real level", intPtr(0), "advanced", 0, true},
		{"legacy integer string", nil, "3", 3, true},
		{"basic midpoint", nil, "basic", 1, true},
		{"intermediate midpoint", nil, "intermediate", 3, true},
		{"advanced midpoint", nil, "advanced", 5, true},
		{"case and whitespace tolerated", nil, "  Advanced ", 5, true},
		{"unknown text is unrated", nil, "expert", 0, false},
		{"empty is unrated", nil, "", 0, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, rated := CurrentLevel(tc.numeric, tc.legacy)
			if rated != tc.rated || got != tc.want {
				t.Fatalf("CurrentLevel(%v, %q) = (%v, %v), want (%v, %v)",
					tc.numeric, tc.legacy, got, rated, tc.want, tc.rated)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	t.Parallel()

	if got := Progress(intPtr(3), ""); got != 60 {
		t.Fatalf("Progress(3) = %d, want 60", got)
	}
	if got := Progress(intPtr(5), ""); got != 100 {
		t.Fatalf("Progress(5) = %d, want 100", got)
	}
	if got := Progress(nil, "4"); got != 80 {
		t.Fatalf("Progress(legacy \"4\") = %d, want 80", got)
	}
	// Pre-migration rows with only a textual bucket never counted toward progress.
	if got := Progress(nil, "advanced"); got != 0 {
		t.Fatalf("Progress(legacy \"advanced\") = %d, want 0", got)
	}
	if got := Progress(nil, ""); got != 0 {
		t.Fatalf("Progress(unrated) = %d, want 0", got)
	}
}
