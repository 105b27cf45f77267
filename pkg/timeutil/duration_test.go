package timeutil

import "testing"

func TestParseMinutesSingle(t *testing.T) {
	cases := map[string]float64{
		"30 min":    30,
		"30m":       30,
		"1h":        60,
		"1.5h":      90,
		"45 MIN":    45,
		"20 minute": 20,
		"2 hours":   120,
	}
	for in, want := range cases {
		if got := ParseMinutes(in); got != want {
			t.Errorf("ParseMinutes(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseMinutesRange(t *testing.T) {
	if got := ParseMinutes("30-45 min"); got != 37.5 {
		t.Fatalf("ParseMinutes(30-45 min) = %v, want 37.5", got)
	}
	if got := ParseMinutes("1-2h"); got != 90 {
		t.Fatalf("ParseMinutes(1-2h) = %v, want 90", got)
	}
}

func TestParseMinutesGarbage(t *testing.T) {
	for _, in := range []string{"garbage", "", "  ", "soon"} {
		if got := ParseMinutes(in); got != 0 {
			t.Errorf("ParseMinutes(%q) = %v, want 0", in, got)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := map[float64]string{
		0:    "0m",
		45:   "45m",
		60:   "1h",
		90:   "1h 30m",
		37.5: "38m",
		150:  "2h 30m",
	}
	for in, want := range cases {
		if got := FormatMinutes(in); got != want {
			t.Errorf("FormatMinutes(%v) = %q, want %q", in, got, want)
		}
	}
}
