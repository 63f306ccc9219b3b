package pathexpr

import "testing"

func TestFormatScalars(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{true, "Yes"},
		{false, "No"},
		{"plain text", "plain text"},
		{float64(12.5), "12.5"},
		{float64(3), "3"},
		{42, "42"},
	}
	for _, tt := range cases {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatArrayJoins(t *testing.T) {
	in := []any{"red", "blue", true}
	if got := Format(in); got != "red, blue, Yes" {
		t.Fatalf("Format(array) = %q", got)
	}
}

func TestFormatDateLikeString(t *testing.T) {
	got := Format("2024-03-05T14:30:00Z")
	if got != "Mar 5, 2024 2:30 PM" {
		t.Fatalf("date format = %q", got)
	}
}

func TestFormatUnparsableDateLikeFallsBack(t *testing.T) {
	// ISO prefix but not a valid timestamp: return the raw string.
	in := "2024-99-99Tgarbage"
	if got := Format(in); got != in {
		t.Fatalf("got %q, want raw input", got)
	}
}

func TestFormatStripsMarkup(t *testing.T) {
	in := "<p>Hand-thrown <strong>stoneware</strong>\n\n mug</p>"
	if got := Format(in); got != "Hand-thrown stoneware mug" {
		t.Fatalf("markup strip = %q", got)
	}
}

func TestStripMarkupCollapsesWhitespace(t *testing.T) {
	if got := StripMarkup("<div>  a \t b </div>"); got != "a b" {
		t.Fatalf("got %q", got)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsDateLike("2021-01-01T00:00:00-05:00") {
		t.Error("expected date-like")
	}
	if IsDateLike("2021-01-01") {
		t.Error("date only, no time marker: not date-like")
	}
	if !IsMarkupLike("<br/>") {
		t.Error("expected markup-like")
	}
	if IsMarkupLike("no tags here") {
		t.Error("plain text must not be markup-like")
	}
}
