package normalize

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		present bool
	}{
		{name: "plain value", input: "Cape May", want: "Cape May", present: true},
		{name: "surrounding whitespace", input: "  Cape May ", want: "Cape May", present: true},
		{name: "empty", input: "", present: false},
		{name: "whitespace only", input: "   \t", present: false},
		{name: "sentinel N", input: "N", present: false},
		{name: "sentinel n/a", input: "n/a", present: false},
		{name: "sentinel N/A", input: "N/A", present: false},
		{name: "sentinel null", input: "null", present: false},
		{name: "sentinel NULL", input: "NULL", present: false},
		{name: "sentinel with padding", input: " N/A ", present: false},
		{name: "case sensitive sentinel", input: "Null", want: "Null", present: true},
		{name: "lowercase n is data", input: "n", want: "n", present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, present := Clean(tt.input)
			if present != tt.present {
				t.Fatalf("Clean(%q) present = %v, want %v", tt.input, present, tt.present)
			}
			if got != tt.want {
				t.Fatalf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "S.S. Mary-Ann!", want: "s-s-mary-ann"},
		{input: "", want: "unnamed"},
		{input: "!!!", want: "unnamed"},
		{input: "Cape May", want: "cape-may"},
		{input: "  Atlantic   City  ", want: "atlantic-city"},
		{input: "USS Monitor (1862)", want: "uss-monitor-1862"},
		{input: "already-a-slug", want: "already-a-slug"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slug(tt.input)
			if got != tt.want {
				t.Fatalf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := Slug(got); again != got {
				t.Fatalf("Slug not idempotent: Slug(%q) = %q", got, again)
			}
		})
	}
}

func TestMonetary(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		present bool
	}{
		{name: "dollar sign and commas", input: "$50,000", want: 50000, present: true},
		{name: "plain number", input: "1200", want: 1200, present: true},
		{name: "decimal", input: "$1,234.56", want: 1234.56, present: true},
		{name: "zero", input: "$0", want: 0, present: true},
		{name: "empty", input: "", present: false},
		{name: "sentinel", input: "N/A", present: false},
		{name: "garbage", input: "abc", present: false},
		{name: "negative", input: "-500", present: false},
		{name: "embedded spaces", input: "$ 50 000", want: 50000, present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, present := Monetary(tt.input)
			if present != tt.present {
				t.Fatalf("Monetary(%q) present = %v, want %v", tt.input, present, tt.present)
			}
			if present && got != tt.want {
				t.Fatalf("Monetary(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCoordinate(t *testing.T) {
	if got, ok := Coordinate("38.9"); !ok || got != 38.9 {
		t.Fatalf("Coordinate(38.9) = %v, %v", got, ok)
	}
	if got, ok := Coordinate("-74.9"); !ok || got != -74.9 {
		t.Fatalf("Coordinate(-74.9) = %v, %v", got, ok)
	}
	if _, ok := Coordinate("not a number"); ok {
		t.Fatalf("expected absent coordinate")
	}
	if _, ok := Coordinate(""); ok {
		t.Fatalf("expected absent coordinate for empty string")
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		present bool
	}{
		{input: "1901", want: 1901, present: true},
		{input: "1901.0", want: 1901, present: true},
		{input: "3", want: 3, present: true},
		{input: "", present: false},
		{input: "N/A", present: false},
		{input: "circa 1900", present: false},
	}

	for _, tt := range tests {
		got, present := Integer(tt.input)
		if present != tt.present {
			t.Fatalf("Integer(%q) present = %v, want %v", tt.input, present, tt.present)
		}
		if present && got != tt.want {
			t.Fatalf("Integer(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
