package transform

import "testing"

func TestResolveTimeSpan(t *testing.T) {
	tests := []struct {
		name      string
		year      string
		month     string
		day       string
		wantLabel string
		wantBegin string
		wantEnd   string
	}{
		{
			name: "full day", year: "1901", month: "3", day: "15",
			wantLabel: "1901-03-15",
			wantBegin: "1901-03-15T00:00:00Z",
			wantEnd:   "1901-03-15T23:59:59Z",
		},
		{
			name: "decimal components", year: "1901.0", month: "3.0", day: "15.0",
			wantLabel: "1901-03-15",
			wantBegin: "1901-03-15T00:00:00Z",
			wantEnd:   "1901-03-15T23:59:59Z",
		},
		{
			name: "year and month span the month", year: "1901", month: "4", day: "",
			wantLabel: "1901-04",
			wantBegin: "1901-04-01T00:00:00Z",
			wantEnd:   "1901-04-30T23:59:59Z",
		},
		{
			name: "february leap year", year: "2000", month: "2", day: "",
			wantLabel: "2000-02",
			wantBegin: "2000-02-01T00:00:00Z",
			wantEnd:   "2000-02-29T23:59:59Z",
		},
		{
			name: "february century non-leap", year: "1900", month: "2", day: "",
			wantLabel: "1900-02",
			wantBegin: "1900-02-01T00:00:00Z",
			wantEnd:   "1900-02-28T23:59:59Z",
		},
		{
			name: "february plain leap", year: "2024", month: "2", day: "",
			wantLabel: "2024-02",
			wantBegin: "2024-02-01T00:00:00Z",
			wantEnd:   "2024-02-29T23:59:59Z",
		},
		{
			name: "year only spans the year", year: "1856", month: "", day: "",
			wantLabel: "1856",
			wantBegin: "1856-01-01T00:00:00Z",
			wantEnd:   "1856-12-31T23:59:59Z",
		},
		{
			name: "non-numeric day falls back to month", year: "1901", month: "3", day: "mid",
			wantLabel: "1901-03",
			wantBegin: "1901-03-01T00:00:00Z",
			wantEnd:   "1901-03-31T23:59:59Z",
		},
		{
			name: "non-numeric month falls back to year", year: "1901", month: "spring", day: "15",
			wantLabel: "1901",
			wantBegin: "1901-01-01T00:00:00Z",
			wantEnd:   "1901-12-31T23:59:59Z",
		},
		{
			name: "day out of range falls back to month", year: "1901", month: "2", day: "30",
			wantLabel: "1901-02",
			wantBegin: "1901-02-01T00:00:00Z",
			wantEnd:   "1901-02-28T23:59:59Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := ResolveTimeSpan(tt.year, tt.month, tt.day)
			if ts == nil {
				t.Fatalf("expected timespan, got nil")
			}
			if ts.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", ts.Label, tt.wantLabel)
			}
			if ts.Begin != tt.wantBegin {
				t.Errorf("begin = %q, want %q", ts.Begin, tt.wantBegin)
			}
			if ts.End != tt.wantEnd {
				t.Errorf("end = %q, want %q", ts.End, tt.wantEnd)
			}
			if ts.Begin > ts.End {
				t.Errorf("begin %q after end %q", ts.Begin, ts.End)
			}
		})
	}
}

func TestResolveTimeSpan_Absent(t *testing.T) {
	tests := []struct {
		name  string
		year  string
		month string
		day   string
	}{
		{name: "all empty", year: "", month: "", day: ""},
		{name: "sentinel year", year: "N/A", month: "3", day: "15"},
		{name: "non-numeric year", year: "circa 1900", month: "", day: ""},
		{name: "month and day without year", year: "", month: "3", day: "15"},
		{name: "year zero", year: "0", month: "", day: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ts := ResolveTimeSpan(tt.year, tt.month, tt.day); ts != nil {
				t.Fatalf("expected nil timespan, got %+v", ts)
			}
		})
	}
}

func TestLastDayOfMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{1901, 1, 31}, {1901, 4, 30}, {1901, 2, 28},
		{2000, 2, 29}, {1900, 2, 28}, {2024, 2, 29}, {1896, 2, 29},
	}
	for _, tt := range tests {
		if got := lastDayOfMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("lastDayOfMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
