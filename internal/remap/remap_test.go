package remap

import (
	"strings"
	"testing"

	"wrecklore/internal/config"
)

func testDataset() *config.Dataset {
	return &config.Dataset{
		Name: "nj-maritime",
		Columns: map[string]string{
			"SHIPS NAME":    "shipsName",
			"LOCATION LOST": "locationLost",
			"LATITUDE":      "latitude",
			"DATE LOST":     "dateLost",
		},
		Subset:   []string{"shipsName", "locationLost", "latitude"},
		Required: []string{"latitude", "dateLost"},
	}
}

func TestRename(t *testing.T) {
	src := "SHIPS NAME,LOCATION LOST,LATITUDE,UNMAPPED\nMary,Cape May,38.9,x\n"
	var dst strings.Builder

	result, err := Rename(strings.NewReader(src), &dst, testDataset())
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if result.Rows != 1 {
		t.Fatalf("expected 1 row, got %d", result.Rows)
	}

	lines := strings.Split(strings.TrimSpace(dst.String()), "\n")
	if lines[0] != "shipsName,locationLost,latitude,UNMAPPED" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "Mary,Cape May,38.9,x" {
		t.Fatalf("row data changed: %q", lines[1])
	}
}

func TestSubset(t *testing.T) {
	src := strings.Join([]string{
		"shipsName,locationLost,latitude,dateLost",
		"Mary,Cape May,38.9,3/15/1901",
		"NoCoords,Barnegat,,3/16/1901",
		"NoDate,Absecon,39.3,N/A",
	}, "\n") + "\n"
	var dst strings.Builder

	result, err := Subset(strings.NewReader(src), &dst, testDataset())
	if err != nil {
		t.Fatalf("Subset: %v", err)
	}
	if result.Rows != 1 || result.Dropped != 2 {
		t.Fatalf("rows=%d dropped=%d, want 1 and 2", result.Rows, result.Dropped)
	}

	lines := strings.Split(strings.TrimSpace(dst.String()), "\n")
	if lines[0] != "shipsName,locationLost,latitude" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if len(lines) != 2 || lines[1] != "Mary,Cape May,38.9" {
		t.Fatalf("unexpected rows: %#v", lines)
	}
}

func TestSubset_MissingColumn(t *testing.T) {
	src := "shipsName,locationLost\nMary,Cape May\n"
	var dst strings.Builder

	_, err := Subset(strings.NewReader(src), &dst, testDataset())
	if err == nil || !strings.Contains(err.Error(), "not found in input") {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestSubset_NoSubsetConfigured(t *testing.T) {
	ds := testDataset()
	ds.Subset = nil
	var dst strings.Builder

	_, err := Subset(strings.NewReader("a\n1\n"), &dst, ds)
	if err == nil || !strings.Contains(err.Error(), "no subset columns") {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
