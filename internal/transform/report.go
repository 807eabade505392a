package transform

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wrecklore/internal/linkedart"
)

// Output artifact names, fixed across runs.
const (
	PlacesFile       = "places_collection.json"
	EventsFile       = "events_collection.json"
	PlacesSampleFile = "places_sample.json"
	EventsSampleFile = "events_sample.json"
	ReportFile       = "conversion_report.txt"
)

// WriteOutputs serialises both collections, the first-N samples and the
// plain-text conversion report into outputDir. A rerun overwrites the
// previous snapshot.
func (t *Transformer) WriteOutputs(result *Result, inputPath, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := writeCollection(filepath.Join(outputDir, PlacesFile), result.Places); err != nil {
		return err
	}
	if err := writeCollection(filepath.Join(outputDir, EventsFile), result.Events); err != nil {
		return err
	}

	sample := t.cfg.SampleSize
	if err := writeCollection(filepath.Join(outputDir, PlacesSampleFile), head(result.Places, sample)); err != nil {
		return err
	}
	if err := writeCollection(filepath.Join(outputDir, EventsSampleFile), head(result.Events, sample)); err != nil {
		return err
	}

	report := t.renderReport(result, inputPath, outputDir)
	if err := os.WriteFile(filepath.Join(outputDir, ReportFile), []byte(report), 0o644); err != nil {
		return fmt.Errorf("writing conversion report: %w", err)
	}

	return nil
}

func writeCollection(path string, entities []linkedart.Entity) error {
	if entities == nil {
		entities = []linkedart.Entity{}
	}
	data, err := json.MarshalIndent(entities, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func head(entities []linkedart.Entity, n int) []linkedart.Entity {
	if len(entities) <= n {
		return entities
	}
	return entities[:n]
}

func (t *Transformer) renderReport(result *Result, inputPath, outputDir string) string {
	var b strings.Builder
	rule := strings.Repeat("-", 60)

	b.WriteString("SHIPWRECK DATABASE TO LINKED ART CONVERSION REPORT\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	fmt.Fprintf(&b, "Input file: %s\n", inputPath)
	fmt.Fprintf(&b, "Output directory: %s\n", outputDir)
	fmt.Fprintf(&b, "Conversion date: %s\n\n", time.Now().UTC().Format(time.RFC3339))

	stats := result.Stats
	b.WriteString("STATISTICS\n" + rule + "\n")
	fmt.Fprintf(&b, "Total shipwrecks: %d\n", stats.Total)
	fmt.Fprintf(&b, "Place entities created: %d\n", len(result.Places))
	fmt.Fprintf(&b, "Event entities created: %d\n", len(result.Events))
	fmt.Fprintf(&b, "Rows skipped: %d\n", result.Skipped)
	if stats.EarliestYear > 0 {
		fmt.Fprintf(&b, "Year range: %d-%d\n", stats.EarliestYear, stats.LatestYear)
	}
	if stats.LivesLost > 0 {
		fmt.Fprintf(&b, "Recorded lives lost: %d\n", stats.LivesLost)
	}
	b.WriteString("\n")

	b.WriteString("DATA COVERAGE\n" + rule + "\n")
	writeCoverage(&b, "Records with coordinates", stats.WithCoordinates, stats.Total)
	writeCoverage(&b, "Records with full dates", stats.WithFullDate, stats.Total)
	writeCoverage(&b, "Records with cause of loss", stats.WithCause, stats.Total)
	writeCoverage(&b, "Records with master name", stats.WithMaster, stats.Total)
	writeCoverage(&b, "Records with cargo info", stats.WithCargo, stats.Total)
	b.WriteString("\n")

	b.WriteString("OUTPUT FILES\n" + rule + "\n")
	fmt.Fprintf(&b, "%s - All %d Place entities\n", PlacesFile, len(result.Places))
	fmt.Fprintf(&b, "%s - All %d Event entities\n", EventsFile, len(result.Events))
	fmt.Fprintf(&b, "%s - Sample of %d Place entities\n", PlacesSampleFile, len(head(result.Places, t.cfg.SampleSize)))
	fmt.Fprintf(&b, "%s - Sample of %d Event entities\n", EventsSampleFile, len(head(result.Events, t.cfg.SampleSize)))
	b.WriteString("\n")

	b.WriteString("SCHEMA COMPLIANCE\n" + rule + "\n")
	b.WriteString("Place entities conform to: https://linked.art/api/1.0/schema/place.json\n")
	b.WriteString("Event entities conform to: https://linked.art/api/1.0/schema/event.json\n\n")

	b.WriteString("SAMPLE URIS\n" + rule + "\n")
	if len(result.Places) > 0 {
		fmt.Fprintf(&b, "First Place: %s\n", result.Places[0].ID)
	}
	if len(result.Events) > 0 {
		fmt.Fprintf(&b, "First Event: %s\n", result.Events[0].ID)
	}

	if len(result.Errors) > 0 {
		b.WriteString("\nROW ERRORS\n" + rule + "\n")
		for _, rowErr := range result.Errors {
			fmt.Fprintf(&b, "%v\n", rowErr)
		}
	}

	return b.String()
}

func writeCoverage(b *strings.Builder, label string, count, total int) {
	pct := 0.0
	if total > 0 {
		pct = float64(count) / float64(total) * 100
	}
	fmt.Fprintf(b, "%s: %d (%.1f%%)\n", label, count, pct)
}
