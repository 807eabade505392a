// Package remap renames source registry headers to the canonical column
// vocabulary and extracts configured column subsets.
package remap

import (
	"encoding/csv"
	"fmt"
	"io"

	"wrecklore/internal/config"
	"wrecklore/internal/normalize"
)

type Result struct {
	Rows    int
	Dropped int
}

// Rename streams src to dst with headers renamed per the dataset mapping.
// Unmapped headers pass through unchanged; row data is copied verbatim.
func Rename(src io.Reader, dst io.Writer, dataset *config.Dataset) (*Result, error) {
	reader := csv.NewReader(src)
	writer := csv.NewWriter(dst)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	renamed := make([]string, len(header))
	for i, column := range header {
		if target, ok := dataset.Columns[column]; ok {
			renamed[i] = target
		} else {
			renamed[i] = column
		}
	}
	if err := writer.Write(renamed); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	result := &Result{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", result.Rows+1, err)
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", result.Rows+1, err)
		}
		result.Rows++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing output: %w", err)
	}
	return result, nil
}

// Subset streams src to dst keeping only the dataset's subset columns and
// dropping rows where any required column is absent. src must already use
// canonical headers (run Rename first).
func Subset(src io.Reader, dst io.Writer, dataset *config.Dataset) (*Result, error) {
	if len(dataset.Subset) == 0 {
		return nil, fmt.Errorf("dataset %s defines no subset columns", dataset.Name)
	}

	reader := csv.NewReader(src)
	writer := csv.NewWriter(dst)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	position := make(map[string]int, len(header))
	for i, column := range header {
		position[column] = i
	}

	keep := make([]int, 0, len(dataset.Subset))
	for _, column := range dataset.Subset {
		idx, ok := position[column]
		if !ok {
			return nil, fmt.Errorf("subset column %s not found in input", column)
		}
		keep = append(keep, idx)
	}

	required := make([]int, 0, len(dataset.Required))
	for _, column := range dataset.Required {
		idx, ok := position[column]
		if !ok {
			return nil, fmt.Errorf("required column %s not found in input", column)
		}
		required = append(required, idx)
	}

	if err := writer.Write(dataset.Subset); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	result := &Result{}
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", row, err)
		}

		missing := false
		for _, idx := range required {
			if idx >= len(record) {
				missing = true
				break
			}
			if _, ok := normalize.Clean(record[idx]); !ok {
				missing = true
				break
			}
		}
		if missing {
			result.Dropped++
			continue
		}

		out := make([]string, len(keep))
		for i, idx := range keep {
			if idx < len(record) {
				out[i] = record[idx]
			}
		}
		if err := writer.Write(out); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", row, err)
		}
		result.Rows++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing output: %w", err)
	}
	return result, nil
}
