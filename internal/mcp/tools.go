package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"wrecklore/internal/store"
)

type SearchWrecksInput struct {
	Query string `json:"query" jsonschema:"search terms"`
	Kind  string `json:"kind,omitempty" jsonschema:"restrict to place or event records"`
}

type GetEntityInput struct {
	URI string `json:"uri" jsonschema:"entity URI"`
}

type ListEntitiesInput struct {
	Kind string `json:"kind,omitempty" jsonschema:"restrict to place or event records"`
}

type GetCountsInput struct{}

type EntityOutput struct {
	URI      string         `json:"uri"`
	Kind     string         `json:"kind"`
	Label    string         `json:"label"`
	PlaceURI string         `json:"place_uri,omitempty"`
	Year     int            `json:"year,omitempty"`
	Document map[string]any `json:"document"`
}

type EntitySummaryOutput struct {
	URI   string `json:"uri"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Year  int    `json:"year,omitempty"`
}

type SearchResultOutput struct {
	URI   string  `json:"uri"`
	Kind  string  `json:"kind"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type SearchWrecksOutput struct {
	Results []SearchResultOutput `json:"results"`
}

type ListEntitiesOutput struct {
	Entities []EntitySummaryOutput `json:"entities"`
}

type GetCountsOutput struct {
	Counts map[string]int `json:"counts"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_wrecks",
		Description: "Full-text search over catalogued wreck places and loss events",
	}, s.handleSearchWrecks)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_entity",
		Description: "Retrieve one entity with its full Linked Art document",
	}, s.handleGetEntity)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_entities",
		Description: "List catalogued entities, optionally filtered by kind",
	}, s.handleListEntities)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_counts",
		Description: "Count catalogued entities per kind",
	}, s.handleGetCounts)
}

func (s *Server) handleSearchWrecks(ctx context.Context, req *sdk.CallToolRequest, input SearchWrecksInput) (*sdk.CallToolResult, SearchWrecksOutput, error) {
	if input.Query == "" {
		return nil, SearchWrecksOutput{}, fmt.Errorf("query is required")
	}
	results, err := s.db.Search(ctx, input.Query, input.Kind)
	if err != nil {
		return nil, SearchWrecksOutput{}, err
	}

	output := make([]SearchResultOutput, 0, len(results))
	for _, result := range results {
		output = append(output, SearchResultOutput{
			URI:   result.URI,
			Kind:  result.Kind,
			Label: result.Label,
			Score: result.Score,
		})
	}
	return nil, SearchWrecksOutput{Results: output}, nil
}

func (s *Server) handleGetEntity(ctx context.Context, req *sdk.CallToolRequest, input GetEntityInput) (*sdk.CallToolResult, EntityOutput, error) {
	if input.URI == "" {
		return nil, EntityOutput{}, fmt.Errorf("uri is required")
	}
	rec, err := s.db.GetEntity(ctx, input.URI)
	if err != nil {
		return nil, EntityOutput{}, err
	}
	if rec == nil {
		return nil, EntityOutput{}, fmt.Errorf("entity not found")
	}
	out, err := entityOutputFromRecord(rec)
	if err != nil {
		return nil, EntityOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleListEntities(ctx context.Context, req *sdk.CallToolRequest, input ListEntitiesInput) (*sdk.CallToolResult, ListEntitiesOutput, error) {
	items, err := s.db.ListEntities(ctx, input.Kind)
	if err != nil {
		return nil, ListEntitiesOutput{}, err
	}

	output := make([]EntitySummaryOutput, 0, len(items))
	for _, item := range items {
		output = append(output, EntitySummaryOutput{
			URI:   item.URI,
			Kind:  item.Kind,
			Label: item.Label,
			Year:  item.Year,
		})
	}
	return nil, ListEntitiesOutput{Entities: output}, nil
}

func (s *Server) handleGetCounts(ctx context.Context, req *sdk.CallToolRequest, input GetCountsInput) (*sdk.CallToolResult, GetCountsOutput, error) {
	counts, err := s.db.Counts(ctx)
	if err != nil {
		return nil, GetCountsOutput{}, err
	}
	if counts == nil {
		counts = map[string]int{}
	}
	return nil, GetCountsOutput{Counts: counts}, nil
}

func entityOutputFromRecord(rec *store.EntityRecord) (EntityOutput, error) {
	var doc map[string]any
	if rec.Document != "" {
		if err := json.Unmarshal([]byte(rec.Document), &doc); err != nil {
			return EntityOutput{}, fmt.Errorf("unmarshaling document for %s: %w", rec.URI, err)
		}
	}
	return EntityOutput{
		URI:      rec.URI,
		Kind:     rec.Kind,
		Label:    rec.Label,
		PlaceURI: rec.PlaceURI,
		Year:     rec.Year,
		Document: doc,
	}, nil
}
