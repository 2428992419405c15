package queries

import (
	"errors"

	"learngraph/domain/core/entities"
	"learngraph/domain/core/valueobjects"
)

// GetConceptQuery represents a lookup of a single concept
type GetConceptQuery struct {
	ConceptID string `json:"concept_id"`
}

// Validate validates the query
func (q GetConceptQuery) Validate() error {
	if q.ConceptID == "" {
		return errors.New("conceptID is required")
	}
	return nil
}

// ListConceptsQuery represents a listing of the registered concepts,
// optionally restricted to one layer
type ListConceptsQuery struct {
	Layer       string `json:"layer,omitempty"`
	SortByDepth bool   `json:"sort_by_depth,omitempty"`
}

// GetSubgraphQuery represents a bounded neighborhood extraction around a
// concept, for visualization
type GetSubgraphQuery struct {
	ConceptID string `json:"concept_id"`
	Depth     int    `json:"depth"`
}

// Validate validates the query
func (q GetSubgraphQuery) Validate() error {
	if q.ConceptID == "" {
		return errors.New("conceptID is required")
	}
	if q.Depth < 0 {
		return errors.New("depth cannot be negative")
	}
	return nil
}

// ConceptView is the read-model projection of a concept record
type ConceptView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Layer         string   `json:"layer"`
	Domain        string   `json:"domain"`
	Definition    string   `json:"definition"`
	Visualization string   `json:"visualization"`
	Prerequisites []string `json:"prerequisites"`
	Difficulty    int      `json:"difficulty"`
	EstimatedTime string   `json:"estimated_time,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// NewConceptView projects a concept entity into its read model
func NewConceptView(c *entities.Concept) ConceptView {
	meta := c.Metadata()
	return ConceptView{
		ID:            c.ID().String(),
		Name:          c.Name(),
		Layer:         string(c.Layer()),
		Domain:        string(c.Domain()),
		Definition:    c.Definition(),
		Visualization: string(c.Visualization()),
		Prerequisites: idStrings(c.Prerequisites()),
		Difficulty:    meta.Difficulty,
		EstimatedTime: meta.EstimatedTime,
		Tags:          meta.Tags,
	}
}

// NewConceptViews projects a concept list, keeping its order
func NewConceptViews(concepts []*entities.Concept) []ConceptView {
	views := make([]ConceptView, 0, len(concepts))
	for _, c := range concepts {
		views = append(views, NewConceptView(c))
	}
	return views
}

// EdgeView is a directed prerequisite -> dependent pair
type EdgeView struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SubgraphStats contains subgraph statistics for the visualization layer
type SubgraphStats struct {
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
	MaxDepth  int `json:"max_depth"`
}

// SubgraphResult represents the node/edge pair returned by subgraph
// extraction
type SubgraphResult struct {
	Center string        `json:"center"`
	Nodes  []ConceptView `json:"nodes"`
	Edges  []EdgeView    `json:"edges"`
	Stats  SubgraphStats `json:"stats"`
}

func idStrings(ids []valueobjects.ConceptID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

// IDStrings converts concept ids to their string form, preserving order
func IDStrings(ids []valueobjects.ConceptID) []string {
	return idStrings(ids)
}
