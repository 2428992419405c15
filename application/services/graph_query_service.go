package services

import (
	"go.uber.org/zap"

	"learngraph/application/queries"
	"learngraph/domain/core/aggregates"
	"learngraph/domain/core/entities"
	"learngraph/domain/core/valueobjects"
	"learngraph/pkg/utils"
)

// CurriculumProvider hands out the currently published curriculum. Readers
// obtain the reference once at call start, so a republish never exposes a
// partially built edge index.
type CurriculumProvider interface {
	Current() *aggregates.Curriculum
}

// GraphQueryService exposes the read-only traversal operations over the
// concept dependency graph. All operations are lenient: an id that does not
// resolve degrades to an empty or neutral result, never an error, so UI
// code referencing not-yet-authored content stays simple.
type GraphQueryService struct {
	provider CurriculumProvider
	logger   *zap.Logger
}

// NewGraphQueryService creates a new graph query service
func NewGraphQueryService(provider CurriculumProvider, logger *zap.Logger) *GraphQueryService {
	return &GraphQueryService{
		provider: provider,
		logger:   logger,
	}
}

// GetConcept retrieves a concept record, with a not-found sentinel
func (s *GraphQueryService) GetConcept(id valueobjects.ConceptID) (*entities.Concept, bool) {
	return s.provider.Current().Get(id)
}

// ListConcepts returns every registered concept in registration order
func (s *GraphQueryService) ListConcepts() []*entities.Concept {
	return s.provider.Current().All()
}

// ListConceptsByLayer returns the concepts of one layer, in registration order
func (s *GraphQueryService) ListConceptsByLayer(layer valueobjects.Layer) []*entities.Concept {
	return s.provider.Current().ByLayer(layer)
}

// ListConceptsByDomain returns the concepts tagged with the given domain,
// in registration order
func (s *GraphQueryService) ListConceptsByDomain(domain valueobjects.Domain) []*entities.Concept {
	return utils.Filter(s.provider.Current().All(), func(c *entities.Concept) bool {
		return c.Domain() == domain
	})
}

// ListConceptsByDepth returns every concept sorted by prerequisite depth,
// shallowest first, registration order among equals
func (s *GraphQueryService) ListConceptsByDepth() []*entities.Concept {
	curriculum := s.provider.Current()
	concepts := curriculum.All()
	utils.SortByDepth(concepts, func(c *entities.Concept) int {
		return curriculum.Depth(c.ID())
	})
	return concepts
}

// GetPrerequisites returns a concept's direct prerequisites, unchanged.
// Unknown ids yield an empty sequence.
func (s *GraphQueryService) GetPrerequisites(id valueobjects.ConceptID) []valueobjects.ConceptID {
	return s.provider.Current().Prerequisites(id)
}

// GetDependents returns the concepts that declared the given id as a
// prerequisite, in registration order
func (s *GraphQueryService) GetDependents(id valueobjects.ConceptID) []valueobjects.ConceptID {
	return s.provider.Current().Dependents(id)
}

// GetPrerequisiteChain returns the full transitive ancestor set of a
// concept in first-discovery order
func (s *GraphQueryService) GetPrerequisiteChain(id valueobjects.ConceptID) []valueobjects.ConceptID {
	return s.provider.Current().PrerequisiteChain(id)
}

// GetConceptDepth returns the longest prerequisite chain length ending at
// the concept; 0 for unknown ids and concepts without prerequisites
func (s *GraphQueryService) GetConceptDepth(id valueobjects.ConceptID) int {
	return s.provider.Current().Depth(id)
}

// ArePrerequisitesMet reports whether every direct prerequisite of the
// concept is in the completed set. The check is one hop deep: completing a
// concept implies its own ancestors were satisfied at the time.
func (s *GraphQueryService) ArePrerequisitesMet(id valueobjects.ConceptID, completed valueobjects.CompletedSet) bool {
	for _, prereq := range s.provider.Current().Prerequisites(id) {
		if !completed.Has(prereq) {
			return false
		}
	}
	return true
}

// DependsOn reports whether b is anywhere in a's prerequisite chain
func (s *GraphQueryService) DependsOn(a, b valueobjects.ConceptID) bool {
	for _, ancestor := range s.provider.Current().PrerequisiteChain(a) {
		if ancestor.Equals(b) {
			return true
		}
	}
	return false
}

// FindCommonPrerequisites returns the intersection of two concepts'
// prerequisite chains, in the discovery order of a's chain
func (s *GraphQueryService) FindCommonPrerequisites(a, b valueobjects.ConceptID) []valueobjects.ConceptID {
	curriculum := s.provider.Current()

	inB := make(map[valueobjects.ConceptID]bool)
	for _, ancestor := range curriculum.PrerequisiteChain(b) {
		inB[ancestor] = true
	}

	common := []valueobjects.ConceptID{}
	for _, ancestor := range curriculum.PrerequisiteChain(a) {
		if inB[ancestor] {
			common = append(common, ancestor)
		}
	}
	return common
}

// GetSubgraph expands up to depth hops in both directions around a concept
// and projects the result for visualization
func (s *GraphQueryService) GetSubgraph(id valueobjects.ConceptID, depth int) queries.SubgraphResult {
	curriculum := s.provider.Current()
	sub := curriculum.ExtractSubgraph(id, depth)

	nodes := make([]queries.ConceptView, 0, len(sub.Nodes))
	maxDepth := 0
	for _, nodeID := range sub.Nodes {
		concept, ok := curriculum.Get(nodeID)
		if !ok {
			continue
		}
		nodes = append(nodes, queries.NewConceptView(concept))
		if d := curriculum.Depth(nodeID); d > maxDepth {
			maxDepth = d
		}
	}

	edges := make([]queries.EdgeView, 0, len(sub.Edges))
	for _, edge := range sub.Edges {
		edges = append(edges, queries.EdgeView{From: edge.From.String(), To: edge.To.String()})
	}

	s.logger.Debug("subgraph extracted",
		zap.String("concept", id.String()),
		zap.Int("depth", depth),
		zap.Int("nodes", len(nodes)),
		zap.Int("edges", len(edges)),
	)

	return queries.SubgraphResult{
		Center: sub.Center.String(),
		Nodes:  nodes,
		Edges:  edges,
		Stats: queries.SubgraphStats{
			NodeCount: len(nodes),
			EdgeCount: len(edges),
			MaxDepth:  maxDepth,
		},
	}
}
