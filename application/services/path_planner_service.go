package services

import (
	"go.uber.org/zap"

	"learngraph/application/queries"
	"learngraph/domain/core/aggregates"
	"learngraph/domain/core/entities"
	"learngraph/domain/core/valueobjects"
	"learngraph/pkg/utils"
)

// unknownEstimate is the explicit marker returned when no concept on a
// path carries a usable time estimate
const unknownEstimate = "unknown"

// PathPlannerService computes ordered study sequences and progress metrics
// atop the graph query engine. Completed sets are caller-owned and never
// retained across calls.
type PathPlannerService struct {
	provider CurriculumProvider
	graph    *GraphQueryService
	logger   *zap.Logger
}

// NewPathPlannerService creates a new path planner service
func NewPathPlannerService(provider CurriculumProvider, graph *GraphQueryService, logger *zap.Logger) *PathPlannerService {
	return &PathPlannerService{
		provider: provider,
		graph:    graph,
		logger:   logger,
	}
}

// GenerateLearningPath returns the ordered sequence of concept ids a
// learner must study to reach the target, ending at the target itself.
// The target's transitive prerequisite chain is computed, already-completed
// concepts are removed, and the remainder is linearized so no concept
// precedes one of its own remaining prerequisites. Ties break by
// first-discovery order during the chain traversal, so output is
// deterministic and reproducible. The target is appended last even when it
// has no remaining prerequisites; an unregistered or already-completed
// target yields an empty path.
func (s *PathPlannerService) GenerateLearningPath(target valueobjects.ConceptID, completed valueobjects.CompletedSet) []valueobjects.ConceptID {
	curriculum := s.provider.Current()

	if _, ok := curriculum.Get(target); !ok {
		return []valueobjects.ConceptID{}
	}
	if completed.Has(target) {
		return []valueobjects.ConceptID{}
	}

	remaining := []valueobjects.ConceptID{}
	for _, ancestor := range curriculum.PrerequisiteChain(target) {
		if !completed.Has(ancestor) {
			remaining = append(remaining, ancestor)
		}
	}

	path := linearize(curriculum, remaining, completed)
	path = append(path, target)

	s.logger.Debug("learning path generated",
		zap.String("target", target.String()),
		zap.Int("completed", completed.Len()),
		zap.Int("steps", len(path)),
	)
	return path
}

// BuildPathBetween returns the ordered sequence from one concept to
// another, assuming everything the starting concept requires, plus the
// starting concept itself, is already known
func (s *PathPlannerService) BuildPathBetween(from, to valueobjects.ConceptID) []valueobjects.ConceptID {
	curriculum := s.provider.Current()

	assumed := valueobjects.NewCompletedSet(curriculum.PrerequisiteChain(from)...)
	assumed.Add(from)

	return s.GenerateLearningPath(to, assumed)
}

// EstimateLearningTime sums the free-text time estimates of every concept
// on the remaining learning path and formats the total back into hours and
// minutes. When no concept on the path carries a usable estimate, the
// result is the explicit "unknown" marker.
func (s *PathPlannerService) EstimateLearningTime(target valueobjects.ConceptID, completed valueobjects.CompletedSet) queries.EstimateResult {
	curriculum := s.provider.Current()
	result := queries.EstimateResult{Target: target.String(), Display: unknownEstimate}

	for _, id := range s.GenerateLearningPath(target, completed) {
		concept, ok := curriculum.Get(id)
		if !ok {
			continue
		}
		if minutes, parsed := utils.ParseEstimate(concept.Metadata().EstimatedTime); parsed {
			result.TotalMinutes += minutes
			result.Known = true
		}
	}

	if result.Known {
		result.Display = utils.FormatMinutes(result.TotalMinutes)
	}
	return result
}

// GetUnlockableConcepts returns the curriculum's current frontier: every
// not-yet-completed concept whose direct prerequisites are all satisfied,
// in registration order
func (s *PathPlannerService) GetUnlockableConcepts(completed valueobjects.CompletedSet) []*entities.Concept {
	frontier := []*entities.Concept{}
	for _, concept := range s.provider.Current().All() {
		if completed.Has(concept.ID()) {
			continue
		}
		if s.graph.ArePrerequisitesMet(concept.ID(), completed) {
			frontier = append(frontier, concept)
		}
	}
	return frontier
}

// CalculateProgress reports how much of the target's fixed required path a
// learner has completed, as a whole percentage. The required path is
// computed once against an empty completed set, so the denominator never
// shrinks as the learner advances. An empty required path yields 100.
func (s *PathPlannerService) CalculateProgress(target valueobjects.ConceptID, completed valueobjects.CompletedSet) queries.ProgressResult {
	required := s.GenerateLearningPath(target, valueobjects.NewCompletedSet())

	result := queries.ProgressResult{
		Target:   target.String(),
		Required: len(required),
	}

	if len(required) == 0 {
		result.Percent = 100
		return result
	}

	for _, id := range required {
		if completed.Has(id) {
			result.Completed++
		}
	}

	result.Percent = (result.Completed * 100) / len(required)
	return result
}

// linearize orders the remaining chain members so that no concept precedes
// one of its own remaining prerequisites. Candidates are scanned in
// first-discovery order and emitted as soon as their direct prerequisites
// are either completed, already emitted, or outside the remaining set.
// If a full scan makes no progress the graph is cyclic; the rest is
// appended in discovery order so the traversal still terminates.
func linearize(curriculum *aggregates.Curriculum, remaining []valueobjects.ConceptID, completed valueobjects.CompletedSet) []valueobjects.ConceptID {
	inRemaining := make(map[valueobjects.ConceptID]bool, len(remaining))
	for _, id := range remaining {
		inRemaining[id] = true
	}

	emitted := make(map[valueobjects.ConceptID]bool, len(remaining))
	ordered := make([]valueobjects.ConceptID, 0, len(remaining))

	satisfied := func(prereq valueobjects.ConceptID) bool {
		return completed.Has(prereq) || emitted[prereq] || !inRemaining[prereq]
	}

	for len(ordered) < len(remaining) {
		progressed := false
		for _, id := range remaining {
			if emitted[id] {
				continue
			}
			ready := true
			for _, prereq := range curriculum.Prerequisites(id) {
				if !satisfied(prereq) {
					ready = false
					break
				}
			}
			if ready {
				emitted[id] = true
				ordered = append(ordered, id)
				progressed = true
				// Restart the scan so the earliest-discovered ready
				// candidate always comes next
				break
			}
		}
		if !progressed {
			for _, id := range remaining {
				if !emitted[id] {
					ordered = append(ordered, id)
				}
			}
			break
		}
	}

	return ordered
}
