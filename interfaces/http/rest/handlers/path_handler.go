package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"learngraph/application/queries"
	"learngraph/application/services"
	"learngraph/domain/core/valueobjects"
	"learngraph/pkg/common"
	pkgerrors "learngraph/pkg/errors"
)

// PathHandler handles learning-path planning HTTP requests. The completed
// set always arrives with the request and is never stored server-side.
type PathHandler struct {
	graph        *services.GraphQueryService
	planner      *services.PathPlannerService
	errorHandler *pkgerrors.ErrorHandler
}

// NewPathHandler creates a new path handler
func NewPathHandler(graph *services.GraphQueryService, planner *services.PathPlannerService, errorHandler *pkgerrors.ErrorHandler) *PathHandler {
	return &PathHandler{
		graph:        graph,
		planner:      planner,
		errorHandler: errorHandler,
	}
}

// GetLearningPath handles GET /path/{targetID}?completed=a,b
func (h *PathHandler) GetLearningPath(w http.ResponseWriter, r *http.Request) {
	target := lenientConceptID(chi.URLParam(r, "targetID"))
	completed := completedSetFromRequest(r)

	path := h.planner.GenerateLearningPath(target, completed)
	common.RespondJSON(w, http.StatusOK, h.pathResult(target, path))
}

// GetPathBetween handles GET /path/{from}/{to}. The from segment shares
// the targetID wildcard with the single-segment path route.
func (h *PathHandler) GetPathBetween(w http.ResponseWriter, r *http.Request) {
	from := lenientConceptID(chi.URLParam(r, "targetID"))
	to := lenientConceptID(chi.URLParam(r, "toID"))

	path := h.planner.BuildPathBetween(from, to)
	common.RespondJSON(w, http.StatusOK, h.pathResult(to, path))
}

// GetFrontier handles GET /frontier?completed=a,b
// It returns the not-yet-completed concepts whose prerequisites are all
// satisfied.
func (h *PathHandler) GetFrontier(w http.ResponseWriter, r *http.Request) {
	completed := completedSetFromRequest(r)
	common.RespondJSON(w, http.StatusOK, queries.NewConceptViews(h.planner.GetUnlockableConcepts(completed)))
}

// GetProgress handles GET /progress/{targetID}?completed=a,b
func (h *PathHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	target := lenientConceptID(chi.URLParam(r, "targetID"))
	completed := completedSetFromRequest(r)

	common.RespondJSON(w, http.StatusOK, h.planner.CalculateProgress(target, completed))
}

// GetEstimate handles GET /estimate/{targetID}?completed=a,b
func (h *PathHandler) GetEstimate(w http.ResponseWriter, r *http.Request) {
	target := lenientConceptID(chi.URLParam(r, "targetID"))
	completed := completedSetFromRequest(r)

	common.RespondJSON(w, http.StatusOK, h.planner.EstimateLearningTime(target, completed))
}

// pathResult enriches a path's ids with display fields where the concept
// resolves; dangling ids keep a bare step
func (h *PathHandler) pathResult(target valueobjects.ConceptID, path []valueobjects.ConceptID) queries.LearningPathResult {
	steps := make([]queries.PathStep, 0, len(path))
	for _, id := range path {
		step := queries.PathStep{ID: id.String()}
		if concept, ok := h.graph.GetConcept(id); ok {
			meta := concept.Metadata()
			step.Name = concept.Name()
			step.Layer = string(concept.Layer())
			step.Difficulty = meta.Difficulty
			step.EstimatedTime = meta.EstimatedTime
		}
		steps = append(steps, step)
	}
	return queries.LearningPathResult{Target: target.String(), Steps: steps}
}
