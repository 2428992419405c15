package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"learngraph/application/queries"
	"learngraph/application/services"
	"learngraph/domain/core/valueobjects"
	"learngraph/pkg/common"
	pkgerrors "learngraph/pkg/errors"
)

// ConceptHandler handles concept and graph query HTTP requests.
// Query-time semantics are lenient throughout: ids that do not resolve
// yield empty results or a plain 404, never a 500.
type ConceptHandler struct {
	graph            *services.GraphQueryService
	errorHandler     *pkgerrors.ErrorHandler
	maxSubgraphDepth int
}

// NewConceptHandler creates a new concept handler
func NewConceptHandler(graph *services.GraphQueryService, errorHandler *pkgerrors.ErrorHandler, maxSubgraphDepth int) *ConceptHandler {
	return &ConceptHandler{
		graph:            graph,
		errorHandler:     errorHandler,
		maxSubgraphDepth: maxSubgraphDepth,
	}
}

// ListConcepts handles GET /concepts with optional layer, domain and sort
// filters
func (h *ConceptHandler) ListConcepts(w http.ResponseWriter, r *http.Request) {
	layerParam := r.URL.Query().Get("layer")
	domainParam := r.URL.Query().Get("domain")
	sortParam := r.URL.Query().Get("sort")

	if layerParam != "" {
		layer := valueobjects.Layer(layerParam)
		if !layer.IsValid() {
			h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("unknown layer "+strconv.Quote(layerParam)))
			return
		}
		common.RespondJSON(w, http.StatusOK, queries.NewConceptViews(h.graph.ListConceptsByLayer(layer)))
		return
	}

	if domainParam != "" {
		domain := valueobjects.Domain(domainParam)
		if !domain.IsValid() {
			h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("unknown domain "+strconv.Quote(domainParam)))
			return
		}
		common.RespondJSON(w, http.StatusOK, queries.NewConceptViews(h.graph.ListConceptsByDomain(domain)))
		return
	}

	if sortParam == "depth" {
		common.RespondJSON(w, http.StatusOK, queries.NewConceptViews(h.graph.ListConceptsByDepth()))
		return
	}

	common.RespondJSON(w, http.StatusOK, queries.NewConceptViews(h.graph.ListConcepts()))
}

// GetConcept handles GET /concepts/{conceptID}
func (h *ConceptHandler) GetConcept(w http.ResponseWriter, r *http.Request) {
	id := pathConceptID(r)

	concept, ok := h.graph.GetConcept(id)
	if !ok {
		h.errorHandler.Handle(w, r, pkgerrors.NewNotFoundError("concept"))
		return
	}

	common.RespondJSON(w, http.StatusOK, queries.NewConceptView(concept))
}

// GetPrerequisites handles GET /concepts/{conceptID}/prerequisites
func (h *ConceptHandler) GetPrerequisites(w http.ResponseWriter, r *http.Request) {
	id := pathConceptID(r)
	common.RespondJSON(w, http.StatusOK, queries.IDStrings(h.graph.GetPrerequisites(id)))
}

// GetDependents handles GET /concepts/{conceptID}/dependents
func (h *ConceptHandler) GetDependents(w http.ResponseWriter, r *http.Request) {
	id := pathConceptID(r)
	common.RespondJSON(w, http.StatusOK, queries.IDStrings(h.graph.GetDependents(id)))
}

// GetPrerequisiteChain handles GET /concepts/{conceptID}/chain
func (h *ConceptHandler) GetPrerequisiteChain(w http.ResponseWriter, r *http.Request) {
	id := pathConceptID(r)
	common.RespondJSON(w, http.StatusOK, queries.IDStrings(h.graph.GetPrerequisiteChain(id)))
}

// GetConceptDepth handles GET /concepts/{conceptID}/depth
func (h *ConceptHandler) GetConceptDepth(w http.ResponseWriter, r *http.Request) {
	id := pathConceptID(r)
	common.RespondJSON(w, http.StatusOK, map[string]int{"depth": h.graph.GetConceptDepth(id)})
}

// CheckGate handles GET /concepts/{conceptID}/gate?completed=a,b
// It reports whether the learner's completed set satisfies the concept's
// direct prerequisites.
func (h *ConceptHandler) CheckGate(w http.ResponseWriter, r *http.Request) {
	id := pathConceptID(r)
	completed := completedSetFromRequest(r)

	common.RespondJSON(w, http.StatusOK, map[string]bool{
		"met": h.graph.ArePrerequisitesMet(id, completed),
	})
}

// GetSubgraph handles GET /concepts/{conceptID}/subgraph?depth=2
func (h *ConceptHandler) GetSubgraph(w http.ResponseWriter, r *http.Request) {
	query := queries.GetSubgraphQuery{
		ConceptID: chi.URLParam(r, "conceptID"),
		Depth:     h.maxSubgraphDepth,
	}
	if raw := r.URL.Query().Get("depth"); raw != "" {
		depth, err := strconv.Atoi(raw)
		if err != nil {
			h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("depth must be an integer"))
			return
		}
		query.Depth = depth
	}
	if err := query.Validate(); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}
	if query.Depth > h.maxSubgraphDepth {
		query.Depth = h.maxSubgraphDepth
	}

	id := lenientConceptID(query.ConceptID)
	common.RespondJSON(w, http.StatusOK, h.graph.GetSubgraph(id, query.Depth))
}

// pathConceptID extracts the concept id path parameter. Malformed tokens
// are passed through as the zero id, which behaves like any unknown id.
func pathConceptID(r *http.Request) valueobjects.ConceptID {
	return lenientConceptID(chi.URLParam(r, "conceptID"))
}

func lenientConceptID(raw string) valueobjects.ConceptID {
	id, err := valueobjects.NewConceptID(raw)
	if err != nil {
		return valueobjects.ConceptID{}
	}
	return id
}

// completedSetFromRequest decodes the caller-owned completed set from the
// repeated (or comma-separated) "completed" query parameter
func completedSetFromRequest(r *http.Request) valueobjects.CompletedSet {
	raw := []string{}
	for _, value := range r.URL.Query()["completed"] {
		for _, token := range strings.Split(value, ",") {
			if token = strings.TrimSpace(token); token != "" {
				raw = append(raw, token)
			}
		}
	}
	return valueobjects.CompletedSetFromStrings(raw)
}
