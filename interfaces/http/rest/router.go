package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"learngraph/infrastructure/di"
	"learngraph/interfaces/http/rest/handlers"
	"learngraph/interfaces/http/rest/middleware"
	"learngraph/pkg/common"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		logger:    container.Logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestLogger(rt.logger))

	if rt.container.Config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health checks
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	conceptHandler := handlers.NewConceptHandler(
		rt.container.GraphQueries,
		rt.container.ErrorHandler,
		rt.container.Config.MaxSubgraphDepth,
	)
	pathHandler := handlers.NewPathHandler(
		rt.container.GraphQueries,
		rt.container.PathPlanner,
		rt.container.ErrorHandler,
	)

	// The API is read-only: the curriculum is authored statically and
	// published at startup, learner state arrives with each request.
	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/concepts", func(r chi.Router) {
			r.Get("/", conceptHandler.ListConcepts)
			r.Route("/{conceptID}", func(r chi.Router) {
				r.Get("/", conceptHandler.GetConcept)
				r.Get("/prerequisites", conceptHandler.GetPrerequisites)
				r.Get("/dependents", conceptHandler.GetDependents)
				r.Get("/chain", conceptHandler.GetPrerequisiteChain)
				r.Get("/depth", conceptHandler.GetConceptDepth)
				r.Get("/gate", conceptHandler.CheckGate)
				r.Get("/subgraph", conceptHandler.GetSubgraph)
			})
		})

		// chi requires sibling routes to share the first wildcard's name,
		// so the from-concept of the two-segment form reuses targetID
		r.Route("/path", func(r chi.Router) {
			r.Get("/{targetID}", pathHandler.GetLearningPath)
			r.Get("/{targetID}/{toID}", pathHandler.GetPathBetween)
		})

		r.Get("/frontier", pathHandler.GetFrontier)
		r.Get("/progress/{targetID}", pathHandler.GetProgress)
		r.Get("/estimate/{targetID}", pathHandler.GetEstimate)
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) readinessCheck(w http.ResponseWriter, r *http.Request) {
	curriculum := rt.container.Publisher.Current()
	if curriculum.ConceptCount() == 0 {
		common.RespondError(w, http.StatusServiceUnavailable, "CURRICULUM_EMPTY", "no curriculum published")
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ready",
		"concepts": curriculum.ConceptCount(),
		"edges":    curriculum.EdgeCount(),
	})
}
