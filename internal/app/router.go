package app

import (
	"net/http"

	"todoList/internal/config"
	"todoList/internal/handlers"
	"todoList/internal/metrics"
	"todoList/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func newRouter(cfg config.ServerConfig, svc handlers.Service, checker handlers.HealthChecker, m *metrics.Metrics) *chi.Mux {
	taskHandler := handlers.NewTaskHandler(svc, checker)
	webHandler := handlers.NewWebHandler(svc)

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics(m))
	r.Use(middleware.RateLimit(cfg.RateLimit))

	r.Get("/health", taskHandler.HealthCheck)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Group(func(r chi.Router) {
		if cfg.RequestTimeout > 0 {
			r.Use(chimw.Timeout(cfg.RequestTimeout))
		}

		r.Route("/api/tasks", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: cfg.CORSOrigins,
				AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
				ExposedHeaders: []string{"X-Request-ID"},
				MaxAge:         300,
			}))

			r.Get("/", taskHandler.ListTasks)   // GET /api/tasks?status=&priority=&q=
			r.Post("/", taskHandler.CreateTask) // POST /api/tasks

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", taskHandler.GetTaskByID)       // GET /api/tasks/{id}
				r.Patch("/", taskHandler.UpdateTaskByID)  // PATCH /api/tasks/{id}
				r.Put("/", taskHandler.UpdateTaskByID)    // PUT /api/tasks/{id}
				r.Delete("/", taskHandler.DeleteTaskByID) // DELETE /api/tasks/{id}

				r.Post("/complete", taskHandler.CompleteTask)     // POST /api/tasks/{id}/complete
				r.Post("/uncomplete", taskHandler.UncompleteTask) // POST /api/tasks/{id}/uncomplete
				r.Post("/start", taskHandler.StartTask)           // POST /api/tasks/{id}/start
			})
		})

		r.Get("/", webHandler.Index)
		r.Post("/tasks", webHandler.AddTask)
		r.Route("/tasks/{id}", func(r chi.Router) {
			r.Post("/complete", webHandler.CompleteTask)
			r.Post("/uncomplete", webHandler.UncompleteTask)
			r.Post("/start", webHandler.StartTask)
			r.Post("/delete", webHandler.DeleteTask)
			r.Post("/priority", webHandler.SetPriority)
		})
	})

	return r
}
