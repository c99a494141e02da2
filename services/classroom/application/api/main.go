package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/examseats/pkg/app"
	"github.com/ghuser/examseats/services/classroom/application/handlers"
	appsvcs "github.com/ghuser/examseats/services/classroom/application/services"
)

// ClassroomRoutes registers classroom, allocation and exam plan endpoints on
// the provided chi router.
func ClassroomRoutes(r chi.Router, a *app.Application) {
	Routes(r, appsvcs.New(a))
}

// Routes registers the endpoints against an already wired service container.
func Routes(r chi.Router, svcs *appsvcs.Services) {
	plans := handlers.NewExamPlanHandler(svcs)

	r.Route("/classrooms", func(r chi.Router) {
		r.Post("/", handlers.NewPostClassroomHandler(svcs).Execute)
		r.Get("/", handlers.NewListClassroomsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetClassroomHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteClassroomHandler(svcs).Execute)
	})
	r.Post("/allocations", handlers.NewPostAllocationHandler(svcs).Execute)
	r.Route("/exam-plans", func(r chi.Router) {
		r.Post("/", plans.Create)
		r.Get("/{id}", plans.Get)
	})
}
