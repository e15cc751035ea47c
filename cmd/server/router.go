package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/medcamphq/medcamp-api/internal/api"
	apiMiddleware "github.com/medcamphq/medcamp-api/internal/api/middleware"
	"github.com/medcamphq/medcamp-api/internal/platform/mongodb"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.jwtService)
	campHandler := api.NewCampHandler(app.campStore)
	userHandler := api.NewUserHandler(app.userStore)
	registrationHandler := api.NewRegistrationHandler(app.registrationStore, app.campStore)
	paymentHandler := api.NewPaymentHandler(app.paymentService, app.registrationStore)
	feedbackHandler := api.NewFeedbackHandler(app.feedbackStore)
	healthHandler := api.NewHealthHandler(mongodb.NewPinger(app.client))

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	// Public endpoints
	r.Post("/jwt", authHandler.IssueToken)
	r.Get("/camps", campHandler.ListCamps)
	r.Post("/users", userHandler.CreateUser)
	r.Get("/feedback/camp/{id}", feedbackHandler.ListCampFeedback)
	r.Get("/healthz", healthHandler.Check)

	// Identity-gated endpoints
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireIdentity)

		r.Get("/camp/details/{id}", campHandler.GetCamp)
		r.Patch("/registered-camp/{id}", campHandler.IncrementParticipantCount)

		r.Post("/registrations", registrationHandler.CreateRegistration)
		r.Get("/registrations", registrationHandler.ListRegistrations)
		r.Get("/registration/{id}", registrationHandler.GetRegistration)
		r.Patch("/registration/{id}", registrationHandler.UpdateRegistration)
		r.Delete("/registration/{id}", registrationHandler.DeleteRegistration)

		r.Post("/payment-intent", paymentHandler.CreatePaymentIntent)
		r.Post("/payment/camp", paymentHandler.RecordPayment)

		r.Post("/feedback", feedbackHandler.CreateFeedback)

		// Self-gated: the email parameter must match the token identity.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireSelf("email"))

			r.Get("/organizer/{email}", userHandler.IsOrganizer)
			r.Get("/registrations/{email}", registrationHandler.ListParticipantRegistrations)
			r.Get("/payments/{email}", paymentHandler.ListParticipantPayments)
			r.Patch("/users/{email}", userHandler.UpdateUser)
		})

		// Organizer-gated camp management
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireOrganizer)

			r.Post("/camps", campHandler.CreateCamp)
			r.Patch("/camp/{id}", campHandler.UpdateCamp)
			r.Delete("/camp/{id}", campHandler.DeleteCamp)
		})
	})

	return r
}
