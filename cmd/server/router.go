package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pawhaven/paw-haven-api/internal/api"
	apiMiddleware "github.com/pawhaven/paw-haven-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Route groups follow the authorization tiers: public,
// session-gated, owner-gated, and admin.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	authHandler := api.NewAuthHandler(app.jwtService, app.userStore, app.cookieConfig)
	userHandler := api.NewUserHandler(app.userStore, app.statsStore)
	petHandler := api.NewPetHandler(app.petStore)
	campaignHandler := api.NewCampaignHandler(app.campaignStore)
	donationHandler := api.NewDonationHandler(app.donationStore, app.donationService)
	adoptionHandler := api.NewAdoptionHandler(app.adoptionStore, app.petStore)
	paymentHandler := api.NewPaymentHandler(app.paymentService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.config.Auth.CookieName)
	roleMiddleware := apiMiddleware.NewRoleMiddleware(app.userStore)

	// Public routes
	r.Post("/jwt", authHandler.IssueToken)
	r.Get("/logout", authHandler.Logout)
	r.Post("/users/{email}", userHandler.CreateOrFetch)
	r.Get("/users/role/{email}", userHandler.GetRole)
	r.Get("/pets", petHandler.List)
	r.Get("/pets/{id}", petHandler.Get)
	r.Get("/featuredPets", petHandler.Featured)
	r.Get("/pet-categories", petHandler.Categories)
	r.Get("/all-pets", petHandler.ListAll)
	r.Get("/allCampaigns", campaignHandler.List)
	r.Get("/featuredCampaigns", campaignHandler.Featured)
	r.Get("/limited-campaigns", campaignHandler.Limited)
	r.Get("/donation-campaigns/{id}", campaignHandler.Get)

	// Session-gated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Use(roleMiddleware.RequireActiveUser)

		r.Post("/add-pet", petHandler.Create)
		r.Put("/update-pet/{id}", petHandler.Update)
		r.Patch("/pet/{id}", petHandler.ToggleAdopted)
		r.Delete("/pet/{id}", petHandler.Delete)

		r.Post("/donation-campaigns", campaignHandler.Create)
		r.Put("/update-campaign/{id}", campaignHandler.Update)
		r.Patch("/donation-campaigns/{id}", campaignHandler.TogglePaused)
		r.Patch("/donated-camp/{id}", campaignHandler.ApplyDonation)
		r.Delete("/donation-campaign/{id}", campaignHandler.Delete)

		r.Post("/create-payment-intent", paymentHandler.CreateIntent)
		r.Post("/donations", donationHandler.Create)
		r.Get("/donationCampaign/{id}", donationHandler.ListByCampaign)
		r.Delete("/delete-donation/{id}", donationHandler.Delete)
		r.Patch("/refundMoney/{id}", donationHandler.Refund)

		r.Post("/adopted-pet", adoptionHandler.Create)

		// Owner-gated listings: the path email must match the session
		r.Group(func(r chi.Router) {
			r.Use(apiMiddleware.RequireOwner("email"))

			r.Get("/my-pets/{email}", petHandler.ListMine)
			r.Get("/all-campaigns/{email}", campaignHandler.ListMine)
			r.Get("/donations/{email}", donationHandler.ListMine)
			r.Get("/adopted-pet/{email}", adoptionHandler.ListMine)
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(roleMiddleware.RequireAdmin)

			r.With(apiMiddleware.RequireOwner("email")).
				Get("/all-users/{email}", userHandler.ListOthers)
			r.Patch("/user/role/{id}", userHandler.PromoteRole)
			r.Patch("/user/ban/{id}", userHandler.SetBan)
			r.Get("/admin/stats", userHandler.Stats)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
