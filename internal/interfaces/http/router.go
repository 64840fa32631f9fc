package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinsa/company-registry/internal/infrastructure/clerk"
	"github.com/vinsa/company-registry/pkg/config"
)

// RouterDeps collects everything route registration needs.
type RouterDeps struct {
	Auth      *AuthHandler
	Users     *UserHandler
	Companies *CompanyHandler
	Webhooks  *WebhookHandler

	Verifier   clerk.TokenVerifier
	Profiles   clerk.ProfileFetcher
	Clerk      config.ClerkConfig
	Production bool
}

// Register mounts all /api routes. Webhooks are signature-verified rather
// than token-authenticated, so they sit outside the auth middleware.
func Register(app *fiber.App, deps RouterDeps) {
	requireAuth := RequireAuth(deps.Verifier, deps.Profiles)
	requireAdmin := RequireAdmin(deps.Clerk, deps.Production)

	api := app.Group("/api")

	authRoutes := api.Group("/auth", requireAuth)
	authRoutes.Get("/me", deps.Auth.Me)
	authRoutes.Post("/sync-user", deps.Auth.SyncUser)
	authRoutes.Get("/status", deps.Auth.Status)

	users := api.Group("/users", requireAuth)
	users.Get("/profile", deps.Users.GetProfile)
	users.Put("/profile", deps.Users.UpdateProfile)
	users.Get("/", requireAdmin, deps.Users.List)
	users.Get("/:id", requireAdmin, deps.Users.GetByID)

	companies := api.Group("/companies", requireAuth)
	companies.Post("/", deps.Companies.Create)
	companies.Get("/my-company", deps.Companies.MyCompany)
	companies.Put("/my-company", deps.Companies.UpdateMyCompany)
	companies.Get("/search/:term", deps.Companies.Search)
	companies.Get("/", deps.Companies.List)
	companies.Get("/:id", deps.Companies.GetByID)
	companies.Put("/:id/verification", requireAdmin, deps.Companies.SetVerificationStatus)

	webhooks := api.Group("/webhooks")
	webhooks.Post("/clerk", deps.Webhooks.HandleClerk)
}
