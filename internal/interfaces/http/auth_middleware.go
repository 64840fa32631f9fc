package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vinsa/company-registry/internal/infrastructure/clerk"
	"github.com/vinsa/company-registry/pkg/config"
)

const (
	localClerkUserID = "clerk_user_id"
	localProfile     = "clerk_profile"
)

// RequireAuth verifies the bearer session token and loads the caller's
// Clerk profile into the request locals. Requests without a valid token
// are rejected before reaching the handler.
func RequireAuth(verifier clerk.TokenVerifier, profiles clerk.ProfileFetcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, found := bearerToken(c)
		if !found {
			return fail(c, fiber.StatusUnauthorized, "No token provided", nil)
		}

		clerkID, err := verifier.Verify(token)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "Invalid token", nil)
		}

		profile, err := profiles.GetUser(c.UserContext(), clerkID)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "Authentication failed", nil)
		}

		c.Locals(localClerkUserID, clerkID)
		c.Locals(localProfile, profile)
		return c.Next()
	}
}

// OptionalAuth loads the caller's identity when a valid token is present
// and lets the request through anonymously otherwise.
func OptionalAuth(verifier clerk.TokenVerifier, profiles clerk.ProfileFetcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, found := bearerToken(c)
		if !found {
			return c.Next()
		}
		clerkID, err := verifier.Verify(token)
		if err != nil {
			return c.Next()
		}
		profile, err := profiles.GetUser(c.UserContext(), clerkID)
		if err != nil {
			return c.Next()
		}
		c.Locals(localClerkUserID, clerkID)
		c.Locals(localProfile, profile)
		return c.Next()
	}
}

// RequireAdmin restricts a route to the configured admin allowlist. With
// no allowlist configured the route stays open in development so local
// setups work, and is closed everywhere else.
func RequireAdmin(cfg config.ClerkConfig, production bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clerkID := ClerkUserID(c)
		if clerkID == "" {
			return fail(c, fiber.StatusUnauthorized, "No token provided", nil)
		}
		if len(cfg.AdminIDs) == 0 && !production {
			return c.Next()
		}
		if !cfg.IsAdmin(clerkID) {
			return fail(c, fiber.StatusForbidden, "Admin access required", nil)
		}
		return c.Next()
	}
}

// ClerkUserID returns the authenticated caller's Clerk ID, or "" when the
// request did not pass RequireAuth.
func ClerkUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localClerkUserID).(string)
	return id
}

// Profile returns the Clerk profile RequireAuth stored for this request.
func Profile(c *fiber.Ctx) *clerk.Profile {
	p, _ := c.Locals(localProfile).(*clerk.Profile)
	return p
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}
