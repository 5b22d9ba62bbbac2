package auth

import (
	"nautical-institute/app/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/me", CurrentUserAPI)
	auth.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the JWT and sets the user context.
func AuthMiddleware(c *fiber.Ctx) error {
	// JWT from cookie or Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	user := &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsActive:  true,
	}

	roles := make([]*models.Role, len(claims.Roles))
	for i, roleName := range claims.Roles {
		roles[i] = &models.Role{Name: roleName}
	}
	user.Roles = roles

	c.Locals("user_id", user.ID)
	c.Locals("user_roles", roles)
	c.Locals("user", user)

	return c.Next()
}

// RequireRoles rejects the request with a typed permission error unless the
// authenticated user carries one of the allowed roles.
func RequireRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
		}
		if !user.HasRole(allowedRoles...) {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}
		return c.Next()
	}
}
