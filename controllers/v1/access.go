package apiv1

import (
	"attachment-hub-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

// withHubAccess guards a route with a hub session and the rbac rule registered for its path.
func withHubAccess(handler fiber.Handler) []fiber.Handler {
	return []fiber.Handler{
		middleware.AuthorizationRequired(),
		middleware.HubScopeRequired(),
		middleware.RbacMiddleware(),
		handler,
	}
}
