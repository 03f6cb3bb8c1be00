package middleware

import (
	authutils "attachment-hub-backend/lib/utils/auth-utils"
	"attachment-hub-backend/models"
	apimodels "attachment-hub-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	return authutils.GetClaimString(authutils.GetClaims(ctx), "sub")
}

func GetUserName(ctx *fiber.Ctx) string {
	return authutils.GetClaimString(authutils.GetClaims(ctx), "name")
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(authutils.GetClaimString(authutils.GetClaims(ctx), "role"))
}

func GetScope(ctx *fiber.Ctx) models.SessionScope {
	return models.SessionScope(authutils.GetClaimString(authutils.GetClaims(ctx), "scope"))
}

// GetSessionID identifies the browser session that owns ephemeral state like the chat transcript.
func GetSessionID(ctx *fiber.Ctx) string {
	return authutils.GetClaimString(authutils.GetClaims(ctx), "sid")
}

func HubScopeRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if GetScope(ctx) != models.HubScope || !GetUserRole(ctx).IsValid() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
		}
		return ctx.Next()
	}
}

func PortalUserRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if GetScope(ctx) != models.PortalScope || GetUserName(ctx) == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("please log in to the portal first"))
		}
		return ctx.Next()
	}
}
