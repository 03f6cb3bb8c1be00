package middleware

import (
	"attachment-hub-backend/config"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
	})
}

// WebsocketAuthorizationRequired also accepts the token from ?token= since browsers cannot set headers on upgrade.
func WebsocketAuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims:      jwt.MapClaims{},
		TokenLookup: "header:Authorization,query:token",
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
	})
}

// OptionalAuthorization fills the session when a valid token is sent and lets anonymous requests through.
func OptionalAuthorization() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		Filter: func(ctx *fiber.Ctx) bool {
			return ctx.Get(fiber.HeaderAuthorization) == ""
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			ctx.Locals("user", nil)
			return ctx.Next()
		},
	})
}
