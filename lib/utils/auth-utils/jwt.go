package authutils

import (
	"attachment-hub-backend/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenParams struct {
	UserID string
	Name   string
	Role   models.UserRole
	Scope  models.SessionScope
}

func GetToken(params TokenParams, secret string, expireInSec int64) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":  params.Name,
		"sub":   params.UserID,
		"role":  string(params.Role),
		"scope": string(params.Scope),
		"sid":   uuid.NewString(),
		"exp":   time.Now().Add(time.Second * time.Duration(expireInSec)).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetClaimString(claims jwt.MapClaims, key string) string {
	if value, exist := claims[key]; exist {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}
