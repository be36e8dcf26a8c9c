package authutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ClaimsKey ключ, под которым jwt middleware кладет токен в Locals
const ClaimsKey = "user"

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals(ClaimsKey).(*jwt.Token)
	if !ok || token == nil {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

// GetStringClaim числовые значения приводятся к строке: внешний издатель может передать sub числом
func GetStringClaim(claims jwt.MapClaims, name string) string {
	value, exist := claims[name]
	if !exist || value == nil {
		return ""
	}
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return fmt.Sprintf("%.0f", typed)
	default:
		return fmt.Sprint(typed)
	}
}
