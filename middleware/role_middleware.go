package middleware

import (
	authutils "nexora-hcm/lib/utils/auth-utils"
	"nexora-hcm/models"
	apimodels "nexora-hcm/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(authutils.GetClaims(ctx), "sub")
}

func GetRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(authutils.GetStringClaim(authutils.GetClaims(ctx), "role"))
}

func RoleRequired(role models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if GetRole(ctx) != role {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
