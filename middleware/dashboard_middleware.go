package middleware

import (
	"nexora-hcm/models"
	apimodels "nexora-hcm/models/api"

	"github.com/gofiber/fiber/v2"
)

// DashboardPath адрес дашборда для роли, пустая строка для неизвестной роли
func DashboardPath(prefix string, role models.UserRole) string {
	switch role {
	case models.UserRoleAdmin:
		return prefix + "/admin"
	case models.UserRoleEmployee:
		return prefix + "/employee"
	default:
		return ""
	}
}

// DashboardRedirect вход на общий адрес или на дашборд чужой роли перенаправляет на свой дашборд.
// prefix - полный путь группы дашбордов, например /api/v1/dashboard
func DashboardRedirect(prefix string, target models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role := GetRole(ctx)
		own := DashboardPath(prefix, role)
		if own == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		if role != target {
			return ctx.Redirect(own, fiber.StatusFound)
		}
		return ctx.Next()
	}
}

// DashboardEntry корневой адрес дашборда всегда перенаправляет на дашборд роли
func DashboardEntry(prefix string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		own := DashboardPath(prefix, GetRole(ctx))
		if own == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Redirect(own, fiber.StatusFound)
	}
}
