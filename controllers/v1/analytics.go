package apiv1

import (
	"nexora-hcm/controllers"
	"nexora-hcm/lib/analytics"

	"github.com/gofiber/fiber/v2"
)

type analyticsApiController struct {
	controllers.BaseAPIController
	handler analytics.Provider
}

func InitAnalyticsApiRouters(app *fiber.App, handler analytics.Provider) {
	controller := analyticsApiController{handler: handler}
	app.Get("analytics", controller.snapshot)
}

// @Summary Аналитика воронки
// @Tags Аналитика
// @Description Количество откликов по этапам, конверсия оффер-найм и узкое место воронки
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.Snapshot}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/analytics [get]
func (c *analyticsApiController) snapshot(ctx *fiber.Ctx) error {
	result, err := c.handler.Snapshot()
	if err != nil {
		return c.SendError(ctx, err, "Ошибка расчета аналитики")
	}
	return c.SendOK(ctx, result)
}
