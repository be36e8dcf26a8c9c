package apiv1

import (
	"nexora-hcm/controllers"
	"nexora-hcm/lib/notification"

	"github.com/gofiber/fiber/v2"
)

type notificationApiController struct {
	controllers.BaseAPIController
	handler notification.Provider
}

func InitNotificationApiRouters(app *fiber.App, handler notification.Provider) {
	controller := notificationApiController{handler: handler}
	app.Get("notification", controller.list)
}

// @Summary Список событий
// @Tags Событие
// @Description Последние события, не более 200, новые первыми
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment/notification [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	list, err := c.handler.List()
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения списка событий")
	}
	return c.SendOK(ctx, list)
}
