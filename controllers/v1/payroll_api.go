package apiv1

import (
	"nexora-hcm/controllers"
	"nexora-hcm/lib/payroll"
	apimodels "nexora-hcm/models/api"
	payrollapimodels "nexora-hcm/models/api/payroll"

	"github.com/gofiber/fiber/v2"
)

type payrollApiController struct {
	controllers.BaseAPIController
	handler payroll.Provider
}

func InitPayrollApiRouters(app *fiber.App, handler payroll.Provider) {
	controller := payrollApiController{handler: handler}
	app.Route("payroll", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("paid", controller.markPaid)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Создание
// @Tags Начисление
// @Description Начисление за период. Одна запись на сотрудника за период, суммы в копейках
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 payrollapimodels.PayrollData	true	"request body"
// @Success 201 {object} apimodels.Response{data=payrollapimodels.PayrollView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/payroll [post]
func (c *payrollApiController) create(ctx *fiber.Ctx) error {
	var payload payrollapimodels.PayrollData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Create(payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка создания начисления")
	}
	return c.SendCreated(ctx, rec)
}

// @Summary Отметка о выплате
// @Tags Начисление
// @Description Отметка о выплате, повторный вызов не меняет дату выплаты
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=payrollapimodels.PayrollView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/payroll/{id}/paid [put]
func (c *payrollApiController) markPaid(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.MarkPaid(id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка отметки выплаты")
	}
	return c.SendOK(ctx, rec)
}

// @Summary Удаление
// @Tags Начисление
// @Description Удаление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=apimodels.OkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/payroll/{id} [delete]
func (c *payrollApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = c.handler.Delete(id); err != nil {
		return c.SendError(ctx, err, "Ошибка удаления начисления")
	}
	return c.SendOK(ctx, apimodels.OkResult{Ok: true})
}
