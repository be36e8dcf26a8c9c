package apiv1

import (
	"nexora-hcm/controllers"
	"nexora-hcm/lib/employee"
	"nexora-hcm/lib/payroll"
	apimodels "nexora-hcm/models/api"
	employeeapimodels "nexora-hcm/models/api/employee"

	"github.com/gofiber/fiber/v2"
)

type employeeApiController struct {
	controllers.BaseAPIController
	handler        employee.Provider
	payrollHandler payroll.Provider
}

func InitEmployeeApiRouters(app *fiber.App, handler employee.Provider, payrollHandler payroll.Provider) {
	controller := employeeApiController{
		handler:        handler,
		payrollHandler: payrollHandler,
	}
	app.Route("employee", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Patch("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Get("payroll", controller.payrollList)
		})
	})
}

// @Summary Список сотрудников
// @Tags Сотрудник
// @Description Список сотрудников по фамилии и имени
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.EmployeeView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/employee [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	list, err := c.handler.List()
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения списка сотрудников")
	}
	return c.SendOK(ctx, list)
}

// @Summary Создание
// @Tags Сотрудник
// @Description Создание карточки сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.EmployeeData	true	"request body"
// @Success 201 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/employee [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Create(payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка создания сотрудника")
	}
	return c.SendCreated(ctx, rec)
}

// @Summary Получение по ИД
// @Tags Сотрудник
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/employee/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Get(id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения сотрудника")
	}
	return c.SendOK(ctx, rec)
}

// @Summary Обновление
// @Tags Сотрудник
// @Description Частичное обновление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.EmployeeUpdate	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/employee/{id} [patch]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload employeeapimodels.EmployeeUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	rec, err := c.handler.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка обновления сотрудника")
	}
	return c.SendOK(ctx, rec)
}

// @Summary Удаление
// @Tags Сотрудник
// @Description Удаление вместе с начислениями
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=apimodels.OkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/employee/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = c.handler.Delete(id); err != nil {
		return c.SendError(ctx, err, "Ошибка удаления сотрудника")
	}
	return c.SendOK(ctx, apimodels.OkResult{Ok: true})
}

// @Summary Начисления сотрудника
// @Tags Начисление
// @Description Начисления, последние периоды первыми
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]payrollapimodels.PayrollView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/employee/{id}/payroll [get]
func (c *employeeApiController) payrollList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	list, err := c.payrollHandler.ListByEmployee(id)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения списка начислений")
	}
	return c.SendOK(ctx, list)
}
