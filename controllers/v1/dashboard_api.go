package apiv1

import (
	"strconv"

	"nexora-hcm/controllers"
	"nexora-hcm/lib/analytics"
	"nexora-hcm/lib/employee"
	"nexora-hcm/lib/notification"
	"nexora-hcm/lib/payroll"
	"nexora-hcm/middleware"
	"nexora-hcm/models"
	dashboardapimodels "nexora-hcm/models/api/dashboard"
	payrollapimodels "nexora-hcm/models/api/payroll"

	"github.com/gofiber/fiber/v2"
)

type dashboardApiController struct {
	controllers.BaseAPIController
	analyticsHandler    analytics.Provider
	notificationHandler notification.Provider
	employeeHandler     employee.Provider
	payrollHandler      payroll.Provider
}

type DashboardHandlers struct {
	Analytics    analytics.Provider
	Notification notification.Provider
	Employee     employee.Provider
	Payroll      payroll.Provider
}

// InitDashboardApiRouters prefix - полный путь, по которому смонтирован app, нужен для перенаправлений
func InitDashboardApiRouters(app *fiber.App, prefix string, handlers DashboardHandlers) {
	controller := dashboardApiController{
		analyticsHandler:    handlers.Analytics,
		notificationHandler: handlers.Notification,
		employeeHandler:     handlers.Employee,
		payrollHandler:      handlers.Payroll,
	}
	app.Get("", middleware.DashboardEntry(prefix))
	app.Get("admin", middleware.DashboardRedirect(prefix, models.UserRoleAdmin), controller.admin)
	app.Get("employee", middleware.DashboardRedirect(prefix, models.UserRoleEmployee), controller.employee)
}

// @Summary Дашборд администратора
// @Tags Дашборд
// @Description Аналитика воронки и последние события. Сотрудник перенаправляется на свой дашборд
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.AdminDashboard}
// @Success 302
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/admin [get]
func (c *dashboardApiController) admin(ctx *fiber.Ctx) error {
	snapshot, err := c.analyticsHandler.Snapshot()
	if err != nil {
		return c.SendError(ctx, err, "Ошибка расчета аналитики")
	}
	list, err := c.notificationHandler.List()
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения списка событий")
	}
	return c.SendOK(ctx, dashboardapimodels.AdminDashboard{
		Analytics:     snapshot,
		Notifications: list,
	})
}

// @Summary Дашборд сотрудника
// @Tags Дашборд
// @Description Карточка сотрудника текущего пользователя и его начисления. Администратор перенаправляется на свой дашборд
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.EmployeeDashboard}
// @Success 302
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/employee [get]
func (c *dashboardApiController) employee(ctx *fiber.Ctx) error {
	result := dashboardapimodels.EmployeeDashboard{
		Payroll: []payrollapimodels.PayrollView{},
	}
	userID, err := strconv.ParseUint(middleware.GetUserID(ctx), 10, 64)
	if err != nil || userID == 0 {
		// пользователь без числового идентификатора не может быть привязан к сотруднику
		return c.SendOK(ctx, result)
	}
	rec, err := c.employeeHandler.GetByUserID(uint(userID))
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения сотрудника")
	}
	if rec == nil {
		return c.SendOK(ctx, result)
	}
	result.Employee = rec
	result.Payroll, err = c.payrollHandler.ListByEmployee(rec.ID)
	if err != nil {
		return c.SendError(ctx, err, "Ошибка получения списка начислений")
	}
	return c.SendOK(ctx, result)
}
