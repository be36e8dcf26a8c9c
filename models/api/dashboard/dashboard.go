package dashboardapimodels

import (
	analyticsapimodels "nexora-hcm/models/api/analytics"
	employeeapimodels "nexora-hcm/models/api/employee"
	notificationapimodels "nexora-hcm/models/api/notification"
	payrollapimodels "nexora-hcm/models/api/payroll"
)

type AdminDashboard struct {
	Analytics     analyticsapimodels.Snapshot              `json:"analytics"`
	Notifications []notificationapimodels.NotificationView `json:"notifications"`
}

type EmployeeDashboard struct {
	Employee *employeeapimodels.EmployeeView `json:"employee"`
	Payroll  []payrollapimodels.PayrollView  `json:"payroll"`
}
