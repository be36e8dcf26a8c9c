package dbmodels

import (
	payrollapimodels "nexora-hcm/models/api/payroll"
	"time"
)

type PayrollRecord struct {
	BaseModel
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_payroll_employee_period"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Period     string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_payroll_employee_period"`
	Gross      int64
	Deductions int64
	Net        int64
	PaidAt     *time.Time
}

func (r PayrollRecord) ToModel() payrollapimodels.PayrollView {
	return payrollapimodels.PayrollView{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Period:     r.Period,
		Gross:      r.Gross,
		Deductions: r.Deductions,
		Net:        r.Net,
		PaidAt:     r.PaidAt,
		CreatedAt:  r.CreatedAt,
	}
}
