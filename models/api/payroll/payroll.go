package payrollapimodels

import (
	"time"

	"github.com/pkg/errors"
)

const PeriodFormat = "2006-01"

type PayrollData struct {
	EmployeeID uint   `json:"employee_id"`
	Period     string `json:"period"`     // расчетный период, формат 2006-01
	Gross      int64  `json:"gross"`      // начислено, в копейках
	Deductions int64  `json:"deductions"` // удержано, в копейках
}

func (p PayrollData) Validate() error {
	if p.EmployeeID == 0 {
		return errors.New("не указан сотрудник")
	}
	if _, err := time.Parse(PeriodFormat, p.Period); err != nil {
		return errors.New("некорректный формат расчетного периода")
	}
	if p.Gross < 0 || p.Deductions < 0 {
		return errors.New("суммы не могут быть отрицательными")
	}
	if p.Deductions > p.Gross {
		return errors.New("удержания превышают начисления")
	}
	return nil
}

func (p PayrollData) Net() int64 {
	return p.Gross - p.Deductions
}

type PayrollView struct {
	ID         uint       `json:"id"`
	EmployeeID uint       `json:"employee_id"`
	Period     string     `json:"period"`
	Gross      int64      `json:"gross"`
	Deductions int64      `json:"deductions"`
	Net        int64      `json:"net"`
	PaidAt     *time.Time `json:"paid_at"`
	CreatedAt  time.Time  `json:"created_at"`
}
