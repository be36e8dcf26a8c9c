package payroll

import (
	employeestore "nexora-hcm/lib/employee/store"
	payrollstore "nexora-hcm/lib/payroll/store"
	apperrors "nexora-hcm/lib/utils/app-errors"
	payrollapimodels "nexora-hcm/models/api/payroll"
	dbmodels "nexora-hcm/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data payrollapimodels.PayrollData) (payrollapimodels.PayrollView, error)
	ListByEmployee(employeeID uint) ([]payrollapimodels.PayrollView, error)
	MarkPaid(id uint) (payrollapimodels.PayrollView, error)
	Delete(id uint) error
}

func NewHandler(conn *gorm.DB) Provider {
	return impl{
		store:         payrollstore.NewInstance(conn),
		employeeStore: employeestore.NewInstance(conn),
	}
}

type impl struct {
	store         payrollstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) getLogger(id uint) *log.Entry {
	return log.WithField("payroll_id", id)
}

func (i impl) Create(data payrollapimodels.PayrollData) (payrollapimodels.PayrollView, error) {
	data.Period = strings.TrimSpace(data.Period)
	if err := data.Validate(); err != nil {
		return payrollapimodels.PayrollView{}, apperrors.NewValidation(err.Error())
	}
	logger := log.
		WithField("employee_id", data.EmployeeID).
		WithField("period", data.Period)
	if err := i.checkEmployee(data.EmployeeID); err != nil {
		return payrollapimodels.PayrollView{}, err
	}
	rec := dbmodels.PayrollRecord{
		EmployeeID: data.EmployeeID,
		Period:     data.Period,
		Gross:      data.Gross,
		Deductions: data.Deductions,
		Net:        data.Net(),
	}
	created, err := i.store.Create(rec)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return payrollapimodels.PayrollView{}, apperrors.NewConflict("начисление за этот период уже существует")
		}
		logger.WithError(err).Error("ошибка создания начисления")
		return payrollapimodels.PayrollView{}, apperrors.NewInternal("ошибка создания начисления")
	}
	return created.ToModel(), nil
}

func (i impl) ListByEmployee(employeeID uint) ([]payrollapimodels.PayrollView, error) {
	list, err := i.store.ListByEmployee(employeeID)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("ошибка получения списка начислений")
		return nil, apperrors.NewInternal("ошибка получения списка начислений")
	}
	result := make([]payrollapimodels.PayrollView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

// MarkPaid повторная отметка не меняет дату выплаты
func (i impl) MarkPaid(id uint) (payrollapimodels.PayrollView, error) {
	logger := i.getLogger(id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка получения начисления")
		return payrollapimodels.PayrollView{}, apperrors.NewInternal("ошибка получения начисления")
	}
	if rec == nil {
		return payrollapimodels.PayrollView{}, apperrors.NewNotFound("начисление не найдено")
	}
	if rec.PaidAt != nil {
		return rec.ToModel(), nil
	}
	paidAt := time.Now()
	if err = i.store.SetPaid(id, paidAt); err != nil {
		logger.WithError(err).Error("ошибка отметки выплаты")
		return payrollapimodels.PayrollView{}, apperrors.NewInternal("ошибка отметки выплаты")
	}
	rec.PaidAt = &paidAt
	return rec.ToModel(), nil
}

func (i impl) Delete(id uint) error {
	err := i.store.Delete(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("начисление не найдено")
		}
		i.getLogger(id).WithError(err).Error("ошибка удаления начисления")
		return apperrors.NewInternal("ошибка удаления начисления")
	}
	return nil
}

func (i impl) checkEmployee(employeeID uint) error {
	rec, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("ошибка получения сотрудника")
		return apperrors.NewInternal("ошибка получения сотрудника")
	}
	if rec == nil {
		return apperrors.NewNotFound("сотрудник не найден")
	}
	return nil
}
