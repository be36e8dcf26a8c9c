package employee

import (
	employeestore "nexora-hcm/lib/employee/store"
	apperrors "nexora-hcm/lib/utils/app-errors"
	"nexora-hcm/models"
	employeeapimodels "nexora-hcm/models/api/employee"
	dbmodels "nexora-hcm/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error)
	List() ([]employeeapimodels.EmployeeView, error)
	Get(id uint) (employeeapimodels.EmployeeView, error)
	GetByUserID(userID uint) (*employeeapimodels.EmployeeView, error)
	Update(id uint, data employeeapimodels.EmployeeUpdate) (employeeapimodels.EmployeeView, error)
	Delete(id uint) error
}

func NewHandler(conn *gorm.DB) Provider {
	return impl{
		store: employeestore.NewInstance(conn),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) getLogger(id uint) *log.Entry {
	return log.WithField("employee_id", id)
}

func (i impl) Create(data employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error) {
	if err := data.Validate(); err != nil {
		return employeeapimodels.EmployeeView{}, apperrors.NewValidation(err.Error())
	}
	hiredAt, _ := employeeapimodels.ParseDate(data.HiredAt)
	status := data.Status
	if status == "" {
		status = models.EmployeeWorkingStatus
	}
	rec := dbmodels.Employee{
		UserID:     data.UserID,
		FirstName:  strings.TrimSpace(data.FirstName),
		LastName:   strings.TrimSpace(data.LastName),
		Email:      normalizeEmail(data.Email),
		Department: strings.TrimSpace(data.Department),
		Position:   strings.TrimSpace(data.Position),
		Salary:     data.Salary,
		Status:     status,
		HiredAt:    hiredAt,
	}
	created, err := i.store.Create(rec)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return employeeapimodels.EmployeeView{}, apperrors.NewConflict("учетная запись уже привязана к другому сотруднику")
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return employeeapimodels.EmployeeView{}, apperrors.NewValidation("учетная запись не найдена")
		}
		log.WithField("full_name", rec.GetFullName()).WithError(err).Error("ошибка создания сотрудника")
		return employeeapimodels.EmployeeView{}, apperrors.NewInternal("ошибка создания сотрудника")
	}
	return created.ToModel(), nil
}

func (i impl) List() ([]employeeapimodels.EmployeeView, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка сотрудников")
		return nil, apperrors.NewInternal("ошибка получения списка сотрудников")
	}
	result := make([]employeeapimodels.EmployeeView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) Get(id uint) (employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		i.getLogger(id).WithError(err).Error("ошибка получения сотрудника")
		return employeeapimodels.EmployeeView{}, apperrors.NewInternal("ошибка получения сотрудника")
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, apperrors.NewNotFound("сотрудник не найден")
	}
	return rec.ToModel(), nil
}

// GetByUserID nil, если учетная запись не привязана к сотруднику
func (i impl) GetByUserID(userID uint) (*employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка получения сотрудника по учетной записи")
		return nil, apperrors.NewInternal("ошибка получения сотрудника")
	}
	if rec == nil {
		return nil, nil
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) Update(id uint, data employeeapimodels.EmployeeUpdate) (employeeapimodels.EmployeeView, error) {
	if err := data.Validate(); err != nil {
		return employeeapimodels.EmployeeView{}, apperrors.NewValidation(err.Error())
	}
	updMap := map[string]interface{}{}
	if data.UserID.Set {
		if data.UserID.Valid {
			updMap["user_id"] = data.UserID.Value
		} else {
			updMap["user_id"] = nil
		}
	}
	if data.FirstName.Set {
		updMap["first_name"] = strings.TrimSpace(data.FirstName.Value)
	}
	if data.LastName.Set {
		updMap["last_name"] = strings.TrimSpace(data.LastName.Value)
	}
	if data.Email.Set {
		updMap["email"] = normalizeEmail(data.Email.Value)
	}
	if data.Department.Set {
		updMap["department"] = strings.TrimSpace(data.Department.Value)
	}
	if data.Position.Set {
		updMap["position"] = strings.TrimSpace(data.Position.Value)
	}
	if data.Salary.Set {
		updMap["salary"] = data.Salary.Value
	}
	if data.Status.Set {
		updMap["status"] = data.Status.Value
	}
	if data.HiredAt.Set {
		hiredAt, _ := employeeapimodels.ParseDate(data.HiredAt.Value)
		updMap["hired_at"] = hiredAt
	}
	if len(updMap) == 0 {
		return i.Get(id)
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return employeeapimodels.EmployeeView{}, apperrors.NewNotFound("сотрудник не найден")
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return employeeapimodels.EmployeeView{}, apperrors.NewConflict("учетная запись уже привязана к другому сотруднику")
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return employeeapimodels.EmployeeView{}, apperrors.NewValidation("учетная запись не найдена")
		}
		i.getLogger(id).WithError(err).Error("ошибка обновления сотрудника")
		return employeeapimodels.EmployeeView{}, apperrors.NewInternal("ошибка обновления сотрудника")
	}
	return i.Get(id)
}

func (i impl) Delete(id uint) error {
	err := i.store.Delete(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("сотрудник не найден")
		}
		i.getLogger(id).WithError(err).Error("ошибка удаления сотрудника")
		return apperrors.NewInternal("ошибка удаления сотрудника")
	}
	return nil
}

func normalizeEmail(value string) *string {
	email := strings.ToLower(strings.TrimSpace(value))
	if email == "" {
		return nil
	}
	return &email
}
