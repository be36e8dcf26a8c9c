package employeeapimodels

import (
	apimodels "nexora-hcm/models/api"
	"nexora-hcm/models"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DateFormat = "02.01.2006"

type EmployeeData struct {
	UserID     *uint                 `json:"user_id"` // учетная запись сотрудника
	FirstName  string                `json:"first_name"`
	LastName   string                `json:"last_name"`
	Email      string                `json:"email"`
	Department string                `json:"department"`
	Position   string                `json:"position"`
	Salary     int64                 `json:"salary"`   // оклад в копейках
	Status     models.EmployeeStatus `json:"status"`   // по умолчанию WORKING
	HiredAt    string                `json:"hired_at"` // дата приема, формат 02.01.2006
}

func (e EmployeeData) Validate() error {
	if strings.TrimSpace(e.FirstName) == "" {
		return errors.New("не указано имя сотрудника")
	}
	if strings.TrimSpace(e.LastName) == "" {
		return errors.New("не указана фамилия сотрудника")
	}
	if e.Salary < 0 {
		return errors.New("оклад не может быть отрицательным")
	}
	if e.Status != "" {
		if err := e.Status.IsValid(); err != nil {
			return err
		}
	}
	if _, err := ParseDate(e.HiredAt); err != nil {
		return err
	}
	return nil
}

type EmployeeUpdate struct {
	UserID     apimodels.Optional[uint]                  `json:"user_id" swaggertype:"integer"`
	FirstName  apimodels.Optional[string]                `json:"first_name" swaggertype:"string"`
	LastName   apimodels.Optional[string]                `json:"last_name" swaggertype:"string"`
	Email      apimodels.Optional[string]                `json:"email" swaggertype:"string"`
	Department apimodels.Optional[string]                `json:"department" swaggertype:"string"`
	Position   apimodels.Optional[string]                `json:"position" swaggertype:"string"`
	Salary     apimodels.Optional[int64]                 `json:"salary" swaggertype:"integer"`
	Status     apimodels.Optional[models.EmployeeStatus] `json:"status" swaggertype:"string"`
	HiredAt    apimodels.Optional[string]                `json:"hired_at" swaggertype:"string"`
}

func (e EmployeeUpdate) Validate() error {
	if e.FirstName.Set && (!e.FirstName.Valid || strings.TrimSpace(e.FirstName.Value) == "") {
		return errors.New("имя сотрудника не может быть пустым")
	}
	if e.LastName.Set && (!e.LastName.Valid || strings.TrimSpace(e.LastName.Value) == "") {
		return errors.New("фамилия сотрудника не может быть пустой")
	}
	if e.Salary.Set && (!e.Salary.Valid || e.Salary.Value < 0) {
		return errors.New("оклад не может быть отрицательным")
	}
	if e.Status.Set {
		if !e.Status.Valid {
			return errors.New("не указан статус сотрудника")
		}
		if err := e.Status.Value.IsValid(); err != nil {
			return err
		}
	}
	if e.HiredAt.Set && e.HiredAt.Valid {
		if _, err := ParseDate(e.HiredAt.Value); err != nil {
			return err
		}
	}
	return nil
}

// ParseDate пустая строка - дата не указана
func ParseDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	date, err := time.Parse(DateFormat, strings.TrimSpace(value))
	if err != nil {
		return nil, errors.New("некорректный формат даты приема")
	}
	return &date, nil
}

type EmployeeView struct {
	ID         uint       `json:"id"`
	UserID     *uint      `json:"user_id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      *string    `json:"email"`
	Department string     `json:"department"`
	Position   string     `json:"position"`
	Salary     int64      `json:"salary"`
	Status     string     `json:"status"`
	StatusName string     `json:"status_name"`
	HiredAt    *time.Time `json:"hired_at"`
	CreatedAt  time.Time  `json:"created_at"`
}
