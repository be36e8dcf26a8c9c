package models

import "github.com/pkg/errors"

type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleEmployee UserRole = "EMPLOYEE"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:    "Администратор",
	UserRoleEmployee: "Сотрудник",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

func (r UserRole) IsValid() error {
	if _, exist := roleHumanName[r]; !exist {
		return errors.New("неизвестная роль пользователя")
	}
	return nil
}

type EmployeeStatus string

const (
	EmployeeWorkingStatus    EmployeeStatus = "WORKING"
	EmployeeOnVacationStatus EmployeeStatus = "VACATION"
	EmployeeDismissedStatus  EmployeeStatus = "DISMISSED"
)

var employeeStatusHumanName = map[EmployeeStatus]string{
	EmployeeWorkingStatus:    "Работает",
	EmployeeOnVacationStatus: "В отпуске",
	EmployeeDismissedStatus:  "Уволен",
}

func (r EmployeeStatus) ToHuman() string {
	if human, exist := employeeStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r EmployeeStatus) IsValid() error {
	if _, exist := employeeStatusHumanName[r]; !exist {
		return errors.New("неизвестный статус сотрудника")
	}
	return nil
}
