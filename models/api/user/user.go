package userapimodels

import (
	"net/mail"
	"nexora-hcm/models"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type UserData struct {
	Email string          `json:"email"` // логин, уникален без учета регистра
	Name  string          `json:"name"`
	Role  models.UserRole `json:"role"` // ADMIN / EMPLOYEE, по умолчанию EMPLOYEE
}

func (r UserData) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	// адрес с отображаемым именем ("Имя <a@b.c>") не принимается, логин - только сам адрес
	addr, err := mail.ParseAddress(strings.TrimSpace(r.Email))
	if err != nil || addr.Address != strings.TrimSpace(r.Email) {
		return errors.New("почта имеет неправильный формат")
	}
	if r.Role != "" {
		return r.Role.IsValid()
	}
	return nil
}

type UserView struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	RoleName  string    `json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
}
