package dbmodels

import (
	"fmt"
	"nexora-hcm/models"
	employeeapimodels "nexora-hcm/models/api/employee"
	"time"
)

type Employee struct {
	BaseModel
	UserID     *uint   `gorm:"uniqueIndex"`
	User       *User   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	FirstName  string  `gorm:"type:varchar(150);not null"`
	LastName   string  `gorm:"type:varchar(150);not null"`
	Email      *string `gorm:"type:varchar(255)"`
	Department string  `gorm:"type:varchar(255)"`
	Position   string  `gorm:"type:varchar(255)"`
	Salary     int64
	Status     models.EmployeeStatus `gorm:"type:varchar(50)"`
	HiredAt    *time.Time
}

func (r Employee) ToModel() employeeapimodels.EmployeeView {
	return employeeapimodels.EmployeeView{
		ID:         r.ID,
		UserID:     r.UserID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Department: r.Department,
		Position:   r.Position,
		Salary:     r.Salary,
		Status:     string(r.Status),
		StatusName: r.Status.ToHuman(),
		HiredAt:    r.HiredAt,
		CreatedAt:  r.CreatedAt,
	}
}

func (r Employee) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
