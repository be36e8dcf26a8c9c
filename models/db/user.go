package dbmodels

import (
	"nexora-hcm/models"
	userapimodels "nexora-hcm/models/api/user"
)

type User struct {
	BaseModel
	Email string          `gorm:"type:varchar(255);uniqueIndex;not null"` // хранится в нижнем регистре
	Name  string          `gorm:"type:varchar(255)"`
	Role  models.UserRole `gorm:"type:varchar(50);not null"`
}

func (r User) ToModel() userapimodels.UserView {
	return userapimodels.UserView{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		Role:      string(r.Role),
		RoleName:  r.Role.ToHuman(),
		CreatedAt: r.CreatedAt,
	}
}
