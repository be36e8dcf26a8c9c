package users

import (
	userstore "nexora-hcm/lib/users/store"
	apperrors "nexora-hcm/lib/utils/app-errors"
	"nexora-hcm/models"
	userapimodels "nexora-hcm/models/api/user"
	dbmodels "nexora-hcm/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data userapimodels.UserData) (userapimodels.UserView, error)
	List() ([]userapimodels.UserView, error)
	Get(id uint) (userapimodels.UserView, error)
	Delete(id uint) error
}

func NewHandler(conn *gorm.DB) Provider {
	return impl{
		store: userstore.NewInstance(conn),
	}
}

type impl struct {
	store userstore.Provider
}

func (i impl) Create(data userapimodels.UserData) (userapimodels.UserView, error) {
	if err := data.Validate(); err != nil {
		return userapimodels.UserView{}, apperrors.NewValidation(err.Error())
	}
	email := strings.ToLower(strings.TrimSpace(data.Email))
	logger := log.WithField("email", email)
	exist, err := i.store.ExistByEmail(email)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки почты пользователя")
		return userapimodels.UserView{}, apperrors.NewInternal("ошибка создания пользователя")
	}
	if exist {
		return userapimodels.UserView{}, apperrors.NewConflict("пользователь с такой почтой уже существует")
	}
	role := data.Role
	if role == "" {
		role = models.UserRoleEmployee
	}
	rec := dbmodels.User{
		Email: email,
		Name:  strings.TrimSpace(data.Name),
		Role:  role,
	}
	created, err := i.store.Create(rec)
	if err != nil {
		// параллельное создание с той же почтой ловит уникальный индекс
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return userapimodels.UserView{}, apperrors.NewConflict("пользователь с такой почтой уже существует")
		}
		logger.WithError(err).Error("ошибка создания пользователя")
		return userapimodels.UserView{}, apperrors.NewInternal("ошибка создания пользователя")
	}
	return created.ToModel(), nil
}

func (i impl) List() ([]userapimodels.UserView, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка пользователей")
		return nil, apperrors.NewInternal("ошибка получения списка пользователей")
	}
	result := make([]userapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) Get(id uint) (userapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("user_id", id).WithError(err).Error("ошибка получения пользователя")
		return userapimodels.UserView{}, apperrors.NewInternal("ошибка получения пользователя")
	}
	if rec == nil {
		return userapimodels.UserView{}, apperrors.NewNotFound("пользователь не найден")
	}
	return rec.ToModel(), nil
}

func (i impl) Delete(id uint) error {
	err := i.store.Delete(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("пользователь не найден")
		}
		log.WithField("user_id", id).WithError(err).Error("ошибка удаления пользователя")
		return apperrors.NewInternal("ошибка удаления пользователя")
	}
	return nil
}
