package users

import (
	"testing"

	apperrors "nexora-hcm/lib/utils/app-errors"
	testdb "nexora-hcm/lib/utils/test-db"
	"nexora-hcm/models"
	userapimodels "nexora-hcm/models/api/user"
	dbmodels "nexora-hcm/models/db"

	"github.com/stretchr/testify/require"
)

func TestUsersHandler(t *testing.T) {
	t.Run(`create with default role`, func(t *testing.T) {
		h := NewHandler(testdb.New(t))
		rec, err := h.Create(userapimodels.UserData{Email: " Olga@Corp.IO ", Name: "Olga"})
		require.Nil(t, err)
		require.Equal(t, "olga@corp.io", rec.Email)
		require.Equal(t, string(models.UserRoleEmployee), rec.Role)

		got, err := h.Get(rec.ID)
		require.Nil(t, err)
		require.Equal(t, rec.Email, got.Email)
	})

	t.Run(`duplicate email is a conflict`, func(t *testing.T) {
		conn := testdb.New(t)
		h := NewHandler(conn)
		_, err := h.Create(userapimodels.UserData{Email: "admin@corp.io", Role: models.UserRoleAdmin})
		require.Nil(t, err)

		_, err = h.Create(userapimodels.UserData{Email: "ADMIN@corp.io"})
		require.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

		_, err = h.Create(userapimodels.UserData{Email: "Boss <ADMIN@corp.io>"})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

		require.Nil(t, conn.Create(&dbmodels.User{Email: "Legacy@Corp.io", Role: models.UserRoleEmployee}).Error)
		_, err = h.Create(userapimodels.UserData{Email: "legacy@corp.io"})
		require.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

		list, err := h.List()
		require.Nil(t, err)
		require.Len(t, list, 2)
	})

	t.Run(`validation`, func(t *testing.T) {
		h := NewHandler(testdb.New(t))
		_, err := h.Create(userapimodels.UserData{Email: "  "})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		_, err = h.Create(userapimodels.UserData{Email: "not-an-email"})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		_, err = h.Create(userapimodels.UserData{Email: "<boss@corp.io>"})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		_, err = h.Create(userapimodels.UserData{Email: "a@corp.io", Role: "ROOT"})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run(`delete`, func(t *testing.T) {
		h := NewHandler(testdb.New(t))
		rec, err := h.Create(userapimodels.UserData{Email: "gone@corp.io"})
		require.Nil(t, err)
		require.Nil(t, h.Delete(rec.ID))
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(h.Delete(rec.ID)))
		_, err = h.Get(rec.ID)
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})
}
