package employee

import (
	"encoding/json"
	"testing"

	apperrors "nexora-hcm/lib/utils/app-errors"
	testdb "nexora-hcm/lib/utils/test-db"
	"nexora-hcm/models"
	employeeapimodels "nexora-hcm/models/api/employee"
	dbmodels "nexora-hcm/models/db"

	"github.com/stretchr/testify/require"
)

func TestEmployeeHandler(t *testing.T) {
	t.Run(`create defaults`, func(t *testing.T) {
		h := NewHandler(testdb.New(t))
		rec, err := h.Create(employeeapimodels.EmployeeData{
			FirstName: " Olga ",
			LastName:  "Smirnova",
			Email:     "Olga@Corp.io",
			Salary:    15000000,
			HiredAt:   "01.03.2024",
		})
		require.Nil(t, err)
		require.Equal(t, "Olga", rec.FirstName)
		require.Equal(t, "olga@corp.io", *rec.Email)
		require.Equal(t, string(models.EmployeeWorkingStatus), rec.Status)
		require.Equal(t, 2024, rec.HiredAt.Year())
	})

	t.Run(`validation`, func(t *testing.T) {
		h := NewHandler(testdb.New(t))
		_, err := h.Create(employeeapimodels.EmployeeData{FirstName: "A"})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		_, err = h.Create(employeeapimodels.EmployeeData{FirstName: "A", LastName: "B", Status: "RETIRED"})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		_, err = h.Create(employeeapimodels.EmployeeData{FirstName: "A", LastName: "B", HiredAt: "2024-03-01"})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run(`partial update and lookup by user`, func(t *testing.T) {
		conn := testdb.New(t)
		h := NewHandler(conn)
		user := dbmodels.User{Email: "olga@corp.io", Role: models.UserRoleEmployee}
		require.Nil(t, conn.Create(&user).Error)
		rec, err := h.Create(employeeapimodels.EmployeeData{FirstName: "Olga", LastName: "Smirnova", Position: "HR"})
		require.Nil(t, err)

		found, err := h.GetByUserID(user.ID)
		require.Nil(t, err)
		require.Nil(t, found)

		var upd employeeapimodels.EmployeeUpdate
		require.Nil(t, json.Unmarshal([]byte(`{"user_id": 1, "status": "VACATION"}`), &upd))
		updated, err := h.Update(rec.ID, upd)
		require.Nil(t, err)
		require.Equal(t, "VACATION", updated.Status)
		require.Equal(t, "HR", updated.Position)
		require.Equal(t, user.ID, *updated.UserID)

		found, err = h.GetByUserID(user.ID)
		require.Nil(t, err)
		require.NotNil(t, found)
		require.Equal(t, rec.ID, found.ID)

		upd = employeeapimodels.EmployeeUpdate{}
		require.Nil(t, json.Unmarshal([]byte(`{"user_id": 404}`), &upd))
		_, err = h.Update(rec.ID, upd)
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		found, err = h.GetByUserID(user.ID)
		require.Nil(t, err)
		require.NotNil(t, found)

		_, err = h.Create(employeeapimodels.EmployeeData{FirstName: "Ivan", LastName: "Petrov", UserID: uintPtr(404)})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

		upd = employeeapimodels.EmployeeUpdate{}
		require.Nil(t, json.Unmarshal([]byte(`{"status": null}`), &upd))
		_, err = h.Update(rec.ID, upd)
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run(`list and delete`, func(t *testing.T) {
		h := NewHandler(testdb.New(t))
		_, err := h.Create(employeeapimodels.EmployeeData{FirstName: "Boris", LastName: "Yakovlev"})
		require.Nil(t, err)
		second, err := h.Create(employeeapimodels.EmployeeData{FirstName: "Anna", LastName: "Alekseeva"})
		require.Nil(t, err)

		list, err := h.List()
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Alekseeva", list[0].LastName)

		require.Nil(t, h.Delete(second.ID))
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(h.Delete(second.ID)))
		_, err = h.Get(second.ID)
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})
}

func uintPtr(value uint) *uint {
	return &value
}
