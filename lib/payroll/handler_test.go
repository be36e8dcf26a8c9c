package payroll

import (
	"testing"

	apperrors "nexora-hcm/lib/utils/app-errors"
	testdb "nexora-hcm/lib/utils/test-db"
	payrollapimodels "nexora-hcm/models/api/payroll"
	dbmodels "nexora-hcm/models/db"

	"github.com/stretchr/testify/require"
)

func TestPayrollHandler(t *testing.T) {
	t.Run(`create computes net and rejects duplicates`, func(t *testing.T) {
		conn := testdb.New(t)
		employee := dbmodels.Employee{FirstName: "Olga", LastName: "Smirnova", Status: "WORKING"}
		require.Nil(t, conn.Create(&employee).Error)
		h := NewHandler(conn)

		rec, err := h.Create(payrollapimodels.PayrollData{EmployeeID: employee.ID, Period: "2026-08", Gross: 10000000, Deductions: 1300000})
		require.Nil(t, err)
		require.Equal(t, int64(8700000), rec.Net)
		require.Nil(t, rec.PaidAt)

		_, err = h.Create(payrollapimodels.PayrollData{EmployeeID: employee.ID, Period: "2026-08", Gross: 1})
		require.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

		_, err = h.Create(payrollapimodels.PayrollData{EmployeeID: employee.ID, Period: " 2026-09 ", Gross: 10000000})
		require.Nil(t, err)
		_, err = h.Create(payrollapimodels.PayrollData{EmployeeID: employee.ID, Period: "2026-07", Gross: 10000000})
		require.Nil(t, err)

		list, err := h.ListByEmployee(employee.ID)
		require.Nil(t, err)
		require.Len(t, list, 3)
		require.Equal(t, "2026-09", list[0].Period)
		require.Equal(t, "2026-07", list[2].Period)
	})

	t.Run(`validation`, func(t *testing.T) {
		h := NewHandler(testdb.New(t))
		for _, data := range []payrollapimodels.PayrollData{
			{EmployeeID: 0, Period: "2026-08"},
			{EmployeeID: 1, Period: "08.2026"},
			{EmployeeID: 1, Period: "2026-13"},
			{EmployeeID: 1, Period: "2026-08", Gross: -1},
			{EmployeeID: 1, Period: "2026-08", Gross: 5, Deductions: 6},
		} {
			_, err := h.Create(data)
			require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err), data)
		}
		_, err := h.Create(payrollapimodels.PayrollData{EmployeeID: 77, Period: "2026-08", Gross: 1})
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run(`mark paid`, func(t *testing.T) {
		conn := testdb.New(t)
		employee := dbmodels.Employee{FirstName: "Ivan", LastName: "Petrov", Status: "WORKING"}
		require.Nil(t, conn.Create(&employee).Error)
		h := NewHandler(conn)
		rec, err := h.Create(payrollapimodels.PayrollData{EmployeeID: employee.ID, Period: "2026-08", Gross: 100})
		require.Nil(t, err)

		paid, err := h.MarkPaid(rec.ID)
		require.Nil(t, err)
		require.NotNil(t, paid.PaidAt)

		again, err := h.MarkPaid(rec.ID)
		require.Nil(t, err)
		require.True(t, paid.PaidAt.Equal(*again.PaidAt))

		_, err = h.MarkPaid(999)
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
		require.Nil(t, h.Delete(rec.ID))
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(h.Delete(rec.ID)))
	})
}
