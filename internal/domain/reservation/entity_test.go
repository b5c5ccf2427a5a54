//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"medilocate/internal/domain/reservation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact(t *testing.T) reservation.Contact {
	t.Helper()
	c, err := reservation.NewContact("Asha Patel", "+91 98765 43210", nil)
	require.NoError(t, err)
	return c
}

func TestNewContact(t *testing.T) {
	email := "asha@example.com"
	blank := "   "
	bad := "not-an-email"

	cases := []struct {
		name  string
		cname string
		phone string
		email *string
		errIs error
	}{
		{name: "valid without email", cname: "Asha Patel", phone: "9876543210"},
		{name: "valid with email", cname: "Asha Patel", phone: "9876543210", email: &email},
		{name: "blank email treated as absent", cname: "Asha Patel", phone: "9876543210", email: &blank},
		{name: "phone with separators counts digits only", cname: "Asha Patel", phone: "+91 98765-43210"},
		{name: "empty name", cname: "  ", phone: "9876543210", errIs: reservation.ErrEmptyCustomerName},
		{name: "phone too short", cname: "Asha Patel", phone: "12345", errIs: reservation.ErrInvalidPhone},
		{name: "nine digits is not enough", cname: "Asha Patel", phone: "123456789", errIs: reservation.ErrInvalidPhone},
		{name: "malformed email", cname: "Asha Patel", phone: "9876543210", email: &bad, errIs: reservation.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := reservation.NewContact(tc.cname, tc.phone, tc.email)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, c.Name())
		})
	}
}

func TestNewReservation(t *testing.T) {
	contact := validContact(t)
	unitPrice := decimal.RequireFromString("45.50")
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

	t.Run("starts pending with computed total", func(t *testing.T) {
		r, err := reservation.NewReservation(contact, 1, 2, 5, unitPrice, now, reservation.NewNote(""))
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.True(t, r.IsPending())
		assert.Equal(t, now, r.ReservationDate())
		assert.True(t, r.TotalPrice().Equal(decimal.RequireFromString("227.50")),
			"total should be unit price x quantity, got %s", r.TotalPrice())
	})

	t.Run("total is rounded to two decimals", func(t *testing.T) {
		r, err := reservation.NewReservation(contact, 1, 2, 3, decimal.RequireFromString("10.333"), now, reservation.NewNote(""))
		require.NoError(t, err)
		assert.True(t, r.TotalPrice().Equal(decimal.RequireFromString("31.00")))
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		_, err := reservation.NewReservation(contact, 1, 2, 0, unitPrice, now, reservation.NewNote(""))
		require.ErrorIs(t, err, reservation.ErrInvalidQuantity)
	})

	t.Run("negative unit price is rejected", func(t *testing.T) {
		_, err := reservation.NewReservation(contact, 1, 2, 1, decimal.NewFromInt(-1), now, reservation.NewNote(""))
		require.ErrorIs(t, err, reservation.ErrNegativePrice)
	})
}

func TestStatusIsValid(t *testing.T) {
	valid := []reservation.Status{
		reservation.StatusPending,
		reservation.StatusConfirmed,
		reservation.StatusReadyForPickup,
		reservation.StatusCompleted,
		reservation.StatusCancelled,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}

	for _, s := range []reservation.Status{"", "canceled", "PENDING", "done"} {
		assert.False(t, s.IsValid(), "expected %q to be invalid", s)
	}
}
