//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"slotbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid customer", func(t *testing.T) {
		c, err := booking.NewCustomer("  Jane Doe ", "+84 912 345 678", " first visit ")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", c.Name())
		assert.Equal(t, "+84 912 345 678", c.Phone())
		assert.Equal(t, "first visit", c.Notes())
	})

	t.Run("empty notes are allowed", func(t *testing.T) {
		_, err := booking.NewCustomer("Jane Doe", "0912345678", "")
		assert.NoError(t, err)
	})

	tests := []struct {
		name  string
		cname string
		phone string
		notes string
		errIs error
	}{
		{name: "empty name", cname: "   ", phone: "0912345678", errIs: booking.ErrEmptyCustomerName},
		{name: "name too long", cname: strings.Repeat("a", booking.MaxNameLength+1), phone: "0912345678", errIs: booking.ErrCustomerNameTooLong},
		{name: "empty phone", cname: "Jane", phone: "", errIs: booking.ErrInvalidPhoneNumber},
		{name: "phone with letters", cname: "Jane", phone: "09abc45678", errIs: booking.ErrInvalidPhoneNumber},
		{name: "phone too short", cname: "Jane", phone: "12345", errIs: booking.ErrInvalidPhoneNumber},
		{name: "notes too long", cname: "Jane", phone: "0912345678", notes: strings.Repeat("n", booking.MaxNotesLength+1), errIs: booking.ErrNotesTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := booking.NewCustomer(tt.cname, tt.phone, tt.notes)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}
