package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeliveryStatus(t *testing.T) {
	cases := []struct {
		in   string
		want DeliveryStatus
		err  error
	}{
		{"Waiting for your order to accept", StatusAwaitingAcceptance, nil},
		{"Order Placed", StatusOrderPlaced, nil},
		{"order placed", StatusOrderPlaced, nil},
		{"Processing Your Order", StatusProcessing, nil},
		{"Your Order is Ready", StatusReady, nil},
		// legacy spellings from older app builds
		{"Order Ready", StatusReady, nil},
		{"Ready for Pickup", StatusReady, nil},
		{"  Delivered  ", StatusDelivered, nil},
		{"Cancelled", StatusCancelled, nil},
		{"Shipped", "", ErrInvalidDeliveryStatus},
		{"", "", ErrInvalidDeliveryStatus},
	}
	for _, tc := range cases {
		got, err := ParseDeliveryStatus(tc.in)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, tc.in)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParsePaymentStatus(t *testing.T) {
	got, err := ParsePaymentStatus("paid")
	assert.NoError(t, err)
	assert.Equal(t, PaymentPaid, got)

	got, err = ParsePaymentStatus("Pending")
	assert.NoError(t, err)
	assert.Equal(t, PaymentPending, got)

	_, err = ParsePaymentStatus("refunded")
	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)
}

func TestTerminalAndInFlight(t *testing.T) {
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusProcessing.Terminal())

	assert.True(t, StatusProcessing.InFlight())
	assert.True(t, StatusReady.InFlight())
	assert.False(t, StatusOrderPlaced.InFlight())
	assert.False(t, StatusDelivered.InFlight())
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from DeliveryStatus
		to   DeliveryStatus
		want bool
	}{
		{"forward one step", StatusOrderPlaced, StatusProcessing, true},
		{"forward skipping a step", StatusOrderPlaced, StatusReady, true},
		{"placed straight to delivered", StatusOrderPlaced, StatusDelivered, true},
		{"re-apply current status", StatusProcessing, StatusProcessing, true},
		{"backwards", StatusReady, StatusProcessing, false},
		{"backwards to placed", StatusDelivered, StatusOrderPlaced, false},
		{"cancel in-flight", StatusProcessing, StatusCancelled, true},
		{"cancel awaiting acceptance", StatusAwaitingAcceptance, StatusCancelled, true},
		{"cancel delivered", StatusDelivered, StatusCancelled, false},
		{"cancel cancelled", StatusCancelled, StatusCancelled, false},
		{"out of cancelled", StatusCancelled, StatusProcessing, false},
		{"out of delivered", StatusDelivered, StatusProcessing, false},
		{"unknown from", DeliveryStatus("Shipped"), StatusProcessing, false},
		{"unknown to", StatusProcessing, DeliveryStatus("Shipped"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}
