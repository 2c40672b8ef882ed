package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validShipping() ShippingDetail {
	return ShippingDetail{
		Address:  "12 Nguyen Trai",
		Province: "Ha Noi",
		District: "Thanh Xuan",
		Ward:     "Khuong Trung",
		Name:     "Nguyen Van A",
		Phone:    "0912345678",
	}
}

func TestNewOrder_StartsPending(t *testing.T) {
	now := time.Now().UTC()
	order, err := NewOrder(5, []SnapshotItem{{ProductID: 1, Quantity: 2, UnitPrice: 100}}, validShipping(), PaymentCOD, "leave at door", now)
	require.NoError(t, err)
	require.Equal(t, StatusPending, order.Status)
	require.Equal(t, now, order.OrderTime)
	require.Nil(t, order.ConfirmTime)
	require.Equal(t, int64(200), order.Total())
}

func TestNewOrder_EmptySnapshotAllowed(t *testing.T) {
	order, err := NewOrder(5, nil, validShipping(), PaymentVNPay, "", time.Now().UTC())
	require.NoError(t, err)
	require.Empty(t, order.Items)
	require.Zero(t, order.Total())
}

func TestNewOrder_RejectsIncompleteShipping(t *testing.T) {
	shipping := validShipping()
	shipping.Ward = ""
	_, err := NewOrder(5, nil, shipping, PaymentCOD, "", time.Now().UTC())
	require.ErrorIs(t, err, ErrIncompleteShipping)

	shipping = validShipping()
	shipping.Phone = "  "
	_, err = NewOrder(5, nil, shipping, PaymentCOD, "", time.Now().UTC())
	require.ErrorIs(t, err, ErrInvalidShippingPhone)
}

func TestNewOrder_RejectsUnknownPayment(t *testing.T) {
	_, err := NewOrder(5, nil, validShipping(), PaymentMethod("paypal"), "", time.Now().UTC())
	require.ErrorIs(t, err, ErrInvalidPayment)
}

func TestShippingDetail_EmailOptional(t *testing.T) {
	shipping := validShipping()
	require.NoError(t, shipping.Validate())
	shipping.Email = "a@example.com"
	require.NoError(t, shipping.Validate())
}

func TestAdvance_HappyPathStampsTimestamps(t *testing.T) {
	order, err := NewOrder(5, nil, validShipping(), PaymentCOD, "", time.Now().UTC())
	require.NoError(t, err)

	steps := []struct {
		target Status
		stamp  func() *time.Time
	}{
		{StatusPaid, func() *time.Time { return nil }},
		{StatusConfirmed, func() *time.Time { return order.ConfirmTime }},
		{StatusDelivering, func() *time.Time { return order.DeliveryTime }},
		{StatusDelivered, func() *time.Time { return order.SuccessTime }},
	}
	for _, step := range steps {
		now := time.Now().UTC()
		require.NoError(t, order.Advance(step.target, now))
		require.Equal(t, step.target, order.Status)
		if stamped := step.stamp(); stamped != nil {
			require.Equal(t, now, *stamped)
		}
	}
}

func TestAdvance_IllegalTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
	}{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusDelivered},
		{StatusPaid, StatusDelivering},
		{StatusCancelled, StatusPaid},
		{StatusRefunded, StatusConfirmed},
		{StatusDelivered, StatusDelivering},
		{StatusDelivering, StatusPaid},
	}
	for _, tc := range cases {
		order, err := NewOrder(5, nil, validShipping(), PaymentCOD, "", time.Now().UTC())
		require.NoError(t, err)
		order.Status = tc.from
		err = order.Advance(tc.to, time.Now().UTC())
		require.ErrorIs(t, err, ErrIllegalTransition, "from %s to %s", tc.from, tc.to)
		require.Equal(t, tc.from, order.Status)
	}
}

func TestAdvance_CancellationAndRefund(t *testing.T) {
	order, err := NewOrder(5, nil, validShipping(), PaymentCOD, "", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, order.Advance(StatusCancelled, time.Now().UTC()))
	require.Equal(t, StatusCancelled, order.Status)

	order, err = NewOrder(5, nil, validShipping(), PaymentCOD, "", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, order.Advance(StatusPaid, time.Now().UTC()))
	require.NoError(t, order.Advance(StatusRefunded, time.Now().UTC()))
	require.Equal(t, StatusRefunded, order.Status)
}

func TestAdvance_RejectsUnknownStatus(t *testing.T) {
	order, err := NewOrder(5, nil, validShipping(), PaymentCOD, "", time.Now().UTC())
	require.NoError(t, err)
	require.ErrorIs(t, order.Advance(Status("SHIPPED"), time.Now().UTC()), ErrInvalidStatus)
}

func TestParsePaymentMethod(t *testing.T) {
	for _, raw := range []string{"cod", "vnpay"} {
		method, err := ParsePaymentMethod(raw)
		require.NoError(t, err)
		require.Equal(t, PaymentMethod(raw), method)
	}
	_, err := ParsePaymentMethod("COD")
	require.ErrorIs(t, err, ErrInvalidPayment)
}
