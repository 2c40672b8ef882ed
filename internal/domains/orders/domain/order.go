package domain

import (
	"errors"
	"strings"
	"time"
)

// Status enumerates order progression.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusPaid       Status = "PAID"
	StatusCancelled  Status = "CANCELLED"
	StatusConfirmed  Status = "CONFIRMED"
	StatusRefunded   Status = "REFUNDED"
	StatusDelivering Status = "DELIVERING"
	StatusDelivered  Status = "DELIVERED"
)

// PaymentMethod is a stored tag only; no payment processing happens here.
type PaymentMethod string

const (
	PaymentCOD   PaymentMethod = "cod"
	PaymentVNPay PaymentMethod = "vnpay"
)

var (
	ErrInvalidStatus        = errors.New("order status is invalid")
	ErrIllegalTransition    = errors.New("illegal order status transition")
	ErrInvalidPayment       = errors.New("payment method must be cod or vnpay")
	ErrIncompleteShipping   = errors.New("shipping detail is missing required fields")
	ErrInvalidShippingPhone = errors.New("shipping phone is required")
)

// ParseStatus validates a raw status value.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusPaid, StatusCancelled, StatusConfirmed,
		StatusRefunded, StatusDelivering, StatusDelivered:
		return Status(raw), nil
	default:
		return "", ErrInvalidStatus
	}
}

// ParsePaymentMethod validates a raw payment method tag.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch PaymentMethod(raw) {
	case PaymentCOD, PaymentVNPay:
		return PaymentMethod(raw), nil
	default:
		return "", ErrInvalidPayment
	}
}

// transitions is the order lifecycle state machine. CANCELLED, REFUNDED, and
// DELIVERED are terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusPaid, StatusCancelled},
	StatusPaid:       {StatusConfirmed, StatusRefunded},
	StatusConfirmed:  {StatusDelivering},
	StatusDelivering: {StatusDelivered},
}

// CanTransition reports whether from→to is a legal lifecycle step.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SnapshotItem is one line item frozen into an order at creation time.
// UnitPrice captures the product's effective price at that moment, so later
// catalog changes never alter a historical order's valuation.
type SnapshotItem struct {
	ProductID int64
	Quantity  int64
	UnitPrice int64
}

// ShippingDetail is the structured delivery address attached to an order.
type ShippingDetail struct {
	Address  string
	Province string
	District string
	Ward     string
	Name     string
	Phone    string
	Email    string
}

// Validate enforces the required shipping fields. Email stays optional.
func (d ShippingDetail) Validate() error {
	if strings.TrimSpace(d.Phone) == "" {
		return ErrInvalidShippingPhone
	}
	required := []string{d.Address, d.Province, d.District, d.Ward, d.Name}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrIncompleteShipping
		}
	}
	return nil
}

// Order is an immutable snapshot of a cart plus lifecycle state. After
// creation only Status and the lifecycle timestamps ever change.
type Order struct {
	ID           int64
	CartID       int64
	Items        []SnapshotItem
	Status       Status
	Shipping     ShippingDetail
	Payment      PaymentMethod
	Note         string
	OrderTime    time.Time
	ConfirmTime  *time.Time
	DeliveryTime *time.Time
	SuccessTime  *time.Time
}

// NewOrder snapshots cart line items into a pending order.
func NewOrder(cartID int64, items []SnapshotItem, shipping ShippingDetail, payment PaymentMethod, note string, orderTime time.Time) (*Order, error) {
	if err := shipping.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParsePaymentMethod(string(payment)); err != nil {
		return nil, err
	}
	return &Order{
		CartID:    cartID,
		Items:     append([]SnapshotItem{}, items...),
		Status:    StatusPending,
		Shipping:  shipping,
		Payment:   payment,
		Note:      note,
		OrderTime: orderTime,
	}, nil
}

// Advance moves the order to the target status when the step is legal,
// stamping the matching lifecycle timestamp.
func (o *Order) Advance(target Status, now time.Time) error {
	if _, err := ParseStatus(string(target)); err != nil {
		return err
	}
	if !CanTransition(o.Status, target) {
		return ErrIllegalTransition
	}
	o.Status = target
	switch target {
	case StatusConfirmed:
		o.ConfirmTime = &now
	case StatusDelivering:
		o.DeliveryTime = &now
	case StatusDelivered:
		o.SuccessTime = &now
	}
	return nil
}

// Total sums quantity times frozen unit price across the snapshot.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Quantity * item.UnitPrice
	}
	return total
}
