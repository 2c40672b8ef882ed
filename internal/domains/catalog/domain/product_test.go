package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEffectivePrice_FlooredIntegerDivision(t *testing.T) {
	cases := []struct {
		name     string
		price    int64
		discount int
		want     int64
	}{
		{"no discount", 1000, 0, 1000},
		{"full discount", 1000, 100, 0},
		{"half", 1000, 50, 500},
		{"floors the remainder", 999, 10, 899},
		{"small price floors to zero", 1, 50, 0},
		{"odd discount", 12345, 33, 8271},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EffectivePrice(tc.price, tc.discount)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestEffectivePrice_RejectsOutOfRangeInput(t *testing.T) {
	_, err := EffectivePrice(-1, 0)
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, err = EffectivePrice(100, -1)
	require.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = EffectivePrice(100, 101)
	require.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestNewProduct_DerivesCurrentPrice(t *testing.T) {
	product, err := NewProduct(0, "Keyboard", 150000, 20, "peripherals")
	require.NoError(t, err)
	require.Equal(t, int64(120000), product.CurrentPrice)
	require.Equal(t, "peripherals", product.Category)
}

func TestNewProduct_RequiresName(t *testing.T) {
	_, err := NewProduct(0, "  ", 100, 0, "")
	require.ErrorIs(t, err, ErrEmptyProductName)
}

func TestSetPricing_RecomputesCurrentPrice(t *testing.T) {
	product, err := NewProduct(0, "Mouse", 50000, 0, "")
	require.NoError(t, err)

	require.NoError(t, product.SetPricing(50000, 10))
	require.Equal(t, int64(45000), product.CurrentPrice)

	require.NoError(t, product.Reprice(60000))
	require.Equal(t, int64(54000), product.CurrentPrice)

	require.NoError(t, product.ApplyDiscount(0))
	require.Equal(t, int64(60000), product.CurrentPrice)
}

func TestSetPricing_KeepsStateOnInvalidInput(t *testing.T) {
	product, err := NewProduct(0, "Mouse", 50000, 10, "")
	require.NoError(t, err)

	require.ErrorIs(t, product.SetPricing(50000, 120), ErrInvalidDiscount)
	require.Equal(t, 10, product.Discount)
	require.Equal(t, int64(45000), product.CurrentPrice)
}
