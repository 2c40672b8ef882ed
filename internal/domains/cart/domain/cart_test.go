package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApply_AbsentProductInsertsForIncreaseAndDecrease(t *testing.T) {
	for _, action := range []UpdateAction{ActionIncrease, ActionDecrease} {
		t.Run(string(action), func(t *testing.T) {
			cart := NewCart()
			require.NoError(t, cart.Apply(action, 7, 3))
			require.Equal(t, int64(3), cart.Quantity(7))
		})
	}
}

func TestApply_RemoveAbsentProductIsNoOp(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Apply(ActionRemove, 7, 1))
	require.Empty(t, cart.Items)
}

func TestApply_IncreaseAccumulates(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Apply(ActionIncrease, 7, 2))
	require.NoError(t, cart.Apply(ActionIncrease, 7, 5))
	require.Equal(t, int64(7), cart.Quantity(7))
	require.Len(t, cart.Items, 1)
}

func TestApply_DecreaseClampsAndRemoves(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Apply(ActionIncrease, 7, 2))
	require.NoError(t, cart.Apply(ActionDecrease, 7, 5))
	require.Zero(t, cart.Quantity(7))
	require.Empty(t, cart.Items)
}

func TestApply_DecreasePartial(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Apply(ActionIncrease, 7, 5))
	require.NoError(t, cart.Apply(ActionDecrease, 7, 2))
	require.Equal(t, int64(3), cart.Quantity(7))
}

func TestApply_RemoveDropsOnlyTargetLine(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Apply(ActionIncrease, 7, 1))
	require.NoError(t, cart.Apply(ActionIncrease, 8, 2))
	require.NoError(t, cart.Apply(ActionRemove, 7, 0))
	require.Zero(t, cart.Quantity(7))
	require.Equal(t, int64(2), cart.Quantity(8))
}

func TestApply_RejectsNonPositiveQuantity(t *testing.T) {
	cart := NewCart()
	require.ErrorIs(t, cart.Apply(ActionIncrease, 7, 0), ErrInvalidQuantity)

	require.NoError(t, cart.Apply(ActionIncrease, 7, 1))
	require.ErrorIs(t, cart.Apply(ActionDecrease, 7, -1), ErrInvalidQuantity)
}

func TestParseAction(t *testing.T) {
	for _, raw := range []string{"INCREASE", "DECREASE", "REMOVE"} {
		action, err := ParseAction(raw)
		require.NoError(t, err)
		require.Equal(t, UpdateAction(raw), action)
	}
	_, err := ParseAction("increase")
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestClear(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Apply(ActionIncrease, 7, 1))
	require.NoError(t, cart.Apply(ActionIncrease, 8, 1))
	cart.Clear()
	require.Empty(t, cart.Items)
}
