package inventory_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/inventory"
)

func TestCalculateAvailable_CasosBasicos(t *testing.T) {
	cases := []struct {
		name                       string
		current, allocated, locked any
		want                       string
	}{
		{"enteros", 100, 30, 10, "60"},
		{"sobreasignado queda en cero", 50, 60, 0, "0"},
		{"strings decimales", "10.5", "0.25", "0.25", "10"},
		{"nil cuenta como cero", "7", nil, nil, "7"},
		{"string vacío cuenta como cero", "", "", "", "0"},
		{"json.Number", json.Number("3.3"), json.Number("1.1"), 0, "2.2"},
		{"decimal", decimal.RequireFromString("1.000000000000000000001"), "0.000000000000000000001", nil, "1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := inventory.CalculateAvailable(tc.current, tc.allocated, tc.locked)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "esperado %s, obtenido %s", tc.want, got)
		})
	}
}

// Sin error binario: 0.3 − 0.1 − 0.2 debe dar exactamente 0.
func TestCalculateAvailable_SinErrorDeComaFlotante(t *testing.T) {
	got, err := inventory.CalculateAvailable("0.3", "0.1", "0.2")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = inventory.CalculateAvailable(0.3, 0.1, 0)
	require.NoError(t, err)
	assert.Equal(t, "0.2", got.String())
}

func TestCalculateAvailable_NuncaNegativo(t *testing.T) {
	triples := [][3]string{
		{"0", "0.0001", "0"},
		{"10", "5", "5.0001"},
		{"99999999999999999999.99", "99999999999999999999.99", "0.01"},
		{"1", "1000", "1000"},
	}
	for _, tr := range triples {
		got, err := inventory.CalculateAvailable(tr[0], tr[1], tr[2])
		require.NoError(t, err)
		assert.True(t, got.IsZero(), "allocated+locked > current debe dar 0: %v", tr)
	}
}

func TestCalculateAvailable_StringMalFormado(t *testing.T) {
	_, err := inventory.CalculateAvailable("abc", 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = inventory.CalculateAvailable(1, struct{}{}, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestLotAvailable(t *testing.T) {
	lot := entity.Lot{
		CurrentQuantity:   decimal.NewFromInt(100),
		AllocatedQuantity: decimal.NewFromInt(30),
		LockedQuantity:    decimal.NewFromInt(10),
	}
	assert.Equal(t, "60", inventory.LotAvailable(lot).String())
}
