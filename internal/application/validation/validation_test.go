package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lot-allocation-bff/internal/application/validation"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

func validLot() entity.LotInput {
	return entity.LotInput{
		ProductID:       1,
		WarehouseID:     2,
		LotNumber:       "L-001",
		CurrentQuantity: decimal.RequireFromString("10.5"),
		ReceivedDate:    "2025-02-01",
	}
}

func TestValidate_LoteValido(t *testing.T) {
	r := validation.Validate(validLot())
	require.True(t, r.OK())
	assert.NoError(t, r.Err())
	assert.Equal(t, "L-001", r.Value().LotNumber)
}

func TestValidate_CamposRequeridosYFechas(t *testing.T) {
	in := validLot()
	in.LotNumber = ""
	in.ReceivedDate = "2025/02/01"
	bad := "2025-13-40"
	in.ExpiryDate = &bad

	r := validation.Validate(in)
	require.False(t, r.OK())
	assert.Equal(t, entity.LotInput{}, r.Value(), "sin valor cuando falla")

	fields := map[string]string{}
	for _, is := range r.Issues() {
		fields[is.Field] = is.Tag
	}
	assert.Equal(t, "required", fields["lot_number"])
	assert.Equal(t, "isodate", fields["received_date"])
	assert.Equal(t, "isodate", fields["expiry_date"])

	assert.ErrorIs(t, r.Err(), domain.ErrInvalidInput)
}

func TestValidate_CantidadDecimalNoNegativa(t *testing.T) {
	in := validLot()
	in.CurrentQuantity = decimal.RequireFromString("-0.01")
	r := validation.Validate(in)
	require.False(t, r.OK())
	assert.Equal(t, "dgte", r.Issues()[0].Tag)
	assert.Equal(t, "current_quantity", r.Issues()[0].Field)
}

func TestValidate_ManualSuggestionCantidadPositiva(t *testing.T) {
	r := validation.Validate(entity.ManualSuggestionInput{OrderLineID: 1, LotID: 2, AllocatedQuantity: decimal.Zero})
	require.False(t, r.OK())
	assert.Equal(t, "dgt", r.Issues()[0].Tag)

	r = validation.Validate(entity.ManualSuggestionInput{OrderLineID: 1, LotID: 2, AllocatedQuantity: decimal.NewFromInt(3)})
	assert.True(t, r.OK())
}

func TestValidate_DiveEnAsignaciones(t *testing.T) {
	in := entity.CreateAllocationInput{Allocations: []entity.LotQuantity{
		{LotID: 1, Quantity: decimal.NewFromInt(1)},
		{LotID: 0, Quantity: decimal.NewFromInt(1)},
	}}
	r := validation.Validate(in)
	require.False(t, r.OK())
	assert.Equal(t, "allocations[1].lot_id", r.Issues()[0].Field)
}

func TestSlice_PrefijaIndice(t *testing.T) {
	items := []entity.BulkItem{{ID: 1, Version: 0}, {ID: 0, Version: 1}}
	r := validation.Slice(items)
	require.False(t, r.OK())
	assert.Equal(t, "[1].id", r.Issues()[0].Field)

	r = validation.Slice(items[:1])
	assert.True(t, r.OK())
	assert.Len(t, r.Value(), 1)
}
