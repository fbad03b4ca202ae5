package allocation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lot-allocation-bff/internal/application/allocation"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestState_LineaNuevaEsClean(t *testing.T) {
	s := allocation.NewState()
	assert.Equal(t, allocation.StatusClean, s.Status(10))
	assert.True(t, s.Total(10).IsZero())
}

func TestState_AssignPasaADraft(t *testing.T) {
	s := allocation.NewState()
	require.NoError(t, s.Assign(10, 1, d("3")))
	require.NoError(t, s.Assign(10, 2, d("2.5")))

	assert.Equal(t, allocation.StatusDraft, s.Status(10))
	assert.True(t, s.Total(10).Equal(d("5.5")))
	assert.Equal(t, allocation.StatusClean, s.Status(11), "otras líneas no cambian")
}

func TestState_CantidadCeroQuitaLote(t *testing.T) {
	s := allocation.NewState()
	require.NoError(t, s.Assign(10, 1, d("3")))
	require.NoError(t, s.Assign(10, 1, decimal.Zero))

	assert.Empty(t, s.Assignments(10))
	assert.Equal(t, allocation.StatusDraft, s.Status(10))
}

func TestState_CantidadNegativaRechazada(t *testing.T) {
	s := allocation.NewState()
	err := s.Assign(10, 1, d("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, allocation.StatusClean, s.Status(10))
}

func TestState_MarkCommittedSoloDesdeDraft(t *testing.T) {
	s := allocation.NewState()
	assert.ErrorIs(t, s.MarkCommitted(10), domain.ErrInvalidTransition)

	require.NoError(t, s.Assign(10, 1, d("1")))
	require.NoError(t, s.MarkCommitted(10))
	assert.Equal(t, allocation.StatusCommitted, s.Status(10))

	assert.ErrorIs(t, s.MarkCommitted(10), domain.ErrInvalidTransition)

	require.NoError(t, s.Assign(10, 1, d("2")))
	assert.Equal(t, allocation.StatusDraft, s.Status(10))
}

func TestState_ResetVuelveAClean(t *testing.T) {
	s := allocation.NewState()
	require.NoError(t, s.Assign(10, 1, d("1")))
	s.Reset(10)

	assert.Equal(t, allocation.StatusClean, s.Status(10))
	assert.Empty(t, s.Assignments(10))
}

func TestState_SobreasignacionEsAvisoSuave(t *testing.T) {
	s := allocation.NewState()
	require.NoError(t, s.Assign(10, 1, d("8")))
	assert.False(t, s.IsOverAllocated(10), "sin requerido conocido no hay aviso")

	s.SetRequired(10, d("10"))
	require.NoError(t, s.Assign(10, 2, d("3")))
	assert.True(t, s.IsOverAllocated(10))

	snap := s.Snapshot(10)
	assert.True(t, snap.OverAllocated)
	assert.Equal(t, allocation.OverAllocatedMessage, snap.Warning)
	assert.Equal(t, allocation.StatusDraft, snap.Status, "el aviso no bloquea la edición")
}

func TestState_SnapshotEsCopiaOrdenada(t *testing.T) {
	s := allocation.NewState()
	require.NoError(t, s.Assign(10, 3, d("1")))
	require.NoError(t, s.Assign(10, 1, d("2")))

	snap := s.Snapshot(10)
	require.Len(t, snap.Assignments, 2)
	assert.EqualValues(t, 1, snap.Assignments[0].LotID)
	assert.EqualValues(t, 3, snap.Assignments[1].LotID)

	m := s.Assignments(10)
	m[99] = d("100")
	assert.Len(t, s.Assignments(10), 2)
}
