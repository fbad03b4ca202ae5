package inventory

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CalculateAvailable calcula el disponible de un lote: actual − asignado − bloqueado, nunca negativo.
// Cada argumento puede ser string, número, decimal.Decimal o nil (nil y "" cuentan como cero).
// Un string mal formado devuelve ErrInvalidQuantity.
func CalculateAvailable(current, allocated, locked any) (decimal.Decimal, error) {
	c, err := ToDecimal(current)
	if err != nil {
		return decimal.Zero, fmt.Errorf("current: %w", err)
	}
	a, err := ToDecimal(allocated)
	if err != nil {
		return decimal.Zero, fmt.Errorf("allocated: %w", err)
	}
	l, err := ToDecimal(locked)
	if err != nil {
		return decimal.Zero, fmt.Errorf("locked: %w", err)
	}
	return Available(c, a, l), nil
}

// Available versión tipada de CalculateAvailable.
func Available(current, allocated, locked decimal.Decimal) decimal.Decimal {
	r := current.Sub(allocated).Sub(locked)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// LotAvailable disponible de un lote.
func LotAvailable(l entity.Lot) decimal.Decimal {
	return Available(l.CurrentQuantity, l.AllocatedQuantity, l.LockedQuantity)
}

// ToDecimal convierte un valor numérico arbitrario a decimal en base 10.
func ToDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return x, nil
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, nil
		}
		return *x, nil
	case decimal.NullDecimal:
		if !x.Valid {
			return decimal.Zero, nil
		}
		return x.Decimal, nil
	case string:
		return parseDecimalString(x)
	case *string:
		if x == nil {
			return decimal.Zero, nil
		}
		return parseDecimalString(*x)
	case json.Number:
		return parseDecimalString(x.String())
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt32(x), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case uint:
		return decimal.NewFromUint64(uint64(x)), nil
	case uint32:
		return decimal.NewFromUint64(uint64(x)), nil
	case uint64:
		return decimal.NewFromUint64(x), nil
	case float32:
		// Pasar por la representación corta evita arrastrar el error binario de float32.
		return parseDecimalString(fmt.Sprintf("%v", x))
	case float64:
		return decimal.NewFromFloat(x), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: tipo no soportado %T", domain.ErrInvalidQuantity, v)
	}
}

func parseDecimalString(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidQuantity, s)
	}
	return d, nil
}
