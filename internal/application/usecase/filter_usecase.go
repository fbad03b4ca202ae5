package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/lot-allocation-bff/internal/application/dto"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/inventory"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/repository"
)

// FilterUseCase selects encadenados producto/proveedor/almacén con selección persistida por usuario.
type FilterUseCase struct {
	lots  *LotUseCase
	store repository.PreferenceStore
}

// NewFilterUseCase construye el caso de uso.
func NewFilterUseCase(lots *LotUseCase, store repository.PreferenceStore) *FilterUseCase {
	return &FilterUseCase{lots: lots, store: store}
}

func filterKey(userID string) string { return "filters:" + userID }

// Current selección guardada del usuario con sus opciones.
func (uc *FilterUseCase) Current(ctx context.Context, userID string) (*dto.FilterStateResponse, error) {
	sel, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	opts, err := uc.options(ctx, sel)
	if err != nil {
		return nil, err
	}
	return &dto.FilterStateResponse{Selection: sel, Options: opts}, nil
}

// Resolve aplica el cambio de un select, limpia dependientes inválidos y persiste.
func (uc *FilterUseCase) Resolve(ctx context.Context, userID string, req dto.ResolveFilterRequest) (*dto.ResolveFilterResponse, error) {
	field, err := inventory.ParseFilterField(req.LastTouched)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	opts, err := uc.options(ctx, req.Filters)
	if err != nil {
		return nil, err
	}
	patch := inventory.GetDependentFilterUpdates(field, req.Filters, opts)
	sel := patch.Apply(req.Filters)
	if len(patch) > 0 {
		if opts, err = uc.options(ctx, sel); err != nil {
			return nil, err
		}
	}
	if err := uc.save(ctx, userID, sel); err != nil {
		return nil, err
	}
	return &dto.ResolveFilterResponse{
		Patch:               patch,
		FilterStateResponse: dto.FilterStateResponse{Selection: sel, Options: opts},
	}, nil
}

func (uc *FilterUseCase) options(ctx context.Context, sel inventory.FilterSelection) (inventory.FilterOptions, error) {
	lots, err := uc.lots.Lots(ctx, entity.LotFilter{WithStock: true})
	if err != nil {
		return inventory.FilterOptions{}, err
	}
	return inventory.OptionsFromLots(lots, sel), nil
}

func (uc *FilterUseCase) load(ctx context.Context, userID string) (inventory.FilterSelection, error) {
	var sel inventory.FilterSelection
	raw, ok, err := uc.store.Load(ctx, filterKey(userID))
	if err != nil || !ok {
		return sel, err
	}
	if err := json.Unmarshal(raw, &sel); err != nil {
		// Preferencia corrupta: se empieza sin selección.
		return inventory.FilterSelection{}, nil
	}
	return sel, nil
}

func (uc *FilterUseCase) save(ctx context.Context, userID string, sel inventory.FilterSelection) error {
	raw, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	return uc.store.Save(ctx, filterKey(userID), raw)
}
