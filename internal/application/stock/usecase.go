// Package stock contiene el caso de uso del inventario en memoria: alta de ítems,
// ajustes de cantidad por variante, edición y consultas derivadas.
package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
	domstock "github.com/jhoicas/stock-api/internal/domain/stock"
	"github.com/jhoicas/stock-api/pkg/logger"
	"github.com/rs/zerolog"
)

// StoreUseCase es el dueño exclusivo de la lista de ítems. Toda mutación pasa por aquí
// y se ejecuta dentro de TxRunner.Run; los llamadores reciben copias.
type StoreUseCase struct {
	tx    TxRunner
	log   *logger.Logger
	now   func() time.Time
	newID func() (string, error)
}

// Option personaliza el caso de uso (reloj y generador de IDs en tests).
type Option func(*StoreUseCase)

// WithClock reemplaza time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *StoreUseCase) { uc.now = now }
}

// WithIDGenerator reemplaza el generador de IDs.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(uc *StoreUseCase) { uc.newID = gen }
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(tx TxRunner, log *logger.Logger, opts ...Option) *StoreUseCase {
	uc := &StoreUseCase{
		tx:    tx,
		log:   log,
		now:   time.Now,
		newID: newItemID,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// newItemID UUIDv7: 128 bits, ordenado por tiempo.
func newItemID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generar id: %w", err)
	}
	return id.String(), nil
}

// AddItem valida el borrador, verifica duplicados contra los ítems actuales y lo agrega al final.
func (uc *StoreUseCase) AddItem(ctx context.Context, draft entity.ItemDraft) (*entity.StockItem, error) {
	if err := domstock.ValidateDraft(draft); err != nil {
		return nil, err
	}
	var created *entity.StockItem
	err := uc.tx.Run(ctx, func(repo repository.StockItemRepository) error {
		items, err := repo.List()
		if err != nil {
			return err
		}
		if err := domstock.CheckDraft(draft, items); err != nil {
			return err
		}
		id, err := uc.newID()
		if err != nil {
			return err
		}
		now := uc.now()
		item := &entity.StockItem{
			ID:          id,
			Name:        strings.TrimSpace(draft.Name),
			Price:       draft.Price,
			Description: draft.Description,
			Variants:    entity.ToVariants(draft.Variants),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repo.Append(item); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		uc.logRejection("add", "", err)
		return nil, err
	}
	uc.log.Info().
		Str("item_id", created.ID).
		Str("name", created.Name).
		Int("variants", len(created.Variants)).
		Msg("ítem agregado al inventario")
	return created.Clone(), nil
}

// ListItems devuelve el snapshot actual en orden de inserción.
func (uc *StoreUseCase) ListItems(ctx context.Context) ([]*entity.StockItem, error) {
	var items []*entity.StockItem
	err := uc.tx.View(ctx, func(repo repository.StockItemRepository) error {
		var err error
		items, err = repo.List()
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Int("items", len(items)).Msg("snapshot del inventario")
	return items, nil
}

// GetItem obtiene un ítem por ID.
func (uc *StoreUseCase) GetItem(ctx context.Context, id string) (*entity.StockItem, error) {
	var item *entity.StockItem
	err := uc.tx.View(ctx, func(repo repository.StockItemRepository) error {
		var err error
		item, err = repo.GetByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("ítem %s: %w", id, domain.ErrItemNotFound)
	}
	return item, nil
}

// Search filtra por nombre (subcadena, sin distinguir mayúsculas).
func (uc *StoreUseCase) Search(ctx context.Context, term string) ([]*entity.StockItem, error) {
	items, err := uc.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	found := domstock.Search(items, term)
	uc.log.Debug().Str("term", term).Int("found", len(found)).Msg("búsqueda de ítems")
	return found, nil
}

// Summary recalcula los agregados del panel sobre el snapshot actual.
func (uc *StoreUseCase) Summary(ctx context.Context) (domstock.Summary, error) {
	items, err := uc.ListItems(ctx)
	if err != nil {
		return domstock.Summary{}, err
	}
	summary := domstock.Summarize(items)
	uc.log.Debug().
		Int("total_items", summary.TotalItems).
		Str("total_value", summary.TotalValue.String()).
		Int("low_stock", summary.LowStockItems).
		Msg("resumen recalculado")
	return summary, nil
}

// LowStock ítems con alguna variante por debajo del umbral.
func (uc *StoreUseCase) LowStock(ctx context.Context) ([]*entity.StockItem, error) {
	items, err := uc.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return domstock.LowStockItems(items), nil
}

// AdjustVariantQuantity suma delta (con signo) a la variante indicada.
// Es la única vía para cambiar una cantidad en sitio; si el resultado es negativo no cambia nada.
func (uc *StoreUseCase) AdjustVariantQuantity(ctx context.Context, id string, variantIndex, delta int) (*entity.StockItem, error) {
	var updated *entity.StockItem
	err := uc.tx.Run(ctx, func(repo repository.StockItemRepository) error {
		items, err := repo.List()
		if err != nil {
			return err
		}
		next, item, err := domstock.Adjust(items, id, variantIndex, delta, uc.now())
		if err != nil {
			return err
		}
		if err := repo.ReplaceAll(next); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		uc.logRejection("adjust", id, err)
		return nil, err
	}
	uc.log.Info().
		Str("item_id", id).
		Int("variant", variantIndex).
		Int("delta", delta).
		Int("quantity", updated.Variants[variantIndex].Quantity).
		Msg("cantidad ajustada")
	return updated.Clone(), nil
}

// AdjustVariantQuantityInput parsea la entrada del usuario y luego ajusta.
func (uc *StoreUseCase) AdjustVariantQuantityInput(ctx context.Context, id string, variantIndex int, raw string) (*entity.StockItem, error) {
	delta, err := domstock.ParseQuantity(raw)
	if err != nil {
		uc.logRejection("adjust", id, err)
		return nil, err
	}
	return uc.AdjustVariantQuantity(ctx, id, variantIndex, delta)
}

// EditItem reemplaza nombre, descripción, precio y variantes. ID y CreatedAt se conservan.
// Los cambios quedan escritos en el inventario (no es una vista previa).
func (uc *StoreUseCase) EditItem(ctx context.Context, id string, fields entity.ItemFields) (*entity.StockItem, error) {
	if err := domstock.ValidateFields(fields); err != nil {
		return nil, err
	}
	var updated *entity.StockItem
	err := uc.tx.Run(ctx, func(repo repository.StockItemRepository) error {
		items, err := repo.List()
		if err != nil {
			return err
		}
		pos := -1
		for i, it := range items {
			if it.ID == id {
				pos = i
				break
			}
		}
		if pos < 0 {
			return fmt.Errorf("ítem %s: %w", id, domain.ErrItemNotFound)
		}
		item := items[pos].Clone()
		item.Name = strings.TrimSpace(fields.Name)
		item.Description = fields.Description
		item.Price = fields.Price
		item.Variants = entity.ToVariants(fields.Variants)
		item.UpdatedAt = uc.now()
		items[pos] = item
		if err := repo.ReplaceAll(items); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		uc.logRejection("edit", id, err)
		return nil, err
	}
	uc.log.Info().Str("item_id", id).Str("name", updated.Name).Msg("ítem editado")
	return updated.Clone(), nil
}

// logRejection: los rechazos de negocio son advertencias; el resto, errores.
func (uc *StoreUseCase) logRejection(op, id string, err error) {
	var ev *zerolog.Event
	if isRecoverable(err) {
		ev = uc.log.Warn()
	} else {
		ev = uc.log.Error()
	}
	ev.Str("op", op).Str("item_id", id).Err(err).Msg("operación de inventario rechazada")
}

func isRecoverable(err error) bool {
	return errors.Is(err, domain.ErrDuplicateVariant) ||
		errors.Is(err, domain.ErrInvalidQuantityInput) ||
		errors.Is(err, domain.ErrNegativeStock) ||
		errors.Is(err, domain.ErrInvalidInput)
}
