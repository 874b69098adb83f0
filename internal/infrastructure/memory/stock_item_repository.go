package memory

import (
	"fmt"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación del puerto StockItemRepository sobre un slice en memoria.
// No se sincroniza por sí mismo: el acceso concurrente pasa por TxRunner.
type StockItemRepo struct {
	items []*entity.StockItem
}

// NewStockItemRepository construye un repositorio vacío (cada arranque inicia sin inventario).
func NewStockItemRepository() *StockItemRepo {
	return &StockItemRepo{items: make([]*entity.StockItem, 0)}
}

// Append agrega al final; rechaza IDs repetidos.
func (r *StockItemRepo) Append(item *entity.StockItem) error {
	if item == nil || item.ID == "" {
		return domain.ErrInvalidInput
	}
	for _, it := range r.items {
		if it.ID == item.ID {
			return fmt.Errorf("append item %s: id repetido: %w", item.ID, domain.ErrInvalidInput)
		}
	}
	r.items = append(r.items, item.Clone())
	return nil
}

// List devuelve copias en orden de inserción.
func (r *StockItemRepo) List() ([]*entity.StockItem, error) {
	out := make([]*entity.StockItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it.Clone())
	}
	return out, nil
}

// GetByID obtiene una copia del ítem; nil si no existe.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it.Clone(), nil
		}
	}
	return nil, nil
}

// ReplaceAll sustituye la colección por copias de items.
func (r *StockItemRepo) ReplaceAll(items []*entity.StockItem) error {
	next := make([]*entity.StockItem, 0, len(items))
	for _, it := range items {
		if it == nil {
			return fmt.Errorf("replace items: ítem nil: %w", domain.ErrInvalidInput)
		}
		next = append(next, it.Clone())
	}
	r.items = next
	return nil
}

func (r *StockItemRepo) snapshot() []*entity.StockItem {
	out := make([]*entity.StockItem, len(r.items))
	copy(out, r.items)
	return out
}

func (r *StockItemRepo) restore(items []*entity.StockItem) {
	r.items = items
}
