package repository

import "github.com/jhoicas/stock-api/internal/domain/entity"

// StockItemRepository define el puerto de almacenamiento de ítems (DIP).
// El orden de List es el orden de inserción; también es el orden de visualización.
type StockItemRepository interface {
	Append(item *entity.StockItem) error
	List() ([]*entity.StockItem, error)
	GetByID(id string) (*entity.StockItem, error)
	// ReplaceAll sustituye la colección completa (patrón de actualización inmutable).
	ReplaceAll(items []*entity.StockItem) error
}
