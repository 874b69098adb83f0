package stock

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función con acceso exclusivo al repositorio de ítems.
// Run garantiza atomicidad de cada mutación (verificar y aplicar en un solo paso);
// View permite lecturas concurrentes de un snapshot consistente.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.StockItemRepository) error) error
	View(ctx context.Context, fn func(repo repository.StockItemRepository) error) error
}
