package memory

import (
	"context"
	"sync"

	appstock "github.com/jhoicas/stock-api/internal/application/stock"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner.
var _ appstock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks con exclusión mutua sobre el repositorio en memoria.
// Si el callback falla se restaura la colección previa (equivalente a Rollback).
type TxRunner struct {
	mu   sync.RWMutex
	repo *StockItemRepo
}

// NewTxRunner construye el runner sobre el repositorio.
func NewTxRunner(repo *StockItemRepo) *TxRunner {
	return &TxRunner{repo: repo}
}

// Run toma el lock de escritura, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.StockItemRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	// Los ítems guardados no se mutan en sitio (Append/ReplaceAll guardan copias),
	// por lo que basta con conservar el slice anterior.
	prev := r.repo.snapshot()
	if err := fn(r.repo); err != nil {
		r.repo.restore(prev)
		return err
	}
	return nil
}

// View ejecuta fn con lock de lectura; fn no debe escribir.
func (r *TxRunner) View(ctx context.Context, fn func(repo repository.StockItemRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(r.repo)
}
