package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/dto"
	appstock "github.com/jhoicas/stock-api/internal/application/stock"
	"github.com/jhoicas/stock-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/stock-api/internal/interfaces/http"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye una aplicación Fiber con inventario vacío y las rutas de /api/stock.
func buildTestApp() *fiber.App {
	runner := memory.NewTxRunner(memory.NewStockItemRepository())
	uc := appstock.NewStoreUseCase(runner, logger.Nop())
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{StockUC: uc})
	return app
}

// doJSON lanza una petición con body JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			r = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createShirt(t *testing.T, app *fiber.App) dto.StockItemResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/stock", dto.CreateStockItemRequest{
		Name:        "Shirt",
		Description: "algodón",
		Variants: []dto.StockVariantRequest{
			{Size: "M", Color: "Red", Quantity: 5},
			{Size: "L", Color: "Red", Quantity: 20},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.StockItemResponse
	decode(t, resp, &out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta y listado
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_DevuelveItemCreado(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/stock",
		`{"name":"Shirt","price":"19.99","description":"algodón","variants":[{"size":"M","color":"Red","quantity":5},{"quantity":12}]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.StockItemResponse
	decode(t, resp, &out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Shirt", out.Name)
	assert.Equal(t, "19.99", out.Price.String())
	require.Len(t, out.Variants, 2)
	assert.Equal(t, "M / Red", out.Variants[0].Label)
	assert.True(t, out.Variants[0].LowStock)
	assert.Equal(t, "default", out.Variants[1].Label)
	assert.False(t, out.Variants[1].LowStock)
	assert.Equal(t, 17, out.TotalQuantity)
}

func TestCreate_CuerpoInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/stock", `{"name":`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreate_SinVariantes_Retorna400(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/stock", `{"name":"Shirt","price":"1","variants":[]}`)
	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestCreate_VarianteDuplicada_Retorna409(t *testing.T) {
	app := buildTestApp()
	createShirt(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/stock",
		`{"name":"shirt","price":"20","variants":[{"size":"xl","quantity":1},{"size":"m","color":"red","quantity":1}]}`)
	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_VARIANT", out.Code)

	// todo o nada: la variante XL tampoco se agregó
	list := doJSON(t, app, http.MethodGet, "/api/stock", nil)
	var items dto.StockItemListResponse
	decode(t, list, &items)
	assert.Equal(t, 1, items.Total)
}

func TestList_FiltraPorNombre(t *testing.T) {
	app := buildTestApp()
	for _, n := range []string{"Shirt", "Shorts", "Hat"} {
		resp := doJSON(t, app, http.MethodPost, "/api/stock", dto.CreateStockItemRequest{
			Name: n, Variants: []dto.StockVariantRequest{{Quantity: 1}},
		})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/stock?search=sh", nil)
	var out dto.StockItemListResponse
	decode(t, resp, &out)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, "Shirt", out.Items[0].Name)
	assert.Equal(t, "Shorts", out.Items[1].Name)
}

func TestGetByID_NoEncontrado(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/stock/nope", nil)
	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", out.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes de cantidad
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_SumaYResta(t *testing.T) {
	app := buildTestApp()
	item := createShirt(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/stock/"+item.ID+"/variants/0/adjust", dto.AdjustStockRequest{Adjustment: "-5"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.StockItemResponse
	decode(t, resp, &out)
	assert.Equal(t, 0, out.Variants[0].Quantity)
	assert.Equal(t, 20, out.Variants[1].Quantity)
}

func TestAdjust_Errores(t *testing.T) {
	app := buildTestApp()
	item := createShirt(t, app)
	base := "/api/stock/" + item.ID + "/variants/"

	cases := []struct {
		name   string
		path   string
		body   dto.AdjustStockRequest
		status int
		code   string
	}{
		{"stock negativo", base + "0/adjust", dto.AdjustStockRequest{Adjustment: "-6"}, http.StatusConflict, "NEGATIVE_STOCK"},
		{"entrada no numérica", base + "0/adjust", dto.AdjustStockRequest{Adjustment: "abc"}, http.StatusBadRequest, "INVALID_QUANTITY"},
		{"variante inexistente", base + "9/adjust", dto.AdjustStockRequest{Adjustment: "1"}, http.StatusNotFound, "VARIANT_NOT_FOUND"},
		{"índice no entero", base + "x/adjust", dto.AdjustStockRequest{Adjustment: "1"}, http.StatusBadRequest, "INVALID_INDEX"},
		{"ítem inexistente", "/api/stock/nope/variants/0/adjust", dto.AdjustStockRequest{Adjustment: "1"}, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, tc.path, tc.body)
			var out dto.ErrorResponse
			decode(t, resp, &out)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, out.Code)
		})
	}

	// ningún error cambió el estado
	resp := doJSON(t, app, http.MethodGet, "/api/stock/"+item.ID, nil)
	var got dto.StockItemResponse
	decode(t, resp, &got)
	assert.Equal(t, 5, got.Variants[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición y resumen
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_PersisteCambios(t *testing.T) {
	app := buildTestApp()
	item := createShirt(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/stock/"+item.ID,
		`{"name":"Camisa","price":"30","description":"lino","variants":[{"size":"S","quantity":40}]}`)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	get := doJSON(t, app, http.MethodGet, "/api/stock/"+item.ID, nil)
	var got dto.StockItemResponse
	decode(t, get, &got)
	assert.Equal(t, "Camisa", got.Name)
	assert.Equal(t, "lino", got.Description)
	assert.Equal(t, "30", got.Price.String())
	require.Len(t, got.Variants, 1)
	assert.Equal(t, 40, got.Variants[0].Quantity)
	assert.Equal(t, item.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestSummary_CalculaAgregados(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/stock",
		`{"name":"Shirt","price":"2.50","variants":[{"size":"M","quantity":4},{"size":"L","quantity":12}]}`)
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/stock",
		`{"name":"Hat","price":"10","variants":[{"quantity":10}]}`)
	resp.Body.Close()

	sum := doJSON(t, app, http.MethodGet, "/api/stock/summary", nil)
	require.Equal(t, http.StatusOK, sum.StatusCode)
	var out dto.StockSummaryResponse
	decode(t, sum, &out)
	assert.Equal(t, 2, out.TotalItems)
	assert.Equal(t, "140", out.TotalValue.String())
	assert.Equal(t, 1, out.LowStockItems)
	assert.Equal(t, 26, out.TotalUnits)
	assert.Equal(t, 10, out.LowStockThreshold)

	low := doJSON(t, app, http.MethodGet, "/api/stock/low", nil)
	var lowOut dto.StockItemListResponse
	decode(t, low, &lowOut)
	require.Equal(t, 1, lowOut.Total)
	assert.Equal(t, "Shirt", lowOut.Items[0].Name)
}

func TestAdjust_AceptaNumeroJSON(t *testing.T) {
	app := buildTestApp()
	item := createShirt(t, app)
	path := "/api/stock/" + item.ID + "/variants/0/adjust"

	resp := doJSON(t, app, http.MethodPost, path, `{"adjustment":3}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.StockItemResponse
	decode(t, resp, &out)
	assert.Equal(t, 8, out.Variants[0].Quantity)

	resp = doJSON(t, app, http.MethodPost, path, `{"adjustment":-8}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &out)
	assert.Equal(t, 0, out.Variants[0].Quantity)

	// un número no entero llega al dominio y se reporta como cantidad inválida
	resp = doJSON(t, app, http.MethodPost, path, `{"adjustment":1.5}`)
	var errOut dto.ErrorResponse
	decode(t, resp, &errOut)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUANTITY", errOut.Code)

	resp = doJSON(t, app, http.MethodPost, path, `{"adjustment":true}`)
	decode(t, resp, &errOut)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errOut.Code)
}

func TestCreate_CantidadesEnormes_Retorna400YResumenIntacto(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/stock",
		`{"name":"Shirt","price":"1","variants":[{"size":"M","quantity":9223372036854775807},{"size":"L","quantity":9223372036854775807}]}`)
	var errOut dto.ErrorResponse
	decode(t, resp, &errOut)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errOut.Code)

	sum := doJSON(t, app, http.MethodGet, "/api/stock/summary", nil)
	var out dto.StockSummaryResponse
	decode(t, sum, &out)
	assert.Equal(t, 0, out.TotalItems)
	assert.Equal(t, "0", out.TotalValue.String())
}

func TestAdjust_SuperarMaximo_Retorna400(t *testing.T) {
	app := buildTestApp()
	item := createShirt(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/stock/"+item.ID+"/variants/1/adjust",
		dto.AdjustStockRequest{Adjustment: "999999990"})
	var errOut dto.ErrorResponse
	decode(t, resp, &errOut)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUANTITY", errOut.Code)
}
