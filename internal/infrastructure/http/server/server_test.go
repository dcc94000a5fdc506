package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuzvak/nhh-storefront/internal/application/session"
	"github.com/yuzvak/nhh-storefront/internal/application/use_cases"
	"github.com/yuzvak/nhh-storefront/internal/config"
	"github.com/yuzvak/nhh-storefront/internal/domain/catalog"
	"github.com/yuzvak/nhh-storefront/internal/domain/pricing"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/handlers"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/middleware"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/persistence/memory"
	"github.com/yuzvak/nhh-storefront/internal/pkg/clock"
	"github.com/yuzvak/nhh-storefront/internal/pkg/generator"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

type staticCatalog struct {
	c *catalog.Catalog
}

func (s staticCatalog) Catalog() *catalog.Catalog {
	return s.c
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type client struct {
	t       *testing.T
	handler http.Handler
	session string
}

func newTestServer(t *testing.T, health map[string]handlers.Pinger) http.Handler {
	t.Helper()

	c := clock.NewMockClock(time.UnixMilli(1700000000000))
	log := logger.NewNop()
	carts := memory.NewKVStore()
	content := memory.NewKVStore()
	ids := generator.NewCodeGenerator(c)

	source := staticCatalog{catalog.New([]catalog.Product{
		{Name: "Claw Hammer", Subcategory: "tools_hand_tools", Price: decimal.RequireFromString("9.45")},
		{Name: "Red Brick", Subcategory: "building_blocks_and_bricks", Price: decimal.RequireFromString("4.50")},
	})}

	sessions := session.NewRegistry(carts, "nhh_cart", nil, c, log)

	srv := NewServer(config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		RequestTimeout: config.Duration{Duration: 5 * time.Second},
		AllowedOrigins: []string{"*"},
	}, true, Dependencies{
		Catalog:  source,
		Prices:   pricing.DefaultTable(),
		Cart:     use_cases.NewCartUseCase(sessions, source, log),
		Checkout: use_cases.NewCheckoutUseCase(sessions, ids, nil, log),
		Content:  use_cases.NewContentUseCase(content, nil, c, log),
		IDs:      ids,
		Health:   health,
	}, log)

	return srv.Handler()
}

func (c *client) do(method, path string, body interface{}) (int, envelope) {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return c.send(req)
}

func (c *client) send(req *http.Request) (int, envelope) {
	c.t.Helper()

	if c.session != "" {
		req.Header.Set(middleware.SessionHeader, c.session)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	if id := rec.Header().Get(middleware.SessionHeader); id != "" {
		c.session = id
	}

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	c := &client{t: t, handler: newTestServer(t, nil)}

	for i := 0; i < 2; i++ {
		code, env := c.do(http.MethodPost, "/api/v1/cart/items", map[string]string{"name": "Claw Hammer"})
		require.Equal(t, http.StatusCreated, code, env.Message)
		assert.Equal(t, "Claw Hammer added to cart", env.Message)
	}

	code, env := c.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, code)
	cart := decode[handlers.CartDTO](t, env.Data)
	assert.Equal(t, 2, cart.Count)
	assert.Equal(t, "€18.90", cart.Total)
	assert.True(t, cart.SummaryOpen)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Qty)

	code, env = c.do(http.MethodPost, "/api/v1/checkout", nil)
	require.Equal(t, http.StatusOK, code)
	state := decode[handlers.CheckoutDTO](t, env.Data)
	assert.Equal(t, "delivery", state.Step)
	assert.False(t, state.CanContinue)

	code, _ = c.do(http.MethodPost, "/api/v1/checkout/continue", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = c.do(http.MethodPut, "/api/v1/checkout/delivery", map[string]string{"method": "post"})
	require.Equal(t, http.StatusOK, code)
	state = decode[handlers.CheckoutDTO](t, env.Data)
	assert.Equal(t, "Postage / Courier", state.DeliveryLabel)

	code, _ = c.do(http.MethodPost, "/api/v1/checkout/continue", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = c.do(http.MethodPut, "/api/v1/checkout/details", map[string]string{
		"name":  "Aoife Byrne",
		"phone": "0871234567",
		"email": "aoife@example.ie",
	})
	assert.Equal(t, http.StatusBadRequest, code, "postal delivery needs an address")

	code, env = c.do(http.MethodPut, "/api/v1/checkout/details", map[string]string{
		"name":     "Aoife Byrne",
		"phone":    "0871234567",
		"email":    "aoife@example.ie",
		"address1": "1 Kells Road",
		"town":     "Navan",
		"county":   "Meath",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "review", decode[handlers.CheckoutDTO](t, env.Data).Step)

	code, env = c.do(http.MethodGet, "/api/v1/checkout/review", nil)
	require.Equal(t, http.StatusOK, code)
	review := decode[handlers.ReviewDTO](t, env.Data)
	assert.Equal(t, "€18.90", review.Subtotal)
	assert.Equal(t, "€26.85", review.Total)

	code, env = c.do(http.MethodPost, "/api/v1/checkout/order", nil)
	require.Equal(t, http.StatusCreated, code)
	order := decode[map[string]string](t, env.Data)
	assert.Equal(t, "NHH-YW3V28", order["reference"])
	assert.Equal(t, "€26.85", order["total"])

	code, env = c.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[handlers.CartDTO](t, env.Data).Empty)
}

func TestCartEndpoints(t *testing.T) {
	c := &client{t: t, handler: newTestServer(t, nil)}

	code, env := c.do(http.MethodPost, "/api/v1/cart/items", map[string]string{"name": "Gold Brick"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", env.Status)

	code, _ = c.do(http.MethodPost, "/api/v1/cart/items", map[string]string{"name": "Red Brick", "subcategory": "tools_hand_tools"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = c.do(http.MethodPost, "/api/v1/cart/items", map[string]string{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = c.do(http.MethodPost, "/api/v1/cart/items", map[string]string{"name": "Red Brick"})
	require.Equal(t, http.StatusCreated, code)

	code, env = c.do(http.MethodPatch, "/api/v1/cart/items/0", map[string]int{"delta": 1})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "€9.00", decode[handlers.CartDTO](t, env.Data).Total)

	code, env = c.do(http.MethodPatch, "/api/v1/cart/items/7", map[string]int{"delta": 1})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, decode[handlers.CartDTO](t, env.Data).Count)

	code, env = c.do(http.MethodDelete, "/api/v1/cart/items/5", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, 2, decode[handlers.CartDTO](t, env.Data).Count)

	code, _ = c.do(http.MethodDelete, "/api/v1/cart/items/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = c.do(http.MethodDelete, "/api/v1/cart/items/0", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, decode[handlers.CartDTO](t, env.Data).Count)

	code, _ = c.do(http.MethodPost, "/api/v1/checkout", nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = c.do(http.MethodGet, "/api/v1/checkout", nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestCatalogEndpoints(t *testing.T) {
	c := &client{t: t, handler: newTestServer(t, nil)}

	code, env := c.do(http.MethodGet, "/api/v1/catalog", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]handlers.ProductDTO](t, env.Data), 2)

	code, env = c.do(http.MethodGet, "/api/v1/catalog/building_blocks_and_bricks", nil)
	require.Equal(t, http.StatusOK, code)
	sub := decode[handlers.SubcategoryDTO](t, env.Data)
	require.Len(t, sub.Products, 1)
	assert.Equal(t, "€4.50", sub.Products[0].Price)

	code, _ = c.do(http.MethodGet, "/api/v1/catalog/spaceships", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestEquipmentContent(t *testing.T) {
	c := &client{t: t, handler: newTestServer(t, nil)}

	code, env := c.do(http.MethodGet, "/api/v1/equipment/slug?name=Genie+GS-1932+Electric+Scissor", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "genie-gs-1932-electric-scissor", decode[handlers.SlugDTO](t, env.Data).Slug)

	const specs = "/api/v1/equipment/genie-gs-1932-electric-scissor/specs"

	code, _ = c.do(http.MethodPost, specs, map[string]string{"label": "Warranty", "value": "2 years"})
	assert.Equal(t, http.StatusForbidden, code)

	code, env = c.do(http.MethodPost, specs+"?admin=1", map[string]string{"label": "Warranty", "value": "2 years"})
	require.Equal(t, http.StatusOK, code)
	sheet := decode[map[string]string](t, env.Data)
	assert.Equal(t, "2 years", sheet["Warranty"])
	assert.Equal(t, "Electric", sheet["Fuel"])

	code, env = c.do(http.MethodDelete, specs+"?admin=1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, decode[map[string]string](t, env.Data), "Warranty")

	code, _ = c.do(http.MethodGet, "/api/v1/equipment/Not_A_Slug/specs", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDownloadsUploadAndRemove(t *testing.T) {
	c := &client{t: t, handler: newTestServer(t, nil)}
	const downloads = "/api/v1/equipment/merlo-roto-30-16/downloads"

	upload := func(filename string, admin bool) int {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 brochure"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		path := downloads
		if admin {
			path += "?admin=1"
		}
		req := httptest.NewRequest(http.MethodPost, path, &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		code, _ := c.send(req)
		return code
	}

	assert.Equal(t, http.StatusForbidden, upload("brochure.pdf", false))
	assert.Equal(t, http.StatusUnsupportedMediaType, upload("virus.exe", true))
	assert.Equal(t, http.StatusCreated, upload("brochure.pdf", true))

	code, env := c.do(http.MethodGet, downloads, nil)
	require.Equal(t, http.StatusOK, code)
	list := decode[[]map[string]string](t, env.Data)
	require.Len(t, list, 1)
	assert.Equal(t, "brochure.pdf", list[0]["name"])
	assert.Equal(t, time.UnixMilli(1700000000000).Format("02/01/2006"), list[0]["uploaded"])

	code, env = c.do(http.MethodDelete, downloads+"/3?admin=1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]string](t, env.Data), 1)

	code, env = c.do(http.MethodDelete, downloads+"/0?admin=1", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]map[string]string](t, env.Data))
}

func TestHealth(t *testing.T) {
	healthy := &client{t: t, handler: newTestServer(t, map[string]handlers.Pinger{
		"redis": pingFunc(func(context.Context) error { return nil }),
	})}
	code, env := healthy.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, code)
	data := decode[handlers.HealthData](t, env.Data)
	assert.Equal(t, "UP", data.ServicesStatus["redis"])
	assert.Equal(t, 2, data.Products)

	down := &client{t: t, handler: newTestServer(t, map[string]handlers.Pinger{
		"postgres": pingFunc(func(context.Context) error { return errors.New("connection refused") }),
	})}
	code, env = down.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "DOWN", decode[handlers.HealthData](t, env.Data).ServicesStatus["postgres"])
}

func TestSessionsAreSeparatedByCookie(t *testing.T) {
	h := newTestServer(t, nil)
	a := &client{t: t, handler: h}
	b := &client{t: t, handler: h}

	code, _ := a.do(http.MethodPost, "/api/v1/cart/items", map[string]string{"name": "Red Brick"})
	require.Equal(t, http.StatusCreated, code)
	require.NotEmpty(t, a.session)

	_, env := b.do(http.MethodGet, "/api/v1/cart", nil)
	assert.True(t, decode[handlers.CartDTO](t, env.Data).Empty)
	assert.NotEqual(t, a.session, b.session)
}
