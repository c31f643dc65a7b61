package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/marianaviana/atelie-catalog/internal/events"
	"github.com/marianaviana/atelie-catalog/internal/handlers"
	"github.com/marianaviana/atelie-catalog/internal/httpserver"
	"github.com/marianaviana/atelie-catalog/internal/models"
	"github.com/marianaviana/atelie-catalog/internal/storage"
)

type publishedEvent struct {
	Topic string
	Key   string
	Event map[string]any
}

// recordingPublisher stands in for the kafka producer.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

var _ events.Publisher = (*recordingPublisher)(nil)

func (p *recordingPublisher) Publish(_ context.Context, topic, key string, event map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) byType(eventType string) []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []publishedEvent
	for _, e := range p.events {
		if e.Event["type"] == eventType {
			out = append(out, e)
		}
	}
	return out
}

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	Store  storage.Storage
	DB     *gorm.DB
	Events *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.PageContent{},
		&models.FaqItem{},
	))

	store := storage.NewGormStore(db)
	rec := &recordingPublisher{}
	secret := []byte("test-jwt-secret")

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:     &handlers.AuthHandler{Store: store, JWTSecret: secret},
		CategoryHandler: &handlers.CategoryHandler{Store: store, Events: rec},
		ProductHandler:  &handlers.ProductHandler{Store: store, Events: rec},
		OrderHandler:    &handlers.OrderHandler{Store: store, Events: rec},
		ContentHandler:  &handlers.ContentHandler{Store: store},
		FaqHandler:      &handlers.FaqHandler{Store: store},
		JWTSecret:       secret,
	})

	return &testEnv{T: t, E: e, Store: store, DB: db, Events: rec}
}

func (env *testEnv) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func adminToken(t *testing.T, env *testEnv) string {
	t.Helper()

	creds := map[string]string{"username": "juliana", "password": "segredo123"}
	rec := env.do(http.MethodPost, "/api/auth/register", creds, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/api/auth/login", creds, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	creds := map[string]string{"username": "juliana", "password": "segredo123"}
	rec := env.do(http.MethodPost, "/api/auth/register", creds, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotContains(t, rec.Body.String(), "segredo123")

	rec = env.do(http.MethodPost, "/api/auth/register", creds, "")
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(http.MethodPost, "/api/auth/login", creds, "")
	require.Equal(t, http.StatusOK, rec.Code)

	bad := map[string]string{"username": "juliana", "password": "errada"}
	rec = env.do(http.MethodPost, "/api/auth/login", bad, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminGroupRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/admin/categories", map[string]string{"name": "X", "slug": "x"}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodPost, "/api/admin/categories", map[string]string{"name": "X", "slug": "x"}, "not-a-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCategoryEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t, env)

	rec := env.do(http.MethodPost, "/api/admin/categories", map[string]any{
		"name": "Lingerie", "slug": "lingerie", "description": "peças íntimas",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	require.True(t, created.Active)

	rec = env.do(http.MethodGet, "/api/categories/lingerie", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/categories/nao-existe", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	// Hide the category: public listing drops it, slug lookup still works.
	rec = env.do(http.MethodPatch, "/api/admin/categories/1", map[string]any{"active": false}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Empty(t, listed)

	rec = env.do(http.MethodGet, "/api/categories/lingerie", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodDelete, "/api/admin/categories/1", nil, token)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProductEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t, env)

	rec := env.do(http.MethodPost, "/api/admin/products", map[string]any{
		"name": "Conjunto X", "slug": "conjunto-x", "featured": true,
		"images": []string{"https://cdn.example/a.jpg"},
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	rec = env.do(http.MethodGet, "/api/products/featured", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var featured []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &featured))
	require.Len(t, featured, 1)
	require.Equal(t, "Conjunto X", featured[0].Name)

	// Featured but deactivated products stay out of the featured listing.
	rec = env.do(http.MethodPatch, "/api/admin/products/1", map[string]any{"active": false}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/products/featured", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	featured = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &featured))
	require.Empty(t, featured)

	rec = env.do(http.MethodGet, "/api/products/conjunto-x", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodDelete, "/api/admin/products/1", nil, token)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(http.MethodGet, "/api/products/conjunto-x", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	require.Len(t, env.Events.byType("product_created"), 1)
	require.Len(t, env.Events.byType("product_updated"), 1)
	require.Len(t, env.Events.byType("product_deleted"), 1)
}

func TestOrderFlow(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t, env)

	rec := env.do(http.MethodPost, "/api/orders", map[string]any{
		"customer_name":  "Maria",
		"customer_phone": "+55 11 91234-5678",
		"notes":          "ajuste na alça",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.Equal(t, models.OrderStatusPending, order.Status)

	rec = env.do(http.MethodPost, "/api/orders", map[string]any{"customer_phone": "+55"}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPatch, "/api/admin/orders/1", map[string]any{
		"status": models.OrderStatusInProduction,
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/admin/orders?status=in_production", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	require.Equal(t, "Maria", orders[0].CustomerName)

	rec = env.do(http.MethodGet, "/api/admin/orders?status=completed", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	orders = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Empty(t, orders)

	require.Len(t, env.Events.byType("order_created"), 1)
	require.Len(t, env.Events.byType("order_status_changed"), 1)
}

func TestContentEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t, env)

	rec := env.do(http.MethodGet, "/api/content/home_hero", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodPut, "/api/admin/content", map[string]any{
		"page_key": "home_hero", "title": "Bem-vinda", "content": "Feito à mão",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPut, "/api/admin/content", map[string]any{
		"page_key": "home_hero", "title": "Bem-vinda de volta",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/content/home_hero", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var content models.PageContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &content))
	require.Equal(t, "Bem-vinda de volta", content.Title)
	require.Equal(t, "Feito à mão", content.Content)

	rec = env.do(http.MethodPut, "/api/admin/content", map[string]any{"title": "sem chave"}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFaqEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t, env)

	rec := env.do(http.MethodPost, "/api/admin/faq", map[string]any{
		"question": "Qual o prazo?", "answer": "15 dias.", "order": 2,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/api/admin/faq", map[string]any{
		"question": "Como peço?", "answer": "Pelo formulário.", "order": 1,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodGet, "/api/faq", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.FaqItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	require.Equal(t, "Como peço?", items[0].Question)

	rec = env.do(http.MethodPatch, "/api/admin/faq/1", map[string]any{"active": false}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/faq", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	items = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)

	rec = env.do(http.MethodDelete, "/api/admin/faq/2", nil, token)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCategoryProductsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t, env)

	rec := env.do(http.MethodPost, "/api/admin/categories", map[string]any{
		"name": "Lingerie", "slug": "lingerie",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/api/admin/products", map[string]any{
		"name": "Conjunto X", "slug": "conjunto-x", "category_id": 1,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/api/admin/products", map[string]any{
		"name": "Oculto", "slug": "oculto", "category_id": 1, "active": false,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodGet, "/api/categories/lingerie/products", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 2)

	// Public catalog hides the inactive one.
	rec = env.do(http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	products = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	require.Equal(t, "Conjunto X", products[0].Name)
}
