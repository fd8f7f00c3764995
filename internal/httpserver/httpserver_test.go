package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amribrahim/goshop/internal/models"
	"github.com/amribrahim/goshop/internal/repo"
	"github.com/amribrahim/goshop/internal/service"
)

var testJWTSecret = []byte("test-secret")

type testEnv struct {
	E    *echo.Echo
	Repo *repo.GormRepo
	Auth *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	r := repo.New(db)
	authSvc := &service.AuthService{Repo: r, JWTSecret: testJWTSecret}

	e := echo.New()
	Register(e, &Deps{
		JWTSecret:       testJWTSecret,
		AuthHandler:     &AuthHandler{Svc: authSvc},
		UserHandler:     &UserHandler{Users: &service.UserService{Repo: r}, Auth: authSvc},
		CategoryHandler: &CategoryHandler{Svc: &service.CategoryService{Repo: r}},
		ProductHandler:  &ProductHandler{Svc: &service.ProductService{Repo: r}},
		ReviewHandler:   &ReviewHandler{Svc: &service.ReviewService{Repo: r}},
		CartHandler:     &CartHandler{Svc: &service.CartService{Repo: r}},
	})

	return &testEnv{E: e, Repo: r, Auth: authSvc}
}

// signUp registers a user with the given role and returns it with a
// signed access token.
func (env *testEnv) signUp(t *testing.T, email, role string) (*models.User, string) {
	user, err := env.Auth.Register(t.Context(), service.RegisterInput{
		Name:     "test user",
		Email:    email,
		Password: "password",
		Role:     role,
	})
	require.NoError(t, err)

	token, err := env.Auth.SignAccessToken(user)
	require.NoError(t, err)
	return user, token
}

func (env *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, rec.Code, resp.Status)
	return resp
}

func seedCategory(t *testing.T, r *repo.GormRepo, name string) *models.Category {
	category := models.Category{Name: name}
	require.NoError(t, r.DB.Create(&category).Error)
	return &category
}

func seedProduct(t *testing.T, r *repo.GormRepo, name string) *models.Product {
	category := seedCategory(t, r, "category-"+name)
	product := models.Product{Name: name, Price: 19.99, Quantity: 10, CategoryID: category.ID}
	require.NoError(t, r.DB.Create(&product).Error)
	return &product
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health/live", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/health/ready", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
}
