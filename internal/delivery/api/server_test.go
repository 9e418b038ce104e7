package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"carhub/config"
	"carhub/internal/delivery/api/docs"
	apimiddleware "carhub/internal/delivery/api/middleware"
	"carhub/internal/delivery/api/router"
	"carhub/internal/delivery/api/router/handler"
	"carhub/internal/domain/entity"
	"carhub/internal/domain/repository"
	"carhub/internal/infra/auth"
	"carhub/internal/usecase/impl"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type memoryUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return repository.ErrDuplicateUser
		}
	}
	stored := *user
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.users[user.ID] = &stored

	return nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	found := *user

	return &found, nil
}

type memoryCarRepository struct {
	mu    sync.Mutex
	users *memoryUserRepository
	cars  map[uuid.UUID]*entity.Car
}

func (r *memoryCarRepository) Create(ctx context.Context, car *entity.Car) error {
	if _, err := r.users.FindByID(ctx, car.UserID); err != nil {
		return repository.ErrCarOwnerNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	car.CreatedAt = time.Now()
	car.UpdatedAt = car.CreatedAt
	stored := *car
	r.cars[car.ID] = &stored

	return nil
}

func (r *memoryCarRepository) ListAll(_ context.Context) ([]*entity.Car, error) {
	return r.list(func(*entity.Car) bool { return true }), nil
}

func (r *memoryCarRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Car, error) {
	return r.list(func(car *entity.Car) bool { return car.UserID == ownerID }), nil
}

func (r *memoryCarRepository) list(keep func(*entity.Car) bool) []*entity.Car {
	r.mu.Lock()
	defer r.mu.Unlock()

	cars := []*entity.Car{}
	for _, car := range r.cars {
		if keep(car) {
			found := *car
			cars = append(cars, &found)
		}
	}
	sort.Slice(cars, func(i, j int) bool { return cars[i].CreatedAt.After(cars[j].CreatedAt) })

	return cars
}

func (r *memoryCarRepository) FindByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (*entity.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	car, ok := r.cars[id]
	if !ok || car.UserID != ownerID {
		return nil, repository.ErrCarNotFound
	}
	found := *car

	return &found, nil
}

func (r *memoryCarRepository) UpdateByIDAndOwner(_ context.Context, id, ownerID uuid.UUID, patch *entity.CarPatch) (*entity.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	car, ok := r.cars[id]
	if !ok || car.UserID != ownerID {
		return nil, repository.ErrCarNotFound
	}

	if patch.Model != nil {
		car.Model = *patch.Model
	}
	if patch.Price != nil {
		car.Price = *patch.Price
	}
	if patch.Year != nil {
		car.Year = *patch.Year
	}
	if patch.Mileage != nil {
		car.Mileage = *patch.Mileage
	}
	if patch.FuelType != nil {
		car.FuelType = *patch.FuelType
	}
	if patch.Transmission != nil {
		car.Transmission = *patch.Transmission
	}
	if patch.Description != nil {
		car.Description = *patch.Description
	}
	if patch.Features != nil {
		car.Features = *patch.Features
	}
	if patch.Images != nil {
		car.Images = *patch.Images
	}
	car.UpdatedAt = time.Now()
	found := *car

	return &found, nil
}

func (r *memoryCarRepository) DeleteByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	car, ok := r.cars[id]
	if !ok || car.UserID != ownerID {
		return repository.ErrCarNotFound
	}
	delete(r.cars, id)

	return nil
}

type ServerTestSuite struct {
	suite.Suite

	echo      *echo.Echo
	contract  routers.Router
	userRepo  *memoryUserRepository
	carRepo   *memoryCarRepository
	listScope string
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "server-test-secret"},
		Auth:      &config.AuthConfig{BcryptCost: 4, TokenTTL: time.Hour},
		Cars:      &config.CarsConfig{ListScope: "owner"},
		Docs:      &config.DocsConfig{Enabled: true},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.userRepo = &memoryUserRepository{users: map[uuid.UUID]*entity.User{}}
	s.carRepo = &memoryCarRepository{users: s.userRepo, cars: map[uuid.UUID]*entity.Car{}}

	tokenSvc, err := auth.NewJWTService(cfg)
	s.Require().NoError(err)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     s.userRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenSvc,
		Logger:       logger,
	})
	carUC := impl.NewCarService(impl.CarServiceParams{
		CarRepo:  s.carRepo,
		UserRepo: s.userRepo,
		Config:   cfg,
		Logger:   logger,
	})
	docsHandler, err := docs.NewHandler(cfg)
	s.Require().NoError(err)

	s.echo = newEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
		CarHandler:     handler.NewCarHandler(handler.CarHandlerParams{CarUC: carUC, Logger: logger}),
		DocsHandler:    docsHandler,
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokenSvc),
		Config:         cfg,
	})

	doc, err := docs.Load(context.Background(), "")
	s.Require().NoError(err)
	// No servers means any host matches.
	doc.Servers = nil
	s.contract, err = gorillamux.NewRouter(doc)
	s.Require().NoError(err)
}

// do performs a request and checks documented responses against the OpenAPI contract.
func (s *ServerTestSuite) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	s.validateContract(method, path, rec)

	return rec
}

func (s *ServerTestSuite) validateContract(method, path string, rec *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	route, pathParams, err := s.contract.FindRoute(req)
	if err != nil {
		return
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status:  rec.Code,
		Header:  rec.Header(),
		Options: &openapi3filter.Options{IncludeResponseStatus: true},
	}
	input.SetBodyBytes(rec.Body.Bytes())

	s.NoError(openapi3filter.ValidateResponse(context.Background(), input),
		"%s %s -> %d %s", method, path, rec.Code, rec.Body.String())
}

func (s *ServerTestSuite) signup(name string) string {
	rec := s.do(http.MethodPost, "/api/auth/signup", "",
		fmt.Sprintf(`{"username":%q,"email":%q,"password":"secret123"}`, name, name+"@example.com"))
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().NotEmpty(body["token"])

	return body["token"]
}

func (s *ServerTestSuite) createCar(token, body string) entity.Car {
	rec := s.do(http.MethodPost, "/api/cars", token, body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var car entity.Car
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &car))

	return car
}

func imagesJSON(n int) string {
	images := make([]string, n)
	for i := range images {
		images[i] = fmt.Sprintf("https://img.example.com/%d.jpg", i)
	}
	raw, _ := json.Marshal(images)

	return string(raw)
}

const sedanJSON = `{"model":"Sedan","price":20000,"year":2020,"mileage":15000,"fuelType":"Petrol","transmission":"Automatic","features":["abs"]}`

func (s *ServerTestSuite) TestRootAndHealth() {
	rec := s.do(http.MethodGet, "/", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Welcome to the Car Management API", rec.Body.String())

	rec = s.do(http.MethodGet, "/health", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *ServerTestSuite) TestDocsRoute() {
	rec := s.do(http.MethodGet, "/api/docs/openapi.json", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"openapi":"3.0.3"`)
}

func (s *ServerTestSuite) TestSignupAndLogin() {
	s.signup("alice")

	rec := s.do(http.MethodPost, "/api/auth/signup", "", `{"username":"alice","email":"other@example.com","password":"x"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "already exists")

	rec = s.do(http.MethodPost, "/api/auth/signup", "", `{"username":"bob"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "email")

	rec = s.do(http.MethodPost, "/api/auth/login", "", `{"email":"alice@example.com","password":"secret123"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"token"`)

	rec = s.do(http.MethodPost, "/api/auth/login", "", `{"email":"alice@example.com","password":"wrong"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "Invalid email or password")

	rec = s.do(http.MethodPost, "/api/auth/login", "", `{"email":"nobody@example.com","password":"secret123"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/auth/logout", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"Logged out successfully"}`, rec.Body.String())
}

func (s *ServerTestSuite) TestCarsRequireToken() {
	rec := s.do(http.MethodGet, "/api/cars", "", "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "No token, authorization denied")

	rec = s.do(http.MethodGet, "/api/cars", "not-a-jwt", "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "Token is not valid")

	req := httptest.NewRequest(http.MethodGet, "/api/cars", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	raw := httptest.NewRecorder()
	s.echo.ServeHTTP(raw, req)
	s.Equal(http.StatusUnauthorized, raw.Code)
}

func (s *ServerTestSuite) TestCarLifecycle() {
	token := s.signup("alice")

	rec := s.do(http.MethodGet, "/api/cars", token, "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())

	car := s.createCar(token, sedanJSON)
	s.Equal("Sedan", car.Model)
	s.Equal([]string{"abs"}, car.Features)
	s.Empty(car.Images)

	rec = s.do(http.MethodGet, "/api/cars/"+car.ID.String(), token, "")
	s.Equal(http.StatusOK, rec.Code)
	var detail struct {
		Message string     `json:"message"`
		Car     entity.Car `json:"car"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &detail))
	s.Equal("Car details retrieved successfully", detail.Message)
	s.Equal(car.ID, detail.Car.ID)

	rec = s.do(http.MethodPatch, "/api/cars/"+car.ID.String(), token, `{"price":18500,"images":["a.jpg"]}`)
	s.Equal(http.StatusOK, rec.Code)
	var updated entity.Car
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Equal(18500.0, updated.Price)
	s.Equal("Sedan", updated.Model)
	s.Equal([]string{"a.jpg"}, updated.Images)

	rec = s.do(http.MethodPatch, "/api/cars/"+car.ID.String(), token, `{"model":"  "}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodDelete, "/api/cars/"+car.ID.String(), token, "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"msg":"Car deleted"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/cars/"+car.ID.String(), token, "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestOwnershipIsolation() {
	alice := s.signup("alice")
	bob := s.signup("bob")
	car := s.createCar(alice, sedanJSON)
	path := "/api/cars/" + car.ID.String()

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, path, bob, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodPatch, path, bob, `{"price":1}`).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, path, bob, "").Code)

	rec := s.do(http.MethodGet, "/api/cars", bob, "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())

	stored, err := s.carRepo.FindByIDAndOwner(context.Background(), car.ID, car.UserID)
	s.Require().NoError(err)
	s.Equal(20000.0, stored.Price)
}

func (s *ServerTestSuite) TestOwnerInBodyIsIgnored() {
	alice := s.signup("alice")
	other := uuid.New()

	car := s.createCar(alice, fmt.Sprintf(`{"model":"Coupe","price":1,"year":2021,"fuelType":"Petrol","transmission":"Manual","user":%q}`, other))
	s.NotEqual(other, car.UserID)
}

func (s *ServerTestSuite) TestImageLimit() {
	token := s.signup("alice")

	rec := s.do(http.MethodPost, "/api/cars", token,
		`{"model":"Van","price":1,"year":2019,"fuelType":"Diesel","transmission":"Manual","images":`+imagesJSON(11)+`}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "images")

	car := s.createCar(token, `{"model":"Van","price":1,"year":2019,"fuelType":"Diesel","transmission":"Manual","images":`+imagesJSON(10)+`}`)
	s.Len(car.Images, 10)

	rec = s.do(http.MethodPatch, "/api/cars/"+car.ID.String(), token, `{"images":`+imagesJSON(11)+`}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestCreateCarValidation() {
	token := s.signup("alice")

	rec := s.do(http.MethodPost, "/api/cars", token, `{"model":"Sedan"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "price")

	rec = s.do(http.MethodPost, "/api/cars", token, `{"model":`)
	s.Equal(http.StatusBadRequest, rec.Code)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/cars/not-a-uuid", token, "").Code)
}

func TestCORSConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.CORS.AllowOrigins = []string{"http://localhost:3000"}

	cors := corsConfig(cfg)
	assert.Equal(t, []string{"http://localhost:3000"}, cors.AllowOrigins)
	assert.True(t, cors.AllowCredentials)
	assert.Contains(t, cors.AllowMethods, http.MethodPatch)

	wildcard := corsConfig(&config.Config{})
	assert.Equal(t, []string{"*"}, wildcard.AllowOrigins)
	assert.False(t, wildcard.AllowCredentials)
}

func TestContractCoversRoutes(t *testing.T) {
	doc, err := docs.Load(context.Background(), "")
	require.NoError(t, err)

	e := newEcho(&config.Config{SecretKey: config.SecretKeyConfig{Access: "x"}}, slog.New(slog.NewTextHandler(io.Discard, nil)), router.RouterParams{
		AuthHandler:    &handler.AuthHandler{},
		CarHandler:     &handler.CarHandler{},
		AuthMiddleware: &apimiddleware.AuthMiddleware{},
		Config:         &config.Config{},
	})

	methods := map[string]bool{
		http.MethodGet:    true,
		http.MethodPost:   true,
		http.MethodPatch:  true,
		http.MethodDelete: true,
	}

	for _, route := range e.Routes() {
		if !methods[route.Method] || route.Path == "/" {
			continue
		}
		path := strings.ReplaceAll(route.Path, ":id", "{id}")
		item := doc.Paths.Find(path)
		if !assert.NotNil(t, item, "undocumented route %s %s", route.Method, route.Path) {
			continue
		}
		assert.NotNil(t, item.GetOperation(route.Method), "undocumented method %s %s", route.Method, route.Path)
	}
}
