package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/vasilikapapa/workout-app/internal/domain"
	"github.com/vasilikapapa/workout-app/internal/service"
)

const testJWTSecret = "handler-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// Stub services with overridable function fields; nil fields panic, which
// points straight at the handler calling an operation the test did not
// expect.

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password string) (string, *domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.registerFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubPlanService struct {
	createFn func(ctx context.Context, userID, title string) (*domain.Plan, error)
	listFn   func(ctx context.Context, userID string) ([]domain.Plan, error)
	renameFn func(ctx context.Context, userID, planID, title string) (*domain.Plan, error)
	deleteFn func(ctx context.Context, userID, planID string) error
}

func (s *stubPlanService) Create(ctx context.Context, userID, title string) (*domain.Plan, error) {
	return s.createFn(ctx, userID, title)
}

func (s *stubPlanService) List(ctx context.Context, userID string) ([]domain.Plan, error) {
	return s.listFn(ctx, userID)
}

func (s *stubPlanService) Rename(ctx context.Context, userID, planID, title string) (*domain.Plan, error) {
	return s.renameFn(ctx, userID, planID, title)
}

func (s *stubPlanService) Delete(ctx context.Context, userID, planID string) error {
	return s.deleteFn(ctx, userID, planID)
}

type stubDayService struct {
	createFn       func(ctx context.Context, userID, planID, name string) (*domain.Day, []domain.Section, error)
	listFn         func(ctx context.Context, userID, planID string) ([]domain.Day, error)
	renameFn       func(ctx context.Context, userID, dayID, name string) (*domain.Day, error)
	deleteFn       func(ctx context.Context, userID, dayID string) error
	listSectionsFn func(ctx context.Context, userID, dayID string) ([]domain.Section, error)
}

func (s *stubDayService) Create(ctx context.Context, userID, planID, name string) (*domain.Day, []domain.Section, error) {
	return s.createFn(ctx, userID, planID, name)
}

func (s *stubDayService) List(ctx context.Context, userID, planID string) ([]domain.Day, error) {
	return s.listFn(ctx, userID, planID)
}

func (s *stubDayService) Rename(ctx context.Context, userID, dayID, name string) (*domain.Day, error) {
	return s.renameFn(ctx, userID, dayID, name)
}

func (s *stubDayService) Delete(ctx context.Context, userID, dayID string) error {
	return s.deleteFn(ctx, userID, dayID)
}

func (s *stubDayService) ListSections(ctx context.Context, userID, dayID string) ([]domain.Section, error) {
	return s.listSectionsFn(ctx, userID, dayID)
}

type stubExerciseService struct {
	createFn func(ctx context.Context, userID, sectionID string, in service.ExerciseInput) (*domain.Exercise, error)
	getFn    func(ctx context.Context, userID, exerciseID string) (*domain.Exercise, error)
	listFn   func(ctx context.Context, userID, sectionID string) ([]domain.Exercise, error)
	updateFn func(ctx context.Context, userID, exerciseID string, in service.ExerciseUpdate) (*domain.Exercise, error)
	deleteFn func(ctx context.Context, userID, exerciseID string) error
}

func (s *stubExerciseService) Create(ctx context.Context, userID, sectionID string, in service.ExerciseInput) (*domain.Exercise, error) {
	return s.createFn(ctx, userID, sectionID, in)
}

func (s *stubExerciseService) Get(ctx context.Context, userID, exerciseID string) (*domain.Exercise, error) {
	return s.getFn(ctx, userID, exerciseID)
}

func (s *stubExerciseService) List(ctx context.Context, userID, sectionID string) ([]domain.Exercise, error) {
	return s.listFn(ctx, userID, sectionID)
}

func (s *stubExerciseService) Update(ctx context.Context, userID, exerciseID string, in service.ExerciseUpdate) (*domain.Exercise, error) {
	return s.updateFn(ctx, userID, exerciseID, in)
}

func (s *stubExerciseService) Delete(ctx context.Context, userID, exerciseID string) error {
	return s.deleteFn(ctx, userID, exerciseID)
}

// stubs bundles one stub per service so tests override only what they need.
type stubs struct {
	auth     *stubAuthService
	plans    *stubPlanService
	days     *stubDayService
	exercise *stubExerciseService
}

func newTestRouter(t *testing.T) (*gin.Engine, *stubs) {
	t.Helper()
	st := &stubs{
		auth:     &stubAuthService{},
		plans:    &stubPlanService{},
		days:     &stubDayService{},
		exercise: &stubExerciseService{},
	}
	router := gin.New()
	SetupRoutes(router, testJWTSecret, st.auth, st.plans, st.days, st.exercise)
	return router, st
}

// signTestToken issues a token the middleware accepts, with a configurable
// expiry so tests can produce expired tokens.
func signTestToken(t *testing.T, userID string, ttl time.Duration) string {
	t.Helper()
	claims := &jwtClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			Issuer:    "workout-app",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

// doRequest performs a request against the router, marshalling body as JSON
// when non-nil and attaching the bearer token when non-empty.
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded JSON body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// errorCode extracts the machine-stable error code from an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, rec, &body)
	return body.Error
}
