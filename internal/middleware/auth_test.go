package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleet-admin/internal/config"
	"fleet-admin/internal/handlers"
	"fleet-admin/internal/models"
	"fleet-admin/internal/repositories/repository_mocks"
	"fleet-admin/internal/services"
	"fleet-admin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	tokenService services.TokenServiceInterface
	userRepo     *repository_mocks.MockUserRepositoryInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	e            *echo.Echo
	user         *models.User
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = s.createTokenService(24 * time.Hour)
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.e = echo.New()
	s.user = &models.User{UserID: 42, CustomerID: 7, Email: "ops@fleet.test"}
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) createTokenService(ttl time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: ttl,
	})
}

func (s *AuthMiddlewareSuite) expectAuthEvent(eventType string) {
	s.metrics.EXPECT().IncrementCounter("authentication_event", map[string]string{"event_type": eventType}).Times(1)
}

func (s *AuthMiddlewareSuite) serve(mw echo.MiddlewareFunc, header string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(mw(next)(c))
	return rec
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidTokenSetsCaller() {
	token, _, err := s.tokenService.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	s.userRepo.EXPECT().AssignedAccountIDs(gomock.Any(), int64(42)).Return([]int64{3, 5}, nil)
	s.expectAuthEvent("authenticated")

	var got models.Caller
	rec := s.serve(RequireAuth(s.tokenService, s.userRepo, s.metrics), "Bearer "+token, func(c echo.Context) error {
		got = c.Get(handlers.CallerContextKey).(models.Caller)
		s.Equal("ops@fleet.test", c.Get("user_email"))
		return okHandler(c)
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(models.Caller{UserID: 42, CustomerID: 7, AssignedAccountIDs: []int64{3, 5}}, got)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	s.expectAuthEvent("missing_token")

	rec := s.serve(RequireAuth(s.tokenService, s.userRepo, s.metrics), "", okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	s.expectAuthEvent("invalid_token")

	rec := s.serve(RequireAuth(s.tokenService, s.userRepo, s.metrics), "Token abc", okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_003")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	s.expectAuthEvent("invalid_token")

	rec := s.serve(RequireAuth(s.tokenService, s.userRepo, s.metrics), "Bearer not.a.jwt", okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	expired := s.createTokenService(-time.Minute)
	token, _, err := expired.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	s.expectAuthEvent("expired_token")

	rec := s.serve(RequireAuth(expired, s.userRepo, s.metrics), "Bearer "+token, okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	other := s.createTokenService(time.Hour)
	token, _, err := other.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	s.expectAuthEvent("invalid_token")

	rec := s.serve(RequireAuth(s.tokenService, s.userRepo, s.metrics), "Bearer "+token, okHandler)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_AssignmentLookupFails() {
	token, _, err := s.tokenService.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	s.userRepo.EXPECT().AssignedAccountIDs(gomock.Any(), int64(42)).Return(nil, errors.New("connection reset"))

	rec := s.serve(RequireAuth(s.tokenService, s.userRepo, s.metrics), "Bearer "+token, okHandler)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection reset")
}
