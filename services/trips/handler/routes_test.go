package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/nebengdinas/internal/pkg/jwt"
	"github.com/piresc/nebengdinas/internal/pkg/middleware"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/services/trips/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jwtConfig = models.JWTConfig{Secret: "routes-secret", Expiration: 10, Issuer: "nebengdinas"}

func setupRoutes(t *testing.T) (*echo.Echo, *mocks.MockTripUC) {
	ctrl := gomock.NewController(t)
	mockTripUC := mocks.NewMockTripUC(ctrl)

	e := echo.New()
	NewHandler(mockTripUC).RegisterRoutes(e.Group("/api/v1"), middleware.JWTAuthMiddleware(jwtConfig))
	return e, mockTripUC
}

func bearer(t *testing.T, identity models.Identity) string {
	token, _, err := jwtpkg.GenerateToken(identity, jwtConfig)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRoutes_ApprovalLinkNeedsNoBearer(t *testing.T) {
	e, mockTripUC := setupRoutes(t)
	mockTripUC.EXPECT().DecideByToken(gomock.Any(), "abc", nil).
		Return(&models.ManagerDecision{Trip: &models.Trip{}, Outcome: "approve"}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/approvals/abc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_ApprovalLinkGetOnlyPreviews(t *testing.T) {
	e, mockTripUC := setupRoutes(t)
	mockTripUC.EXPECT().PreviewByToken(gomock.Any(), "abc").
		Return(&models.ApprovalPreview{Trip: &models.Trip{}, Action: "approve"}, nil)
	mockTripUC.EXPECT().DecideByToken(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/approvals/abc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_TripsRequireBearer(t *testing.T) {
	e, _ := setupRoutes(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trips", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_AdminRequiresRole(t *testing.T) {
	e, mockTripUC := setupRoutes(t)
	employee := models.Identity{UserID: uuid.New(), Email: "rina@corp.id", Role: models.RoleEmployee}
	admin := models.Identity{UserID: uuid.New(), Email: "ops@corp.id", Role: models.RoleAdmin}
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/trips/"+id.String()+"/escalate", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, employee))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	mockTripUC.EXPECT().Escalate(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(&models.Trip{ID: id}, nil)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/trips/"+id.String()+"/escalate", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, admin))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
