package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/eschool/internal/app/models/dto"
	"github.com/yigit/eschool/internal/pkg/apperrors"
	"github.com/yigit/eschool/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"not found", apperrors.ErrCourseTeacherNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrTeacherNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate", apperrors.ErrCourseTeacherAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"course code taken", apperrors.NewCustomError(apperrors.ErrResourceAlreadyExists, "course with this code already exists"), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"validation", fmt.Errorf("%w: invalid teacher ID", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.NewBadRequestError("courseId must be a valid number"), http.StatusBadRequest, dto.ErrorCodeBadRequest},
		{"invalid token format", apperrors.ErrInvalidFormat, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/courseteachers", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeError(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, errors.New("password authentication failed for user postgres"))

	assert.NotContains(t, rec.Body.String(), "password")
}

func TestHandleAPIErrorIncludesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, fmt.Errorf("create: %w", apperrors.ErrCourseTeacherAlreadyExists))

	resp := decodeError(t, rec)
	assert.Equal(t, "teacher is already assigned to this course", resp.Error.Details)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func newAuthRouter(svc *auth.JWTService) *gin.Engine {
	m := NewAuthMiddleware(svc)
	router := gin.New()
	router.DELETE("/protected", m.JWTAuth(), m.RoleRequired("ADMIN"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour, TokenIssuer: "eschool.test"})
	expiredSvc := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: -time.Hour, TokenIssuer: "eschool.test"})
	router := newAuthRouter(svc)

	admin, _, err := svc.GenerateToken("registrar", "ADMIN")
	require.NoError(t, err)
	viewer, _, err := svc.GenerateToken("someone", "VIEWER")
	require.NoError(t, err)
	expired, _, err := expiredSvc.GenerateToken("registrar", "ADMIN")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"admin", "Bearer " + admin, http.StatusNoContent, ""},
		{"missing header", "", http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"garbage", "Bearer nonsense", http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"wrong role", "Bearer " + viewer, http.StatusForbidden, dto.ErrorCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Error.Code)
			}
		})
	}
}
