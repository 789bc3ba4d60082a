package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"acadplan_backend/internal/config"
	"acadplan_backend/internal/model"
	"acadplan_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     testSecret,
			ExpireTime: time.Hour,
		},
	}
}

func tokenFor(t *testing.T, role model.UserRole) string {
	t.Helper()
	user := &model.User{
		BaseModel: model.BaseModel{ID: 7},
		Name:      "Ana",
		Email:     "ana@example.edu",
		Role:      role,
	}
	token, err := util.GenerateJWT(user, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return token
}

func protectedRouter(cfg *config.Config, roles ...model.UserRole) *gin.Engine {
	router := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(cfg)}
	if len(roles) > 0 {
		handlers = append(handlers, RoleMiddleware(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/test", handlers...)
	return router
}

func request(router *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := protectedRouter(testConfig())

	if w := request(router, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router := protectedRouter(testConfig())

	if w := request(router, "not-a-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router := protectedRouter(testConfig())

	if w := request(router, tokenFor(t, model.Teacher)); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		allowed  []model.UserRole
		role     model.UserRole
		wantCode int
	}{
		{"coordinator passes coordinator gate", []model.UserRole{model.Coordinator}, model.Coordinator, http.StatusOK},
		{"teacher blocked at coordinator gate", []model.UserRole{model.Coordinator}, model.Teacher, http.StatusForbidden},
		{"admin passes every gate", []model.UserRole{model.Coordinator}, model.Admin, http.StatusOK},
		{"teacher passes teacher gate", []model.UserRole{model.Teacher}, model.Teacher, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := protectedRouter(testConfig(), tt.allowed...)
			if w := request(router, tokenFor(t, tt.role)); w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}
