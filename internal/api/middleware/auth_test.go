package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/config"
	"github.com/y-inoue-koma/club-activity-manager/internal/model"
	"github.com/y-inoue-koma/club-activity-manager/pkg/jwt"
)

func newTestRouter(jm *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("", JWTAuth(jm, nil, zap.NewNop()))
	protected.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint(CtxUserID)})
	})

	admin := protected.Group("", RoleAuth(model.RoleAdmin))
	admin.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func testManager(accessTTL time.Duration) *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-with-length",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func request(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	r := newTestRouter(testManager(15 * time.Minute))

	if w := request(r, "/protected", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	jm := testManager(15 * time.Minute)
	r := newTestRouter(jm)

	token, err := jm.GenerateAccessToken(7, model.RoleUser)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if w := request(r, "/protected", token); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jm := testManager(-time.Minute)
	r := newTestRouter(jm)

	token, _ := jm.GenerateAccessToken(7, model.RoleUser)
	if w := request(r, "/protected", token); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthRejectsRefreshToken(t *testing.T) {
	jm := testManager(15 * time.Minute)
	r := newTestRouter(jm)

	token, _ := jm.GenerateRefreshToken(7, model.RoleUser)
	if w := request(r, "/protected", token); w.Code != http.StatusUnauthorized {
		t.Errorf("refresh token on a protected route: status = %d, want 401", w.Code)
	}
}

func TestRoleAuthBlocksNonAdmin(t *testing.T) {
	jm := testManager(15 * time.Minute)
	r := newTestRouter(jm)

	userToken, _ := jm.GenerateAccessToken(7, model.RoleUser)
	if w := request(r, "/admin", userToken); w.Code != http.StatusForbidden {
		t.Errorf("user role on admin route: status = %d, want 403", w.Code)
	}

	adminToken, _ := jm.GenerateAccessToken(1, model.RoleAdmin)
	if w := request(r, "/admin", adminToken); w.Code != http.StatusOK {
		t.Errorf("admin role on admin route: status = %d, want 200", w.Code)
	}
}
