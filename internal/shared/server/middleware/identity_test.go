package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupIdentityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Identity())
	router.GET("/open", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c)})
	})
	personal := router.Group("/personal")
	personal.Use(RequireIdentity())
	personal.GET("/profile", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c)})
	})
	return router
}

func TestIdentityGuestHeader(t *testing.T) {
	router := setupIdentityRouter()

	req := httptest.NewRequest(http.MethodGet, "/personal/profile", nil)
	req.Header.Set("X-Guest-Id", "abc123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != `{"userId":"guest:abc123"}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestIdentityUserHeaderWinsOverGuest(t *testing.T) {
	router := setupIdentityRouter()

	req := httptest.NewRequest(http.MethodGet, "/personal/profile", nil)
	req.Header.Set("X-User-Id", "user-1")
	req.Header.Set("X-Guest-Id", "abc123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != `{"userId":"user-1"}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestRequireIdentityRejectsAnonymous(t *testing.T) {
	router := setupIdentityRouter()

	req := httptest.NewRequest(http.MethodGet, "/personal/profile", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestOpenRouteAllowsAnonymous(t *testing.T) {
	router := setupIdentityRouter()

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
