package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/no0bAuntor/online-voting-system/internal/api"
	"github.com/no0bAuntor/online-voting-system/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestSecuredMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", api.Secured(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString(constants.UserID)})
	})

	wrongKeyToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "someone"}).
		SignedString([]byte("a-different-secret"))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not-a-token", wantStatus: http.StatusForbidden},
		{name: "wrong signing key", authHeader: "Bearer " + wrongKeyToken, wantStatus: http.StatusForbidden},
		{name: "valid token", authHeader: "Bearer " + signToken(t, "abc123"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantStatus == http.StatusOK && w.Body.String() != `{"id":"abc123"}` {
				t.Errorf("Expected the caller id on the context, got %s", w.Body.String())
			}
		})
	}
}
