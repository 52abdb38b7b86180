package middleware

import (
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(secret), func(c *gin.Context) {
		owner, ok := OwnerID(c)
		if !ok {
			return
		}
		c.String(http.StatusOK, owner)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	user := &model.User{Email: "a@b.com"}
	user.ID = "11111111-2222-3333-4444-555555555555"

	valid, err := util.GenerateJWT(user, "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	expired, _ := util.GenerateJWT(user, "secret", -time.Minute)
	foreign, _ := util.GenerateJWT(user, "other-secret", time.Hour)

	cases := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized, ""},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, ""},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, ""},
		{"valid", "Bearer " + valid, http.StatusOK, user.ID},
	}

	r := newAuthRouter("secret")
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status: got=%d want=%d", rec.Code, tc.wantCode)
			}
			if tc.wantBody != "" && rec.Body.String() != tc.wantBody {
				t.Fatalf("owner: got=%q want=%q", rec.Body.String(), tc.wantBody)
			}
		})
	}
}
