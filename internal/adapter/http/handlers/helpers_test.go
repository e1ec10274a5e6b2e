package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fenceworks/internal/adapter/http/middleware"
	"fenceworks/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	customerSession = entities.Session{UserID: "cust-1", Role: entities.RoleCustomer, Email: "c@test.com", DisplayName: "Casey"}
	adminSession    = entities.Session{UserID: "admin-1", Role: entities.RoleAdmin, Email: "a@test.com", DisplayName: "Ada"}
)

// newTestRouter returns an engine that attaches session to every request
// when it is non-zero.
func newTestRouter(session entities.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if !session.IsZero() {
		r.Use(func(c *gin.Context) {
			middleware.SetSession(c, session)
			c.Next()
		})
	}
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}
