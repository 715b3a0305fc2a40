package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/config"
	"github.com/example/martadmin/pkg/listview"
	"github.com/example/martadmin/pkg/models"
	"github.com/example/martadmin/pkg/session"
	"github.com/example/martadmin/pkg/store"
	"github.com/example/martadmin/pkg/theme"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// upstream fakes the platform API far enough for the routes under test.
type upstream struct {
	token      string
	lastAuth   string
	lastStatus map[string]bool
}

func (u *upstream) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"admin":   map[string]string{"_id": "a1", "email": creds["email"]},
			"token":   u.token,
			"message": "Login successful",
		})
	})
	mux.HandleFunc("/api/categories/admin", func(w http.ResponseWriter, r *http.Request) {
		u.lastAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Category{
			{ID: "c1", Title: "Dairy", IsActive: true, CreatedAt: "2024-01-05T10:00:00Z"},
			{ID: "c2", Title: "Bakery", IsActive: false, CreatedAt: "2024-02-05T10:00:00Z"},
		})
	})
	mux.HandleFunc("/api/categories/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			var body map[string]bool
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			u.lastStatus = body
		}
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})
	return mux
}

func signToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "a1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("upstream-secret"))
	require.NoError(t, err)
	return signed
}

func newTestGateway(t *testing.T) (*Gateway, *upstream) {
	t.Helper()
	up := &upstream{token: signToken(t)}
	srv := httptest.NewServer(up.handler(t))
	t.Cleanup(srv.Close)

	logger := zap.NewNop()
	kv := store.NewMemoryKV()
	sess := session.New(kv, logger)
	th := theme.New(kv)
	client := api.NewClient(srv.URL, sess, logger)
	ctrl := NewControllers(client, logger, listview.NewLogNotifier(logger), nil)

	cfg := &config.Config{}
	g := NewGateway(cfg, logger, client, sess, th, nil, ctrl)
	g.SetupRoutes()
	return g, up
}

func do(g *Gateway, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	g.Router().ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, g *Gateway) {
	t.Helper()
	rec := do(g, http.MethodPost, "/admin/login", map[string]string{
		"email": "admin@example.com", "password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestHealth(t *testing.T) {
	g, _ := newTestGateway(t)
	rec := do(g, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutesRequireSession(t *testing.T) {
	g, _ := newTestGateway(t)
	for _, path := range []string{"/admin/categories", "/admin/dashboard", "/admin/session", "/admin/theme"} {
		rec := do(g, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestLoginFlow(t *testing.T) {
	g, up := newTestGateway(t)
	login(t, g)

	rec := do(g, http.MethodGet, "/admin/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sessionInfo struct {
		LoggedIn bool `json:"loggedIn"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sessionInfo))
	assert.True(t, sessionInfo.LoggedIn)

	rec = do(g, http.MethodGet, "/admin/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+up.token, up.lastAuth, "the session token rides along upstream")

	var list struct {
		Items []models.Category  `json:"items"`
		Stats map[string]float64 `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 1.0, list.Stats["active"])
}

func TestLoginBadCredentials(t *testing.T) {
	g, _ := newTestGateway(t)
	rec := do(g, http.MethodPost, "/admin/login", map[string]string{
		"email": "admin@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "upstream status is preserved")
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestLogout(t *testing.T) {
	g, _ := newTestGateway(t)
	login(t, g)

	rec := do(g, http.MethodPost, "/admin/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(g, http.MethodGet, "/admin/categories", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListQueryState(t *testing.T) {
	g, _ := newTestGateway(t)
	login(t, g)

	rec := do(g, http.MethodGet, "/admin/categories?search=dairy&sort=asc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []models.Category `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Dairy", list.Items[0].Title)
}

func TestStatusToggle(t *testing.T) {
	g, up := newTestGateway(t)
	login(t, g)

	rec := do(g, http.MethodPatch, "/admin/categories/c2/status", map[string]bool{"isActive": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]bool{"isActive": true}, up.lastStatus)
}

func TestValidationErrorsAre400s(t *testing.T) {
	g, _ := newTestGateway(t)
	login(t, g)

	rec := do(g, http.MethodPost, "/admin/offer-texts", map[string]string{"text": "hey"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "Offer text must be at least 5 characters", body.Fields[0].Message)
}

func TestMalformedUploadBodyIs400(t *testing.T) {
	g, _ := newTestGateway(t)
	login(t, g)

	req := httptest.NewRequest(http.MethodPost, "/admin/categories",
		bytes.NewReader([]byte("title=Dairy")))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	rec := httptest.NewRecorder()
	g.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Category image is required",
		"an unreadable body is not reported as a missing field")
}

func TestAbsentFileIsValidationError(t *testing.T) {
	g, _ := newTestGateway(t)
	login(t, g)

	req := httptest.NewRequest(http.MethodPost, "/admin/categories",
		bytes.NewReader([]byte("title=Dairy")))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	g.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Category image is required")
}

func TestAuditTrailWithoutRecorder(t *testing.T) {
	g, _ := newTestGateway(t)
	login(t, g)

	rec := do(g, http.MethodGet, "/admin/audit/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"entries":[]}`, rec.Body.String())
}

func TestThemeRoutes(t *testing.T) {
	g, _ := newTestGateway(t)
	login(t, g)

	rec := do(g, http.MethodPut, "/admin/theme", map[string]string{"mode": "dark", "palette": "indigo"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(g, http.MethodGet, "/admin/theme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "dark", body["mode"])
	assert.Equal(t, "indigo", body["palette"])
}
