package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/martadmin/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestBearerTokenAttached(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Category{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("tok-123"), zap.NewNop())
	_, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", got)
}

func TestNoHeaderWithoutToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Category{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken(""), zap.NewNop())
	_, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got, "no Authorization header while logged out")
}

func TestErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"category not found"}`, "category not found"},
		{"message field", `{"message":"try again later"}`, "try again later"},
		{"error wins over message", `{"error":"a","message":"b"}`, "a"},
		{"non-json body", `<html>oops</html>`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, nil, zap.NewNop())
			_, err := client.ListCategories(context.Background())
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusNotFound, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestUserMessage(t *testing.T) {
	withMsg := &Error{Status: 409, Message: "title already exists"}
	assert.Equal(t, "title already exists", UserMessage(withMsg, "Failed to create category"))

	blank := &Error{Status: 500}
	assert.Equal(t, "Failed to create category", UserMessage(blank, "Failed to create category"))

	assert.Equal(t, "Failed to create category",
		UserMessage(errors.New("dial tcp: refused"), "Failed to create category"))
}

func TestLoginShapeChecked(t *testing.T) {
	cases := []struct {
		name string
		body string
		ok   bool
	}{
		{"complete", `{"admin":{"_id":"a1"},"token":"tok","message":"welcome"}`, true},
		{"missing token", `{"admin":{"_id":"a1"}}`, false},
		{"missing admin", `{"token":"tok"}`, false},
		{"null admin", `{"admin":null,"token":"tok"}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/admin/login", r.URL.Path)
				var creds map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
				assert.Equal(t, "admin@example.com", creds["email"])
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, nil, zap.NewNop())
			res, err := client.Login(context.Background(), "admin@example.com", "secret")
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, "tok", res.Token)
				assert.Equal(t, "welcome", res.Message)
			} else {
				require.Error(t, err)
				var apiErr *Error
				assert.False(t, errors.As(err, &apiErr), "shape errors are client-raised")
			}
		})
	}
}

func TestLoginUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, zap.NewNop())
	_, err := client.Login(context.Background(), "admin@example.com", "wrong")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestCreateProductMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "Premium Milk", r.FormValue("name"))
		assert.Equal(t, "49.5", r.FormValue("price"))
		assert.Equal(t, "12", r.FormValue("stockQuantity"))

		files := r.MultipartForm.File["images"]
		require.Len(t, files, 2)
		assert.Equal(t, "front.png", files[0].Filename)
		assert.Equal(t, "image/png", files[0].Header.Get("Content-Type"))

		json.NewEncoder(w).Encode(models.Product{ID: "p1", Name: "Premium Milk"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, zap.NewNop())
	created, err := client.CreateProduct(context.Background(), ProductForm{
		Name:          "Premium Milk",
		CategoryID:    "c1",
		Price:         49.5,
		StockQuantity: 12,
		Unit:          "litre",
		Images: []FileUpload{
			{Name: "front.png", ContentType: "image/png", Data: []byte{1, 2, 3}},
			{Name: "back.png", ContentType: "image/png", Data: []byte{4, 5, 6}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", created.ID)
}

func TestListProductsCategoryQuery(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("categoryId")
		json.NewEncoder(w).Encode([]models.Product{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, zap.NewNop())
	_, err := client.ListProducts(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", got)
}
