package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skn_admin/config"
	"skn_admin/internal/common"
	"skn_admin/internal/logger"
)

func TestMain(m *testing.M) {
	// Log ra stdout để test không tạo thư mục logs
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "stdout"})
	os.Exit(m.Run())
}

func newTestClient(srv *httptest.Server) *ApiClient {
	return NewApiClient(&config.Configuration{
		APIBaseURL:         srv.URL,
		HTTPTimeoutSeconds: 5,
	})
}

func TestStructuredPayloadEncode(t *testing.T) {
	body, contentType, err := StructuredPayload{Data: map[string]any{"name": "Silk Topper"}}.encode()
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Silk Topper"}`, string(data))
}

func TestMultipartPayloadEncode(t *testing.T) {
	payload := MultipartPayload{
		Fields: map[string]string{"name": "Silk Topper"},
		Files: []FilePart{
			{Field: "image", Filename: "x.jpg", Content: []byte("jpegdata")},
		},
	}

	body, contentType, err := payload.encode()
	require.NoError(t, err)

	// Không bao giờ là JSON content type
	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
	require.NotEmpty(t, params["boundary"])

	// Body đọc lại được bằng multipart reader
	reader := multipart.NewReader(body, params["boundary"])
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	assert.Equal(t, "Silk Topper", form.Value["name"][0])
	require.Len(t, form.File["image"], 1)
	assert.Equal(t, "x.jpg", form.File["image"][0].Filename)
}

func TestDoSetsHeaders(t *testing.T) {
	var gotAuth, gotRequestID, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.SetCredential(EncodeBasic("alice", "secret"))

	err := c.Post(context.Background(), "/categories/", StructuredPayload{Data: map[string]any{"name": "Wigs"}}, true, nil)
	require.NoError(t, err)

	assert.Equal(t, "Basic "+EncodeBasic("alice", "secret"), gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDoWithoutCredentialSendsNoAuthHeader(t *testing.T) {
	var sawAuthHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	var out []any
	require.NoError(t, c.Get(context.Background(), "/products/", true, &out))
	assert.False(t, sawAuthHeader, "chưa có session thì không được đính Authorization")
}

func TestDoMultipartHasNoJSONContentType(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	payload := MultipartPayload{Fields: map[string]string{"name": "Wigs"}}
	require.NoError(t, c.Post(context.Background(), "/categories/", payload, false, nil))
	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data"), "content type phải là multipart, got %q", gotContentType)
}

func TestDoClassifiesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	err := c.Delete(context.Background(), "/collections/c1/", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.True(t, errors.Is(err, common.ErrStatus))

	var apiErr *common.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestDoTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // đóng ngay để request không hoàn thành được

	c := newTestClient(srv)
	err := c.Get(context.Background(), "/products/", false, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTransport))
}

func TestDoDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "username": "alice", "is_staff": true})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	var out struct {
		Username string `json:"username"`
		IsStaff  bool   `json:"is_staff"`
	}
	require.NoError(t, c.GetWith(context.Background(), "/me/", EncodeBasic("alice", "secret"), &out))
	assert.Equal(t, "alice", out.Username)
	assert.True(t, out.IsStaff)
}
