package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skn_admin/config"
	"skn_admin/internal/catalog/client"
	"skn_admin/internal/catalog/credential"
	"skn_admin/internal/global"
	"skn_admin/internal/logger"
)

func TestMain(m *testing.M) {
	// Log ra stdout để test không tạo thư mục logs
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "stdout"})
	global.InitValidator()
	os.Exit(m.Run())
}

// newTestStore dựng Store trỏ vào test server với credential file tạm
func newTestStore(t *testing.T, srv *httptest.Server) (*Store, *credential.FileStore) {
	t.Helper()
	apiClient := client.NewApiClient(&config.Configuration{
		APIBaseURL:         srv.URL,
		HTTPTimeoutSeconds: 5,
	})
	creds := credential.NewFileStore(filepath.Join(t.TempDir(), "credential"))
	return NewStore(apiClient, creds), creds
}

// emptyCollections đăng ký handler trả mảng rỗng cho cả bốn collection,
// để fetchAll sau login không vướng 404
func emptyCollections(mux *http.ServeMux) {
	for _, path := range []string{"/api/products/", "/api/categories/", "/api/collections/", "/api/orders/"} {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("[]"))
		})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestLoginViaProbe(t *testing.T) {
	wantToken := client.EncodeBasic("admin", "secret")

	mux := http.NewServeMux()
	emptyCollections(mux)
	loginHit := false
	mux.HandleFunc("/api/me/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Basic "+wantToken, r.Header.Get("Authorization"))
		writeJSON(w, map[string]any{"id": 1, "username": "admin", "is_staff": true})
	})
	mux.HandleFunc("/api/login/", func(w http.ResponseWriter, r *http.Request) {
		loginHit = true
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s, creds := newTestStore(t, srv)
	require.True(t, s.Login(context.Background(), "admin", "secret"))

	// Probe /me/ thành công thì không được chạm tới /login/
	assert.False(t, loginHit)

	session := s.Session()
	require.NotNil(t, session)
	assert.Equal(t, "admin", session.Principal.Username)
	assert.Equal(t, wantToken, session.Credential)

	// Credential phải được lưu bền
	saved, ok := creds.Load()
	require.True(t, ok)
	assert.Equal(t, wantToken, saved)
}

func TestLoginFallback(t *testing.T) {
	mux := http.NewServeMux()
	emptyCollections(mux)
	mux.HandleFunc("/api/me/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/api/login/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "admin", body["username"])
		require.Equal(t, "secret", body["password"])

		writeJSON(w, map[string]any{"id": 1, "username": "admin", "is_staff": true})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s, _ := newTestStore(t, srv)
	require.True(t, s.Login(context.Background(), "admin", "secret"))

	session := s.Session()
	require.NotNil(t, session)
	// Session vẫn mang token Basic dù principal về qua /login/
	assert.Equal(t, client.EncodeBasic("admin", "secret"), session.Credential)
}

func TestLoginNoFallbackOnUnreadableProbe(t *testing.T) {
	loginHit := false

	mux := http.NewServeMux()
	mux.HandleFunc("/api/me/", func(w http.ResponseWriter, r *http.Request) {
		// Server trả lời được nhưng body không phải JSON
		_, _ = w.Write([]byte("<html>bảo trì</html>"))
	})
	mux.HandleFunc("/api/login/", func(w http.ResponseWriter, r *http.Request) {
		loginHit = true
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s, _ := newTestStore(t, srv)
	assert.False(t, s.Login(context.Background(), "admin", "secret"))

	// Chỉ status không thành công mới mở đường fallback; response không
	// đọc được thì dừng luôn, không thử /login/
	assert.False(t, loginHit)
	assert.Nil(t, s.Session())
}

func TestLoginRejectsNonStaff(t *testing.T) {
	mux := http.NewServeMux()
	emptyCollections(mux)
	mux.HandleFunc("/api/me/", func(w http.ResponseWriter, r *http.Request) {
		// Credential hợp lệ nhưng là tài khoản khách hàng thường
		writeJSON(w, map[string]any{"id": 5, "username": "shopper", "is_staff": false})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s, creds := newTestStore(t, srv)
	assert.False(t, s.Login(context.Background(), "shopper", "pw"))

	// Không cài session, không lưu credential
	assert.Nil(t, s.Session())
	_, ok := creds.Load()
	assert.False(t, ok)
	_, ok = s.client.Credential()
	assert.False(t, ok)
}

func TestLoginBothPathsFail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/me/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/api/login/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s, _ := newTestStore(t, srv)
	assert.False(t, s.Login(context.Background(), "admin", "wrong"))
	assert.Nil(t, s.Session())
}

func TestSignupInstallsSession(t *testing.T) {
	mux := http.NewServeMux()
	emptyCollections(mux)
	mux.HandleFunc("/api/register/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "newadmin", body["username"])
		require.Equal(t, true, body["is_staff"])

		writeJSON(w, map[string]any{"id": 9, "username": "newadmin", "is_staff": true})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s, creds := newTestStore(t, srv)
	require.True(t, s.Signup(context.Background(), "newadmin", "a@b.com", "secret"))

	session := s.Session()
	require.NotNil(t, session)
	assert.Equal(t, "newadmin", session.Principal.Username)

	saved, ok := creds.Load()
	require.True(t, ok)
	assert.Equal(t, client.EncodeBasic("newadmin", "secret"), saved)
}

func TestLogoutClearsEverything(t *testing.T) {
	mux := http.NewServeMux()
	emptyCollections(mux)
	mux.HandleFunc("/api/me/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"id": 1, "username": "admin", "is_staff": true})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s, creds := newTestStore(t, srv)
	require.True(t, s.Login(context.Background(), "admin", "secret"))

	s.Logout()

	assert.Nil(t, s.Session())
	_, ok := s.client.Credential()
	assert.False(t, ok)
	_, ok = creds.Load()
	assert.False(t, ok)
}

func TestInitRestoresValidCredential(t *testing.T) {
	token := client.EncodeBasic("admin", "secret")

	mux := http.NewServeMux()
	emptyCollections(mux)
	mux.HandleFunc("/api/me/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Basic "+token, r.Header.Get("Authorization"))
		writeJSON(w, map[string]any{"id": 1, "username": "admin", "is_staff": true})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s, creds := newTestStore(t, srv)
	require.NoError(t, creds.Save(token))

	assert.True(t, s.Loading())
	s.Init(context.Background())
	assert.False(t, s.Loading())

	session := s.Session()
	require.NotNil(t, session)
	assert.Equal(t, "admin", session.Principal.Username)
}

func TestInitDiscardsStaleCredential(t *testing.T) {
	mux := http.NewServeMux()
	emptyCollections(mux)
	mux.HandleFunc("/api/me/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s, creds := newTestStore(t, srv)
	require.NoError(t, creds.Save("c3RhbGU6Y3JlZA=="))

	s.Init(context.Background())

	// Credential cũ bị vứt cả trong memory lẫn trên đĩa
	assert.Nil(t, s.Session())
	_, ok := s.client.Credential()
	assert.False(t, ok)
	_, ok = creds.Load()
	assert.False(t, ok)
	assert.False(t, s.Loading())
}
