// Package client - transport HTTP nói chuyện với API catalog từ xa.
// Client chỉ chịu trách nhiệm dựng request, đính credential và phân loại
// lỗi; cache/refresh nằm ở package store.
package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"skn_admin/config"
	"skn_admin/internal/common"
	"skn_admin/internal/global"
	"skn_admin/internal/logger"
)

// ApiClient giữ origin của API, http client và credential Basic hiện hành.
// Credential là ô mutable dùng chung: nhiều login đồng thời không được
// đồng bộ hóa, login thành công sau cùng thắng.
type ApiClient struct {
	baseURL string // Origin của backend, dùng cho media resolution
	apiURL  string // baseURL + /api, prefix của mọi endpoint
	http    *http.Client
	log     *logrus.Logger

	mu         sync.RWMutex
	credential string // Token Basic đã mã hóa; rỗng = chưa có session
}

// NewApiClient tạo ApiClient từ cấu hình
func NewApiClient(cfg *config.Configuration) *ApiClient {
	var timeout time.Duration
	if cfg.HTTPTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	}

	return &ApiClient{
		baseURL: cfg.APIBaseURL,
		apiURL:  cfg.APIBaseURL + "/api",
		http:    &http.Client{Timeout: timeout},
		log:     logger.GetAppLogger(),
	}
}

// EncodeBasic mã hóa cặp username/password thành token Basic-auth
func EncodeBasic(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}

// SetCredential cài credential cho các request tiếp theo
func (c *ApiClient) SetCredential(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.credential = token
}

// ClearCredential gỡ credential hiện hành
func (c *ApiClient) ClearCredential() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.credential = ""
}

// Credential trả về credential hiện hành, false nếu chưa có
func (c *ApiClient) Credential() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.credential, c.credential != ""
}

// Get gửi GET và decode JSON response vào out.
// authed = đính credential hiện hành nếu có.
func (c *ApiClient) Get(ctx context.Context, path string, authed bool, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, c.tokenFor(authed), out)
}

// GetWith gửi GET với token chỉ định thay vì credential đã cài.
// Dùng cho bước probe /me/ của login: credential ứng viên chưa được
// chấp nhận nên chưa cài vào client.
func (c *ApiClient) GetWith(ctx context.Context, path string, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, token, out)
}

// Post gửi POST với payload (JSON hoặc multipart) và decode response vào out nếu cần
func (c *ApiClient) Post(ctx context.Context, path string, payload Payload, authed bool, out any) error {
	return c.do(ctx, http.MethodPost, path, payload, c.tokenFor(authed), out)
}

// Patch gửi PATCH với payload (JSON hoặc multipart)
func (c *ApiClient) Patch(ctx context.Context, path string, payload Payload, authed bool) error {
	return c.do(ctx, http.MethodPatch, path, payload, c.tokenFor(authed), nil)
}

// Delete gửi DELETE
func (c *ApiClient) Delete(ctx context.Context, path string, authed bool) error {
	return c.do(ctx, http.MethodDelete, path, nil, c.tokenFor(authed), nil)
}

// tokenFor trả về credential hiện hành nếu authed và đã có session
func (c *ApiClient) tokenFor(authed bool) string {
	if !authed {
		return ""
	}
	token, _ := c.Credential()
	return token
}

// do dựng và gửi một request: validate payload có cấu trúc, đính
// X-Request-ID và Authorization, phân loại lỗi theo transport/status/decode.
// Không retry, không timeout riêng ngoài timeout của http client.
func (c *ApiClient) do(ctx context.Context, method, path string, payload Payload, token string, out any) error {
	if err := c.validatePayload(payload); err != nil {
		return err
	}

	var body io.Reader
	contentType := ""
	if payload != nil {
		var err error
		body, contentType, err = payload.encode()
		if err != nil {
			return common.NewError(common.ErrCodeValidationInput, "Không encode được payload", common.StatusBadRequest, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, body)
	if err != nil {
		return common.NewError(common.ErrCodeApiTransport, "Không dựng được request", 0, errors.WithStack(err))
	}

	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Basic "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return common.NewError(common.ErrCodeApiTransport,
			fmt.Sprintf("Request không hoàn thành được: %s %s", method, path), 0, errors.WithStack(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return common.NewError(common.ErrCodeApiStatus,
			fmt.Sprintf("API trả về status %d: %s %s", resp.StatusCode, method, path), resp.StatusCode, nil)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return common.NewError(common.ErrCodeApiDecode,
				fmt.Sprintf("Không đọc được response: %s %s", method, path), resp.StatusCode, errors.WithStack(err))
		}
	}

	return nil
}

// validatePayload chạy validator trên Data của StructuredPayload khi Data
// là struct. Multipart blob là opaque, gửi nguyên trạng không validate.
func (c *ApiClient) validatePayload(payload Payload) error {
	sp, ok := payload.(StructuredPayload)
	if !ok || global.Validate == nil {
		return nil
	}

	v := reflect.ValueOf(sp.Data)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	if err := global.Validate.Struct(v.Interface()); err != nil {
		return common.NewError(common.ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", common.StatusBadRequest, err)
	}
	return nil
}
