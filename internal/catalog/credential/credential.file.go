// Package credential - ô lưu trữ bền cho credential Basic-auth.
// Một key duy nhất, mirror của credential trong memory để reload tiến
// trình không bắt đăng nhập lại; không có file nghĩa là chưa xác thực.
package credential

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FileStore lưu token Basic đã mã hóa vào một file.
// Đây là ô mutable dùng chung: ghi đồng thời không được đồng bộ hóa,
// lần ghi sau cùng thắng.
type FileStore struct {
	path string
}

// NewFileStore tạo FileStore với đường dẫn file chỉ định
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load đọc credential đã lưu; false nếu chưa có
func (s *FileStore) Load() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// Save ghi credential xuống file (0600, chỉ chủ sở hữu đọc được)
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return errors.Wrap(err, "không tạo được thư mục credential")
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return errors.Wrap(err, "không ghi được file credential")
	}
	return nil
}

// Clear xóa credential đã lưu; file không tồn tại không phải là lỗi
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "không xóa được file credential")
	}
	return nil
}
