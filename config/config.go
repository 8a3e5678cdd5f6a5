package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Cấu hình duy nhất bắt buộc về mặt nghiệp vụ là origin của API từ xa;
// phần còn lại là cấu hình ambient (timeout, file credential, logging).
type Configuration struct {
	// Origin của API backend. Media tương đối sẽ được resolve theo origin này.
	APIBaseURL string `env:"SKN_API_BASE_URL" envDefault:"https://sleepy-carrie-ayesha25-2b164d3d.koyeb.app"`

	// Timeout cho mỗi HTTP request (giây). 0 = dùng mặc định của transport.
	HTTPTimeoutSeconds int `env:"SKN_HTTP_TIMEOUT" envDefault:"30"`

	// Đường dẫn file lưu credential Basic-auth giữa các lần chạy.
	// Rỗng = dùng mặc định ~/.skn_admin/credential
	CredentialFile string `env:"SKN_CREDENTIAL_FILE"`

	// Cấu hình logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`  // trace, debug, info, warn, error
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // json, text
	LogOutput string `env:"LOG_OUTPUT" envDefault:"both"` // file, stdout, both
	LogPath   string `env:"LOG_PATH" envDefault:"./logs"`
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", goEnv))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env (nếu tìm thấy) và environment.
// Không tìm thấy file env không phải là lỗi: mọi field đều có default
// hoặc đọc được trực tiếp từ environment.
func NewConfig() (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("không thể load file env tại %s: %w", envPath, err)
			}
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("lỗi khi parse config: %w", err)
	}

	return &cfg, nil
}

// ResolveCredentialFile trả về đường dẫn file credential, áp dụng mặc định
// ~/.skn_admin/credential khi cấu hình để trống.
func (c *Configuration) ResolveCredentialFile() string {
	if c.CredentialFile != "" {
		return c.CredentialFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".skn_admin", "credential")
	}
	return filepath.Join(home, ".skn_admin", "credential")
}
