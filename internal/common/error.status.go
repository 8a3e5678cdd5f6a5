package common

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest   = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized = 401 // Chưa xác thực
	StatusForbidden    = 403 // Không có quyền truy cập
	StatusNotFound     = 404 // Không tìm thấy tài nguyên
	StatusConflict     = 409 // Xung đột dữ liệu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: API_001)
	Category    string // Phân loại lỗi (ví dụ: Api)
	SubCategory string // Phân loại con (ví dụ: Transport)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// Api Errors (API_xxx) — lỗi khi gọi API từ xa
	ErrCodeApiTransport = ErrorCode{
		Code:        "API_001",
		Category:    "Api",
		SubCategory: "Transport",
		Description: "Request không hoàn thành được (lỗi mạng)",
	}

	ErrCodeApiStatus = ErrorCode{
		Code:        "API_002",
		Category:    "Api",
		SubCategory: "Status",
		Description: "API trả về status không thành công",
	}

	ErrCodeApiDecode = ErrorCode{
		Code:        "API_003",
		Category:    "Api",
		SubCategory: "Decode",
		Description: "Không đọc được response của API",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Thông tin đăng nhập không hợp lệ",
	}

	ErrCodeAuthStaff = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Staff",
		Description: "Tài khoản hợp lệ nhưng không có quyền staff",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Dữ liệu đầu vào không hợp lệ",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code (0 nếu request không hoàn thành)
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	targetErr, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code.Code == targetErr.Code.Code
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Api Errors
	ErrTransport = NewError(ErrCodeApiTransport, "Request không hoàn thành được", 0, nil)
	ErrStatus    = NewError(ErrCodeApiStatus, "API trả về status không thành công", 0, nil)

	// Authentication Errors
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Thông tin đăng nhập không chính xác", StatusUnauthorized, nil)
	ErrNotStaff           = NewError(ErrCodeAuthStaff, "Tài khoản không có quyền staff", StatusForbidden, nil)
	ErrNoCredential       = NewError(ErrCodeAuthCredentials, "Chưa có credential được lưu", StatusUnauthorized, nil)

	// Validation Errors
	ErrInvalidInput = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
)
