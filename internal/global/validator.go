// Package global giữ các thành phần dùng chung đã khởi tạo một lần
// cho toàn bộ ứng dụng (validator).
package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate là validator instance dùng chung, khởi tạo qua InitValidator
var Validate *validator.Validate

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("order_status", validateOrderStatus)
	_ = Validate.RegisterValidation("media_ref", validateMediaRef)
}

// validateOrderStatus kiểm tra trạng thái đơn hàng thuộc tập giá trị đóng.
// Client không giới hạn chuyển trạng thái, chỉ kiểm tra membership.
func validateOrderStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "paid", "shipped", "delivered", "cancelled":
		return true
	}
	return false
}

// validateMediaRef kiểm tra media reference đã resolve: hoặc rỗng,
// hoặc là URL tuyệt đối — không bao giờ là đường dẫn tương đối nửa vời.
func validateMediaRef(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return strings.HasPrefix(value, "http")
}
