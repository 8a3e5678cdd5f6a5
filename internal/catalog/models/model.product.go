// Package models - các thực thể catalog phía client.
// Đây là bản chụp (snapshot) dữ liệu từ API, không phải model database:
// mọi collection được thay thế toàn bộ mỗi lần refresh.
package models

import (
	"github.com/shopspring/decimal"
)

// Product định nghĩa sản phẩm trong catalog.
// Image/Video/Images là URL tuyệt đối sau khi đã resolve media reference;
// rỗng nghĩa là không có, không bao giờ là đường dẫn tương đối nửa vời.
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`               // ID hoặc tên category (tùy wire format)
	CategoryName    string          `json:"categoryName,omitempty"` // Tên category nhúng kèm (nếu API trả về)
	Price           decimal.Decimal `json:"price"`
	Description     string          `json:"description"`
	Details         string          `json:"details"`
	Image           string          `json:"image"`
	Images          []string        `json:"images"` // Danh sách ảnh phụ, giữ nguyên thứ tự
	Video           string          `json:"video,omitempty"`
	DeliveryCharges decimal.Decimal `json:"deliveryCharges,omitempty"`
	Featured        bool            `json:"featured,omitempty"`
	Bestseller      bool            `json:"bestseller,omitempty"`
}
