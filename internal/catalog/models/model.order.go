package models

import (
	"github.com/shopspring/decimal"
)

// OrderStatus là trạng thái vòng đời của đơn hàng.
// Tập giá trị đóng; client không giới hạn chuyển trạng thái
// (trạng thái nào cũng chuyển được sang trạng thái khác, máy trạng thái
// thực sự nằm ở server).
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid kiểm tra status có nằm trong tập giá trị đóng không
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem là một dòng hàng trong đơn, chụp lại thông tin sản phẩm
// tại thời điểm đặt hàng. Image giữ nguyên giá trị API trả về
// (đã được vật hóa lúc tạo đơn, không đi qua media resolution).
type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

// OrderCustomer là thông tin khách hàng nhúng trong đơn
type OrderCustomer struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

// Order định nghĩa đơn hàng phía client: customer lồng vào trong,
// field camelCase. Wire format của API là flat snake_case — việc
// chuyển đổi hai chiều nằm ở package dto.
type Order struct {
	ID        string          `json:"id"`
	Items     []OrderItem     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Shipping  decimal.Decimal `json:"shipping"`
	Customer  OrderCustomer   `json:"customer"`
	Status    OrderStatus     `json:"status"`
	CreatedAt string          `json:"createdAt"`
}
