package catalogdto

import (
	"github.com/shopspring/decimal"

	"skn_admin/internal/catalog/models"
)

// OrderItemWire là một dòng hàng theo wire format của API
type OrderItemWire struct {
	Product  models.FlexID   `json:"product"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	ImageURL string          `json:"image_url"`
}

// OrderWire là đơn hàng theo wire format: flat snake_case, thông tin
// khách hàng trải phẳng ở top-level. Total/Shipping/Price có thể về
// dạng chuỗi — decimal.Decimal decode được cả hai.
type OrderWire struct {
	ID         models.FlexID   `json:"id,omitempty"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	Country    string          `json:"country"`
	PostalCode string          `json:"postal_code"`
	Phone      string          `json:"phone"`
	Total      decimal.Decimal `json:"total"`
	Shipping   decimal.Decimal `json:"shipping"`
	Status     string          `json:"status,omitempty"`
	CreatedAt  string          `json:"created_at,omitempty"`
	Items      []OrderItemWire `json:"items"`
}

// OrderFromWire chuyển đơn hàng từ wire format sang model client:
// gom các field khách hàng flat thành customer lồng trong order.
// Ảnh của dòng hàng giữ nguyên, không đi qua media resolution
// (đã được vật hóa lúc tạo đơn).
func OrderFromWire(w OrderWire) models.Order {
	items := make([]models.OrderItem, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, models.OrderItem{
			ProductID: it.Product.String(),
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.ImageURL,
		})
	}

	return models.Order{
		ID:       w.ID.String(),
		Items:    items,
		Total:    w.Total,
		Shipping: w.Shipping,
		Customer: models.OrderCustomer{
			Email:      w.Email,
			FirstName:  w.FirstName,
			LastName:   w.LastName,
			Address:    w.Address,
			City:       w.City,
			Country:    w.Country,
			PostalCode: w.PostalCode,
			Phone:      w.Phone,
		},
		Status:    models.OrderStatus(w.Status),
		CreatedAt: w.CreatedAt,
	}
}

// OrderToWire trải phẳng đơn hàng client thành wire format để tạo mới.
// ID/Status/CreatedAt do server cấp nên không gửi đi.
func OrderToWire(o models.Order) OrderWire {
	items := make([]OrderItemWire, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemWire{
			Product:  models.FlexID(it.ProductID),
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			ImageURL: it.Image,
		})
	}

	return OrderWire{
		FirstName:  o.Customer.FirstName,
		LastName:   o.Customer.LastName,
		Email:      o.Customer.Email,
		Address:    o.Customer.Address,
		City:       o.Customer.City,
		Country:    o.Customer.Country,
		PostalCode: o.Customer.PostalCode,
		Phone:      o.Customer.Phone,
		Total:      o.Total,
		Shipping:   o.Shipping,
		Items:      items,
	}
}

// OrderItemInput là một dòng hàng trong input tạo đơn
type OrderItemInput struct {
	ProductID string          `json:"productId" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	Image     string          `json:"image" validate:"omitempty,media_ref"`
}

// OrderCreateInput là input tạo đơn hàng mới (checkout công khai,
// không cần đăng nhập)
type OrderCreateInput struct {
	Items      []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Total      decimal.Decimal  `json:"total"`
	Shipping   decimal.Decimal  `json:"shipping"`
	Email      string           `json:"email" validate:"required,email"`
	FirstName  string           `json:"firstName" validate:"required"`
	LastName   string           `json:"lastName" validate:"required"`
	Address    string           `json:"address" validate:"required"`
	City       string           `json:"city" validate:"required"`
	Country    string           `json:"country" validate:"required"`
	PostalCode string           `json:"postalCode" validate:"required"`
	Phone      string           `json:"phone" validate:"required"`
}

// OrderStatusInput là input cập nhật trạng thái đơn hàng
type OrderStatusInput struct {
	Status models.OrderStatus `json:"status" validate:"required,order_status"`
}

// OrderFromCreateInput dựng model đơn hàng từ input tạo đơn
// (phục vụ việc trải phẳng qua OrderToWire)
func OrderFromCreateInput(in OrderCreateInput) models.Order {
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}

	return models.Order{
		Items:    items,
		Total:    in.Total,
		Shipping: in.Shipping,
		Customer: models.OrderCustomer{
			Email:      in.Email,
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Address:    in.Address,
			City:       in.City,
			Country:    in.Country,
			PostalCode: in.PostalCode,
			Phone:      in.Phone,
		},
	}
}
