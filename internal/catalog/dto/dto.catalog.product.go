// Package catalogdto - wire format của API và các input có validate tag.
// Wire format là flat snake_case (Django REST); model phía client là
// camelCase với customer lồng trong order. Mọi chuyển đổi hai chiều
// nằm trong package này.
package catalogdto

import (
	"github.com/shopspring/decimal"

	"skn_admin/internal/catalog/models"
)

// ProductImageWire là một ảnh phụ của sản phẩm trên wire
type ProductImageWire struct {
	Image string `json:"image"`
}

// ProductWire là sản phẩm theo wire format của API.
// Price có thể về dạng chuỗi hoặc số — decimal.Decimal decode được cả hai.
type ProductWire struct {
	ID              models.FlexID      `json:"id"`
	Name            string             `json:"name"`
	Category        models.FlexID      `json:"category"` // ID hoặc tên category
	CategoryName    string             `json:"category_name,omitempty"`
	Price           decimal.Decimal    `json:"price"`
	Description     string             `json:"description"`
	Details         string             `json:"details"`
	Image           string             `json:"image"`
	Images          []ProductImageWire `json:"images"`
	Video           string             `json:"video,omitempty"`
	DeliveryCharges decimal.Decimal    `json:"delivery_charges,omitempty"`
	Featured        bool               `json:"featured,omitempty"`
	Bestseller      bool               `json:"bestseller,omitempty"`
}

// ProductFromWire chuyển sản phẩm từ wire format sang model client.
// resolve được áp dụng cho image, video và từng ảnh phụ (media reference rule).
func ProductFromWire(w ProductWire, resolve func(string) string) models.Product {
	images := make([]string, 0, len(w.Images))
	for _, img := range w.Images {
		images = append(images, resolve(img.Image))
	}

	return models.Product{
		ID:              w.ID.String(),
		Name:            w.Name,
		Category:        w.Category.String(),
		CategoryName:    w.CategoryName,
		Price:           w.Price,
		Description:     w.Description,
		Details:         w.Details,
		Image:           resolve(w.Image),
		Images:          images,
		Video:           resolve(w.Video),
		DeliveryCharges: w.DeliveryCharges,
		Featured:        w.Featured,
		Bestseller:      w.Bestseller,
	}
}

// ProductCreateInput là input tạo sản phẩm mới dạng JSON.
// Tạo kèm file ảnh/video thì dùng multipart thay vì input này.
type ProductCreateInput struct {
	Name            string          `json:"name" validate:"required"`
	Category        string          `json:"category" validate:"required"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	Description     string          `json:"description,omitempty"`
	Details         string          `json:"details,omitempty"`
	DeliveryCharges decimal.Decimal `json:"delivery_charges,omitempty"`
	Featured        bool            `json:"featured,omitempty"`
	Bestseller      bool            `json:"bestseller,omitempty"`
}

// ProductUpdateInput là input cập nhật sản phẩm dạng JSON (partial).
// Con trỏ = field không gửi khi nil; media đi kèm file thì dùng multipart
// thay vì input này.
type ProductUpdateInput struct {
	Name            *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Category        *string          `json:"category,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Details         *string          `json:"details,omitempty"`
	DeliveryCharges *decimal.Decimal `json:"delivery_charges,omitempty"`
	Featured        *bool            `json:"featured,omitempty"`
	Bestseller      *bool            `json:"bestseller,omitempty"`
}
