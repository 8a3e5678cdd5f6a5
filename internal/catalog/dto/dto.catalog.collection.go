package catalogdto

import (
	"skn_admin/internal/catalog/models"
)

// CollectionWire là bộ sưu tập theo wire format của API
type CollectionWire struct {
	ID          models.FlexID   `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Products    []models.FlexID `json:"products"`
}

// CollectionFromWire chuyển bộ sưu tập từ wire format sang model client.
// Membership giữ nguyên kể cả khi ID sản phẩm không còn tồn tại.
func CollectionFromWire(w CollectionWire, resolve func(string) string) models.Collection {
	products := make([]string, 0, len(w.Products))
	for _, p := range w.Products {
		products = append(products, p.String())
	}

	return models.Collection{
		ID:          w.ID.String(),
		Name:        w.Name,
		Description: w.Description,
		Image:       resolve(w.Image),
		Products:    products,
	}
}

// CollectionCreateInput là input tạo bộ sưu tập mới dạng JSON.
// Tạo kèm file ảnh banner thì dùng multipart thay vì input này.
type CollectionCreateInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Products    []string `json:"products,omitempty"`
}

// CollectionUpdateInput là input cập nhật bộ sưu tập dạng JSON (partial)
type CollectionUpdateInput struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty"`
	Products    []string `json:"products,omitempty"`
}
