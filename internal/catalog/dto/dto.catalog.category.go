package catalogdto

import (
	"skn_admin/internal/catalog/models"
)

// CategoryWire là category theo wire format của API
type CategoryWire struct {
	ID          models.FlexID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Image       string        `json:"image,omitempty"`
}

// CategoryFromWire chuyển category từ wire format sang model client
func CategoryFromWire(w CategoryWire, resolve func(string) string) models.Category {
	return models.Category{
		ID:          w.ID.String(),
		Name:        w.Name,
		Description: w.Description,
		Image:       resolve(w.Image),
	}
}

// CategoryCreateInput là input tạo mới category dạng JSON
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// CategoryUpdateInput là input cập nhật category dạng JSON (partial)
type CategoryUpdateInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}
