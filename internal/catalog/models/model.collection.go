package models

// Collection định nghĩa bộ sưu tập sản phẩm.
// Products là danh sách ID sản phẩm; ID không còn resolve được sang sản phẩm
// đang tồn tại vẫn được giữ nguyên (chỉ ảnh hưởng lúc hiển thị).
type Collection struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"` // Ảnh banner của bộ sưu tập
	Products    []string `json:"products"`
}
