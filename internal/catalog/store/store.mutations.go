package store

import (
	"context"

	"skn_admin/internal/catalog/client"
	catalogdto "skn_admin/internal/catalog/dto"
	"skn_admin/internal/catalog/models"
	"skn_admin/internal/common"
	"skn_admin/internal/global"
)

// Các thao tác ghi đều theo một khuôn: gọi API (JSON hoặc multipart tùy
// payload), thành công thì refresh lại toàn bộ collection sở hữu, thất
// bại thì log và giữ nguyên cache — không retry, không rollback (không có
// gì để rollback vì không có mutation cục bộ lạc quan nào được áp dụng).
// Kết quả trả về chỉ là thành công/thất bại, không có error object.

// AddProduct tạo sản phẩm mới rồi refresh danh sách sản phẩm
func (s *Store) AddProduct(ctx context.Context, payload client.Payload) bool {
	if err := s.client.Post(ctx, "/products/", payload, true, nil); err != nil {
		s.errLog.WithError(err).Error("AddProduct: Lỗi khi tạo sản phẩm")
		return false
	}
	s.refreshAfterWrite(ctx, "AddProduct", s.RefreshProducts)
	return true
}

// UpdateProduct cập nhật sản phẩm (partial JSON hoặc multipart khi có
// media mới) rồi refresh danh sách sản phẩm
func (s *Store) UpdateProduct(ctx context.Context, id string, payload client.Payload) bool {
	if err := s.client.Patch(ctx, "/products/"+id+"/", payload, true); err != nil {
		s.errLog.WithError(err).WithField("id", id).Error("UpdateProduct: Lỗi khi cập nhật sản phẩm")
		return false
	}
	s.refreshAfterWrite(ctx, "UpdateProduct", s.RefreshProducts)
	return true
}

// DeleteProduct xóa sản phẩm rồi refresh danh sách sản phẩm
func (s *Store) DeleteProduct(ctx context.Context, id string) bool {
	if err := s.client.Delete(ctx, "/products/"+id+"/", true); err != nil {
		s.errLog.WithError(err).WithField("id", id).Error("DeleteProduct: Lỗi khi xóa sản phẩm")
		return false
	}
	s.refreshAfterWrite(ctx, "DeleteProduct", s.RefreshProducts)
	return true
}

// AddCategory tạo category mới rồi refresh danh sách category
func (s *Store) AddCategory(ctx context.Context, payload client.Payload) bool {
	if err := s.client.Post(ctx, "/categories/", payload, true, nil); err != nil {
		s.errLog.WithError(err).Error("AddCategory: Lỗi khi tạo category")
		return false
	}
	s.refreshAfterWrite(ctx, "AddCategory", s.RefreshCategories)
	return true
}

// UpdateCategory cập nhật category rồi refresh danh sách category
func (s *Store) UpdateCategory(ctx context.Context, id string, payload client.Payload) bool {
	if err := s.client.Patch(ctx, "/categories/"+id+"/", payload, true); err != nil {
		s.errLog.WithError(err).WithField("id", id).Error("UpdateCategory: Lỗi khi cập nhật category")
		return false
	}
	s.refreshAfterWrite(ctx, "UpdateCategory", s.RefreshCategories)
	return true
}

// DeleteCategory xóa category rồi refresh danh sách category
func (s *Store) DeleteCategory(ctx context.Context, id string) bool {
	if err := s.client.Delete(ctx, "/categories/"+id+"/", true); err != nil {
		s.errLog.WithError(err).WithField("id", id).Error("DeleteCategory: Lỗi khi xóa category")
		return false
	}
	s.refreshAfterWrite(ctx, "DeleteCategory", s.RefreshCategories)
	return true
}

// AddCollection tạo bộ sưu tập mới rồi refresh danh sách bộ sưu tập
func (s *Store) AddCollection(ctx context.Context, payload client.Payload) bool {
	if err := s.client.Post(ctx, "/collections/", payload, true, nil); err != nil {
		s.errLog.WithError(err).Error("AddCollection: Lỗi khi tạo bộ sưu tập")
		return false
	}
	s.refreshAfterWrite(ctx, "AddCollection", s.RefreshCollections)
	return true
}

// UpdateCollection cập nhật bộ sưu tập rồi refresh danh sách bộ sưu tập
func (s *Store) UpdateCollection(ctx context.Context, id string, payload client.Payload) bool {
	if err := s.client.Patch(ctx, "/collections/"+id+"/", payload, true); err != nil {
		s.errLog.WithError(err).WithField("id", id).Error("UpdateCollection: Lỗi khi cập nhật bộ sưu tập")
		return false
	}
	s.refreshAfterWrite(ctx, "UpdateCollection", s.RefreshCollections)
	return true
}

// DeleteCollection xóa bộ sưu tập rồi refresh danh sách bộ sưu tập
func (s *Store) DeleteCollection(ctx context.Context, id string) bool {
	if err := s.client.Delete(ctx, "/collections/"+id+"/", true); err != nil {
		s.errLog.WithError(err).WithField("id", id).Error("DeleteCollection: Lỗi khi xóa bộ sưu tập")
		return false
	}
	s.refreshAfterWrite(ctx, "DeleteCollection", s.RefreshCollections)
	return true
}

// AddOrder tạo đơn hàng mới. Đây là thao tác ghi duy nhất không đính auth
// header: checkout là endpoint công khai cho khách vãng lai. Input được
// validate rồi trải phẳng sang wire format trước khi gửi.
func (s *Store) AddOrder(ctx context.Context, input catalogdto.OrderCreateInput) bool {
	if global.Validate != nil {
		if err := global.Validate.Struct(input); err != nil {
			s.errLog.WithError(common.ErrInvalidInput).WithField("cause", err.Error()).Error("AddOrder: Dữ liệu đơn hàng không hợp lệ")
			return false
		}
	}

	wire := catalogdto.OrderToWire(catalogdto.OrderFromCreateInput(input))
	if err := s.client.Post(ctx, "/orders/", client.StructuredPayload{Data: wire}, false, nil); err != nil {
		s.errLog.WithError(err).Error("AddOrder: Lỗi khi tạo đơn hàng")
		return false
	}
	s.refreshAfterWrite(ctx, "AddOrder", s.RefreshOrders)
	return true
}

// UpdateOrderStatus chuyển trạng thái đơn hàng. Status chỉ kiểm tra
// membership trong tập giá trị đóng; chuyển trạng thái nào sang trạng
// thái nào là việc của server.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) bool {
	input := catalogdto.OrderStatusInput{Status: status}
	if err := s.client.Patch(ctx, "/orders/"+id+"/", client.StructuredPayload{Data: input}, true); err != nil {
		s.errLog.WithError(err).WithFields(map[string]interface{}{"id": id, "status": status}).Error("UpdateOrderStatus: Lỗi khi cập nhật trạng thái đơn hàng")
		return false
	}
	s.refreshAfterWrite(ctx, "UpdateOrderStatus", s.RefreshOrders)
	return true
}

// refreshAfterWrite nạp lại collection sở hữu sau một thao tác ghi thành
// công. Refresh lỗi chỉ log: bản thân thao tác ghi đã thành công ở server.
func (s *Store) refreshAfterWrite(ctx context.Context, op string, refresh func(context.Context) error) {
	if err := refresh(ctx); err != nil {
		s.log.WithError(err).WithField("operation", op).Warn("Không refresh được collection sau thao tác ghi")
	}
}
