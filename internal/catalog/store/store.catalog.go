// Package store - RemoteCatalogStore: nguồn sự thật duy nhất của dữ liệu
// catalog/order trong tiến trình client. Mọi thao tác ghi đều gọi API rồi
// fetch lại toàn bộ collection sở hữu, nên consumer không bao giờ phải
// đối chiếu mutation cục bộ với trạng thái server.
package store

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"skn_admin/internal/catalog/client"
	"skn_admin/internal/catalog/credential"
	catalogdto "skn_admin/internal/catalog/dto"
	"skn_admin/internal/catalog/models"
	"skn_admin/internal/common"
	"skn_admin/internal/logger"
)

// Store là RemoteCatalogStore. Dựng tường minh qua NewStore và truyền
// theo tham chiếu cho consumer, không dùng singleton mức package.
type Store struct {
	client *client.ApiClient
	creds  *credential.FileStore
	log    *logrus.Logger
	errLog *logrus.Logger

	products    snapshot[models.Product]
	categories  snapshot[models.Category]
	collections snapshot[models.Collection]
	orders      snapshot[models.Order]

	sessionMu sync.RWMutex
	session   *models.Session

	loading atomic.Bool
}

// NewStore tạo Store với client và credential store đã dựng sẵn
func NewStore(apiClient *client.ApiClient, creds *credential.FileStore) *Store {
	s := &Store{
		client: apiClient,
		creds:  creds,
		log:    logger.GetAppLogger(),
		errLog: logger.GetErrorLogger(),
	}
	s.loading.Store(true)
	return s
}

// Init chạy một lần cho mỗi vòng đời tiến trình:
//  1. Khôi phục credential đã lưu (nếu có) để các fetch dùng được header ngay
//  2. Validate credential qua /me/ — thất bại kiểu gì cũng vứt credential
//  3. Đồng thời fetch cả bốn collection công khai/orders
//
// Chỉ sau khi cả auth check lẫn các fetch ban đầu xong thì loading mới
// về false; lỗi bên trong chỉ log, không trả ra ngoài.
func (s *Store) Init(ctx context.Context) {
	s.loading.Store(true)
	defer s.loading.Store(false)

	token, ok := s.creds.Load()
	if ok {
		s.client.SetCredential(token)
	} else {
		s.log.WithError(common.ErrNoCredential).Debug("Init: Bắt đầu phiên chưa xác thực")
	}

	var wg sync.WaitGroup
	if ok {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.checkAuth(ctx, token)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.fetchAll(ctx)
	}()

	wg.Wait()
}

// Loading báo store còn đang trong giai đoạn khởi tạo không.
// Consumer không được render màn hình cần xác thực khi Loading còn true.
func (s *Store) Loading() bool {
	return s.loading.Load()
}

// Products trả về bản chụp hiện hành của danh sách sản phẩm
func (s *Store) Products() []models.Product {
	return s.products.Items()
}

// Categories trả về bản chụp hiện hành của danh sách category
func (s *Store) Categories() []models.Category {
	return s.categories.Items()
}

// Collections trả về bản chụp hiện hành của danh sách bộ sưu tập
func (s *Store) Collections() []models.Collection {
	return s.collections.Items()
}

// Orders trả về bản chụp hiện hành của danh sách đơn hàng
func (s *Store) Orders() []models.Order {
	return s.orders.Items()
}

// Session trả về phiên đăng nhập hiện hành, nil nếu chưa xác thực
func (s *Store) Session() *models.Session {
	s.sessionMu.RLock()
	defer s.sessionMu.RUnlock()
	if s.session == nil {
		return nil
	}
	session := *s.session
	return &session
}

// fetchAll fetch đồng thời cả bốn collection và chờ tất cả xong.
// Các collection rời nhau nên refresh song song an toàn.
func (s *Store) fetchAll(ctx context.Context) {
	refreshes := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"products", s.RefreshProducts},
		{"orders", s.RefreshOrders},
		{"collections", s.RefreshCollections},
		{"categories", s.RefreshCategories},
	}

	var wg sync.WaitGroup
	for _, r := range refreshes {
		wg.Add(1)
		go func(name string, fn func(context.Context) error) {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				s.errLog.WithError(err).WithField("collection", name).Error("fetchAll: Không fetch được collection")
			}
		}(r.name, r.fn)
	}
	wg.Wait()
}

// RefreshProducts fetch toàn bộ sản phẩm, resolve media reference và thay
// thế bản chụp. Idempotent, gọi được đồng thời với refresh collection khác.
func (s *Store) RefreshProducts(ctx context.Context) error {
	var wires []catalogdto.ProductWire
	if err := s.client.Get(ctx, "/products/", false, &wires); err != nil {
		return err
	}

	products := make([]models.Product, 0, len(wires))
	for _, w := range wires {
		products = append(products, catalogdto.ProductFromWire(w, s.client.Resolve))
	}
	s.products.Replace(products)
	return nil
}

// RefreshCategories fetch toàn bộ category và thay thế bản chụp
func (s *Store) RefreshCategories(ctx context.Context) error {
	var wires []catalogdto.CategoryWire
	if err := s.client.Get(ctx, "/categories/", false, &wires); err != nil {
		return err
	}

	categories := make([]models.Category, 0, len(wires))
	for _, w := range wires {
		categories = append(categories, catalogdto.CategoryFromWire(w, s.client.Resolve))
	}
	s.categories.Replace(categories)
	return nil
}

// RefreshCollections fetch toàn bộ bộ sưu tập và thay thế bản chụp
func (s *Store) RefreshCollections(ctx context.Context) error {
	var wires []catalogdto.CollectionWire
	if err := s.client.Get(ctx, "/collections/", false, &wires); err != nil {
		return err
	}

	collections := make([]models.Collection, 0, len(wires))
	for _, w := range wires {
		collections = append(collections, catalogdto.CollectionFromWire(w, s.client.Resolve))
	}
	s.collections.Replace(collections)
	return nil
}

// RefreshOrders fetch toàn bộ đơn hàng (cần auth header), gom field khách
// hàng flat thành customer lồng trong order rồi thay thế bản chụp.
func (s *Store) RefreshOrders(ctx context.Context) error {
	var wires []catalogdto.OrderWire
	if err := s.client.Get(ctx, "/orders/", true, &wires); err != nil {
		return err
	}

	orders := make([]models.Order, 0, len(wires))
	for _, w := range wires {
		orders = append(orders, catalogdto.OrderFromWire(w))
	}
	s.orders.Replace(orders)
	return nil
}
