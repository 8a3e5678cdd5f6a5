// admincli là consumer dòng lệnh của RemoteCatalogStore, thế chỗ cho UI
// admin: đọc bản chụp từ store và gọi các thao tác ghi/refresh. Mọi việc
// xác nhận, điều hướng, hiển thị lỗi cho người dùng cuối là của layer này;
// store chỉ log.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"skn_admin/internal/catalog/client"
	catalogdto "skn_admin/internal/catalog/dto"
	"skn_admin/internal/catalog/models"
	"skn_admin/internal/catalog/store"
)

func main() {
	var s *store.Store

	app := &cli.App{
		Name:  "admincli",
		Usage: "Quản trị catalog skn: products, categories, collections, orders",
		Before: func(c *cli.Context) error {
			var err error
			s, err = InitApp()
			if err != nil {
				return err
			}
			// Khởi tạo store: khôi phục credential + fetch cả bốn collection
			s.Init(c.Context)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "login",
				Usage:     "Đăng nhập bằng tài khoản staff",
				ArgsUsage: "<username> <password>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("cần đúng 2 tham số: <username> <password>", 1)
					}
					if !s.Login(c.Context, c.Args().Get(0), c.Args().Get(1)) {
						return cli.Exit("đăng nhập thất bại (sai thông tin hoặc tài khoản không có quyền staff)", 1)
					}
					fmt.Println("Đăng nhập thành công")
					return nil
				},
			},
			{
				Name:  "signup",
				Usage: "Đăng ký tài khoản staff mới",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(c *cli.Context) error {
					if !s.Signup(c.Context, c.String("username"), c.String("email"), c.String("password")) {
						return cli.Exit("đăng ký thất bại", 1)
					}
					fmt.Println("Đăng ký thành công")
					return nil
				},
			},
			{
				Name:  "logout",
				Usage: "Đăng xuất (chỉ xóa credential cục bộ)",
				Action: func(c *cli.Context) error {
					s.Logout()
					fmt.Println("Đã đăng xuất")
					return nil
				},
			},
			{
				Name:  "whoami",
				Usage: "In thông tin phiên đăng nhập hiện hành",
				Action: func(c *cli.Context) error {
					session := s.Session()
					if session == nil {
						fmt.Println("Chưa đăng nhập")
						return nil
					}
					fmt.Printf("%s (staff=%v)\n", session.Principal.Username, session.Principal.IsStaff)
					return nil
				},
			},
			productsCommand(&s),
			categoriesCommand(&s),
			collectionsCommand(&s),
			ordersCommand(&s),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildMultipart dựng multipart payload từ các field văn bản và file media
func buildMultipart(fields map[string]string, files map[string]string) (client.Payload, error) {
	parts := make([]client.FilePart, 0, len(files))
	for field, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("không đọc được file %s: %w", path, err)
		}
		parts = append(parts, client.FilePart{
			Field:    field,
			Filename: filepath.Base(path),
			Content:  content,
		})
	}
	return client.MultipartPayload{Fields: fields, Files: parts}, nil
}

// mediaFiles gom các flag file media có giá trị thành map field→path
func mediaFiles(c *cli.Context, names ...string) map[string]string {
	files := make(map[string]string)
	for _, name := range names {
		if path := c.String(name); path != "" {
			files[name] = path
		}
	}
	return files
}

func parsePrice(v string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("price không hợp lệ %q: %w", v, err)
	}
	return price, nil
}

func productsCommand(s **store.Store) *cli.Command {
	mutationFlags := []cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "category"},
		&cli.StringFlag{Name: "price"},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "details"},
		&cli.StringFlag{Name: "image", Usage: "đường dẫn file ảnh chính (chuyển sang multipart)"},
		&cli.StringFlag{Name: "video", Usage: "đường dẫn file video (chuyển sang multipart)"},
	}

	// Đường multipart gửi field dạng văn bản; đường JSON dùng input có
	// validate tag để dữ liệu hỏng bị chặn trước khi chạm tới network
	fields := func(c *cli.Context) map[string]string {
		out := make(map[string]string)
		for _, name := range []string{"name", "category", "price", "description", "details"} {
			if v := c.String(name); v != "" {
				out[name] = v
			}
		}
		return out
	}

	createPayload := func(c *cli.Context) (client.Payload, error) {
		if files := mediaFiles(c, "image", "video"); len(files) > 0 {
			return buildMultipart(fields(c), files)
		}
		in := catalogdto.ProductCreateInput{
			Name:        c.String("name"),
			Category:    c.String("category"),
			Description: c.String("description"),
			Details:     c.String("details"),
		}
		if v := c.String("price"); v != "" {
			price, err := parsePrice(v)
			if err != nil {
				return nil, err
			}
			in.Price = price
		}
		return client.StructuredPayload{Data: in}, nil
	}

	updatePayload := func(c *cli.Context) (client.Payload, error) {
		if files := mediaFiles(c, "image", "video"); len(files) > 0 {
			return buildMultipart(fields(c), files)
		}
		var in catalogdto.ProductUpdateInput
		if v := c.String("name"); v != "" {
			in.Name = &v
		}
		if v := c.String("category"); v != "" {
			in.Category = &v
		}
		if v := c.String("price"); v != "" {
			price, err := parsePrice(v)
			if err != nil {
				return nil, err
			}
			in.Price = &price
		}
		if v := c.String("description"); v != "" {
			in.Description = &v
		}
		if v := c.String("details"); v != "" {
			in.Details = &v
		}
		return client.StructuredPayload{Data: in}, nil
	}

	return &cli.Command{
		Name:  "products",
		Usage: "Quản lý sản phẩm",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Liệt kê sản phẩm trong bản chụp hiện hành",
				Action: func(c *cli.Context) error {
					for _, p := range (*s).Products() {
						fmt.Printf("%-20s %-30s %10s  %s\n", p.ID, p.Name, p.Price.StringFixed(2), p.Image)
					}
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "Tạo sản phẩm mới",
				Flags: mutationFlags,
				Action: func(c *cli.Context) error {
					payload, err := createPayload(c)
					if err != nil {
						return err
					}
					if !(*s).AddProduct(c.Context, payload) {
						return cli.Exit("tạo sản phẩm thất bại", 1)
					}
					fmt.Println("Đã tạo sản phẩm")
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "Cập nhật sản phẩm",
				ArgsUsage: "<id>",
				Flags:     mutationFlags,
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("cần tham số <id>", 1)
					}
					payload, err := updatePayload(c)
					if err != nil {
						return err
					}
					if !(*s).UpdateProduct(c.Context, c.Args().First(), payload) {
						return cli.Exit("cập nhật sản phẩm thất bại", 1)
					}
					fmt.Println("Đã cập nhật sản phẩm")
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Xóa sản phẩm",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("cần tham số <id>", 1)
					}
					if !(*s).DeleteProduct(c.Context, c.Args().First()) {
						return cli.Exit("xóa sản phẩm thất bại", 1)
					}
					fmt.Println("Đã xóa sản phẩm")
					return nil
				},
			},
		},
	}
}

func categoriesCommand(s **store.Store) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "image", Usage: "đường dẫn file ảnh (chuyển sang multipart)"},
	}

	fields := func(c *cli.Context) map[string]string {
		out := make(map[string]string)
		for _, name := range []string{"name", "description"} {
			if v := c.String(name); v != "" {
				out[name] = v
			}
		}
		return out
	}

	createPayload := func(c *cli.Context) (client.Payload, error) {
		if files := mediaFiles(c, "image"); len(files) > 0 {
			return buildMultipart(fields(c), files)
		}
		in := catalogdto.CategoryCreateInput{
			Name:        c.String("name"),
			Description: c.String("description"),
		}
		return client.StructuredPayload{Data: in}, nil
	}

	updatePayload := func(c *cli.Context) (client.Payload, error) {
		if files := mediaFiles(c, "image"); len(files) > 0 {
			return buildMultipart(fields(c), files)
		}
		var in catalogdto.CategoryUpdateInput
		if v := c.String("name"); v != "" {
			in.Name = &v
		}
		if v := c.String("description"); v != "" {
			in.Description = &v
		}
		return client.StructuredPayload{Data: in}, nil
	}

	return &cli.Command{
		Name:  "categories",
		Usage: "Quản lý category",
		Subcommands: []*cli.Command{
			{
				Name: "list",
				Action: func(c *cli.Context) error {
					for _, cat := range (*s).Categories() {
						fmt.Printf("%-20s %-30s %s\n", cat.ID, cat.Name, cat.Image)
					}
					return nil
				},
			},
			{
				Name:  "add",
				Flags: flags,
				Action: func(c *cli.Context) error {
					payload, err := createPayload(c)
					if err != nil {
						return err
					}
					if !(*s).AddCategory(c.Context, payload) {
						return cli.Exit("tạo category thất bại", 1)
					}
					fmt.Println("Đã tạo category")
					return nil
				},
			},
			{
				Name:      "update",
				ArgsUsage: "<id>",
				Flags:     flags,
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("cần tham số <id>", 1)
					}
					payload, err := updatePayload(c)
					if err != nil {
						return err
					}
					if !(*s).UpdateCategory(c.Context, c.Args().First(), payload) {
						return cli.Exit("cập nhật category thất bại", 1)
					}
					fmt.Println("Đã cập nhật category")
					return nil
				},
			},
			{
				Name:      "delete",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("cần tham số <id>", 1)
					}
					if !(*s).DeleteCategory(c.Context, c.Args().First()) {
						return cli.Exit("xóa category thất bại", 1)
					}
					fmt.Println("Đã xóa category")
					return nil
				},
			},
		},
	}
}

func collectionsCommand(s **store.Store) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "description"},
		&cli.StringSliceFlag{Name: "product", Usage: "ID sản phẩm thuộc bộ sưu tập (lặp lại được)"},
		&cli.StringFlag{Name: "image", Usage: "đường dẫn file ảnh banner (chuyển sang multipart)"},
	}

	fields := func(c *cli.Context) map[string]string {
		out := make(map[string]string)
		for _, name := range []string{"name", "description"} {
			if v := c.String(name); v != "" {
				out[name] = v
			}
		}
		return out
	}

	createPayload := func(c *cli.Context) (client.Payload, error) {
		if files := mediaFiles(c, "image"); len(files) > 0 {
			return buildMultipart(fields(c), files)
		}
		in := catalogdto.CollectionCreateInput{
			Name:        c.String("name"),
			Description: c.String("description"),
			Products:    c.StringSlice("product"),
		}
		return client.StructuredPayload{Data: in}, nil
	}

	updatePayload := func(c *cli.Context) (client.Payload, error) {
		if files := mediaFiles(c, "image"); len(files) > 0 {
			return buildMultipart(fields(c), files)
		}
		var in catalogdto.CollectionUpdateInput
		if v := c.String("name"); v != "" {
			in.Name = &v
		}
		if v := c.String("description"); v != "" {
			in.Description = &v
		}
		if products := c.StringSlice("product"); len(products) > 0 {
			in.Products = products
		}
		return client.StructuredPayload{Data: in}, nil
	}

	return &cli.Command{
		Name:  "collections",
		Usage: "Quản lý bộ sưu tập",
		Subcommands: []*cli.Command{
			{
				Name: "list",
				Action: func(c *cli.Context) error {
					for _, col := range (*s).Collections() {
						fmt.Printf("%-20s %-30s %d sản phẩm\n", col.ID, col.Name, len(col.Products))
					}
					return nil
				},
			},
			{
				Name:  "add",
				Flags: flags,
				Action: func(c *cli.Context) error {
					payload, err := createPayload(c)
					if err != nil {
						return err
					}
					if !(*s).AddCollection(c.Context, payload) {
						return cli.Exit("tạo bộ sưu tập thất bại", 1)
					}
					fmt.Println("Đã tạo bộ sưu tập")
					return nil
				},
			},
			{
				Name:      "update",
				ArgsUsage: "<id>",
				Flags:     flags,
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("cần tham số <id>", 1)
					}
					payload, err := updatePayload(c)
					if err != nil {
						return err
					}
					if !(*s).UpdateCollection(c.Context, c.Args().First(), payload) {
						return cli.Exit("cập nhật bộ sưu tập thất bại", 1)
					}
					fmt.Println("Đã cập nhật bộ sưu tập")
					return nil
				},
			},
			{
				Name:      "delete",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("cần tham số <id>", 1)
					}
					if !(*s).DeleteCollection(c.Context, c.Args().First()) {
						return cli.Exit("xóa bộ sưu tập thất bại", 1)
					}
					fmt.Println("Đã xóa bộ sưu tập")
					return nil
				},
			},
		},
	}
}

func ordersCommand(s **store.Store) *cli.Command {
	return &cli.Command{
		Name:  "orders",
		Usage: "Quản lý đơn hàng",
		Subcommands: []*cli.Command{
			{
				Name: "list",
				Action: func(c *cli.Context) error {
					for _, o := range (*s).Orders() {
						fmt.Printf("%-12s %-10s %10s  %s %s <%s>\n",
							o.ID, o.Status, o.Total.StringFixed(2),
							o.Customer.FirstName, o.Customer.LastName, o.Customer.Email)
					}
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Tạo đơn hàng từ file JSON (checkout công khai, không cần đăng nhập)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Required: true, Usage: "file JSON chứa OrderCreateInput"},
				},
				Action: func(c *cli.Context) error {
					data, err := os.ReadFile(c.String("file"))
					if err != nil {
						return fmt.Errorf("không đọc được file đơn hàng: %w", err)
					}
					var input catalogdto.OrderCreateInput
					if err := json.Unmarshal(data, &input); err != nil {
						return fmt.Errorf("file đơn hàng không phải JSON hợp lệ: %w", err)
					}
					if !(*s).AddOrder(c.Context, input) {
						return cli.Exit("tạo đơn hàng thất bại", 1)
					}
					fmt.Println("Đã tạo đơn hàng")
					return nil
				},
			},
			{
				Name:      "set-status",
				Usage:     "Chuyển trạng thái đơn hàng",
				ArgsUsage: "<id> <pending|paid|shipped|delivered|cancelled>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("cần đúng 2 tham số: <id> <status>", 1)
					}
					status := models.OrderStatus(c.Args().Get(1))
					if !status.Valid() {
						return cli.Exit("status không hợp lệ", 1)
					}
					if !(*s).UpdateOrderStatus(c.Context, c.Args().First(), status) {
						return cli.Exit("cập nhật trạng thái thất bại", 1)
					}
					fmt.Println("Đã cập nhật trạng thái")
					return nil
				},
			},
		},
	}
}
