package client

import "strings"

// ResolveMediaRef chuẩn hóa media reference mà API trả về:
//   - rỗng thì giữ nguyên rỗng
//   - đã là URL tuyệt đối (có scheme) thì giữ nguyên
//   - còn lại là đường dẫn root-relative, ghép origin vào trước
//
// Backend emit đường dẫn tương đối cho media đã upload trong khi client
// có thể được serve từ origin khác. Hàm này idempotent: resolve một URL
// đã tuyệt đối trả về chính nó.
func ResolveMediaRef(origin, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	return origin + ref
}

// Resolve áp dụng ResolveMediaRef với origin đã cấu hình của client
func (c *ApiClient) Resolve(ref string) string {
	return ResolveMediaRef(c.baseURL, ref)
}
