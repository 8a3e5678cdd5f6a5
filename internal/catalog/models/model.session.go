package models

// Principal là thông tin tài khoản do endpoint /me/ hoặc /login/ trả về
type Principal struct {
	ID       FlexID `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	IsStaff  bool   `json:"is_staff"`
}

// Session là phiên đăng nhập phía client: principal đã xác thực cộng với
// credential Basic-auth đã mã hóa. Không có session object nào ở server;
// credential được đính kèm từng request.
type Session struct {
	Principal  Principal `json:"principal"`
	Credential string    `json:"-"` // Token Basic đã mã hóa, không bao giờ serialize
}
