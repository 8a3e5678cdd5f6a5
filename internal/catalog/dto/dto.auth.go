package catalogdto

// LoginInput là body của endpoint /login/ (đường fallback khi probe
// Basic-auth vào /me/ thất bại)
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput là body của endpoint /register/.
// IsStaff luôn gửi true: đăng ký từ màn hình admin xin quyền staff.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	IsStaff  bool   `json:"is_staff"`
}
