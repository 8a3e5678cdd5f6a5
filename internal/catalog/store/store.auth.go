package store

import (
	"context"
	"errors"

	"skn_admin/internal/catalog/client"
	catalogdto "skn_admin/internal/catalog/dto"
	"skn_admin/internal/catalog/models"
	"skn_admin/internal/common"
)

// checkAuth validate credential đã lưu bằng endpoint /me/.
// Thất bại kiểu gì (status không thành công hay không gọi tới được server)
// cũng coi credential là không hợp lệ: vứt cả bản trong memory lẫn bản đã
// lưu, tiến trình ở trạng thái chưa xác thực. Chỉ log, không trả lỗi.
func (s *Store) checkAuth(ctx context.Context, token string) {
	var principal models.Principal
	if err := s.client.GetWith(ctx, "/me/", token, &principal); err != nil {
		s.log.WithError(err).Warn("checkAuth: Credential đã lưu không còn hợp lệ, xóa bỏ")
		s.client.ClearCredential()
		if clearErr := s.creds.Clear(); clearErr != nil {
			s.log.WithError(clearErr).Warn("checkAuth: Không xóa được credential đã lưu")
		}
		return
	}

	s.sessionMu.Lock()
	s.session = &models.Session{Principal: principal, Credential: token}
	s.sessionMu.Unlock()
}

// Login xác thực cặp username/password và cài session admin.
//
// Thử Basic-auth vào /me/ trước (đường rẻ); chỉ khi /me/ trả lời được
// nhưng từ chối (status không thành công) mới fallback sang POST /login/
// với body JSON — lỗi mạng hay response không đọc được thì dừng luôn,
// /login/ trên cùng server cũng sẽ không khá hơn. Hai đường được giữ
// nguyên như vậy, không gộp lại. Principal lấy về từ đường nào cũng phải
// có quyền staff: credential hợp lệ của tài khoản thường vẫn bị từ chối,
// không cài session, không lưu credential.
func (s *Store) Login(ctx context.Context, username, password string) bool {
	token := client.EncodeBasic(username, password)

	var principal models.Principal
	if err := s.client.GetWith(ctx, "/me/", token, &principal); err != nil {
		if !errors.Is(err, common.ErrStatus) {
			s.errLog.WithError(err).WithField("username", username).Error("Login: Probe /me/ không hoàn thành được")
			return false
		}
		s.log.WithError(err).Debug("Login: Probe /me/ bị từ chối, fallback sang /login/")

		body := catalogdto.LoginInput{Username: username, Password: password}
		if err := s.client.Post(ctx, "/login/", client.StructuredPayload{Data: body}, false, &principal); err != nil {
			s.errLog.WithError(common.ErrInvalidCredentials).
				WithField("username", username).
				WithField("cause", err.Error()).
				Error("Login: Đăng nhập thất bại")
			return false
		}
	}

	if !principal.IsStaff {
		s.log.WithError(common.ErrNotStaff).WithField("username", username).Warn("Login: Tài khoản hợp lệ nhưng không có quyền staff, từ chối")
		return false
	}

	s.installSession(principal, token)
	s.fetchAll(ctx)
	return true
}

// Signup đăng ký tài khoản mới với yêu cầu quyền staff; thành công thì
// hành xử như một login được chấp nhận (cài session + lưu credential).
func (s *Store) Signup(ctx context.Context, username, email, password string) bool {
	input := catalogdto.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
		IsStaff:  true,
	}

	var principal models.Principal
	if err := s.client.Post(ctx, "/register/", client.StructuredPayload{Data: input}, false, &principal); err != nil {
		s.errLog.WithError(err).WithField("username", username).Error("Signup: Đăng ký thất bại")
		return false
	}

	s.installSession(principal, client.EncodeBasic(username, password))
	s.fetchAll(ctx)
	return true
}

// Logout đăng xuất thuần cục bộ: xóa session trong memory và credential
// đã lưu, không gọi server.
func (s *Store) Logout() {
	s.sessionMu.Lock()
	s.session = nil
	s.sessionMu.Unlock()

	s.client.ClearCredential()
	if err := s.creds.Clear(); err != nil {
		s.log.WithError(err).Warn("Logout: Không xóa được credential đã lưu")
	}
}

// installSession cài session mới: memory, client credential và bản lưu bền.
// Login đồng thời không được đồng bộ hóa — lần thành công sau cùng thắng.
func (s *Store) installSession(principal models.Principal, token string) {
	s.sessionMu.Lock()
	s.session = &models.Session{Principal: principal, Credential: token}
	s.sessionMu.Unlock()

	s.client.SetCredential(token)
	if err := s.creds.Save(token); err != nil {
		s.log.WithError(err).Warn("installSession: Không lưu được credential")
	}
}
