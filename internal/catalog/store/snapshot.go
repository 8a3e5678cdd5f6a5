package store

import "sync"

// snapshot là ô chứa bản chụp của một collection, thread-safe qua RWMutex.
// Refresh thay thế toàn bộ nội dung, không merge/patch từng phần tử:
// hai refresh đua nhau trên cùng collection thì lần ghi sau cùng thắng,
// không có version check.
type snapshot[T any] struct {
	mu    sync.RWMutex
	items []T
}

// Replace thay thế toàn bộ bản chụp bằng items mới
func (s *snapshot[T]) Replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

// Items trả về một bản copy của bản chụp hiện hành.
// Copy để caller không sửa được nội dung cache qua slice trả về.
func (s *snapshot[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
