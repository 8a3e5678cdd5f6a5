package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMediaRef(t *testing.T) {
	origin := "https://api.example.com"

	t.Run("rỗng giữ nguyên rỗng", func(t *testing.T) {
		assert.Equal(t, "", ResolveMediaRef(origin, ""))
	})

	t.Run("đường dẫn tương đối được ghép origin", func(t *testing.T) {
		assert.Equal(t, "https://api.example.com/media/x.jpg", ResolveMediaRef(origin, "/media/x.jpg"))
	})

	t.Run("URL tuyệt đối giữ nguyên", func(t *testing.T) {
		assert.Equal(t, "https://cdn.example.com/a.png", ResolveMediaRef(origin, "https://cdn.example.com/a.png"))
	})

	t.Run("idempotent: resolve hai lần cho cùng kết quả", func(t *testing.T) {
		once := ResolveMediaRef(origin, "/media/x.jpg")
		twice := ResolveMediaRef(origin, once)
		assert.Equal(t, once, twice)
	})
}
