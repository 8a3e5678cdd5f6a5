package credential

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "credential"))

	// Chưa lưu gì thì Load báo không có
	_, ok := store.Load()
	assert.False(t, ok)

	require.NoError(t, store.Save("YWRtaW46c2VjcmV0"))

	token, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "YWRtaW46c2VjcmV0", token)
}

func TestFileStoreSavePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credential")
	store := NewFileStore(path)
	require.NoError(t, store.Save("YWRtaW46c2VjcmV0"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	// Chỉ chủ sở hữu đọc/ghi được
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStoreClear(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "credential"))

	// Xóa khi chưa có file không phải là lỗi
	require.NoError(t, store.Clear())

	require.NoError(t, store.Save("YWRtaW46c2VjcmV0"))
	require.NoError(t, store.Clear())

	_, ok := store.Load()
	assert.False(t, ok)
}

func TestFileStoreIgnoresBlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credential")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0600))

	store := NewFileStore(path)
	_, ok := store.Load()
	assert.False(t, ok)
}
