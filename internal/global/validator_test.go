package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusProbe struct {
	Status string `validate:"required,order_status"`
}

type mediaProbe struct {
	Image string `validate:"media_ref"`
}

func TestValidateOrderStatus(t *testing.T) {
	InitValidator()

	for _, status := range []string{"pending", "paid", "shipped", "delivered", "cancelled"} {
		assert.NoError(t, Validate.Struct(statusProbe{Status: status}), status)
	}

	assert.Error(t, Validate.Struct(statusProbe{Status: "archived"}))
	assert.Error(t, Validate.Struct(statusProbe{}))
}

func TestValidateMediaRef(t *testing.T) {
	InitValidator()

	require.NoError(t, Validate.Struct(mediaProbe{}))
	assert.NoError(t, Validate.Struct(mediaProbe{Image: "https://api.example.com/media/x.jpg"}))
	// Đường dẫn tương đối là media chưa resolve
	assert.Error(t, Validate.Struct(mediaProbe{Image: "/media/x.jpg"}))
}
