package catalogdto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skn_admin/internal/catalog/client"
)

func TestProductFromWireResolvesMedia(t *testing.T) {
	// Price dạng chuỗi, id dạng số, media tương đối — các dạng
	// thực tế backend trả về
	raw := `{
		"id": 7,
		"name": "Lace Front Wig",
		"category": "wigs",
		"price": "899.00",
		"description": "",
		"details": "",
		"image": "/media/products/wig.jpg",
		"images": [
			{"image": "/media/products/wig-side.jpg"},
			{"image": "https://cdn.example.com/wig-back.jpg"}
		],
		"video": "/media/products/wig.mp4",
		"delivery_charges": 25
	}`

	var wire ProductWire
	require.NoError(t, json.Unmarshal([]byte(raw), &wire))

	const origin = "https://api.example.com"
	p := ProductFromWire(wire, func(ref string) string {
		return client.ResolveMediaRef(origin, ref)
	})

	assert.Equal(t, "7", p.ID)
	assert.True(t, decimal.RequireFromString("899.00").Equal(p.Price))
	assert.True(t, decimal.NewFromInt(25).Equal(p.DeliveryCharges))
	assert.Equal(t, origin+"/media/products/wig.jpg", p.Image)
	assert.Equal(t, origin+"/media/products/wig.mp4", p.Video)
	require.Len(t, p.Images, 2)
	assert.Equal(t, origin+"/media/products/wig-side.jpg", p.Images[0])
	// Ảnh đã tuyệt đối thì giữ nguyên
	assert.Equal(t, "https://cdn.example.com/wig-back.jpg", p.Images[1])
}

func TestProductUpdateInputOmitsNilFields(t *testing.T) {
	name := "Renamed Wig"
	in := ProductUpdateInput{Name: &name}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))

	// Partial update: chỉ gửi field có giá trị
	assert.Equal(t, map[string]any{"name": "Renamed Wig"}, flat)
}
