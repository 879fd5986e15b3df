package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageListShapes(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		delim string
		want  []string
	}{
		{
			name:  "single url string",
			value: "http://a.jpg",
			want:  []string{"http://a.jpg"},
		},
		{
			name:  "semicolon delimited string",
			value: "http://a.jpg;http://b.jpg",
			delim: ";",
			want:  []string{"http://a.jpg", "http://b.jpg"},
		},
		{
			name:  "array with falsy entries",
			value: []interface{}{"http://a.jpg", nil, "", "http://b.jpg"},
			want:  []string{"http://a.jpg", "http://b.jpg"},
		},
		{
			name: "array of url objects",
			value: []interface{}{
				map[string]interface{}{"url": "http://a.jpg"},
				map[string]interface{}{"src": "http://b.jpg"},
			},
			want: []string{"http://a.jpg", "http://b.jpg"},
		},
		{
			name:  "absent",
			value: nil,
			want:  []string{},
		},
		{
			name:  "order and duplicates preserved",
			value: []interface{}{"http://b.jpg", "http://a.jpg", "http://b.jpg"},
			want:  []string{"http://b.jpg", "http://a.jpg", "http://b.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, imageList(tt.value, tt.delim))
		})
	}
}

func TestAdapterImageShapes(t *testing.T) {
	n := NewNormalizer()

	// AliExpress joins galleries with semicolons
	product := n.Normalize(Raw{"images": "http://a.jpg;http://b.jpg"}, "aliexpress")
	assert.Equal(t, []string{"http://a.jpg", "http://b.jpg"}, product.Images)

	// Shopify wraps every picture in a {src} object
	product = n.Normalize(Raw{"images": []interface{}{
		map[string]interface{}{"src": "http://a.jpg"},
		map[string]interface{}{"src": "http://b.jpg"},
	}}, "shopify")
	assert.Equal(t, []string{"http://a.jpg", "http://b.jpg"}, product.Images)

	// generic fallback splits comma-joined lists
	product = n.Normalize(Raw{"images": "http://a.jpg,http://b.jpg"}, "csvvendor")
	assert.Equal(t, []string{"http://a.jpg", "http://b.jpg"}, product.Images)

	// single-image feeds still come back as a flat list
	product = n.Normalize(Raw{"image": "http://a.jpg"}, "btswholesaler")
	assert.Equal(t, []string{"http://a.jpg"}, product.Images)
}
