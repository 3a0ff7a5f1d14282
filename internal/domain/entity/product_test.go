package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestEffectivePrice(t *testing.T) {
	assert.Equal(t, 800.0, EffectivePrice(1000, ptr(800)))
	assert.Equal(t, 500.0, EffectivePrice(500, nil))

	p := &Product{Price: 2000, SalePrice: ptr(1500)}
	assert.Equal(t, 1500.0, p.EffectivePrice())
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		sale  *float64
		want  int
	}{
		{"no sale", 1000, nil, 0},
		{"twenty percent", 1000, ptr(800), 20},
		{"rounds to nearest", 30, ptr(20), 33},
		{"sale above price", 100, ptr(120), 0},
		{"free product", 0, ptr(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountPercent(tt.price, tt.sale))
		})
	}
}

func TestProductType(t *testing.T) {
	assert.True(t, ProductTypeVideoTemplates.IsValid())
	assert.False(t, ProductType("courses").IsValid())
	assert.Equal(t, "video_templates", ProductTypeVideoTemplates.Collection())
	assert.Equal(t, "graphics", ProductTypeGraphics.Collection())
}
