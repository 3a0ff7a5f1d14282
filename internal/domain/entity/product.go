// Package entity contains the core business objects of the marketplace,
// each representing a document owned by the API.
package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProductType identifies the storefront catalogue a product belongs to.
type ProductType string

const (
	ProductTypeGraphics       ProductType = "graphics"
	ProductTypeAudio          ProductType = "audio"
	ProductTypeVideoTemplates ProductType = "video-templates"
	ProductTypeAppTemplates   ProductType = "app-templates"
	ProductTypeWebsites       ProductType = "websites"
	ProductTypeUIKits         ProductType = "ui-kits"
	ProductTypePhotos         ProductType = "photos"
	ProductTypeFonts          ProductType = "fonts"
)

// ProductTypes lists every product catalogue in route order.
func ProductTypes() []ProductType {
	return []ProductType{
		ProductTypeGraphics,
		ProductTypeAudio,
		ProductTypeVideoTemplates,
		ProductTypeAppTemplates,
		ProductTypeWebsites,
		ProductTypeUIKits,
		ProductTypePhotos,
		ProductTypeFonts,
	}
}

// IsValid checks if the ProductType is a known catalogue.
func (t ProductType) IsValid() bool {
	for _, known := range ProductTypes() {
		if t == known {
			return true
		}
	}

	return false
}

// Collection returns the document collection holding products of this type.
func (t ProductType) Collection() string {
	return strings.ReplaceAll(string(t), "-", "_")
}

// PublishStatus is the editorial state shared by catalogue entities.
type PublishStatus string

const (
	StatusDraft     PublishStatus = "draft"
	StatusPending   PublishStatus = "pending"
	StatusPublished PublishStatus = "published"
)

// IsValid checks if the PublishStatus is a valid value.
func (s PublishStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPublished:
		return true
	default:
		return false
	}
}

// Product is a sellable digital asset. Fields vary per type only in meaning, not shape.
type Product struct {
	ID          string        `json:"_id"`
	Type        ProductType   `json:"type"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	SalePrice   *float64      `json:"salePrice"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags"`
	Status      PublishStatus `json:"status"`
	Thumbnail   string        `json:"thumbnail"`
	Rating      float64       `json:"rating"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// EffectivePrice is salePrice when set, otherwise price.
func (p *Product) EffectivePrice() float64 {
	return EffectivePrice(p.Price, p.SalePrice)
}

// DiscountPercent returns the whole-number discount shown next to a sale price.
func (p *Product) DiscountPercent() int {
	return DiscountPercent(p.Price, p.SalePrice)
}

// EffectivePrice returns sale when it is set, otherwise price.
func EffectivePrice(price float64, sale *float64) float64 {
	if sale != nil {
		return *sale
	}

	return price
}

// DiscountPercent rounds (price - sale) / price to a whole percentage.
// It is zero when there is no sale or the sale does not undercut the price.
func DiscountPercent(price float64, sale *float64) int {
	if sale == nil || price <= 0 || *sale >= price {
		return 0
	}

	p := decimal.NewFromFloat(price)
	off := p.Sub(decimal.NewFromFloat(*sale)).Div(p).Mul(decimal.NewFromInt(100))

	return int(off.Round(0).IntPart())
}
