package seed

import (
	"time"

	"creativehub/internal/domain/entity"
	"creativehub/internal/infra/persistence/model"
	"creativehub/internal/infra/persistence/mongodb"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func price(v float64) *float64 { return &v }

type categorySeed struct {
	name, slug string
	children   [][2]string // name, slug
}

var categoryTree = map[entity.ProductType][]categorySeed{
	entity.ProductTypeGraphics: {
		{name: "Illustrations", slug: "illustrations", children: [][2]string{{"Vector Art", "vector-art"}, {"Hand Drawn", "hand-drawn"}}},
		{name: "Print Templates", slug: "print-templates", children: [][2]string{{"Posters", "posters"}, {"Flyers", "flyers"}}},
	},
	entity.ProductTypeVideoTemplates: {
		{name: "Intros", slug: "video-intros", children: [][2]string{{"Logo Reveals", "logo-reveals"}}},
		{name: "Social Media", slug: "video-social", children: [][2]string{{"Stories", "video-stories"}}},
	},
	entity.ProductTypeFonts: {
		{name: "Serif", slug: "serif-fonts"},
		{name: "Sans Serif", slug: "sans-serif-fonts"},
		{name: "Display", slug: "display-fonts", children: [][2]string{{"Script", "script-fonts"}}},
	},
	entity.ProductTypeWebsites: {
		{name: "Landing Pages", slug: "landing-pages"},
		{name: "E-commerce", slug: "ecommerce-themes", children: [][2]string{{"Fashion Stores", "fashion-stores"}}},
	},
}

var productsByType = map[entity.ProductType][]model.ProductModel{
	entity.ProductTypeGraphics: {
		{Title: "Retro Sunset Vector Pack", Slug: "retro-sunset-vector-pack", Description: "40 layered retro sunset illustrations in AI, EPS and SVG.", Price: 1200, SalePrice: price(899), Category: "vector-art", Tags: []string{"retro", "vector", "sunset"}, Status: "published", Thumbnail: "/images/graphics/retro-sunset.jpg", Rating: 4.7},
		{Title: "Botanical Line Art", Slug: "botanical-line-art", Description: "Hand drawn botanical line illustrations for packaging and prints.", Price: 950, Category: "hand-drawn", Tags: []string{"botanical", "line-art"}, Status: "published", Thumbnail: "/images/graphics/botanical.jpg", Rating: 4.5},
		{Title: "Concert Poster Templates", Slug: "concert-poster-templates", Description: "Twelve editable concert posters in A3 and A2.", Price: 700, Category: "posters", Tags: []string{"poster", "music", "print"}, Status: "published", Thumbnail: "/images/graphics/concert-posters.jpg", Rating: 4.2},
		{Title: "Business Flyer Bundle", Slug: "business-flyer-bundle", Description: "Corporate flyer templates with matching social banners.", Price: 500, SalePrice: price(350), Category: "flyers", Tags: []string{"flyer", "corporate"}, Status: "draft", Thumbnail: "/images/graphics/business-flyers.jpg", Rating: 0},
	},
	entity.ProductTypeVideoTemplates: {
		{Title: "Minimal Logo Reveal", Slug: "minimal-logo-reveal", Description: "Clean 10 second logo reveal for After Effects.", Price: 1500, SalePrice: price(1200), Category: "logo-reveals", Tags: []string{"logo", "after-effects"}, Status: "published", Thumbnail: "/images/video/minimal-logo.jpg", Rating: 4.8},
		{Title: "Glitch Intro", Slug: "glitch-intro", Description: "Fast glitch opener with sound design.", Price: 1100, Category: "video-intros", Tags: []string{"glitch", "intro"}, Status: "published", Thumbnail: "/images/video/glitch-intro.jpg", Rating: 4.4},
		{Title: "Instagram Story Pack", Slug: "instagram-story-pack", Description: "24 animated vertical story templates for Premiere Pro.", Price: 900, Category: "video-stories", Tags: []string{"instagram", "stories", "premiere"}, Status: "pending", Thumbnail: "/images/video/story-pack.jpg", Rating: 0},
	},
	entity.ProductTypeFonts: {
		{Title: "Hind Serif Family", Slug: "hind-serif-family", Description: "Eight weight editorial serif with Bengali support.", Price: 2500, SalePrice: price(1999), Category: "serif-fonts", Tags: []string{"serif", "editorial", "bengali"}, Status: "published", Thumbnail: "/images/fonts/hind-serif.jpg", Rating: 4.9},
		{Title: "Grotesk Neue", Slug: "grotesk-neue", Description: "Geometric grotesque for interfaces and signage.", Price: 1800, Category: "sans-serif-fonts", Tags: []string{"sans", "ui"}, Status: "published", Thumbnail: "/images/fonts/grotesk-neue.jpg", Rating: 4.6},
		{Title: "Moonlight Script", Slug: "moonlight-script", Description: "Flowing wedding script with alternates and ligatures.", Price: 800, Category: "script-fonts", Tags: []string{"script", "wedding"}, Status: "published", Thumbnail: "/images/fonts/moonlight.jpg", Rating: 4.3},
		{Title: "Blockhead Display", Slug: "blockhead-display", Description: "Chunky display face for headlines.", Price: 600, Category: "display-fonts", Tags: []string{"display", "headline"}, Status: "draft", Thumbnail: "/images/fonts/blockhead.jpg", Rating: 0},
	},
	entity.ProductTypeWebsites: {
		{Title: "SaaS Launch Landing Page", Slug: "saas-launch-landing-page", Description: "Responsive Next.js landing page with pricing and FAQ sections.", Price: 3500, SalePrice: price(2800), Category: "landing-pages", Tags: []string{"saas", "nextjs", "landing"}, Status: "published", Thumbnail: "/images/websites/saas-launch.jpg", Rating: 4.6},
		{Title: "Boutique Fashion Store", Slug: "boutique-fashion-store", Description: "Storefront theme with lookbook, cart and checkout pages.", Price: 5000, Category: "fashion-stores", Tags: []string{"ecommerce", "fashion"}, Status: "published", Thumbnail: "/images/websites/boutique.jpg", Rating: 4.5},
		{Title: "Agency Portfolio", Slug: "agency-portfolio", Description: "Portfolio site for creative agencies.", Price: 2200, Category: "landing-pages", Tags: []string{"portfolio", "agency"}, Status: "pending", Thumbnail: "/images/websites/agency.jpg", Rating: 0},
	},
}

// Default builds the demo catalogue stamped with now.
func Default(now time.Time) []Batch {
	now = now.UTC()

	var categories []any
	for _, t := range seededTypes() {
		for _, parent := range categoryTree[t] {
			parentID := primitive.NewObjectID()
			categories = append(categories, model.CategoryModel{
				ID: parentID, Name: parent.name, Slug: parent.slug, Type: string(t),
				IsParent: true, Status: string(entity.CategoryActive), CreatedAt: now, UpdatedAt: now,
			})
			for _, child := range parent.children {
				categories = append(categories, model.CategoryModel{
					ID: primitive.NewObjectID(), Name: child[0], Slug: child[1], Type: string(t),
					ParentCategory: &parentID, Status: string(entity.CategoryActive), CreatedAt: now, UpdatedAt: now,
				})
			}
		}
	}

	batches := []Batch{{Collection: mongodb.CollectionCategories, Documents: categories}}
	for _, t := range seededTypes() {
		docs := make([]any, 0, len(productsByType[t]))
		for i, p := range productsByType[t] {
			p.ID = primitive.NewObjectID()
			p.Type = string(t)
			// spread creation times so newest/oldest sorts are meaningful
			p.CreatedAt = now.Add(-time.Duration(len(productsByType[t])-i) * time.Hour)
			p.UpdatedAt = p.CreatedAt
			docs = append(docs, p)
		}
		batches = append(batches, Batch{Collection: t.Collection(), Documents: docs})
	}

	return batches
}

func seededTypes() []entity.ProductType {
	return []entity.ProductType{
		entity.ProductTypeGraphics,
		entity.ProductTypeVideoTemplates,
		entity.ProductTypeFonts,
		entity.ProductTypeWebsites,
	}
}
