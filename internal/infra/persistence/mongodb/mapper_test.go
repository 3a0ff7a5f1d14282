package mongodb

import (
	"testing"
	"time"

	"creativehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProductMapping(t *testing.T) {
	sale := 19.0
	p := &entity.Product{
		Type:      entity.ProductTypeUIKits,
		Title:     "Dashboard Kit",
		Slug:      "dashboard-kit",
		Price:     29,
		SalePrice: &sale,
		Status:    entity.StatusPublished,
		CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	oid := primitive.NewObjectID()

	doc := fromProductDomain(p, oid)
	assert.Equal(t, "ui-kits", doc.Type)
	assert.Equal(t, []string{}, doc.Tags)

	back := toProductDomain(doc)
	assert.Equal(t, oid.Hex(), back.ID)
	assert.Equal(t, p.Title, back.Title)
	require.NotNil(t, back.SalePrice)
	assert.InDelta(t, 19.0, *back.SalePrice, 0.0001)
}

func TestCategoryMapping_Parent(t *testing.T) {
	parent := primitive.NewObjectID().Hex()
	c := &entity.Category{Name: "Icons", Slug: "icons", Type: "graphics", ParentCategory: &parent}

	doc, err := fromCategoryDomain(c, primitive.NewObjectID())
	require.NoError(t, err)
	require.NotNil(t, doc.ParentCategory)
	assert.Equal(t, parent, doc.ParentCategory.Hex())

	back := toCategoryDomain(doc)
	require.NotNil(t, back.ParentCategory)
	assert.Equal(t, parent, *back.ParentCategory)

	bad := "not-an-id"
	_, err = fromCategoryDomain(&entity.Category{ParentCategory: &bad}, primitive.NewObjectID())
	assert.Error(t, err)

	empty := ""
	doc, err = fromCategoryDomain(&entity.Category{ParentCategory: &empty}, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Nil(t, doc.ParentCategory)
}

func TestModuleAndLessonMapping(t *testing.T) {
	course := primitive.NewObjectID()
	doc, err := fromModuleDomain(&entity.Module{Course: course.Hex(), Title: "Intro", Order: 1}, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, course, doc.Course)
	assert.Equal(t, course.Hex(), toModuleDomain(doc).Course)

	_, err = fromLessonDomain(&entity.Lesson{Module: "bad"}, primitive.NewObjectID())
	assert.Error(t, err)
}

func TestUserMapping_KeepsPasswordHash(t *testing.T) {
	doc := fromUserDomain(&entity.User{Email: "a@b.c", PasswordHash: "hash", Role: entity.RoleAdmin}, primitive.NewObjectID())
	assert.Equal(t, "hash", doc.Password)
	assert.Equal(t, "hash", toUserDomain(doc).PasswordHash)
	assert.Equal(t, entity.RoleAdmin, toUserDomain(doc).Role)
}
