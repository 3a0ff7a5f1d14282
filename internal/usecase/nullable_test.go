package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableFloat(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantSet bool
		want    *float64
	}{
		{"absent", `{}`, false, nil},
		{"null", `{"salePrice":null}`, true, nil},
		{"value", `{"salePrice":19.5}`, true, func() *float64 { v := 19.5; return &v }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch ProductPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &patch))
			assert.Equal(t, tt.wantSet, patch.SalePrice.Set)
			assert.Equal(t, tt.want, patch.SalePrice.Value)
		})
	}

	var patch ProductPatch
	assert.Error(t, json.Unmarshal([]byte(`{"salePrice":"cheap"}`), &patch))
}

func TestNullableString(t *testing.T) {
	var patch CategoryPatch
	require.NoError(t, json.Unmarshal([]byte(`{"parentCategory":null}`), &patch))
	assert.True(t, patch.ParentCategory.Set)
	assert.Nil(t, patch.ParentCategory.Value)

	patch = CategoryPatch{}
	require.NoError(t, json.Unmarshal([]byte(`{"parentCategory":"abc"}`), &patch))
	require.NotNil(t, patch.ParentCategory.Value)
	assert.Equal(t, "abc", *patch.ParentCategory.Value)
}
