package barcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"dairy keyword", "Whole Milk", CategoryDairy},
		{"produce from fruits", "Plant-based foods, Fruits and vegetables", CategoryProduce},
		{"meat keyword", "Fresh chicken breast", CategoryMeat},
		{"seafood keyword", "Smoked salmon fillet", CategorySeafood},
		{"bakery keyword", "Sliced bread", CategoryBakery},
		{"frozen wins over meat", "Frozen beef patties", CategoryFrozen},
		{"canned wins over seafood", "Canned tuna", CategoryCanned},
		{"beverage keyword", "Orange juice", CategoryBeverages},
		{"snack keyword", "Potato chips", CategorySnacks},
		{"condiment keyword", "Tomato sauce", CategoryCondiments},
		{"case insensitive", "YOGURT NATURAL", CategoryDairy},
		{"unmatched", "mystery goo", CategoryOther},
		{"empty", "", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapCategory(tt.input))
		})
	}
}

func TestMapCategoryIsDeterministic(t *testing.T) {
	input := "Dairy products, milk, cheese"
	first := MapCategory(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, MapCategory(input))
	}
}

func TestEstimateExpiryDaysPositiveForAllCategories(t *testing.T) {
	categories := []string{
		CategoryDairy, CategoryProduce, CategoryMeat, CategorySeafood,
		CategoryBakery, CategoryGrains, CategoryFrozen, CategoryCanned,
		CategoryBeverages, CategorySnacks, CategoryCondiments, CategoryOther,
	}

	for _, category := range categories {
		assert.Greater(t, EstimateExpiryDays(category), 0, "category %s", category)
	}
}

func TestEstimateExpiryDaysUnknownCategoryFallsBack(t *testing.T) {
	assert.Equal(t, EstimateExpiryDays(CategoryOther), EstimateExpiryDays("NoSuchCategory"))
	assert.Greater(t, EstimateExpiryDays(""), 0)
}
