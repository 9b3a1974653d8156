package barcode

import (
	"strings"
)

// Fixed category taxonomy used for expiry-day estimation.
const (
	CategoryDairy      = "Dairy"
	CategoryProduce    = "Produce"
	CategoryMeat       = "Meat"
	CategorySeafood    = "Seafood"
	CategoryBakery     = "Bakery"
	CategoryGrains     = "Grains"
	CategoryFrozen     = "Frozen"
	CategoryCanned     = "Canned"
	CategoryBeverages  = "Beverages"
	CategorySnacks     = "Snacks"
	CategoryCondiments = "Condiments"
	CategoryOther      = "Other"
)

type categoryKeyword struct {
	keyword  string
	category string
}

// Ordered keyword table, first match wins. More specific keywords are listed
// before broader ones (e.g. "frozen" before "meat" so frozen meat keeps its
// longer shelf life).
var categoryKeywords = []categoryKeyword{
	{"frozen", CategoryFrozen},
	{"canned", CategoryCanned},
	{"milk", CategoryDairy},
	{"cheese", CategoryDairy},
	{"yogurt", CategoryDairy},
	{"yoghurt", CategoryDairy},
	{"butter", CategoryDairy},
	{"cream", CategoryDairy},
	{"dairy", CategoryDairy},
	{"egg", CategoryDairy},
	{"fish", CategorySeafood},
	{"seafood", CategorySeafood},
	{"shrimp", CategorySeafood},
	{"tuna", CategorySeafood},
	{"salmon", CategorySeafood},
	{"beef", CategoryMeat},
	{"pork", CategoryMeat},
	{"chicken", CategoryMeat},
	{"poultry", CategoryMeat},
	{"sausage", CategoryMeat},
	{"ham", CategoryMeat},
	{"meat", CategoryMeat},
	{"bread", CategoryBakery},
	{"bakery", CategoryBakery},
	{"pastry", CategoryBakery},
	{"cake", CategoryBakery},
	{"fruit", CategoryProduce},
	{"vegetable", CategoryProduce},
	{"produce", CategoryProduce},
	{"salad", CategoryProduce},
	{"herb", CategoryProduce},
	{"rice", CategoryGrains},
	{"pasta", CategoryGrains},
	{"noodle", CategoryGrains},
	{"cereal", CategoryGrains},
	{"flour", CategoryGrains},
	{"grain", CategoryGrains},
	{"juice", CategoryBeverages},
	{"soda", CategoryBeverages},
	{"water", CategoryBeverages},
	{"coffee", CategoryBeverages},
	{"tea", CategoryBeverages},
	{"beverage", CategoryBeverages},
	{"drink", CategoryBeverages},
	{"chip", CategorySnacks},
	{"cracker", CategorySnacks},
	{"cookie", CategorySnacks},
	{"biscuit", CategorySnacks},
	{"candy", CategorySnacks},
	{"chocolate", CategorySnacks},
	{"snack", CategorySnacks},
	{"sauce", CategoryCondiments},
	{"ketchup", CategoryCondiments},
	{"mustard", CategoryCondiments},
	{"mayonnaise", CategoryCondiments},
	{"vinegar", CategoryCondiments},
	{"spice", CategoryCondiments},
	{"condiment", CategoryCondiments},
}

// Default shelf life in days per taxonomy category.
var categoryExpiryDays = map[string]int{
	CategoryDairy:      10,
	CategoryProduce:    7,
	CategoryMeat:       4,
	CategorySeafood:    2,
	CategoryBakery:     5,
	CategoryGrains:     180,
	CategoryFrozen:     90,
	CategoryCanned:     365,
	CategoryBeverages:  120,
	CategorySnacks:     60,
	CategoryCondiments: 180,
	CategoryOther:      30,
}

// MapCategory maps free-text category labels to the fixed taxonomy. Matching
// is ordered substring matching over the lowercased input; the first keyword
// that matches wins and unmatched input maps to CategoryOther.
func MapCategory(freeText string) string {
	text := strings.ToLower(freeText)
	for _, ck := range categoryKeywords {
		if strings.Contains(text, ck.keyword) {
			return ck.category
		}
	}
	return CategoryOther
}

// EstimateExpiryDays returns the default shelf life for a taxonomy category.
// Unknown categories fall back to the CategoryOther default.
func EstimateExpiryDays(category string) int {
	if days, ok := categoryExpiryDays[category]; ok {
		return days
	}
	return categoryExpiryDays[CategoryOther]
}
