package domain

// RawRecord is the unmodified source document as stored in the product
// database. Its schema is owned by the upstream data set, not by this
// service, so it stays a loose key-value mapping.
type RawRecord map[string]interface{}

// Product is the curated view of a product record returned by the lookup
// endpoint. Missing source fields are filled with defaults at the mapping
// boundary; the full source document rides along in RawData.
type Product struct {
	Barcode        string         `json:"barcode"`
	Name           string         `json:"name"`
	Brands         string         `json:"brands"`
	Categories     string         `json:"categories"`
	Ingredients    string         `json:"ingredients"`
	NutritionGrade string         `json:"nutrition_grade"`
	Countries      string         `json:"countries"`
	ImageURL       string         `json:"image_url"`
	NutritionFacts NutritionFacts `json:"nutrition_facts"`
	RawData        RawRecord      `json:"raw_data"`
}

// NutritionFacts holds per-100g nutriment values. Pointers so that absent
// values serialize as JSON null rather than zero.
type NutritionFacts struct {
	Energy        *float64 `json:"energy_100g"`
	Fat           *float64 `json:"fat_100g"`
	SaturatedFat  *float64 `json:"saturated_fat_100g"`
	Carbohydrates *float64 `json:"carbohydrates_100g"`
	Sugars        *float64 `json:"sugars_100g"`
	Fiber         *float64 `json:"fiber_100g"`
	Proteins      *float64 `json:"proteins_100g"`
	Salt          *float64 `json:"salt_100g"`
	Sodium        *float64 `json:"sodium_100g"`
}

// SearchResult is one item in a free-text search response.
type SearchResult struct {
	Barcode        string `json:"barcode"`
	Name           string `json:"name"`
	Brands         string `json:"brands"`
	Categories     string `json:"categories"`
	NutritionGrade string `json:"nutrition_grade"`
	ImageURL       string `json:"image_url"`
}

// BrandCount is one entry in the top-brands statistic.
type BrandCount struct {
	Brand string `json:"brand"`
	Count int64  `json:"count"`
}

// Statistics aggregates counts over the whole product collection.
type Statistics struct {
	TotalProducts               int64        `json:"total_products"`
	ProductsWithImages          int64        `json:"products_with_images"`
	ProductsWithNutritionGrades int64        `json:"products_with_nutrition_grades"`
	TopBrands                   []BrandCount `json:"top_brands"`
}
