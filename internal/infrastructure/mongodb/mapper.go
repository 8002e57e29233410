package mongodb

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/foodlens/backend/internal/domain"
)

// Fallbacks applied when a source field is missing or blank. The source
// schema is not owned by this service, so every read is defensive.
const (
	fallbackUnknown      = "Unknown"
	fallbackNotAvailable = "Not available"
)

// MapToProduct shapes a raw store document into the curated product view.
// The unmodified document is carried along in RawData.
func MapToProduct(raw bson.M) *domain.Product {
	return &domain.Product{
		Barcode:        stringField(raw, "code", ""),
		Name:           stringField(raw, "product_name", fallbackUnknown),
		Brands:         stringField(raw, "brands", fallbackUnknown),
		Categories:     stringField(raw, "categories", fallbackUnknown),
		Ingredients:    stringField(raw, "ingredients_text", fallbackNotAvailable),
		NutritionGrade: stringField(raw, "nutrition_grades", fallbackNotAvailable),
		Countries:      stringField(raw, "countries", fallbackUnknown),
		ImageURL:       stringField(raw, "image_url", ""),
		NutritionFacts: extractNutritionFacts(raw),
		RawData:        domain.RawRecord(raw),
	}
}

// MapToSearchResult shapes a raw store document into a search list item.
func MapToSearchResult(raw bson.M) domain.SearchResult {
	return domain.SearchResult{
		Barcode:        stringField(raw, "code", ""),
		Name:           stringField(raw, "product_name", ""),
		Brands:         stringField(raw, "brands", ""),
		Categories:     stringField(raw, "categories", ""),
		NutritionGrade: stringField(raw, "nutrition_grades", ""),
		ImageURL:       stringField(raw, "image_url", ""),
	}
}

// extractNutritionFacts reads the per-100g nutriment values from the
// nutriments sub-document. Absent values stay nil and serialize as null.
func extractNutritionFacts(raw bson.M) domain.NutritionFacts {
	nutriments, ok := subDocument(raw, "nutriments")
	if !ok {
		return domain.NutritionFacts{}
	}

	return domain.NutritionFacts{
		Energy:        floatField(nutriments, "energy_100g"),
		Fat:           floatField(nutriments, "fat_100g"),
		SaturatedFat:  floatField(nutriments, "saturated-fat_100g"),
		Carbohydrates: floatField(nutriments, "carbohydrates_100g"),
		Sugars:        floatField(nutriments, "sugars_100g"),
		Fiber:         floatField(nutriments, "fiber_100g"),
		Proteins:      floatField(nutriments, "proteins_100g"),
		Salt:          floatField(nutriments, "salt_100g"),
		Sodium:        floatField(nutriments, "sodium_100g"),
	}
}

// subDocument extracts a nested document regardless of how the driver
// decoded it.
func subDocument(raw bson.M, key string) (map[string]interface{}, bool) {
	switch v := raw[key].(type) {
	case bson.M:
		return v, true
	case map[string]interface{}:
		return v, true
	case bson.D:
		return v.Map(), true
	}
	return nil, false
}

// stringField returns the named field when it is a non-blank string,
// otherwise the fallback.
func stringField(doc bson.M, key, fallback string) string {
	if v, ok := doc[key].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// floatField reads a numeric field that heterogeneous ingestion may have
// stored as a float, an integer, or a string.
func floatField(doc map[string]interface{}, key string) *float64 {
	switch v := doc[key].(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int32:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return &f
		}
	}
	return nil
}
