package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodlens/backend/internal/domain"
)

// topBrandsLimit caps the top-brands aggregation in the stats query.
const topBrandsLimit = 10

// Client reads product records from a MongoDB collection. One Client is
// shared read-only across all requests; the driver handles pooling.
type Client struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// Connect opens a MongoDB client, verifies connectivity with a ping, and
// binds it to the configured database and collection.
func Connect(ctx context.Context, uri, database, collection string) (*Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %v", domain.ErrStoreUnavailable, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: ping: %v", domain.ErrStoreUnavailable, err)
	}

	return &Client{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// Close disconnects the underlying MongoDB client.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// Ping verifies store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("%w: ping: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// FindByCode performs an exact-match lookup on the code field.
func (c *Client) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	var raw bson.M
	err := c.collection.FindOne(ctx, bson.M{"code": code}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		log.Printf("[store] FindByCode %q failed: %v", code, err)
		return nil, fmt.Errorf("%w: find by code: %v", domain.ErrStoreUnavailable, err)
	}

	return MapToProduct(raw), nil
}

// SearchByName matches query as a case-insensitive substring of the
// product_name field, returning at most limit results.
func (c *Client) SearchByName(ctx context.Context, query string, limit int64) ([]domain.SearchResult, error) {
	filter := bson.M{
		"product_name": bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"},
	}

	cursor, err := c.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		log.Printf("[store] SearchByName %q failed: %v", query, err)
		return nil, fmt.Errorf("%w: search: %v", domain.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	results := make([]domain.SearchResult, 0, limit)
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: decode search result: %v", domain.ErrStoreUnavailable, err)
		}
		results = append(results, MapToSearchResult(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: search cursor: %v", domain.ErrStoreUnavailable, err)
	}

	return results, nil
}

// Stats aggregates collection-wide statistics: total record count, counts of
// records carrying images and nutrition grades, and the most frequent brands.
func (c *Client) Stats(ctx context.Context) (*domain.Statistics, error) {
	total, err := c.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: count total: %v", domain.ErrStoreUnavailable, err)
	}

	withImages, err := c.collection.CountDocuments(ctx, existsNonEmpty("image_url"))
	if err != nil {
		return nil, fmt.Errorf("%w: count images: %v", domain.ErrStoreUnavailable, err)
	}

	withGrades, err := c.collection.CountDocuments(ctx, existsNonEmpty("nutrition_grades"))
	if err != nil {
		return nil, fmt.Errorf("%w: count nutrition grades: %v", domain.ErrStoreUnavailable, err)
	}

	topBrands, err := c.topBrands(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Statistics{
		TotalProducts:               total,
		ProductsWithImages:          withImages,
		ProductsWithNutritionGrades: withGrades,
		TopBrands:                   topBrands,
	}, nil
}

// topBrands groups records by brand and returns the most frequent ones.
func (c *Client) topBrands(ctx context.Context) ([]domain.BrandCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: existsNonEmpty("brands")}},
		{{Key: "$group", Value: bson.M{"_id": "$brands", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: topBrandsLimit}},
	}

	cursor, err := c.collection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("[store] top brands aggregation failed: %v", err)
		return nil, fmt.Errorf("%w: top brands: %v", domain.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	brands := make([]domain.BrandCount, 0, topBrandsLimit)
	for cursor.Next(ctx) {
		var row struct {
			Brand string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("%w: decode brand row: %v", domain.ErrStoreUnavailable, err)
		}
		brands = append(brands, domain.BrandCount{Brand: row.Brand, Count: row.Count})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: brand cursor: %v", domain.ErrStoreUnavailable, err)
	}

	return brands, nil
}

// existsNonEmpty filters for documents where field is present and neither
// null nor the empty string.
func existsNonEmpty(field string) bson.M {
	return bson.M{field: bson.M{"$exists": true, "$nin": bson.A{nil, ""}}}
}
