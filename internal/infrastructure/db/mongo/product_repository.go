package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

const productsCollection = "products"

// ProductRepository reads the catalog from MongoDB.
type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

type mongoProduct struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Currency    string             `bson:"currency"`
	ImageURL    string             `bson:"image_url,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
}

// SearchByName matches product names case-insensitively. The query is
// regex-escaped so user input cannot change the match semantics.
func (r *ProductRepository) SearchByName(ctx context.Context, query string) ([]domain.Product, error) {
	filter := bson.M{"name": bson.M{
		"$regex":   regexp.QuoteMeta(query),
		"$options": "i",
	}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	for cursor.Next(ctx) {
		var mp mongoProduct
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, domain.Product{
			ID:          mp.ID.Hex(),
			Name:        mp.Name,
			Description: mp.Description,
			Price:       mp.Price,
			Currency:    mp.Currency,
			ImageURL:    mp.ImageURL,
			CreatedAt:   unixToTime(mp.CreatedAt),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}
