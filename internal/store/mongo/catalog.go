package mongo

import (
	"context"
	"time"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogRepository reads the restaurant and menu-item catalog. The
// scheduler never writes here; restaurant management owns these
// collections.
type CatalogRepository struct {
	restaurants *mongo.Collection
	menuItems   *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{
		restaurants: db.Collection(collRestaurants),
		menuItems:   db.Collection(collMenuItems),
	}
}

func (r *CatalogRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.restaurants.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, domain.NewStorageError("list restaurants", err)
	}
	defer cursor.Close(ctx)

	var restaurants []domain.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, domain.NewStorageError("decode restaurants", err)
	}

	return restaurants, nil
}

func (r *CatalogRepository) ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.menuItems.Find(ctx, bson.M{"restaurant_id": restaurantID})
	if err != nil {
		return nil, domain.NewStorageError("list menu items", err)
	}
	defer cursor.Close(ctx)

	var items []domain.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, domain.NewStorageError("decode menu items", err)
	}

	return items, nil
}

// ListAllMenuItems returns the whole catalog in natural (insertion) order,
// which the selection engine relies on for stable restaurant grouping.
func (r *CatalogRepository) ListAllMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.menuItems.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.NewStorageError("list all menu items", err)
	}
	defer cursor.Close(ctx)

	var items []domain.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, domain.NewStorageError("decode all menu items", err)
	}

	return items, nil
}
