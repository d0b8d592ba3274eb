package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/chuling-hu/EoDeliveryForOffices/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DailyMenuRepository persists one document per calendar date, keyed by the
// canonical YYYY-MM-DD string. The fixed-width key makes range queries plain
// string comparisons.
type DailyMenuRepository struct {
	collection *mongo.Collection
}

func NewDailyMenuRepository(db *mongo.Database) *DailyMenuRepository {
	return &DailyMenuRepository{
		collection: db.Collection(collDailyMenus),
	}
}

func (r *DailyMenuRepository) Get(ctx context.Context, date domain.Date) (*domain.DailyMenu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var menu domain.DailyMenu
	err := r.collection.FindOne(ctx, bson.M{"_id": date}).Decode(&menu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// absent reads as an empty selection
			return nil, nil
		}
		return nil, domain.NewStorageError("get daily menu", err)
	}

	return &menu, nil
}

func (r *DailyMenuRepository) Set(ctx context.Context, menu *domain.DailyMenu) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	menu.UpdatedAt = time.Now()
	if menu.MenuItemIDs == nil {
		menu.MenuItemIDs = []string{}
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": menu.Date}, menu, opts); err != nil {
		return domain.NewStorageError("set daily menu", err)
	}

	return nil
}

func (r *DailyMenuRepository) GetRange(ctx context.Context, start, end domain.Date) ([]domain.DailyMenu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": bson.M{"$gte": start, "$lte": end}}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, domain.NewStorageError("get daily menu range", err)
	}
	defer cursor.Close(ctx)

	var menus []domain.DailyMenu
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, domain.NewStorageError("decode daily menu range", err)
	}

	return menus, nil
}

func (r *DailyMenuRepository) GetAllBefore(ctx context.Context, date domain.Date) ([]domain.DailyMenu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":             bson.M{"$lt": date},
		"menu_item_ids.0": bson.M{"$exists": true},
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, domain.NewStorageError("get daily menus before date", err)
	}
	defer cursor.Close(ctx)

	var menus []domain.DailyMenu
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, domain.NewStorageError("decode daily menus before date", err)
	}

	return menus, nil
}
