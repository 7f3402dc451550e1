package database

import (
	"context"
	"fmt"
	"time"

	"brewhouse/internal/domain"
	"brewhouse/internal/repository"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Seed wipes both collections and loads the demo data set. Intended for
// development environments only; gated by MONGO_SEED.
func Seed(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedBeers(ctx, db); err != nil {
		return err
	}
	if err := seedCustomers(ctx, db); err != nil {
		return err
	}

	logger.Info("Seed data loaded",
		zap.Int("beers", len(seedBeerFixtures())),
		zap.Int("customers", len(seedCustomerNames())),
	)
	return nil
}

func seedBeers(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection(repository.BeerCollection)

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear beer collection: %w", err)
	}

	docs := make([]interface{}, 0)
	for _, beer := range seedBeerFixtures() {
		docs = append(docs, beer)
	}

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed beers: %w", err)
	}
	return nil
}

func seedCustomers(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection(repository.CustomerCollection)

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear customer collection: %w", err)
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0)
	for _, name := range seedCustomerNames() {
		docs = append(docs, domain.Customer{
			ID:               primitive.NewObjectID(),
			Name:             name,
			CreatedDate:      now,
			LastModifiedDate: now,
		})
	}

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}
	return nil
}

func seedBeerFixtures() []domain.Beer {
	now := time.Now().UTC()
	return []domain.Beer{
		seedBeer("Galaxy Cat", "PALE_ALE", "123456", "12.99", 122, now),
		seedBeer("Crank", "PALE_ALE", "123456890", "11.99", 392, now),
		seedBeer("Sunshine City", "IPA", "1234", "13.99", 144, now),
	}
}

func seedBeer(name, style, upc, price string, quantity int32, now time.Time) domain.Beer {
	d := decimal.RequireFromString(price)
	d128, _ := primitive.ParseDecimal128(d.String())
	return domain.Beer{
		ID:               primitive.NewObjectID(),
		Name:             name,
		Style:            style,
		UPC:              upc,
		QuantityOnHand:   &quantity,
		Price:            &d128,
		CreatedDate:      now,
		LastModifiedDate: now,
	}
}

func seedCustomerNames() []string {
	return []string{"Alex", "Alice", "Roberto"}
}
