package integration

import (
	"context"
	"testing"
	"time"

	"storefront/internal/model"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// TestDB represents a disposable MongoDB instance for integration tests.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	DB        *mongo.Database
}

// SetupTestDB creates a MongoDB test container and a connected database
// handle.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(connStr))
	if err != nil {
		t.Fatalf("failed to connect to mongodb: %v", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		t.Fatalf("failed to ping mongodb: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Disconnect(ctx)
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: container,
		Client:    client,
		DB:        client.Database("storefront_test"),
	}
}

// SeedCatalog inserts sample catalog documents.
func SeedCatalog(t *testing.T, db *mongo.Database) {
	t.Helper()

	ctx := context.Background()

	products := []interface{}{
		model.CatalogItem{ItemID: "1", Name: "Basmati Rice", Price: "249", URL: "https://cdn.example.com/rice.jpg", Description: "5kg pack", Category: "groceries"},
		model.CatalogItem{ItemID: "2", Name: "Toor Dal", Price: "120", URL: "https://cdn.example.com/dal.jpg", Description: "1kg pack", Category: "groceries"},
		model.CatalogItem{ItemID: "3", Name: "Ghee", Price: "550", URL: "https://cdn.example.com/ghee.jpg", Description: "500ml jar", Category: "dairy"},
	}
	if _, err := db.Collection(model.CollectionProducts).InsertMany(ctx, products); err != nil {
		t.Fatalf("failed to seed products: %v", err)
	}

	banners := []interface{}{
		model.CatalogItem{ItemID: "10", Name: "Festive Offer", Price: "0", URL: "https://cdn.example.com/festive.jpg", Description: "Season sale", Category: "promo"},
		model.CatalogItem{ItemID: "11", Name: "Fresh Produce", Price: "0", URL: "https://cdn.example.com/fresh.jpg", Description: "Daily picks", Category: "promo"},
		model.CatalogItem{ItemID: "12", Name: "Bulk Savings", Price: "0", URL: "https://cdn.example.com/bulk.jpg", Description: "Wholesale", Category: "promo"},
	}
	if _, err := db.Collection(model.CollectionCarousels).InsertMany(ctx, banners); err != nil {
		t.Fatalf("failed to seed carousel: %v", err)
	}

	buys := []interface{}{
		model.CatalogItem{ItemID: "17", Name: "Jaggery", Price: "90", URL: "https://cdn.example.com/jaggery.jpg", Description: "1kg block", Category: "groceries"},
	}
	if _, err := db.Collection(model.CollectionBuys).InsertMany(ctx, buys); err != nil {
		t.Fatalf("failed to seed buys: %v", err)
	}
}

// CleanupDB removes all data from the test collections.
func CleanupDB(t *testing.T, db *mongo.Database) {
	t.Helper()

	ctx := context.Background()

	collections := []string{
		model.CollectionProducts,
		model.CollectionCarts,
		model.CollectionCarousels,
		model.CollectionBuys,
		model.CollectionOrders,
		model.CollectionUsers,
		model.CollectionSellers,
	}
	for _, name := range collections {
		if err := db.Collection(name).Drop(ctx); err != nil {
			t.Logf("failed to drop collection %s: %v", name, err)
		}
	}
}
