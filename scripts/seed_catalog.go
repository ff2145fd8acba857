package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds the catalog collections with sample documents for local development.
//
// Usage:
//
//	MONGODB_URI=mongodb://localhost:27017 DB_NAME=storefront go run scripts/seed_catalog.go
func main() {
	uri := getenv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := getenv("DB_NAME", "storefront")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)

	products := []interface{}{
		item("1", "Basmati Rice", "249", "https://cdn.example.com/rice.jpg", "Premium aged basmati rice, 5kg pack", "groceries"),
		item("2", "Toor Dal", "120", "https://cdn.example.com/dal.jpg", "Unpolished toor dal, 1kg pack", "groceries"),
		item("3", "Ghee", "550", "https://cdn.example.com/ghee.jpg", "Pure cow ghee, 1L jar", "dairy"),
		item("4", "Turmeric Powder", "60", "https://cdn.example.com/turmeric.jpg", "Ground turmeric, 200g pack", "spices"),
		item("5", "Jaggery", "85", "https://cdn.example.com/jaggery.jpg", "Organic cane jaggery, 1kg block", "groceries"),
	}

	banners := []interface{}{
		item("1", "Festive Sale", "", "https://cdn.example.com/banner-festive.jpg", "Up to 40% off on groceries", "banner"),
		item("2", "Fresh Arrivals", "", "https://cdn.example.com/banner-fresh.jpg", "New stock every morning", "banner"),
		item("3", "Free Delivery", "", "https://cdn.example.com/banner-delivery.jpg", "Free delivery on orders above 500", "banner"),
	}

	seed(ctx, db, "products", products)
	seed(ctx, db, "carousels", banners)

	fmt.Printf("Seeded %d products and %d carousel banners into %s\n", len(products), len(banners), dbName)
}

func seed(ctx context.Context, db *mongo.Database, collection string, docs []interface{}) {
	if err := db.Collection(collection).Drop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to drop %s: %v\n", collection, err)
		os.Exit(1)
	}
	if _, err := db.Collection(collection).InsertMany(ctx, docs); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed %s: %v\n", collection, err)
		os.Exit(1)
	}
}

func item(id, name, price, url, description, category string) map[string]string {
	return map[string]string{
		"id":          id,
		"name":        name,
		"price":       price,
		"url":         url,
		"description": description,
		"category":    category,
	}
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
