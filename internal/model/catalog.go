package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CatalogItem is the document shape shared by the products, carts, carousels
// and buys collections. The stored _id is assigned by MongoDB and is distinct
// from the item's own logical id field. Price is kept as text, matching the
// stored documents.
type CatalogItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ItemID      string             `bson:"id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Price       string             `bson:"price" json:"price"`
	URL         string             `bson:"url" json:"url"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
}

// Collection names for the catalog-shaped entities.
const (
	CollectionProducts  = "products"
	CollectionCarts     = "carts"
	CollectionCarousels = "carousels"
	CollectionBuys      = "buys"
)
