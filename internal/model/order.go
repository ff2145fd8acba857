package model

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionOrders is the orders collection name.
const CollectionOrders = "orders"

// Order is an immutable record of a checkout: the purchased products, the
// buyer's pickup details and the bill figures as submitted by the client.
// Orders are created and deleted, never updated.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID     string             `bson:"id" json:"id"`
	Products    []OrderProduct     `bson:"products" json:"products"`
	UserDetails UserDetails        `bson:"userDetails" json:"userDetails"`
	BillDetails BillDetails        `bson:"billDetails" json:"billDetails"`
}

// OrderProduct is a catalog snapshot embedded in an order. Every field is
// required.
type OrderProduct struct {
	ItemID      string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Price       string `bson:"price" json:"price"`
	Description string `bson:"description" json:"description"`
	URL         string `bson:"url" json:"url"`
	Category    string `bson:"category" json:"category"`
}

// UserDetails holds the buyer's pickup information. Every field is required.
type UserDetails struct {
	Name          string `bson:"name" json:"name"`
	Phone         string `bson:"phone" json:"phone"`
	Address       string `bson:"address" json:"address"`
	PickupTime    string `bson:"pickupTime" json:"pickupTime"`
	OrderDay      string `bson:"orderDay" json:"orderDay"`
	PaymentMethod string `bson:"paymentMethod" json:"paymentMethod"`
}

// BillDetails holds the bill figures as supplied by the caller; they are
// stored, not recomputed. Pointer fields distinguish an absent figure from a
// legitimate zero.
type BillDetails struct {
	TotalCost      *float64 `bson:"totalCost" json:"totalCost"`
	Tax            *float64 `bson:"tax" json:"tax"`
	Discount       *float64 `bson:"discount" json:"discount"`
	DeliveryCharge *float64 `bson:"deliveryCharge" json:"deliveryCharge"`
	FinalAmount    *float64 `bson:"finalAmount" json:"finalAmount"`
}

// Validate checks the required-field constraints before an order is accepted.
// No partial order may be persisted when any of these fail.
func (o *Order) Validate() error {
	if o.OrderID == "" {
		return fmt.Errorf("order id is required")
	}

	if len(o.Products) == 0 {
		return fmt.Errorf("order must contain at least one product")
	}

	for i, p := range o.Products {
		switch {
		case p.ItemID == "":
			return fmt.Errorf("product %d: id is required", i)
		case p.Name == "":
			return fmt.Errorf("product %d: name is required", i)
		case p.Price == "":
			return fmt.Errorf("product %d: price is required", i)
		case p.Description == "":
			return fmt.Errorf("product %d: description is required", i)
		case p.URL == "":
			return fmt.Errorf("product %d: url is required", i)
		case p.Category == "":
			return fmt.Errorf("product %d: category is required", i)
		}
	}

	u := o.UserDetails
	switch {
	case u.Name == "":
		return fmt.Errorf("userDetails.name is required")
	case u.Phone == "":
		return fmt.Errorf("userDetails.phone is required")
	case u.Address == "":
		return fmt.Errorf("userDetails.address is required")
	case u.PickupTime == "":
		return fmt.Errorf("userDetails.pickupTime is required")
	case u.OrderDay == "":
		return fmt.Errorf("userDetails.orderDay is required")
	case u.PaymentMethod == "":
		return fmt.Errorf("userDetails.paymentMethod is required")
	}

	b := o.BillDetails
	switch {
	case b.TotalCost == nil:
		return fmt.Errorf("billDetails.totalCost is required")
	case b.Tax == nil:
		return fmt.Errorf("billDetails.tax is required")
	case b.Discount == nil:
		return fmt.Errorf("billDetails.discount is required")
	case b.DeliveryCharge == nil:
		return fmt.Errorf("billDetails.deliveryCharge is required")
	case b.FinalAmount == nil:
		return fmt.Errorf("billDetails.finalAmount is required")
	}

	return nil
}
