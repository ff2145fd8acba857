package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account is a user or seller record. The password field carries the bcrypt
// hash once stored; handlers blank it before writing a response.
type Account struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	LocalID  string             `bson:"id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"password,omitempty"`
}

// Collection names for account entities.
const (
	CollectionUsers   = "users"
	CollectionSellers = "sellers"
)

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
