package customer

import "go.mongodb.org/mongo-driver/bson/primitive"

// Customer is an identity record. Only first and last name are required;
// records are created through the API and never mutated afterwards.
type Customer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	FirstName  string             `bson:"first_name" json:"first_name"`
	LastName   string             `bson:"last_name" json:"last_name"`
	Email      *string            `bson:"email,omitempty" json:"email,omitempty"`
	Phone      *string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Address    *string            `bson:"address,omitempty" json:"address,omitempty"`
	City       *string            `bson:"city,omitempty" json:"city,omitempty"`
	State      *string            `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode *string            `bson:"postal_code,omitempty" json:"postal_code,omitempty"`
	Notes      *string            `bson:"notes,omitempty" json:"notes,omitempty"`
}
