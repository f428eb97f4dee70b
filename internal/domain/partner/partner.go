package partner

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultCommissionRate applies when a create request omits the rate.
const DefaultCommissionRate = 5.0

// Partner is a referral-source record. CommissionRate is a percentage of
// a funded loan's amount and must lie in [0, 100]. A stored document that
// lacks the field decodes to 0, which downstream commission computation
// treats as rate 0 rather than an error.
type Partner struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name           string             `bson:"name" json:"name"`
	ContactName    *string            `bson:"contact_name,omitempty" json:"contact_name,omitempty"`
	Email          *string            `bson:"email,omitempty" json:"email,omitempty"`
	Phone          *string            `bson:"phone,omitempty" json:"phone,omitempty"`
	CommissionRate float64            `bson:"commission_rate" json:"commission_rate"`
	Notes          *string            `bson:"notes,omitempty" json:"notes,omitempty"`
}
