package loan

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusApplied  Status = "applied"
	StatusApproved Status = "approved"
	StatusFunded   Status = "funded"
	StatusRejected Status = "rejected"
	StatusClosed   Status = "closed"
)

// DefaultStatus applies when a create request omits the status.
const DefaultStatus = StatusApplied

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusApproved, StatusFunded, StatusRejected, StatusClosed:
		return true
	}
	return false
}

func Statuses() []Status {
	return []Status{StatusApplied, StatusApproved, StatusFunded, StatusRejected, StatusClosed}
}

// Loan references a Customer and optionally a Partner by their canonical
// string identifiers. CommissionAmount and FundedDate are derived at
// admission time when the loan arrives in the funded state; for every
// other status they pass through exactly as supplied.
type Loan struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CustomerID       string             `bson:"customer_id" json:"customer_id"`
	PartnerID        *string            `bson:"partner_id,omitempty" json:"partner_id,omitempty"`
	Amount           float64            `bson:"amount" json:"amount"`
	Status           Status             `bson:"status" json:"status"`
	ApplicationDate  *time.Time         `bson:"application_date,omitempty" json:"application_date,omitempty"`
	FundedDate       *time.Time         `bson:"funded_date,omitempty" json:"funded_date,omitempty"`
	CommissionAmount *float64           `bson:"commission_amount,omitempty" json:"commission_amount,omitempty"`
}

// Commission computes amount * rate / 100 rounded to 2 decimal places.
// Rounding is half-up (decimal.Round rounds half away from zero and both
// operands are non-negative here).
func Commission(amount, rate float64) float64 {
	c := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(rate)).
		Div(decimal.NewFromInt(100)).
		Round(2)
	f, _ := c.Float64()
	return f
}
