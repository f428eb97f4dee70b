package event

import (
	"context"
	"time"
)

type LoanFundedEvent struct {
	LoanID           string    `json:"loanId"`
	CustomerID       string    `json:"customerId"`
	PartnerID        *string   `json:"partnerId,omitempty"`
	Amount           float64   `json:"amount"`
	CommissionAmount float64   `json:"commissionAmount"`
	FundedDate       time.Time `json:"fundedDate"`
	Timestamp        time.Time `json:"timestamp"`
}

type Publisher interface {
	PublishLoanFunded(ctx context.Context, event LoanFundedEvent) error
}

func (p *RabbitMQEventPublisher) PublishLoanFunded(ctx context.Context, event LoanFundedEvent) error {
	return p.publish(ctx, routingKeyLoanFunded, event)
}

var _ Publisher = (*RabbitMQEventPublisher)(nil)
