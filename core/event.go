package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// EventType event type
type EventType string

const (
	// EventDeposited deposit settled
	EventDeposited EventType = "deposited"
	// EventWithdrawn withdraw settled
	EventWithdrawn EventType = "withdrawn"
	// EventBorrowed borrow settled
	EventBorrowed EventType = "borrowed"
	// EventRepaid repay settled by the borrower
	EventRepaid EventType = "repaid"
	// EventRepaidOnBehalf repay settled by the authorized repayer
	EventRepaidOnBehalf EventType = "repaid_on_behalf"
	// EventLiquidated borrower position liquidated
	EventLiquidated EventType = "liquidated"
	// EventInterestRateUpdated borrow interest rate changed
	EventInterestRateUpdated EventType = "interest_rate_updated"
	// EventRepayerUpdated authorized repayer changed
	EventRepayerUpdated EventType = "repayer_updated"
	// EventOwnershipTransferred pool owner changed
	EventOwnershipTransferred EventType = "ownership_transferred"
	// EventRepaymentReceived inbound relay repayment applied
	EventRepaymentReceived EventType = "repayment_received"
	// EventRepaymentFailed inbound relay repayment rejected by the ledger
	EventRepaymentFailed EventType = "repayment_failed"
)

func (t EventType) String() string {
	return string(t)
}

// Event typed domain notification appended by every mutating ledger
// operation. Account is the position the event is about; Opponent is the
// counterparty when one exists (repayer, liquidator, relay sender).
type Event struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID   string          `sql:"size:36;unique_index:idx_events_trace" json:"trace_id"`
	Type      EventType       `sql:"size:32" json:"type"`
	Account   string          `sql:"size:64" json:"account"`
	Opponent  string          `sql:"size:64" json:"opponent,omitempty"`
	Amount    decimal.Decimal `sql:"type:decimal(32,8)" json:"amount"`
	Principal decimal.Decimal `sql:"type:decimal(32,8)" json:"principal"`
	Interest  decimal.Decimal `sql:"type:decimal(32,8)" json:"interest"`
	Rate      int64           `sql:"default:0" json:"rate,omitempty"`
	Memo      string          `sql:"size:140" json:"memo,omitempty"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// IEventStore event store interface
type IEventStore interface {
	// Create appends the event; a nil tx appends outside any enclosing transaction
	Create(ctx context.Context, tx *db.DB, event *Event) error
	List(ctx context.Context, fromID uint64, limit int) ([]*Event, error)
	ListByAccount(ctx context.Context, account string, limit int) ([]*Event, error)
}
