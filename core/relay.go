package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RelayTraceNamespace namespace uuid for deriving relay event trace ids
// from inbound message ids, so redelivered messages map to the same trace
const RelayTraceNamespace = "2f5a1239-6a77-4561-9f89-4e282b8ad2a6"

// Message inbound repayment message handed over by the cross-chain
// transport. Authentication and delivery are the transport's concern; the
// relay only checks the (chain, sender) pair against the trusted registry.
type Message struct {
	MessageID   string          `json:"message_id"`
	SourceChain uint64          `json:"source_chain"`
	Sender      string          `json:"sender"`
	Borrower    string          `json:"borrower"`
	Amount      decimal.Decimal `json:"amount"`
}

// Source trusted relay source
type Source struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	ChainID   uint64    `sql:"unique_index:idx_sources_chain_sender" json:"chain_id"`
	Sender    string    `sql:"size:64;unique_index:idx_sources_chain_sender" json:"sender"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// ISourceStore trusted source store interface
type ISourceStore interface {
	Save(ctx context.Context, source *Source) error
	Delete(ctx context.Context, chainID uint64, sender string) error
	Exists(ctx context.Context, chainID uint64, sender string) (bool, error)
	All(ctx context.Context) ([]*Source, error)
}

// IRelayService messaging boundary in front of the ledger's
// repay-on-behalf entry point. A repay rejected by the ledger is recorded
// as a repayment_failed event instead of failing the inbound message.
type IRelayService interface {
	HandleMessage(ctx context.Context, msg *Message) (*Event, error)
	AddTrustedSource(ctx context.Context, caller string, chainID uint64, sender string) error
	RemoveTrustedSource(ctx context.Context, caller string, chainID uint64, sender string) error
	IsTrustedSender(ctx context.Context, chainID uint64, sender string) (bool, error)
}
