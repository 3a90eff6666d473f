package relay

import (
	"context"

	"lendpool/core"
	"lendpool/internal/lending"
	"lendpool/pkg/id"

	"github.com/fox-one/pkg/logger"
)

// Config relay config
type Config struct {
	// Repayer funds pulled for inbound repayments come from this address;
	// it must match the ledger's authorized repayer
	Repayer string `json:"repayer" valid:"required"`
}

type relayService struct {
	cfg     Config
	ledger  core.ILedgerService
	sources core.ISourceStore
	events  core.IEventStore
}

// New new relay service
func New(cfg Config, ledgerSrv core.ILedgerService, sourceStr core.ISourceStore, eventStr core.IEventStore) core.IRelayService {
	return &relayService{
		cfg:     cfg,
		ledger:  ledgerSrv,
		sources: sourceStr,
		events:  eventStr,
	}
}

// HandleMessage applies an inbound repayment. An untrusted source fails the
// message outright; a repayment the ledger rejects is recorded as a
// repayment_failed event so the inbound message itself still settles.
func (s *relayService) HandleMessage(ctx context.Context, msg *core.Message) (*core.Event, error) {
	log := logger.FromContext(ctx).WithField("service", "relay")

	if msg.Borrower == "" {
		return nil, core.ErrInvalidAddress
	}

	amount := msg.Amount.Truncate(lending.MaxPrecision)
	if !amount.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	trusted, err := s.sources.Exists(ctx, msg.SourceChain, msg.Sender)
	if err != nil {
		return nil, err
	}

	if !trusted {
		log.Infoln("untrusted source:", msg.SourceChain, msg.Sender)
		return nil, core.ErrUntrustedSource
	}

	if _, err := s.ledger.RepayOnBehalf(ctx, s.cfg.Repayer, msg.Borrower, amount); err != nil {
		log.WithError(err).Infoln("repayment rejected:", msg.MessageID, msg.Borrower)

		event := &core.Event{
			TraceID:  id.UUIDByName(core.RelayTraceNamespace, msg.MessageID),
			Type:     core.EventRepaymentFailed,
			Account:  msg.Borrower,
			Opponent: msg.Sender,
			Amount:   amount,
			Memo:     errorName(err),
		}
		if err := s.events.Create(ctx, nil, event); err != nil {
			return nil, err
		}

		return event, nil
	}

	event := &core.Event{
		TraceID:  id.UUIDByName(core.RelayTraceNamespace, msg.MessageID),
		Type:     core.EventRepaymentReceived,
		Account:  msg.Borrower,
		Opponent: msg.Sender,
		Amount:   amount,
	}
	if err := s.events.Create(ctx, nil, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *relayService) AddTrustedSource(ctx context.Context, caller string, chainID uint64, sender string) error {
	if err := s.requireOwner(ctx, caller); err != nil {
		return err
	}

	if sender == "" {
		return core.ErrInvalidAddress
	}

	return s.sources.Save(ctx, &core.Source{
		ChainID: chainID,
		Sender:  sender,
	})
}

func (s *relayService) RemoveTrustedSource(ctx context.Context, caller string, chainID uint64, sender string) error {
	if err := s.requireOwner(ctx, caller); err != nil {
		return err
	}

	return s.sources.Delete(ctx, chainID, sender)
}

func (s *relayService) IsTrustedSender(ctx context.Context, chainID uint64, sender string) (bool, error) {
	return s.sources.Exists(ctx, chainID, sender)
}

func (s *relayService) requireOwner(ctx context.Context, caller string) error {
	pool, err := s.ledger.Pool(ctx)
	if err != nil {
		return err
	}

	if caller == "" || caller != pool.Owner {
		return core.ErrUnauthorized
	}

	return nil
}

func errorName(err error) string {
	if code, ok := err.(core.ErrorCode); ok {
		return code.Name()
	}

	return err.Error()
}
