package rest

import (
	"context"
	"net/http"

	"lendpool/core"
	"lendpool/handler/param"
	"lendpool/handler/render"

	"github.com/shopspring/decimal"
)

// every mutating endpoint names the calling account explicitly; there is
// no session identity, the ledger authorizes per operation
type opParams struct {
	Caller string          `json:"caller" valid:"required"`
	Amount decimal.Decimal `json:"amount"`
}

func opHandler(fn func(ctx context.Context, caller string, amount decimal.Decimal) (*core.Event, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params opParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		event, err := fn(r.Context(), params.Caller, params.Amount)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, event)
	}
}

func depositHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return opHandler(ledgerSrv.Deposit)
}

func withdrawHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return opHandler(ledgerSrv.Withdraw)
}

func borrowHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return opHandler(ledgerSrv.Borrow)
}

func repayHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return opHandler(ledgerSrv.Repay)
}

func repayOnBehalfHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Caller   string          `json:"caller" valid:"required"`
			Borrower string          `json:"borrower" valid:"required"`
			Amount   decimal.Decimal `json:"amount"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		event, err := ledgerSrv.RepayOnBehalf(r.Context(), params.Caller, params.Borrower, params.Amount)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, event)
	}
}

func liquidateHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Caller   string          `json:"caller" valid:"required"`
			Borrower string          `json:"borrower" valid:"required"`
			Amount   decimal.Decimal `json:"amount"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		event, err := ledgerSrv.Liquidate(r.Context(), params.Caller, params.Borrower, params.Amount)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, event)
	}
}

func interestRateHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Caller string `json:"caller" valid:"required"`
			Rate   int64  `json:"rate"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		event, err := ledgerSrv.UpdateInterestRate(r.Context(), params.Caller, params.Rate)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, event)
	}
}

func repayerHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Caller  string `json:"caller" valid:"required"`
			Repayer string `json:"repayer" valid:"required"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		event, err := ledgerSrv.SetAuthorizedRepayer(r.Context(), params.Caller, params.Repayer)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, event)
	}
}

func ownerHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Caller string `json:"caller" valid:"required"`
			Owner  string `json:"owner" valid:"required"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		event, err := ledgerSrv.TransferOwnership(r.Context(), params.Caller, params.Owner)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, event)
	}
}
