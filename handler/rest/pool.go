package rest

import (
	"net/http"

	"lendpool/core"
	"lendpool/handler/param"
	"lendpool/handler/render"
	"lendpool/handler/views"
)

func poolHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pool, err := ledgerSrv.Pool(r.Context())
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, views.NewPool(pool))
	}
}

func liquidityHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		liquidity, err := ledgerSrv.GetAvailableLiquidity(r.Context())
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"available_liquidity": liquidity})
	}
}

func eventsHandler(eventStr core.IEventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			FromID uint64 `json:"from_id"`
			Limit  int    `json:"limit"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		limit := params.Limit
		if limit <= 0 {
			limit = defaultEventLimit
		}

		events, err := eventStr.List(r.Context(), params.FromID, limit)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, events)
	}
}
