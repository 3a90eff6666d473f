package rest

import (
	"net/http"

	"lendpool/core"
	"lendpool/handler/render"
	"lendpool/handler/views"

	"github.com/go-chi/chi"
)

const defaultEventLimit = 50

func accountHandler(ledgerSrv core.ILedgerService, eventStr core.IEventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		address := chi.URLParam(r, "address")
		data, err := ledgerSrv.GetUserAccountData(ctx, address)
		if err != nil {
			renderErr(w, err)
			return
		}

		events, err := eventStr.ListByAccount(ctx, address, defaultEventLimit)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, views.Account{
			AccountData: *data,
			Events:      events,
		})
	}
}
