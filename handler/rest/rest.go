package rest

import (
	"errors"
	"net/http"

	"lendpool/core"
	"lendpool/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(ledgerSrv core.ILedgerService, relaySrv core.IRelayService, eventStr core.IEventStore) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/accounts/{address}", accountHandler(ledgerSrv, eventStr))
	router.Get("/pool", poolHandler(ledgerSrv))
	router.Get("/liquidity", liquidityHandler(ledgerSrv))
	router.Get("/events", eventsHandler(eventStr))

	router.Post("/deposit", depositHandler(ledgerSrv))
	router.Post("/withdraw", withdrawHandler(ledgerSrv))
	router.Post("/borrow", borrowHandler(ledgerSrv))
	router.Post("/repay", repayHandler(ledgerSrv))
	router.Post("/repay-on-behalf", repayOnBehalfHandler(ledgerSrv))
	router.Post("/liquidate", liquidateHandler(ledgerSrv))

	router.Post("/admin/interest-rate", interestRateHandler(ledgerSrv))
	router.Post("/admin/repayer", repayerHandler(ledgerSrv))
	router.Post("/admin/owner", ownerHandler(ledgerSrv))
	router.Post("/admin/sources", addSourceHandler(relaySrv))
	router.Delete("/admin/sources", removeSourceHandler(relaySrv))

	router.Post("/relay/messages", relayMessageHandler(relaySrv))

	return router
}

// renderErr keeps the domain error code in the body while picking a
// sensible http status
func renderErr(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if err == core.ErrUnauthorized || err == core.ErrUntrustedSource {
		status = http.StatusForbidden
	}

	render.Error(w, status, err)
}
