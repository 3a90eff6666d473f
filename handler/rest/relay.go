package rest

import (
	"net/http"

	"lendpool/core"
	"lendpool/handler/param"
	"lendpool/handler/render"
)

func relayMessageHandler(relaySrv core.IRelayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg core.Message
		if err := param.Binding(r, &msg); err != nil {
			render.BadRequest(w, err)
			return
		}

		event, err := relaySrv.HandleMessage(r.Context(), &msg)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, event)
	}
}

type sourceParams struct {
	Caller  string `json:"caller" valid:"required"`
	ChainID uint64 `json:"chain_id"`
	Sender  string `json:"sender" valid:"required"`
}

func addSourceHandler(relaySrv core.IRelayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params sourceParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := relaySrv.AddTrustedSource(r.Context(), params.Caller, params.ChainID, params.Sender); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"chain_id": params.ChainID, "sender": params.Sender})
	}
}

func removeSourceHandler(relaySrv core.IRelayService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params sourceParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := relaySrv.RemoveTrustedSource(r.Context(), params.Caller, params.ChainID, params.Sender); err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"chain_id": params.ChainID, "sender": params.Sender})
	}
}
