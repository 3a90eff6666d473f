package views

import (
	"lendpool/core"
)

// Account account view
type Account struct {
	core.AccountData
	Events []*core.Event `json:"events,omitempty"`
}
