package id

import (
	"github.com/gofrs/uuid"
)

// GenTraceID new trace id
func GenTraceID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// UUIDByName deterministic id derived from a namespace uuid and a name
func UUIDByName(uuidStr, name string) string {
	ns, err := uuid.FromString(uuidStr)
	if err != nil {
		panic(err)
	}

	return uuid.NewV5(ns, name).String()
}
