package api

import (
	"database/sql/driver"
	"errors"
	"net"
	"net/http"

	"github.com/lib/pq"
)

// Operator-safe messages for store failures. Internal details are
// logged server-side only, never sent to clients.
const (
	msgStoreMisconfigured = "Application was not configured properly."
	msgStoreNotSetup      = "Application was not properly setup, please see the readme file."
	msgServerError        = "Server error"
)

// mapStoreError maps a store failure to an HTTP status and a generic
// user-facing message.
//
// Classification:
//   - Postgres class 08 (connection) or 28 (authorization), driver
//     ErrBadConn, and network-level errors mean the store connection is
//     misconfigured.
//   - Postgres class 42 (undefined table/column) or 3D (invalid
//     catalog) means the schema was never set up.
//   - Everything else is an unknown server error.
func mapStoreError(err error) (int, string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08", "28":
			return http.StatusInternalServerError, msgStoreMisconfigured
		case "3D", "42":
			return http.StatusInternalServerError, msgStoreNotSetup
		}
		return http.StatusInternalServerError, msgServerError
	}

	if errors.Is(err, driver.ErrBadConn) {
		return http.StatusInternalServerError, msgStoreMisconfigured
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return http.StatusInternalServerError, msgStoreMisconfigured
	}

	return http.StatusInternalServerError, msgServerError
}
