/*
Package req provides helpers for parsing the action payloads sent by the browser.

Every interactive action is a Datastar request whose body carries the page signals
(the form fields) as JSON.
*/
package req

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"interviewbot/internal/pkg/errs"
	"interviewbot/internal/pkg/logx"
)

// MaxSignalsSize bounds the request body read for signals.
const MaxSignalsSize int64 = 64 << 10 // 64 KB

// BindSignals decodes the Datastar signals of r into dst.
func BindSignals(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	r.Body = http.MaxBytesReader(w, r.Body, MaxSignalsSize)

	if err := datastar.ReadSignals(r, dst); err != nil {
		logx.FromContext(r.Context()).Warn().Err(err).Msg("Failed to read signals")
		return errs.NewError(errs.ErrInvalidSignals)
	}

	return nil
}

// IsDatastar reports whether r was sent by the Datastar client.
func IsDatastar(r *http.Request) bool {
	return r.Header.Get("Datastar-Request") == "true"
}
