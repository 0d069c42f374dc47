/*
Package resp provides helper functions for sending responses.

JSON endpoints use a unified envelope with a business code, message and optional data.
Errors raised for Datastar requests are instead delivered as a notice patched into the page.
*/
package resp

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"interviewbot/internal/pkg/errs"
	"interviewbot/internal/pkg/logx"
	"interviewbot/internal/pkg/req"
)

// NoticesElementID is the page element that holds inline notices.
const NoticesElementID = "notices"

// JSONResponse defines the standardized JSON response structure returned by the application to clients.
type JSONResponse struct {
	// Code is the business status code (0 for success, others for specific errors, see errs package).
	Code int `json:"code"`

	// Message is the client-friendly status description or error message.
	Message string `json:"message"`

	// Data is the optional response payload.
	Data any `json:"data,omitempty"`
}

// RespondJSON sets the Content-Type and sends payload with httpStatus.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.FromContext(r.Context()).Error().
			Err(err).
			Int("http_status", httpStatus).
			Msg("Error encoding JSON response")

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	_, _ = w.Write(response)
}

// RespondSuccess sends a successful HTTP response (HTTP 200 OK).
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	res := JSONResponse{
		Code:    0,
		Message: "success",
		Data:    data,
	}
	RespondJSON(w, r, http.StatusOK, res)
}

// RespondError sends customErr to the client. Datastar requests receive an SSE patch that
// replaces the notices element; other requests receive the JSON envelope.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	if req.IsDatastar(r) {
		PatchNotice(w, r, "error", customErr.Message)
		return
	}

	res := JSONResponse{
		Code:    customErr.Code,
		Message: customErr.Message,
		Data:    nil,
	}
	RespondJSON(w, r, customErr.Status, res)
}

// PatchNotice streams a single notice into the notices element.
func PatchNotice(w http.ResponseWriter, r *http.Request, level, message string) {
	sse := datastar.NewSSE(w, r)

	fragment := fmt.Sprintf(
		`<div id="%s"><p class="notice notice-%s" role="alert">%s</p></div>`,
		NoticesElementID, html.EscapeString(level), html.EscapeString(message),
	)

	if err := sse.PatchElements(fragment); err != nil {
		logx.FromContext(r.Context()).Warn().Err(err).Msg("Failed to patch notice")
	}
}
