package handler

import (
	"net/http"

	"interviewbot/internal/pkg/auth/jwt"
	"interviewbot/internal/pkg/errs"
	"interviewbot/internal/pkg/logx"
	"interviewbot/internal/view"
)

// HandlePage renders the full page for the current browser session.
func HandlePage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := logx.FromContext(r.Context())

		state := deps.Sessions.State(jwt.GetSessionID(r))
		state.Notices = nil

		docs, err := deps.Interview.Load(r.Context())
		if err != nil {
			logger.Error().Err(err).Msg("Failed to load documents for page")
			customErr := errs.NewError(errs.ErrStoreUnavailable, err)
			http.Error(w, customErr.Message, customErr.Status)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := deps.View.Page(w, view.NewApp(state, docs), view.SignalsFor(state)); err != nil {
			logger.Error().Err(err).Msg("Failed to render page")
		}
	}
}
