package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"interviewbot/internal/app/interview"
	"interviewbot/internal/pkg/auth/jwt"
	"interviewbot/internal/pkg/errs"
	"interviewbot/internal/pkg/logx"
	"interviewbot/internal/pkg/req"
	"interviewbot/internal/pkg/resp"
	"interviewbot/internal/view"
)

// signalsPatch decides which client signals to overwrite after an action, or nil for none.
type signalsPatch func(next interview.State) any

// dispatch runs action for the request's browser session and streams the re-rendered app.
func dispatch(deps *AppDeps, w http.ResponseWriter, r *http.Request, action interview.Action, patch signalsPatch) {
	logger := logx.FromContext(r.Context())
	sessionID := jwt.GetSessionID(r)

	var docs interview.Docs
	state, err := deps.Sessions.Do(sessionID, func(s interview.State) (interview.State, error) {
		next, loaded, err := deps.Interview.Dispatch(r.Context(), s, action)
		docs = loaded
		return next, err
	})
	if err != nil {
		logger.Error().Err(err).Str("action", actionName(action)).Msg("Action failed")
		resp.RespondError(w, r, errs.NewError(errs.ErrStoreUnavailable, err))
		return
	}

	html, err := deps.View.App(view.NewApp(state, docs))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to render app")
		resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElements(html); err != nil {
		logger.Warn().Err(err).Msg("Failed to patch app")
		return
	}

	if patch == nil {
		return
	}
	if signals := patch(state); signals != nil {
		if err := sse.MarshalAndPatchSignals(signals); err != nil {
			logger.Warn().Err(err).Msg("Failed to patch signals")
		}
	}
}

// succeeded reports whether the action raised no warning or error.
func succeeded(s interview.State) bool {
	for _, n := range s.Notices {
		if n.Level != interview.LevelSuccess {
			return false
		}
	}
	return true
}

// bindSignals reads the page signals, answering the request itself on failure.
func bindSignals(w http.ResponseWriter, r *http.Request) (view.Signals, bool) {
	var s view.Signals
	if customErr := req.BindSignals(w, r, &s); customErr != nil {
		resp.RespondError(w, r, customErr)
		return s, false
	}
	return s, true
}

func actionName(a interview.Action) string {
	switch a.(type) {
	case interview.Signup:
		return "signup"
	case interview.Login:
		return "login"
	case interview.Logout:
		return "logout"
	case interview.CreateChat:
		return "create_chat"
	case interview.SelectChat:
		return "select_chat"
	case interview.DeleteChat:
		return "delete_chat"
	case interview.GenerateQuestions:
		return "generate"
	case interview.AskDoubt:
		return "doubt"
	default:
		return "unknown"
	}
}
