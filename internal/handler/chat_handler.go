package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"interviewbot/internal/app/interview"
	"interviewbot/internal/pkg/errs"
	"interviewbot/internal/pkg/resp"
	"interviewbot/internal/view"
)

// HandleCreateChat creates a chat from the chatname signal. On success the chat-name input
// and the candidate form are cleared.
func HandleCreateChat(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := bindSignals(w, r)
		if !ok {
			return
		}

		dispatch(deps, w, r, interview.CreateChat{Name: s.ChatName}, func(next interview.State) any {
			if !succeeded(next) {
				return nil
			}
			return view.SignalsFor(next)
		})
	}
}

// HandleSelectChat selects the chat at the {index} URL parameter.
func HandleSelectChat(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		dispatch(deps, w, r, interview.SelectChat{Index: index}, nil)
	}
}

// HandleDeleteChat deletes the selected chat.
func HandleDeleteChat(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dispatch(deps, w, r, interview.DeleteChat{}, nil)
	}
}
