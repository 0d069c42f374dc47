package handler

import (
	"net/http"

	"interviewbot/internal/app/interview"
	"interviewbot/internal/view"
)

// HandleSignup registers a new account from the username and password signals.
func HandleSignup(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := bindSignals(w, r)
		if !ok {
			return
		}

		dispatch(deps, w, r, interview.Signup{Username: s.Username, Password: s.Password}, func(next interview.State) any {
			if !succeeded(next) {
				return nil
			}
			return map[string]any{"password": ""}
		})
	}
}

// HandleLogin logs the session in and clears the credential inputs on success.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := bindSignals(w, r)
		if !ok {
			return
		}

		dispatch(deps, w, r, interview.Login{Username: s.Username, Password: s.Password}, func(next interview.State) any {
			if !next.LoggedIn() {
				return nil
			}
			return view.SignalsFor(next)
		})
	}
}

// HandleLogout ends the logged-in session and clears every input.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dispatch(deps, w, r, interview.Logout{}, func(next interview.State) any {
			return view.SignalsFor(next)
		})
	}
}
