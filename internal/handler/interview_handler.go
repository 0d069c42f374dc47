package handler

import (
	"net/http"

	"interviewbot/internal/app/interview"
)

// HandleGenerate asks the model for questions about the candidate in the form signals.
func HandleGenerate(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := bindSignals(w, r)
		if !ok {
			return
		}

		dispatch(deps, w, r, interview.GenerateQuestions{Candidate: s.Candidate()}, nil)
	}
}

// HandleDoubt sends the doubt signal to the model and shows its answer.
func HandleDoubt(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := bindSignals(w, r)
		if !ok {
			return
		}

		dispatch(deps, w, r, interview.AskDoubt{Query: s.Doubt}, nil)
	}
}
