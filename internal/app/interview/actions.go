package interview

import "interviewbot/internal/app/llm"

// Action is one user interaction or a model result fed back by the Service.
type Action interface {
	isAction()
}

type (
	// Signup registers a new account. It does not log the user in.
	Signup struct {
		Username string
		Password string
	}

	// Login checks credentials and starts a fresh logged-in session.
	Login struct {
		Username string
		Password string
	}

	// Logout clears the session.
	Logout struct{}

	// CreateChat appends a new empty chat and selects it.
	CreateChat struct {
		Name string
	}

	// SelectChat selects the chat at Index and shows its stored questions.
	SelectChat struct {
		Index int
	}

	// DeleteChat removes the selected chat.
	DeleteChat struct{}

	// GenerateQuestions asks the model for questions about the candidate.
	GenerateQuestions struct {
		Candidate CandidateInfo
	}

	// QuestionsGenerated carries the model's answer to GenerateQuestions.
	QuestionsGenerated struct {
		Text string
		Err  error
	}

	// AskDoubt sends a free-text question to the model.
	AskDoubt struct {
		Query string
	}

	// DoubtAnswered carries the model's answer to AskDoubt.
	DoubtAnswered struct {
		Text string
		Err  error
	}
)

func (Signup) isAction()             {}
func (Login) isAction()              {}
func (Logout) isAction()             {}
func (CreateChat) isAction()         {}
func (SelectChat) isAction()         {}
func (DeleteChat) isAction()         {}
func (GenerateQuestions) isAction()  {}
func (QuestionsGenerated) isAction() {}
func (AskDoubt) isAction()           {}
func (DoubtAnswered) isAction()      {}

// Effect is a side effect requested by the Controller.
type Effect interface {
	isEffect()
}

// Purpose tells the Service which follow-up action an adapter result becomes.
type Purpose string

const (
	PurposeQuestions Purpose = "questions"
	PurposeDoubt     Purpose = "doubt"
)

type (
	// PersistUsers saves Transition.Docs.Users.
	PersistUsers struct{}

	// PersistChats saves Transition.Docs.Chats.
	PersistChats struct{}

	// CallAdapter sends Conversation to the model.
	CallAdapter struct {
		Purpose      Purpose
		Conversation []llm.Message
	}
)

func (PersistUsers) isEffect() {}
func (PersistChats) isEffect() {}
func (CallAdapter) isEffect()  {}

// Transition is the result of applying one Action.
type Transition struct {
	State   State
	Docs    Docs
	Effects []Effect
}

// Notices returns the notices raised by this transition.
func (t Transition) Notices() []Notice {
	return t.State.Notices
}
