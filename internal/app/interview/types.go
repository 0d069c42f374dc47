/*
Package interview implements the interview assistant's session logic.

The Controller is a pure transition function: given the current browser-session State, the
loaded store Docs and an Action, it returns the next State, the next Docs and the Effects
needed to realize the change (persisting a document or calling the model). The Service runs
those effects and feeds model results back into the Controller as follow-up actions.
*/
package interview

import (
	"slices"

	"interviewbot/internal/pkg/errs"
)

// ChatSession is one named interview owned by a user.
type ChatSession struct {
	Name      string   `json:"name"`
	Questions []string `json:"questions"`
}

// CandidateInfo is the candidate form. It lives only in the browser session.
type CandidateInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,len=10,number"`
	Experience string `json:"experience"`
	Position   string `json:"position"`
	TechStack  string `json:"tech_stack"`
	Location   string `json:"location"`
}

// NoticeLevel is the severity of a Notice.
type NoticeLevel string

const (
	LevelSuccess NoticeLevel = "success"
	LevelWarning NoticeLevel = "warning"
	LevelError   NoticeLevel = "error"
)

// Notice is a message shown inline after an action.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Code    int         `json:"code,omitempty"`
	Message string      `json:"message"`
}

// noticeFor converts a business error code into a Notice.
func noticeFor(level NoticeLevel, code int) Notice {
	e := errs.NewError(code)
	return Notice{Level: level, Code: e.Code, Message: e.Message}
}

// State is everything the assistant remembers about one browser session.
// An empty Username means the session is logged out.
type State struct {
	Username     string        `json:"username"`
	SelectedChat *int          `json:"selected_chat,omitempty"`
	Candidate    CandidateInfo `json:"candidate"`
	Questions    []string      `json:"questions"`
	Submitted    bool          `json:"submitted"`
	DoubtAnswer  string        `json:"doubt_answer,omitempty"`
	Notices      []Notice      `json:"notices,omitempty"`
}

// LoggedIn reports whether a user is logged in.
func (s State) LoggedIn() bool {
	return s.Username != ""
}

// clone returns a copy that shares no mutable memory with s.
func (s State) clone() State {
	out := s
	if s.SelectedChat != nil {
		idx := *s.SelectedChat
		out.SelectedChat = &idx
	}
	out.Questions = slices.Clone(s.Questions)
	out.Notices = slices.Clone(s.Notices)
	return out
}

// Docs holds both persisted documents as loaded for one action.
type Docs struct {
	Users map[string]string
	Chats map[string][]ChatSession
}

// ChatsFor returns username's chat list, or nil.
func (d Docs) ChatsFor(username string) []ChatSession {
	return d.Chats[username]
}

// SelectedIndex returns the selected chat index when it still points at an existing chat.
// A stale index, left behind when the document changed underneath, counts as no selection.
func (s State) SelectedIndex(d Docs) (int, bool) {
	if s.SelectedChat == nil {
		return 0, false
	}
	idx := *s.SelectedChat
	if idx < 0 || idx >= len(d.ChatsFor(s.Username)) {
		return 0, false
	}
	return idx, true
}
