/*
Package view renders the interview assistant's single page.

The full page is served once; every action afterwards re-renders the app element and the
browser patches it in place.
*/
package view

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"io"

	"interviewbot/internal/app/interview"
	"interviewbot/internal/app/questions"
)

// AppElementID is the id of the element replaced after every action.
const AppElementID = "app"

// DatastarURL is the Datastar client bundle loaded by the page.
const DatastarURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

const title = "AI-Powered Interview Chatbot"

//go:embed templates/*.html
var templateFS embed.FS

// ChatItem is one entry in the chat list.
type ChatItem struct {
	Index    int
	Name     string
	Selected bool
}

// QuestionBlock is one collapsible question.
type QuestionBlock struct {
	Number int
	Text   string
}

// App is the data rendered inside the app element.
type App struct {
	LoggedIn     bool
	Username     string
	Chats        []ChatItem
	HasSelection bool
	ShowForm     bool
	Questions    []QuestionBlock
	DoubtAnswer  string
	Notices      []interview.Notice
}

// NewApp projects a session state and the loaded documents onto the view.
func NewApp(state interview.State, docs interview.Docs) App {
	app := App{
		LoggedIn:    state.LoggedIn(),
		Username:    state.Username,
		ShowForm:    !state.Submitted,
		DoubtAnswer: state.DoubtAnswer,
		Notices:     state.Notices,
	}
	if !app.LoggedIn {
		return app
	}

	selected, hasSelection := state.SelectedIndex(docs)
	app.HasSelection = hasSelection

	for i, chat := range docs.ChatsFor(state.Username) {
		app.Chats = append(app.Chats, ChatItem{
			Index:    i,
			Name:     chat.Name,
			Selected: hasSelection && i == selected,
		})
	}

	for i, block := range questions.Parse(state.Questions) {
		app.Questions = append(app.Questions, QuestionBlock{Number: i + 1, Text: block})
	}

	return app
}

// Signals are the client-side form values bound to the page inputs.
type Signals struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	ChatName   string `json:"chatname"`
	CName      string `json:"cname"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Experience string `json:"experience"`
	Position   string `json:"position"`
	TechStack  string `json:"techstack"`
	Location   string `json:"location"`
	Doubt      string `json:"doubt"`
}

// Candidate returns the candidate form held in the signals.
func (s Signals) Candidate() interview.CandidateInfo {
	return interview.CandidateInfo{
		Name:       s.CName,
		Email:      s.Email,
		Phone:      s.Phone,
		Experience: s.Experience,
		Position:   s.Position,
		TechStack:  s.TechStack,
		Location:   s.Location,
	}
}

// SignalsFor returns the signals matching a session state: the candidate form is filled from
// the state and every other input is empty.
func SignalsFor(state interview.State) Signals {
	c := state.Candidate
	return Signals{
		CName:      c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Experience: c.Experience,
		Position:   c.Position,
		TechStack:  c.TechStack,
		Location:   c.Location,
	}
}

type page struct {
	Title       string
	DatastarURL string
	SignalsJSON string
	App         App
}

// Renderer executes the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page writes the full HTML document.
func (r *Renderer) Page(w io.Writer, app App, signals Signals) error {
	raw, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "layout", page{
		Title:       title,
		DatastarURL: DatastarURL,
		SignalsJSON: string(raw),
		App:         app,
	})
}

// App renders the app element alone.
func (r *Renderer) App(app App) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "app", app); err != nil {
		return "", err
	}
	return buf.String(), nil
}
