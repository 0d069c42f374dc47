package interview

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"interviewbot/internal/app/llm"
	"interviewbot/internal/app/questions"
	"interviewbot/internal/app/user"
	"interviewbot/internal/pkg/errs"
)

// SignupSuccessMessage is shown after a new account is stored.
const SignupSuccessMessage = "Signup successful! Please log in."

// Controller applies actions to a session. It performs no I/O.
type Controller struct {
	creds    user.Credentials
	validate *validator.Validate
}

// NewController returns a Controller that stores and checks passwords through creds.
func NewController(creds user.Credentials) *Controller {
	return &Controller{
		creds:    creds,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// QuestionPrompt builds the prompt sent when generating questions.
func QuestionPrompt(role, techStack string) string {
	return fmt.Sprintf("Generate 3-5 technical interview questions for a %s skilled in %s.", role, techStack)
}

// Apply returns the transition produced by action. Neither state nor docs is modified.
func (c *Controller) Apply(state State, docs Docs, action Action) Transition {
	t := Transition{State: state.clone(), Docs: docs}
	t.State.Notices = nil

	switch a := action.(type) {
	case Signup:
		c.signup(&t, a)
		return t
	case Login:
		c.login(&t, a)
		return t
	case Logout:
		t.State = State{}
		return t
	}

	if !t.State.LoggedIn() {
		t.notify(noticeFor(LevelError, errs.ErrUnauthorized))
		return t
	}

	switch a := action.(type) {
	case CreateChat:
		c.createChat(&t, a)
	case SelectChat:
		c.selectChat(&t, a)
	case DeleteChat:
		c.deleteChat(&t)
	case GenerateQuestions:
		c.generate(&t, a)
	case QuestionsGenerated:
		c.questionsGenerated(&t, a)
	case AskDoubt:
		c.askDoubt(&t, a)
	case DoubtAnswered:
		c.doubtAnswered(&t, a)
	default:
		t.notify(noticeFor(LevelError, errs.ErrInvalidParams))
	}
	return t
}

func (t *Transition) notify(n Notice) {
	t.State.Notices = append(t.State.Notices, n)
}

func (t *Transition) emit(e Effect) {
	t.Effects = append(t.Effects, e)
}

// withChats swaps in a copy of the chat document where username's list is chats.
func (t *Transition) withChats(username string, chats []ChatSession) {
	next := maps.Clone(t.Docs.Chats)
	if next == nil {
		next = map[string][]ChatSession{}
	}
	next[username] = chats
	t.Docs.Chats = next
	t.emit(PersistChats{})
}

func (c *Controller) signup(t *Transition, a Signup) {
	switch {
	case a.Username == "":
		t.notify(noticeFor(LevelWarning, errs.ErrInvalidUsername))
		return
	case a.Password == "":
		t.notify(noticeFor(LevelWarning, errs.ErrInvalidPassword))
		return
	}

	if _, exists := t.Docs.Users[a.Username]; exists {
		t.notify(noticeFor(LevelError, errs.ErrUserAlreadyExists))
		return
	}

	hashed, err := c.creds.Hash(a.Password)
	if err != nil {
		t.notify(Notice{Level: LevelError, Code: errs.ErrUnknown, Message: errs.NewError(errs.ErrUnknown, err).Message})
		return
	}

	users := maps.Clone(t.Docs.Users)
	if users == nil {
		users = map[string]string{}
	}
	users[a.Username] = hashed
	t.Docs.Users = users

	t.emit(PersistUsers{})
	t.notify(Notice{Level: LevelSuccess, Message: SignupSuccessMessage})
}

func (c *Controller) login(t *Transition, a Login) {
	if !user.Authenticate(c.creds, t.Docs.Users, a.Username, a.Password) {
		t.notify(noticeFor(LevelError, errs.ErrInvalidCredentials))
		return
	}
	t.State = State{Username: a.Username}
}

func (c *Controller) createChat(t *Transition, a CreateChat) {
	username := t.State.Username
	existing := t.Docs.ChatsFor(username)

	if a.Name == "" || slices.ContainsFunc(existing, func(cs ChatSession) bool { return cs.Name == a.Name }) {
		t.notify(noticeFor(LevelWarning, errs.ErrChatNameInvalid))
		return
	}

	chats := append(slices.Clone(existing), ChatSession{Name: a.Name, Questions: []string{}})
	t.withChats(username, chats)

	idx := len(chats) - 1
	t.State.SelectedChat = &idx
	t.State.Candidate = CandidateInfo{}
	t.State.Submitted = false
	t.State.Questions = nil
}

func (c *Controller) selectChat(t *Transition, a SelectChat) {
	chats := t.Docs.ChatsFor(t.State.Username)
	if a.Index < 0 || a.Index >= len(chats) {
		t.notify(noticeFor(LevelWarning, errs.ErrChatNotFound))
		return
	}

	idx := a.Index
	t.State.SelectedChat = &idx
	t.State.Questions = slices.Clone(chats[idx].Questions)
}

func (c *Controller) deleteChat(t *Transition) {
	idx, ok := t.State.SelectedIndex(t.Docs)
	if !ok {
		t.State.SelectedChat = nil
		return
	}

	username := t.State.Username
	chats := slices.Delete(slices.Clone(t.Docs.ChatsFor(username)), idx, idx+1)
	t.withChats(username, chats)

	t.State.SelectedChat = nil
	t.State.Questions = nil
	t.State.Submitted = false
}

// validateCandidate returns the notices that refuse generation, if any.
func (c *Controller) validateCandidate(info CandidateInfo) []Notice {
	var notices []Notice

	if strings.TrimSpace(info.TechStack) == "" || strings.TrimSpace(info.Position) == "" {
		notices = append(notices, noticeFor(LevelWarning, errs.ErrCandidateIncomplete))
	}

	if err := c.validate.Struct(info); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return append(notices, noticeFor(LevelError, errs.ErrInvalidParams))
		}
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "Email":
				notices = append(notices, noticeFor(LevelError, errs.ErrInvalidEmail))
			case "Phone":
				notices = append(notices, noticeFor(LevelError, errs.ErrInvalidPhone))
			}
		}
	}
	return notices
}

func (c *Controller) generate(t *Transition, a GenerateQuestions) {
	if notices := c.validateCandidate(a.Candidate); len(notices) > 0 {
		for _, n := range notices {
			t.notify(n)
		}
		return
	}

	t.State.Candidate = a.Candidate
	prompt := QuestionPrompt(strings.TrimSpace(a.Candidate.Position), strings.TrimSpace(a.Candidate.TechStack))
	t.emit(CallAdapter{Purpose: PurposeQuestions, Conversation: llm.UserMessage(prompt)})
}

func (c *Controller) questionsGenerated(t *Transition, a QuestionsGenerated) {
	if a.Err != nil {
		t.notify(adapterNotice(a.Err))
		return
	}

	lines := questions.SplitLines(a.Text)
	t.State.Questions = lines
	t.State.Submitted = true

	idx, ok := t.State.SelectedIndex(t.Docs)
	if !ok {
		return
	}

	username := t.State.Username
	chats := slices.Clone(t.Docs.ChatsFor(username))
	chats[idx] = ChatSession{Name: chats[idx].Name, Questions: slices.Clone(lines)}
	t.withChats(username, chats)
}

func (c *Controller) askDoubt(t *Transition, a AskDoubt) {
	if strings.TrimSpace(a.Query) == "" {
		return
	}
	t.emit(CallAdapter{Purpose: PurposeDoubt, Conversation: llm.UserMessage(a.Query)})
}

func (c *Controller) doubtAnswered(t *Transition, a DoubtAnswered) {
	if a.Err != nil {
		t.State.DoubtAnswer = ""
		t.notify(adapterNotice(a.Err))
		return
	}
	t.State.DoubtAnswer = a.Text
}

// adapterNotice presents an adapter failure. A missing credential is shown as is;
// any other failure is prefixed with "Error: ".
func adapterNotice(err error) Notice {
	e := llm.AsError(err)
	if e.Kind == llm.KindMissingCredential {
		return Notice{Level: LevelError, Message: e.Message}
	}
	return Notice{Level: LevelError, Message: "Error: " + e.Message}
}
