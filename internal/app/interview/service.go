package interview

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"interviewbot/internal/app/llm"
	"interviewbot/internal/app/store"
	"interviewbot/internal/app/user"
	"interviewbot/internal/pkg/logx"
)

// Service loads the documents, applies actions through the Controller and runs their effects.
type Service struct {
	users      *store.Document[string, string]
	chats      *store.Document[string, []ChatSession]
	client     llm.Client
	controller *Controller
	logger     zerolog.Logger
}

// NewService wires a Service onto backend and client.
func NewService(backend store.Backend, client llm.Client, creds user.Credentials) *Service {
	return &Service{
		users:      store.NewDocument[string, string](backend, store.UsersDocument),
		chats:      store.NewDocument[string, []ChatSession](backend, store.ChatsDocument),
		client:     client,
		controller: NewController(creds),
		logger:     logx.Component("interview"),
	}
}

// Load reads both documents.
func (s *Service) Load(ctx context.Context) (Docs, error) {
	users, err := s.users.Load(ctx)
	if err != nil {
		return Docs{}, err
	}
	chats, err := s.chats.Load(ctx)
	if err != nil {
		return Docs{}, err
	}
	return Docs{Users: users, Chats: chats}, nil
}

// Dispatch applies action to state against freshly loaded documents and runs the resulting
// effects, including any model call and the follow-up action it produces. The returned
// State carries the notices raised along the way.
func (s *Service) Dispatch(ctx context.Context, state State, action Action) (State, Docs, error) {
	docs, err := s.Load(ctx)
	if err != nil {
		return state, Docs{}, err
	}

	var notices []Notice
	for action != nil {
		t := s.controller.Apply(state, docs, action)
		notices = append(notices, t.Notices()...)
		state, docs = t.State, t.Docs

		action = nil
		for _, effect := range t.Effects {
			next, err := s.run(ctx, effect, docs)
			if err != nil {
				return state, docs, err
			}
			if next != nil {
				action = next
			}
		}
	}

	state.Notices = notices
	return state, docs, nil
}

// run executes one effect and returns the follow-up action, if any.
func (s *Service) run(ctx context.Context, effect Effect, docs Docs) (Action, error) {
	switch e := effect.(type) {
	case PersistUsers:
		if err := s.users.Save(ctx, docs.Users); err != nil {
			return nil, fmt.Errorf("persist users: %w", err)
		}
	case PersistChats:
		if err := s.chats.Save(ctx, docs.Chats); err != nil {
			return nil, fmt.Errorf("persist chats: %w", err)
		}
	case CallAdapter:
		text, err := s.client.Complete(ctx, e.Conversation)
		if err != nil {
			llmErr := llm.AsError(err)
			s.logger.Warn().
				Err(err).
				Str("purpose", string(e.Purpose)).
				Str("kind", string(llmErr.Kind)).
				Msg("Model call failed")
		}
		if e.Purpose == PurposeDoubt {
			return DoubtAnswered{Text: text, Err: err}, nil
		}
		return QuestionsGenerated{Text: text, Err: err}, nil
	}
	return nil, nil
}
