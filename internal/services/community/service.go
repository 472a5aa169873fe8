package community

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"shoresquad/internal/models"
	"shoresquad/pkg/logger"
	"shoresquad/pkg/observe"
)

var ErrNotFound = errors.New("not found")

const WelcomeMessage = "🎉 Welcome to ShoreSquad! Check your email for next steps."

// Store persists user actions and signups.
type Store interface {
	AppendAction(ctx context.Context, action models.UserAction) error
	AppendSignup(ctx context.Context, signup models.Signup) error
}

type SignupRequest struct {
	Name  string `json:"name" form:"name" example:"Alex Tan"`
	Email string `json:"email" form:"email" example:"alex@example.com"`
	Beach string `json:"beach" form:"beach" example:"Pasir Ris"`
}

// SignupResult reports whether a signup was stored. Incomplete requests are
// ignored without an error.
type SignupResult struct {
	Accepted bool           `json:"accepted"`
	Message  string         `json:"message,omitempty"`
	Signup   *models.Signup `json:"signup,omitempty"`
}

// Service owns the current State and applies the effects of each update.
type Service struct {
	mu    sync.RWMutex
	state State

	store   Store
	clock   clockwork.Clock
	newID   func() string
	metrics *observe.Metrics
	l       *logger.Logger
}

func NewService(seed State, store Store, clock clockwork.Clock, metrics *observe.Metrics, l *logger.Logger) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		state:   seed.clone(),
		store:   store,
		clock:   clock,
		newID:   uuid.NewString,
		metrics: metrics,
		l:       l,
	}
}

// Events returns a copy of the events with their display dates filled in.
func (s *Service) Events() []models.Event {
	s.mu.RLock()
	events := append([]models.Event(nil), s.state.Events...)
	s.mu.RUnlock()

	for i := range events {
		events[i].DateLabel = FormatEventDate(events[i].Date)
	}
	return events
}

func (s *Service) Crews() []models.Crew {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Crew(nil), s.state.Crews...)
}

func (s *Service) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ComputeStats(s.state)
}

// JoinEvent returns the notification for the visitor, or ErrNotFound.
func (s *Service) JoinEvent(ctx context.Context, id int) (string, error) {
	return s.apply(ctx, "event", id, JoinEvent)
}

// JoinCrew returns the notification for the visitor, or ErrNotFound.
func (s *Service) JoinCrew(ctx context.Context, id int) (string, error) {
	return s.apply(ctx, "crew", id, JoinCrew)
}

func (s *Service) ViewCrew(id int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := ViewCrew(s.state, id)
	if !ok {
		return "", ErrNotFound
	}
	return text, nil
}

func (s *Service) apply(ctx context.Context, kind string, id int, update func(State, int) (State, []Effect, bool)) (string, error) {
	s.mu.Lock()
	next, effects, found := update(s.state, id)
	s.state = next
	s.mu.Unlock()

	if !found {
		return "", ErrNotFound
	}

	s.metrics.Joins.WithLabelValues(kind).Inc()

	var notification string
	for _, effect := range effects {
		switch effect.Kind {
		case EffectNotify:
			notification = effect.Message
		case EffectRecordAction:
			s.record(ctx, effect)
		case EffectRender:
			s.l.Debug("section changed", map[string]any{"section": effect.Section, "id": id})
		}
	}

	s.l.Info(notification, map[string]any{"kind": kind, "id": id})

	return notification, nil
}

// record failures are logged; the join itself already happened.
func (s *Service) record(ctx context.Context, effect Effect) {
	action := models.UserAction{
		Action:    effect.Action,
		ItemID:    effect.ItemID,
		Timestamp: s.clock.Now().UTC(),
	}
	if err := s.store.AppendAction(ctx, action); err != nil {
		s.metrics.StorageErrors.Inc()
		s.l.Error(err, map[string]any{"action": action.Action, "itemId": action.ItemID})
	}
}

// Signup stores the request when both name and email are present.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (SignupResult, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	if name == "" || email == "" {
		s.metrics.Signups.WithLabelValues("ignored").Inc()
		return SignupResult{Accepted: false}, nil
	}

	signup := models.Signup{
		ID:        s.newID(),
		Name:      name,
		Email:     email,
		Beach:     strings.TrimSpace(req.Beach),
		Timestamp: s.clock.Now().UTC(),
	}

	if err := s.store.AppendSignup(ctx, signup); err != nil {
		s.metrics.StorageErrors.Inc()
		return SignupResult{}, err
	}

	s.metrics.Signups.WithLabelValues("accepted").Inc()
	s.l.Info("new signup", map[string]any{"id": signup.ID, "beach": signup.Beach})

	return SignupResult{
		Accepted: true,
		Message:  WelcomeMessage,
		Signup:   &signup,
	}, nil
}
