package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"shoresquad/internal/models"
)

// Keys of the three lists kept in the key-value store.
const (
	SignupsKey       = "shoresquad_signups"
	ActionsKey       = "shoresquad_actions"
	SearchHistoryKey = "shoresquad_search_history"
)

const MaxSearchHistory = 5

// LocalStore keeps signups, user actions and the search history as JSON
// arrays in a KVStore. A missing or unreadable array reads as empty.
// Read-modify-write cycles are serialized within one process only.
type LocalStore struct {
	kv KVStore
	mu sync.Mutex
}

func NewLocalStore(kv KVStore) *LocalStore {
	return &LocalStore{kv: kv}
}

func (s *LocalStore) Signups(ctx context.Context) ([]models.Signup, error) {
	return readList[models.Signup](ctx, s.kv, SignupsKey)
}

func (s *LocalStore) AppendSignup(ctx context.Context, signup models.Signup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	signups, err := readList[models.Signup](ctx, s.kv, SignupsKey)
	if err != nil {
		return err
	}

	return writeList(ctx, s.kv, SignupsKey, append(signups, signup))
}

func (s *LocalStore) Actions(ctx context.Context) ([]models.UserAction, error) {
	return readList[models.UserAction](ctx, s.kv, ActionsKey)
}

func (s *LocalStore) AppendAction(ctx context.Context, action models.UserAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	actions, err := readList[models.UserAction](ctx, s.kv, ActionsKey)
	if err != nil {
		return err
	}

	return writeList(ctx, s.kv, ActionsKey, append(actions, action))
}

func (s *LocalStore) SearchHistory(ctx context.Context) ([]string, error) {
	return readList[string](ctx, s.kv, SearchHistoryKey)
}

// AddSearchLocation puts location at the front of the history, removing any
// earlier copy and keeping at most MaxSearchHistory entries. Blank locations
// are ignored.
func (s *LocalStore) AddSearchLocation(ctx context.Context, location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := readList[string](ctx, s.kv, SearchHistoryKey)
	if err != nil {
		return err
	}

	next := make([]string, 0, MaxSearchHistory)
	next = append(next, location)
	for _, entry := range history {
		if len(next) == MaxSearchHistory {
			break
		}
		if entry != location {
			next = append(next, entry)
		}
	}

	return writeList(ctx, s.kv, SearchHistoryKey, next)
}

func readList[T any](ctx context.Context, kv KVStore, key string) ([]T, error) {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	list := []T{}
	if !found {
		return list, nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []T{}, nil
	}

	return list, nil
}

func writeList[T any](ctx context.Context, kv KVStore, key string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}
