package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"fortune-api/internal/domain"
)

var ErrDraftNotFound = errors.New("answer draft not found")

// AnswerDraftStore keeps partially answered questionnaires between requests.
type AnswerDraftStore interface {
	Save(ctx context.Context, draft domain.AnswerDraft, ttl time.Duration) error
	Load(ctx context.Context, userID string) (domain.AnswerDraft, error)
	Delete(ctx context.Context, userID string) error
}

type memoryDraftEntry struct {
	draft     domain.AnswerDraft
	expiresAt time.Time
}

type memoryAnswerDraftStore struct {
	mu    sync.Mutex
	items map[string]memoryDraftEntry
}

func NewMemoryAnswerDraftStore() AnswerDraftStore {
	return &memoryAnswerDraftStore{
		items: make(map[string]memoryDraftEntry),
	}
}

func (s *memoryAnswerDraftStore) Save(_ context.Context, draft domain.AnswerDraft, ttl time.Duration) error {
	key := strings.TrimSpace(draft.UserID)
	if key == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	answers := make([]domain.Answer, len(draft.Answers))
	copy(answers, draft.Answers)
	draft.Answers = answers

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = memoryDraftEntry{draft: draft, expiresAt: time.Now().UTC().Add(ttl)}
	return nil
}

func (s *memoryAnswerDraftStore) Load(_ context.Context, userID string) (domain.AnswerDraft, error) {
	key := strings.TrimSpace(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.items[key]
	if !ok {
		return domain.AnswerDraft{}, ErrDraftNotFound
	}
	if time.Now().UTC().After(entry.expiresAt) {
		delete(s.items, key)
		return domain.AnswerDraft{}, ErrDraftNotFound
	}
	return entry.draft, nil
}

func (s *memoryAnswerDraftStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, strings.TrimSpace(userID))
	return nil
}

type redisKVClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisAnswerDraftStore struct {
	client redisKVClient
	prefix string
}

func NewRedisAnswerDraftStore(client *redis.Client) AnswerDraftStore {
	if client == nil {
		return nil
	}
	return &redisAnswerDraftStore{
		client: client,
		prefix: "mbti:draft:",
	}
}

func (s *redisAnswerDraftStore) Save(ctx context.Context, draft domain.AnswerDraft, ttl time.Duration) error {
	key := strings.TrimSpace(draft.UserID)
	if key == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.prefix+key, data, ttl).Err()
}

func (s *redisAnswerDraftStore) Load(ctx context.Context, userID string) (domain.AnswerDraft, error) {
	key := strings.TrimSpace(userID)
	if key == "" {
		return domain.AnswerDraft{}, ErrDraftNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.AnswerDraft{}, ErrDraftNotFound
	}
	if err != nil {
		return domain.AnswerDraft{}, err
	}
	var draft domain.AnswerDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return domain.AnswerDraft{}, err
	}
	return draft, nil
}

func (s *redisAnswerDraftStore) Delete(ctx context.Context, userID string) error {
	key := strings.TrimSpace(userID)
	if key == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Del(ctx, s.prefix+key).Err()
}

// mergeAnswers applies updates over existing answers, last write wins per question id.
// The result keeps first-seen order of question ids.
func mergeAnswers(existing, updates []domain.Answer) []domain.Answer {
	pos := make(map[int]int, len(existing)+len(updates))
	merged := make([]domain.Answer, 0, len(existing)+len(updates))
	for _, list := range [][]domain.Answer{existing, updates} {
		for _, a := range list {
			if i, ok := pos[a.QuestionID]; ok {
				merged[i] = a
				continue
			}
			pos[a.QuestionID] = len(merged)
			merged = append(merged, a)
		}
	}
	return merged
}
