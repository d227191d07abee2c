package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fortune-api/internal/domain"
	"fortune-api/internal/repository"
)

var (
	ErrMBTIServiceNotConfigured = errors.New("mbti service not configured")
	ErrMBTIInvalidInput         = errors.New("mbti invalid input")
	ErrRateLimited              = errors.New("rate limited")
	ErrResultNotFound           = errors.New("mbti result not found")
)

const (
	defaultDraftTTL     = time.Hour
	maxHistoryLimit     = 100
	maxSimilarNeighbors = 20
)

// MBTIService wraps the pure classifier with persistence, drafts and rate limiting.
type MBTIService struct {
	logger   *zap.Logger
	results  repository.MBTIResultRepository
	drafts   AnswerDraftStore
	limiter  SubmissionLimiter
	draftTTL time.Duration
	now      func() time.Time
}

func NewMBTIService(
	logger *zap.Logger,
	results repository.MBTIResultRepository,
	drafts AnswerDraftStore,
	limiter SubmissionLimiter,
	draftTTL time.Duration,
) *MBTIService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if drafts == nil {
		drafts = NewMemoryAnswerDraftStore()
	}
	if draftTTL <= 0 {
		draftTTL = defaultDraftTTL
	}
	return &MBTIService{
		logger:   logger,
		results:  results,
		drafts:   drafts,
		limiter:  limiter,
		draftTTL: draftTTL,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Questions returns the questionnaire in presentation order.
func (s *MBTIService) Questions() []domain.Question {
	return Questions()
}

// Classify validates the answers and runs the classifier. Unknown question ids are
// logged and ignored. An empty answer list is rejected with ErrMBTIInvalidInput here,
// while ClassifyAnswers on its own returns the neutral INFP for it.
func (s *MBTIService) Classify(ctx context.Context, answers []domain.Answer) (domain.Classification, error) {
	normalized, err := normalizeAnswers(answers)
	if err != nil {
		return domain.Classification{}, err
	}

	result, err := ClassifyAnswers(normalized)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("classify answers: %w", err)
	}

	if len(result.Skipped) > 0 {
		s.logger.Warn("skipped unknown mbti question ids", zap.Ints("question_ids", result.Skipped))
	}
	if len(result.Unanswered) > 0 {
		s.logger.Info("mbti dimensions without answers defaulted to neutral",
			zap.Stringers("dimensions", result.Unanswered),
		)
	}
	return result, nil
}

// Submit classifies the answers and stores the result for the user.
func (s *MBTIService) Submit(ctx context.Context, userID string, answers []domain.Answer) (domain.MBTIResult, domain.Classification, error) {
	if s == nil || s.results == nil {
		return domain.MBTIResult{}, domain.Classification{}, ErrMBTIServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.MBTIResult{}, domain.Classification{}, ErrMBTIInvalidInput
	}

	classification, err := s.Classify(ctx, answers)
	if err != nil {
		return domain.MBTIResult{}, domain.Classification{}, err
	}
	if s.limiter != nil && !s.limiter.Allow(userID) {
		return domain.MBTIResult{}, domain.Classification{}, ErrRateLimited
	}

	result := domain.MBTIResult{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        classification.Type,
		DisplayType: classification.DisplayType,
		Tendency:    classification.Tendency,
		CreatedAt:   s.now(),
	}
	if err := s.results.Create(ctx, result); err != nil {
		s.logger.Error("mbti result insert failed", zap.Error(err), zap.String("user_id", userID))
		return domain.MBTIResult{}, domain.Classification{}, fmt.Errorf("save mbti result: %w", err)
	}

	if err := s.drafts.Delete(ctx, userID); err != nil {
		s.logger.Warn("mbti draft cleanup failed", zap.Error(err), zap.String("user_id", userID))
	}

	s.logger.Info("mbti result saved",
		zap.String("user_id", userID),
		zap.String("result_id", result.ID),
		zap.String("type", result.Type.String()),
	)
	return result, classification, nil
}

// History lists the user's saved results, newest first.
func (s *MBTIService) History(ctx context.Context, userID string, limit int) ([]domain.MBTIResult, error) {
	if s == nil || s.results == nil {
		return nil, ErrMBTIServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMBTIInvalidInput
	}
	if limit <= 0 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	results, err := s.results.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list mbti results: %w", err)
	}
	return results, nil
}

// Latest returns the newest saved result with its profile.
func (s *MBTIService) Latest(ctx context.Context, userID string) (domain.MBTIResult, domain.TypeProfile, error) {
	results, err := s.History(ctx, userID, 1)
	if err != nil {
		return domain.MBTIResult{}, domain.TypeProfile{}, err
	}
	if len(results) == 0 {
		return domain.MBTIResult{}, domain.TypeProfile{}, ErrResultNotFound
	}
	profile, err := ProfileOf(results[0].Type.String())
	if err != nil {
		return domain.MBTIResult{}, domain.TypeProfile{}, err
	}
	return results[0], profile, nil
}

// Similar returns other saved results closest to one of the user's results.
// User ids of the neighbours are not exposed.
func (s *MBTIService) Similar(ctx context.Context, userID, resultID string, k int) ([]domain.MBTIResult, error) {
	if s == nil || s.results == nil {
		return nil, ErrMBTIServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	resultID = strings.TrimSpace(resultID)
	if userID == "" || resultID == "" {
		return nil, ErrMBTIInvalidInput
	}
	if k <= 0 || k > maxSimilarNeighbors {
		k = 5
	}
	if _, err := uuid.Parse(resultID); err != nil {
		return nil, ErrResultNotFound
	}

	anchor, err := s.results.GetByID(ctx, resultID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("get mbti result: %w", err)
	}
	if anchor.UserID != userID {
		return nil, ErrResultNotFound
	}

	neighbours, err := s.results.FindSimilar(ctx, anchor.Tendency, anchor.ID, k)
	if err != nil {
		return nil, fmt.Errorf("find similar mbti results: %w", err)
	}
	for i := range neighbours {
		neighbours[i].UserID = ""
	}
	return neighbours, nil
}

// SaveDraft merges answers into the user's draft, last write wins per question.
func (s *MBTIService) SaveDraft(ctx context.Context, userID string, answers []domain.Answer) (domain.AnswerDraft, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || len(answers) == 0 {
		return domain.AnswerDraft{}, ErrMBTIInvalidInput
	}
	normalized, err := normalizeAnswers(answers)
	if err != nil {
		return domain.AnswerDraft{}, err
	}

	existing, err := s.drafts.Load(ctx, userID)
	if err != nil && !errors.Is(err, ErrDraftNotFound) {
		return domain.AnswerDraft{}, fmt.Errorf("load mbti draft: %w", err)
	}

	draft := domain.AnswerDraft{
		UserID:    userID,
		Answers:   mergeAnswers(existing.Answers, normalized),
		UpdatedAt: s.now(),
	}
	if err := s.drafts.Save(ctx, draft, s.draftTTL); err != nil {
		return domain.AnswerDraft{}, fmt.Errorf("save mbti draft: %w", err)
	}
	return draft, nil
}

func (s *MBTIService) LoadDraft(ctx context.Context, userID string) (domain.AnswerDraft, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.AnswerDraft{}, ErrMBTIInvalidInput
	}
	return s.drafts.Load(ctx, userID)
}

func (s *MBTIService) DiscardDraft(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrMBTIInvalidInput
	}
	return s.drafts.Delete(ctx, userID)
}

func (s *MBTIService) Profile(code string) (domain.TypeProfile, error) {
	return ProfileOf(code)
}

func (s *MBTIService) Compatibility(typeA, typeB string) (domain.Compatibility, error) {
	return Compatibility(typeA, typeB)
}

// normalizeAnswers upper-cases choices and rejects anything other than A or B.
// Unknown question ids pass through; the tally skips them.
func normalizeAnswers(answers []domain.Answer) ([]domain.Answer, error) {
	if len(answers) == 0 {
		return nil, ErrMBTIInvalidInput
	}
	out := make([]domain.Answer, len(answers))
	for i, a := range answers {
		choice, err := domain.ParseChoice(string(a.Choice))
		if err != nil {
			return nil, fmt.Errorf("%w: question %d: %w", ErrMBTIInvalidInput, a.QuestionID, err)
		}
		out[i] = domain.Answer{QuestionID: a.QuestionID, Choice: choice}
	}
	return out, nil
}
