package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fortune-api/internal/domain"
	"fortune-api/internal/llm"
)

var ErrReadingUnavailable = errors.New("reading unavailable")

// Reading is a personalised interpretation of a classification.
type Reading struct {
	Type     domain.TypeCode `json:"type"`
	Headline string          `json:"headline"`
	Body     string          `json:"reading"`
	Advice   []string        `json:"advice"`
	Fallback bool            `json:"fallback,omitempty"`
}

// ReadingService asks the LLM for a short reading based on a classification.
type ReadingService struct {
	llmClient llm.LLMClient
	logger    *zap.Logger
}

func NewReadingService(llmClient llm.LLMClient, logger *zap.Logger) *ReadingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReadingService{llmClient: llmClient, logger: logger}
}

func (s *ReadingService) Generate(ctx context.Context, c domain.Classification) (Reading, error) {
	if s == nil || s.llmClient == nil {
		return Reading{}, ErrReadingUnavailable
	}

	raw, err := s.llmClient.Generate(ctx, buildReadingPrompt(c))
	if err != nil {
		s.logger.Warn("reading generation failed", zap.Error(err), zap.String("type", c.Type.String()))
		return Reading{}, fmt.Errorf("%w: %w", ErrReadingUnavailable, err)
	}

	reading, err := parseReading(raw)
	if err != nil {
		s.logger.Warn("reading parse failed", zap.Error(err), zap.String("type", c.Type.String()))
		return Reading{}, fmt.Errorf("%w: %w", ErrReadingUnavailable, err)
	}
	reading.Type = c.Type
	return reading, nil
}

// StaticReading builds a reading from the profile tables alone.
func StaticReading(c domain.Classification) Reading {
	advice := make([]string, 0, len(c.Profile.Weaknesses))
	for _, w := range c.Profile.Weaknesses {
		advice = append(advice, w+"에 유의하세요.")
	}
	return Reading{
		Type:     c.Type,
		Headline: fmt.Sprintf("%s · %s", c.Type, c.Profile.Name),
		Body:     c.Profile.Summary,
		Advice:   advice,
		Fallback: true,
	}
}

func buildReadingPrompt(c domain.Classification) string {
	var b strings.Builder
	b.WriteString("당신은 따뜻하고 통찰력 있는 성격 유형 상담가입니다. 아래 MBTI 검사 결과를 바탕으로 짧은 해석을 작성하세요.\n")
	b.WriteString("반드시 다음 형식의 JSON만 반환하세요:\n")
	b.WriteString(`{"headline": "한 줄 요약", "reading": "3~4문장 해석", "advice": ["조언1", "조언2"]}`)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "유형: %s (%s)\n", c.Type, c.Profile.Name)
	fmt.Fprintf(&b, "표시 유형: %s (소문자는 성향이 약한 지표)\n", c.DisplayType)
	fmt.Fprintf(&b, "성향 점수 (0은 앞 글자, 100은 뒷 글자 쪽): EI=%d, SN=%d, TF=%d, JP=%d\n",
		c.Tendency.EI, c.Tendency.SN, c.Tendency.TF, c.Tendency.JP)
	if len(c.Profile.Strengths) > 0 {
		fmt.Fprintf(&b, "강점: %s\n", strings.Join(c.Profile.Strengths, ", "))
	}
	if len(c.Profile.Weaknesses) > 0 {
		fmt.Fprintf(&b, "약점: %s\n", strings.Join(c.Profile.Weaknesses, ", "))
	}
	return b.String()
}

func parseReading(raw string) (Reading, error) {
	candidate := firstJSONObject(cleanLLMJSON(raw))
	if candidate == "" {
		return Reading{}, errors.New("no json object in llm response")
	}
	var parsed Reading
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return Reading{}, fmt.Errorf("parse llm response: %w", err)
	}
	parsed.Headline = strings.TrimSpace(parsed.Headline)
	parsed.Body = strings.TrimSpace(parsed.Body)
	if parsed.Body == "" {
		return Reading{}, errors.New("empty reading in llm response")
	}
	parsed.Fallback = false
	return parsed, nil
}
