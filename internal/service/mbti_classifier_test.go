package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fortune-api/internal/domain"
)

// answerFor picks the option of question id that leads to pole.
func answerFor(t *testing.T, id int, pole domain.Pole) domain.Answer {
	t.Helper()
	question, ok := QuestionByID(id)
	require.True(t, ok, "question %d not in bank", id)
	for i, opt := range question.Options {
		if opt.Pole == pole {
			choice := domain.ChoiceA
			if i == 1 {
				choice = domain.ChoiceB
			}
			return domain.Answer{QuestionID: id, Choice: choice}
		}
	}
	t.Fatalf("question %d has no option for pole %s", id, pole)
	return domain.Answer{}
}

// answersWithPoleB answers every question, choosing pole B for the first n
// questions of each dimension and pole A for the rest.
func answersWithPoleB(t *testing.T, n int) []domain.Answer {
	t.Helper()
	seen := make(map[domain.Dimension]int)
	var answers []domain.Answer
	for _, q := range Questions() {
		poleA, poleB := q.Dimension.Poles()
		pole := poleA
		if seen[q.Dimension] < n {
			pole = poleB
		}
		seen[q.Dimension]++
		answers = append(answers, answerFor(t, q.ID, pole))
	}
	return answers
}

func TestQuestionBank_Shape(t *testing.T) {
	questions := Questions()
	require.Len(t, questions, 16)

	ids := make(map[int]bool)
	for i, q := range questions {
		assert.Equal(t, i+1, q.ID)
		assert.False(t, ids[q.ID], "duplicate id %d", q.ID)
		ids[q.ID] = true

		poleA, poleB := q.Dimension.Poles()
		got := []domain.Pole{q.Options[0].Pole, q.Options[1].Pole}
		assert.ElementsMatch(t, []domain.Pole{poleA, poleB}, got, "question %d poles", q.ID)
		assert.NotEmpty(t, q.Prompt)
	}
	for _, d := range domain.Dimensions {
		assert.Equal(t, 4, QuestionsFor(d), "dimension %s", d)
	}
	assert.Equal(t, 0, QuestionsFor(domain.Dimension(9)))
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	qs := Questions()
	qs[0].Prompt = "changed"
	again := Questions()
	assert.NotEqual(t, "changed", again[0].Prompt)
}

func TestTallyAnswers_ReversedOptionsCountByPole(t *testing.T) {
	// Question 6 lists N first, so choice A is an N vote.
	tally := TallyAnswers([]domain.Answer{{QuestionID: 6, Choice: domain.ChoiceA}})
	assert.Equal(t, PoleCount{A: 0, B: 1}, tally.Counts[domain.DimensionSN])

	tally = TallyAnswers([]domain.Answer{{QuestionID: 13, Choice: domain.ChoiceB}})
	assert.Equal(t, PoleCount{A: 1, B: 0}, tally.Counts[domain.DimensionEI])
}

func TestTallyAnswers_LastWriteWins(t *testing.T) {
	tally := TallyAnswers([]domain.Answer{
		{QuestionID: 1, Choice: domain.ChoiceA},
		{QuestionID: 1, Choice: domain.ChoiceB},
	})
	assert.Equal(t, PoleCount{A: 0, B: 1}, tally.Counts[domain.DimensionEI])
}

func TestTallyAnswers_SkipsUnknownIDs(t *testing.T) {
	tally := TallyAnswers([]domain.Answer{
		{QuestionID: 99, Choice: domain.ChoiceA},
		{QuestionID: 2, Choice: domain.ChoiceA},
		{QuestionID: 0, Choice: domain.ChoiceB},
		{QuestionID: 3, Choice: "C"},
	})
	assert.Equal(t, []int{0, 3, 99}, tally.Skipped)
	assert.Equal(t, PoleCount{A: 1}, tally.Counts[domain.DimensionSN])
	assert.Equal(t, PoleCount{}, tally.Counts[domain.DimensionTF])
}

func TestNormalizeDimension(t *testing.T) {
	tests := []struct {
		name  string
		count PoleCount
		total int
		want  int
	}{
		{name: "no answers", count: PoleCount{}, total: 4, want: 50},
		{name: "zero total", count: PoleCount{B: 1}, total: 0, want: 50},
		{name: "none B", count: PoleCount{A: 4}, total: 4, want: 0},
		{name: "quarter", count: PoleCount{A: 3, B: 1}, total: 4, want: 25},
		{name: "half", count: PoleCount{A: 2, B: 2}, total: 4, want: 50},
		{name: "all B", count: PoleCount{B: 4}, total: 4, want: 100},
		{name: "third rounds down", count: PoleCount{A: 2, B: 1}, total: 3, want: 33},
		{name: "two thirds rounds up", count: PoleCount{A: 1, B: 2}, total: 3, want: 67},
		{name: "half up", count: PoleCount{A: 7, B: 1}, total: 8, want: 13},
		{name: "partial answers use bank total", count: PoleCount{B: 1}, total: 4, want: 25},
		{name: "clamped", count: PoleCount{B: 5}, total: 4, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDimension(tt.count, tt.total))
		})
	}
}

func TestResolveType_TieGoesToPoleB(t *testing.T) {
	assert.Equal(t, domain.TypeCode("INFP"), ResolveType(domain.TendencyVector{EI: 50, SN: 50, TF: 50, JP: 50}))
	assert.Equal(t, domain.TypeCode("ESTJ"), ResolveType(domain.TendencyVector{EI: 49, SN: 0, TF: 25, JP: 49}))
	assert.Equal(t, domain.TypeCode("ISTP"), ResolveType(domain.TendencyVector{EI: 51, SN: 10, TF: 10, JP: 100}))
}

func TestDisplayType_Threshold(t *testing.T) {
	tests := []struct {
		name string
		v    domain.TendencyVector
		want string
	}{
		{name: "neutral", v: domain.TendencyVector{EI: 50, SN: 50, TF: 50, JP: 50}, want: "infp"},
		{name: "strong", v: domain.TendencyVector{EI: 76, SN: 24, TF: 100, JP: 0}, want: "ISFJ"},
		{name: "just under threshold", v: domain.TendencyVector{EI: 74, SN: 26, TF: 74, JP: 26}, want: "isfj"},
		{name: "exactly 25 away", v: domain.TendencyVector{EI: 75, SN: 25, TF: 75, JP: 25}, want: "isfj"},
		{name: "mixed", v: domain.TendencyVector{EI: 0, SN: 60, TF: 20, JP: 90}, want: "EnTP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayType(tt.v))
		})
	}
}

func TestClassifyAnswers_AllPoleB(t *testing.T) {
	result, err := ClassifyAnswers(answersWithPoleB(t, 4))
	require.NoError(t, err)
	assert.Equal(t, domain.TypeCode("INFP"), result.Type)
	assert.Equal(t, "INFP", result.DisplayType)
	assert.Equal(t, domain.TendencyVector{EI: 100, SN: 100, TF: 100, JP: 100}, result.Tendency)
	assert.Equal(t, domain.TypeCode("INFP"), result.Profile.Type)
	assert.Empty(t, result.Unanswered)
}

func TestClassifyAnswers_AllPoleA(t *testing.T) {
	result, err := ClassifyAnswers(answersWithPoleB(t, 0))
	require.NoError(t, err)
	assert.Equal(t, domain.TypeCode("ESTJ"), result.Type)
	assert.Equal(t, "ESTJ", result.DisplayType)
}

func TestClassifyAnswers_EvenSplitIsNeutral(t *testing.T) {
	result, err := ClassifyAnswers(answersWithPoleB(t, 2))
	require.NoError(t, err)
	assert.Equal(t, domain.TendencyVector{EI: 50, SN: 50, TF: 50, JP: 50}, result.Tendency)
	assert.Equal(t, domain.TypeCode("INFP"), result.Type)
	assert.Equal(t, "infp", result.DisplayType)
}

func TestClassifyAnswers_ThreeOfFour(t *testing.T) {
	result, err := ClassifyAnswers(answersWithPoleB(t, 3))
	require.NoError(t, err)
	assert.Equal(t, domain.TendencyVector{EI: 75, SN: 75, TF: 75, JP: 75}, result.Tendency)
	assert.Equal(t, "infp", result.DisplayType)
}

func TestClassifyAnswers_EmptyInput(t *testing.T) {
	result, err := ClassifyAnswers(nil)
	require.NoError(t, err)
	assert.Equal(t, domain.TypeCode("INFP"), result.Type)
	assert.Equal(t, "infp", result.DisplayType)
	assert.Equal(t, []domain.Dimension{domain.DimensionEI, domain.DimensionSN, domain.DimensionTF, domain.DimensionJP}, result.Unanswered)
}

func TestClassifyAnswers_Deterministic(t *testing.T) {
	answers := answersWithPoleB(t, 1)
	first, err := ClassifyAnswers(answers)
	require.NoError(t, err)

	reversed := make([]domain.Answer, len(answers))
	for i, a := range answers {
		reversed[len(answers)-1-i] = a
	}
	second, err := ClassifyAnswers(reversed)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// Every one of the 2^16 complete answer sheets must classify to a known type
// with tendencies in range.
func TestClassifyAnswers_Total(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive sweep")
	}
	questions := Questions()
	answers := make([]domain.Answer, len(questions))
	for mask := 0; mask < 1<<len(questions); mask++ {
		for i, q := range questions {
			choice := domain.ChoiceA
			if mask&(1<<i) != 0 {
				choice = domain.ChoiceB
			}
			answers[i] = domain.Answer{QuestionID: q.ID, Choice: choice}
		}
		result, err := ClassifyAnswers(answers)
		if err != nil {
			t.Fatalf("mask %d: %v", mask, err)
		}
		for _, d := range domain.Dimensions {
			if v := result.Tendency.Get(d); v < 0 || v > 100 {
				t.Fatalf("mask %d: %s=%d out of range", mask, d, v)
			}
		}
		if _, err := ProfileOf(result.Type.String()); err != nil {
			t.Fatalf("mask %d: %v", mask, err)
		}
	}
}
