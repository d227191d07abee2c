package service

import (
	"sort"

	"fortune-api/internal/domain"
)

const (
	neutralTendency = 50
	// displayStrengthThreshold: a letter is upper-cased only when its tendency is
	// strictly further than this from neutral.
	displayStrengthThreshold = 25
)

// PoleCount holds selections of pole A and pole B for one dimension.
type PoleCount struct {
	A int
	B int
}

func (c PoleCount) Answered() int { return c.A + c.B }

// Tally is the output of TallyAnswers.
type Tally struct {
	Counts [4]PoleCount
	// Skipped lists question ids that were ignored (not in the bank or with an
	// invalid choice), ascending.
	Skipped []int
}

// TallyAnswers counts pole selections per dimension. When the same question id appears
// more than once only the last answer counts. Unknown ids are skipped, never fatal.
func TallyAnswers(answers []domain.Answer) Tally {
	latest := make(map[int]domain.Choice, len(answers))
	for _, a := range answers {
		latest[a.QuestionID] = a.Choice
	}

	var t Tally
	for id, choice := range latest {
		question, ok := QuestionByID(id)
		if !ok {
			t.Skipped = append(t.Skipped, id)
			continue
		}
		pole, ok := question.PoleFor(choice)
		if !ok {
			t.Skipped = append(t.Skipped, id)
			continue
		}
		poleA, _ := question.Dimension.Poles()
		if pole == poleA {
			t.Counts[question.Dimension].A++
		} else {
			t.Counts[question.Dimension].B++
		}
	}
	sort.Ints(t.Skipped)
	return t
}

// normalizeDimension scales pole-B selections to 0-100 over the number of bank
// questions for the dimension, rounding half up. A dimension nobody answered (or
// with no questions at all) is reported as neutral instead of dividing by zero.
func normalizeDimension(count PoleCount, total int) int {
	if total <= 0 || count.Answered() == 0 {
		return neutralTendency
	}
	v := (200*count.B + total) / (2 * total)
	if v > 100 {
		v = 100
	}
	return v
}

// NormalizeTendency converts a tally into a tendency vector. The second return value
// lists dimensions that had no answers and were defaulted to neutral.
func NormalizeTendency(t Tally) (domain.TendencyVector, []domain.Dimension) {
	var (
		v          domain.TendencyVector
		unanswered []domain.Dimension
	)
	for _, d := range domain.Dimensions {
		count := t.Counts[d]
		if count.Answered() == 0 {
			unanswered = append(unanswered, d)
		}
		v.Set(d, normalizeDimension(count, QuestionsFor(d)))
	}
	return v, unanswered
}

// ResolveType picks pole A when the tendency is below 50 and pole B otherwise,
// so an exact 50 resolves to pole B.
func ResolveType(v domain.TendencyVector) domain.TypeCode {
	code := make([]byte, 0, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		code = append(code, byte(resolvePole(d, v.Get(d))))
	}
	return domain.TypeCode(code)
}

func resolvePole(d domain.Dimension, value int) domain.Pole {
	poleA, poleB := d.Poles()
	if value < neutralTendency {
		return poleA
	}
	return poleB
}

// DisplayType renders weakly expressed dimensions in lower case.
func DisplayType(v domain.TendencyVector) string {
	out := make([]byte, 0, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		value := v.Get(d)
		letter := byte(resolvePole(d, value))
		if abs(value-neutralTendency) <= displayStrengthThreshold {
			letter |= 0x20
		}
		out = append(out, letter)
	}
	return string(out)
}

// ClassifyAnswers runs the full pipeline: tally, normalize, resolve and profile lookup.
func ClassifyAnswers(answers []domain.Answer) (domain.Classification, error) {
	tally := TallyAnswers(answers)
	tendency, unanswered := NormalizeTendency(tally)
	code := ResolveType(tendency)

	profile, err := ProfileOf(string(code))
	if err != nil {
		return domain.Classification{}, err
	}

	return domain.Classification{
		Type:        code,
		Tendency:    tendency,
		DisplayType: DisplayType(tendency),
		Profile:     profile,
		Skipped:     tally.Skipped,
		Unanswered:  unanswered,
	}, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
