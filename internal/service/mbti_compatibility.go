package service

import (
	"fmt"
	"slices"
	"sort"

	"fortune-api/internal/domain"
)

const (
	compatibilityBase = 60
	compatibilityGood = 80
	compatibilityBest = 95
)

// ProfileOf returns a copy of the static profile for a type code. Input from
// clients is normalized to upper case; anything outside the 16 codes is ErrUnknownType.
func ProfileOf(code string) (domain.TypeProfile, error) {
	tc, err := domain.ParseTypeCode(code)
	if err != nil {
		return domain.TypeProfile{}, fmt.Errorf("%w: %q", err, code)
	}
	profile, ok := typeProfiles[tc]
	if !ok {
		return domain.TypeProfile{}, fmt.Errorf("%w: %q", domain.ErrUnknownType, code)
	}
	return cloneProfile(profile), nil
}

func cloneProfile(p domain.TypeProfile) domain.TypeProfile {
	p.Strengths = slices.Clone(p.Strengths)
	p.Weaknesses = slices.Clone(p.Weaknesses)
	p.Careers = slices.Clone(p.Careers)
	p.BestMatches = slices.Clone(p.BestMatches)
	p.GoodMatches = slices.Clone(p.GoodMatches)
	p.WorstMatches = slices.Clone(p.WorstMatches)
	return p
}

// TypeCodes returns the 16 codes in lexical order.
func TypeCodes() []domain.TypeCode {
	codes := make([]domain.TypeCode, 0, len(typeProfiles))
	for code := range typeProfiles {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Compatibility scores a pair of types. Both profiles are consulted and the higher
// score wins, so Compatibility(a, b) == Compatibility(b, a) even when the tables
// only list the pair on one side.
func Compatibility(typeA, typeB string) (domain.Compatibility, error) {
	a, err := ProfileOf(typeA)
	if err != nil {
		return domain.Compatibility{}, err
	}
	b, err := ProfileOf(typeB)
	if err != nil {
		return domain.Compatibility{}, err
	}

	score := max(directionalScore(a, b.Type), directionalScore(b, a.Type))
	return domain.Compatibility{
		TypeA:       a.Type,
		TypeB:       b.Type,
		Score:       score,
		Description: describeCompatibility(score),
	}, nil
}

func directionalScore(from domain.TypeProfile, to domain.TypeCode) int {
	if listsType(from.BestMatches, to) {
		return compatibilityBest
	}
	if listsType(from.GoodMatches, to) {
		return compatibilityGood
	}
	return compatibilityBase
}

func listsType(entries []domain.MatchEntry, code domain.TypeCode) bool {
	for _, e := range entries {
		if e.Type == code {
			return true
		}
	}
	return false
}

func describeCompatibility(score int) string {
	switch {
	case score >= 90:
		return "천생연분! 서로의 부족한 점을 채워 주는 최고의 궁합입니다."
	case score >= 75:
		return "잘 맞는 궁합입니다. 비슷한 가치관으로 편안한 관계를 만들 수 있어요."
	case score >= 60:
		return "노력하면 좋은 관계가 될 수 있는 궁합입니다. 서로의 차이를 존중해 주세요."
	default:
		return "서로 다른 점이 많아 이해와 배려가 특히 필요한 궁합입니다."
	}
}
