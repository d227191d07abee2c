package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fortune-api/internal/domain"
)

func TestTypeProfiles_Complete(t *testing.T) {
	codes := TypeCodes()
	require.Len(t, codes, 16)

	for _, code := range codes {
		parsed, err := domain.ParseTypeCode(code.String())
		require.NoError(t, err)
		require.Equal(t, code, parsed)

		profile, err := ProfileOf(code.String())
		require.NoError(t, err)
		assert.Equal(t, code, profile.Type)
		assert.NotEmpty(t, profile.Name, code)
		assert.NotEmpty(t, profile.Summary, code)
		assert.NotEmpty(t, profile.Strengths, code)
		assert.NotEmpty(t, profile.BestMatches, code)

		seen := make(map[domain.TypeCode]string)
		lists := map[string][]domain.MatchEntry{
			"best":  profile.BestMatches,
			"good":  profile.GoodMatches,
			"worst": profile.WorstMatches,
		}
		for name, entries := range lists {
			for _, e := range entries {
				_, err := ProfileOf(e.Type.String())
				assert.NoError(t, err, "%s %s match %s", code, name, e.Type)
				assert.NotEqual(t, code, e.Type, "%s lists itself", code)
				if prev, dup := seen[e.Type]; dup {
					t.Errorf("%s lists %s in both %s and %s", code, e.Type, prev, name)
				}
				seen[e.Type] = name
			}
		}
	}
}

func TestProfileOf(t *testing.T) {
	profile, err := ProfileOf(" intj ")
	require.NoError(t, err)
	assert.Equal(t, domain.TypeCode("INTJ"), profile.Type)

	for _, bad := range []string{"", "INT", "INTJX", "XXXX", "IINJ", "ABCD"} {
		_, err := ProfileOf(bad)
		assert.ErrorIs(t, err, domain.ErrUnknownType, bad)
	}
}

func TestProfileOf_ReturnsCopy(t *testing.T) {
	first, err := ProfileOf("INTJ")
	require.NoError(t, err)
	want := first.Strengths[0]
	wantBest := first.BestMatches[0]

	first.Strengths[0] = "changed"
	first.BestMatches[0].Type = "ESFP"
	first.Careers = append(first.Careers[:0], "changed")

	again, err := ProfileOf("INTJ")
	require.NoError(t, err)
	assert.Equal(t, want, again.Strengths[0])
	assert.Equal(t, wantBest, again.BestMatches[0])
	assert.NotEqual(t, "changed", again.Careers[0])

	c, err := ClassifyAnswers(fullAnswers(domain.ChoiceA))
	require.NoError(t, err)
	c.Profile.Weaknesses[0] = "changed"
	fresh, err := ProfileOf(c.Type.String())
	require.NoError(t, err)
	assert.NotEqual(t, "changed", fresh.Weaknesses[0])
}

func TestCompatibility_BestMatch(t *testing.T) {
	result, err := Compatibility("INTJ", "ENFP")
	require.NoError(t, err)
	assert.Equal(t, 95, result.Score)
	assert.Equal(t, domain.TypeCode("INTJ"), result.TypeA)
	assert.Equal(t, domain.TypeCode("ENFP"), result.TypeB)
	assert.Equal(t, describeCompatibility(90), result.Description)
}

func TestCompatibility_GoodAndBase(t *testing.T) {
	good, err := Compatibility("INTJ", "INTP")
	require.NoError(t, err)
	assert.Equal(t, 80, good.Score)
	assert.Equal(t, describeCompatibility(75), good.Description)

	self, err := Compatibility("INTJ", "intj")
	require.NoError(t, err)
	assert.Equal(t, 60, self.Score)
	assert.Equal(t, describeCompatibility(60), self.Description)
}

func TestCompatibility_Symmetric(t *testing.T) {
	codes := TypeCodes()
	for _, a := range codes {
		for _, b := range codes {
			ab, err := Compatibility(a.String(), b.String())
			require.NoError(t, err)
			ba, err := Compatibility(b.String(), a.String())
			require.NoError(t, err)
			assert.Equal(t, ab.Score, ba.Score, "%s/%s", a, b)
			assert.Equal(t, ab.Description, ba.Description, "%s/%s", a, b)
			assert.Contains(t, []int{60, 80, 95}, ab.Score)
		}
	}
}

func TestCompatibility_OneSidedListingIsUsed(t *testing.T) {
	// Only INTP lists INFJ; INFJ's tables do not mention INTP.
	ab, err := Compatibility("INTP", "INFJ")
	require.NoError(t, err)
	ba, err := Compatibility("INFJ", "INTP")
	require.NoError(t, err)
	assert.Equal(t, 80, ab.Score)
	assert.Equal(t, 80, ba.Score)
}

func TestCompatibility_UnknownType(t *testing.T) {
	_, err := Compatibility("INTJ", "ZZZZ")
	assert.ErrorIs(t, err, domain.ErrUnknownType)
	_, err = Compatibility("", "INTJ")
	assert.ErrorIs(t, err, domain.ErrUnknownType)
}

func TestDescribeCompatibility_Bands(t *testing.T) {
	bands := []int{100, 90, 89, 75, 74, 60, 59, 0}
	descs := make([]string, len(bands))
	for i, s := range bands {
		descs[i] = describeCompatibility(s)
	}
	assert.Equal(t, descs[0], descs[1])
	assert.NotEqual(t, descs[1], descs[2])
	assert.Equal(t, descs[2], descs[3])
	assert.NotEqual(t, descs[3], descs[4])
	assert.Equal(t, descs[4], descs[5])
	assert.NotEqual(t, descs[5], descs[6])
	assert.Equal(t, descs[6], descs[7])
}
