package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fortune-api/internal/domain"
)

func TestParseAnswers(t *testing.T) {
	answers, err := parseAnswers(" 1:A, 2:b,99:B ")
	require.NoError(t, err)
	assert.Equal(t, []domain.Answer{
		{QuestionID: 1, Choice: domain.ChoiceA},
		{QuestionID: 2, Choice: domain.ChoiceB},
		{QuestionID: 99, Choice: domain.ChoiceB},
	}, answers)
}

func TestParseAnswers_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "only commas", raw: ",,"},
		{name: "missing colon", raw: "1A"},
		{name: "bad id", raw: "x:A"},
		{name: "bad choice", raw: "1:C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAnswers(tt.raw)
			assert.Error(t, err)
		})
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCompatCommand(t *testing.T) {
	out, err := runCLI(t, "compat", "intj", "ENFP")
	require.NoError(t, err)
	assert.Contains(t, out, "INTJ x ENFP: 95")
}

func TestCompatCommand_UnknownType(t *testing.T) {
	_, err := runCLI(t, "compat", "XXXX", "ENFP")
	assert.ErrorIs(t, err, domain.ErrUnknownType)
}

func TestClassifyCommand_ReportsUnanswered(t *testing.T) {
	out, err := runCLI(t, "classify", "--answers", "1:A,5:A,9:A,13:B")
	require.NoError(t, err)
	assert.Contains(t, out, "type: ")
	assert.Contains(t, out, "unanswered dimensions: [SN TF JP]")
}

func TestTypesCommand_ListsAllSixteen(t *testing.T) {
	out, err := runCLI(t, "types")
	require.NoError(t, err)
	assert.Equal(t, 16, bytes.Count([]byte(out), []byte("\n")))
}
