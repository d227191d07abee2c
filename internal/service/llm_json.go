package service

import (
	"regexp"
	"strings"
)

var (
	codeFenceStart = regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	codeFenceEnd   = regexp.MustCompile("(?is)\\s*```\\s*$")
)

// cleanLLMJSON strips a leading BOM and markdown code fences around a model reply.
func cleanLLMJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "\ufeff")
	s = codeFenceStart.ReplaceAllString(s, "")
	s = codeFenceEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// firstJSONObject returns the first balanced {...} in input, honouring string
// literals and escapes, or "" when there is none.
func firstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}

	inString := false
	escape := false
	depth := 0

	for i := start; i < len(input); i++ {
		ch := input[i]

		if inString {
			switch {
			case escape:
				escape = false
			case ch == '\\':
				escape = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}
	return ""
}
