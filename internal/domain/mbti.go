package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownType   = errors.New("unknown mbti type")
	ErrInvalidChoice = errors.New("invalid option choice")
)

// Dimension is one of the four binary personality axes.
type Dimension int

const (
	DimensionEI Dimension = iota // Energy
	DimensionSN                  // Perception
	DimensionTF                  // Judgment
	DimensionJP                  // Lifestyle
)

// Dimensions lists the axes in type-code order.
var Dimensions = [4]Dimension{DimensionEI, DimensionSN, DimensionTF, DimensionJP}

// Pole is one letter of a dimension.
type Pole byte

const (
	PoleE Pole = 'E'
	PoleI Pole = 'I'
	PoleS Pole = 'S'
	PoleN Pole = 'N'
	PoleT Pole = 'T'
	PoleF Pole = 'F'
	PoleJ Pole = 'J'
	PoleP Pole = 'P'
)

func (p Pole) String() string { return string(rune(p)) }

func (p Pole) MarshalText() ([]byte, error) { return []byte{byte(p)}, nil }

func (p *Pole) UnmarshalText(b []byte) error {
	if len(b) != 1 {
		return ErrInvalidChoice
	}
	pole := Pole(b[0] &^ 0x20)
	if _, ok := DimensionOf(pole); !ok {
		return ErrInvalidChoice
	}
	*p = pole
	return nil
}

// Poles returns (poleA, poleB) for the dimension. Tendency grows toward poleB.
func (d Dimension) Poles() (Pole, Pole) {
	switch d {
	case DimensionEI:
		return PoleE, PoleI
	case DimensionSN:
		return PoleS, PoleN
	case DimensionTF:
		return PoleT, PoleF
	case DimensionJP:
		return PoleJ, PoleP
	}
	return 0, 0
}

func (d Dimension) String() string {
	a, b := d.Poles()
	if a == 0 {
		return "??"
	}
	return a.String() + b.String()
}

func (d Dimension) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Dimension) UnmarshalText(b []byte) error {
	name := strings.ToUpper(strings.TrimSpace(string(b)))
	for _, candidate := range Dimensions {
		if candidate.String() == name {
			*d = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown dimension %q", name)
}

// Valid reports whether d is one of the four axes.
func (d Dimension) Valid() bool {
	return d >= DimensionEI && d <= DimensionJP
}

// DimensionOf returns the axis that owns the pole.
func DimensionOf(p Pole) (Dimension, bool) {
	for _, d := range Dimensions {
		a, b := d.Poles()
		if p == a || p == b {
			return d, true
		}
	}
	return 0, false
}

// Choice identifies which of the two options was picked.
type Choice string

const (
	ChoiceA Choice = "A"
	ChoiceB Choice = "B"
)

// ParseChoice accepts "A"/"B" (case-insensitive, surrounding spaces ignored).
func ParseChoice(s string) (Choice, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return ChoiceA, nil
	case "B":
		return ChoiceB, nil
	}
	return "", ErrInvalidChoice
}

type QuestionOption struct {
	Text string `json:"text"`
	Pole Pole   `json:"pole"`
}

// Question is one forced-choice item of the questionnaire.
type Question struct {
	ID        int               `json:"id"`
	Dimension Dimension         `json:"dimension"`
	Prompt    string            `json:"prompt"`
	Options   [2]QuestionOption `json:"options"`
}

// PoleFor returns the pole carried by the chosen option.
func (q Question) PoleFor(c Choice) (Pole, bool) {
	switch c {
	case ChoiceA:
		return q.Options[0].Pole, true
	case ChoiceB:
		return q.Options[1].Pole, true
	}
	return 0, false
}

type Answer struct {
	QuestionID int    `json:"question_id"`
	Choice     Choice `json:"answer"`
}

// TendencyVector holds one 0-100 value per dimension; <50 favours pole A, >50 pole B.
type TendencyVector struct {
	EI int `json:"EI"`
	SN int `json:"SN"`
	TF int `json:"TF"`
	JP int `json:"JP"`
}

func (v TendencyVector) Get(d Dimension) int {
	switch d {
	case DimensionEI:
		return v.EI
	case DimensionSN:
		return v.SN
	case DimensionTF:
		return v.TF
	case DimensionJP:
		return v.JP
	}
	return 0
}

func (v *TendencyVector) Set(d Dimension, value int) {
	switch d {
	case DimensionEI:
		v.EI = value
	case DimensionSN:
		v.SN = value
	case DimensionTF:
		v.TF = value
	case DimensionJP:
		v.JP = value
	}
}

// Floats returns the vector in EI, SN, TF, JP order.
func (v TendencyVector) Floats() []float32 {
	return []float32{float32(v.EI), float32(v.SN), float32(v.TF), float32(v.JP)}
}

// TypeCode is a resolved four-letter code such as "INTJ".
type TypeCode string

// ParseTypeCode normalizes case and checks that every letter belongs to its dimension.
func ParseTypeCode(s string) (TypeCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != len(Dimensions) {
		return "", ErrUnknownType
	}
	for i, d := range Dimensions {
		a, b := d.Poles()
		if p := Pole(s[i]); p != a && p != b {
			return "", ErrUnknownType
		}
	}
	return TypeCode(s), nil
}

func (c TypeCode) String() string { return string(c) }

// Letter returns the pole chosen for dimension d.
func (c TypeCode) Letter(d Dimension) Pole {
	if int(d) >= len(c) {
		return 0
	}
	return Pole(c[d])
}

type MatchEntry struct {
	Type   TypeCode `json:"type"`
	Reason string   `json:"reason"`
}

// TypeProfile is static reference content for one type.
type TypeProfile struct {
	Type         TypeCode     `json:"type"`
	Name         string       `json:"name"`
	Nickname     string       `json:"nickname"`
	Summary      string       `json:"summary"`
	Strengths    []string     `json:"strengths"`
	Weaknesses   []string     `json:"weaknesses"`
	Careers      []string     `json:"careers"`
	BestMatches  []MatchEntry `json:"best_matches"`
	GoodMatches  []MatchEntry `json:"good_matches"`
	WorstMatches []MatchEntry `json:"worst_matches"`
}

type Compatibility struct {
	TypeA       TypeCode `json:"type_a"`
	TypeB       TypeCode `json:"type_b"`
	Score       int      `json:"score"`
	Description string   `json:"description"`
}

// Classification is the full output of one classifier run.
type Classification struct {
	Type        TypeCode       `json:"type"`
	Tendency    TendencyVector `json:"tendency"`
	DisplayType string         `json:"displayType"`
	Profile     TypeProfile    `json:"profile"`
	// Skipped lists question ids that were ignored: unknown id or invalid choice.
	Skipped    []int       `json:"skipped,omitempty"`
	Unanswered []Dimension `json:"unanswered,omitempty"`
}
