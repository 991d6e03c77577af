package comparison

import (
	"strings"
	"unicode"

	"github.com/mcoot/mazedle-go/internal/model"
)

// Attribute describes one compared attribute of a character
type Attribute struct {
	Label string
	// Partial enables token-overlap matching for free-text fields
	Partial bool
	Value   func(model.Character) model.AttrValue
}

// attributes is the declared comparison and display order
var attributes = []Attribute{
	{Label: "Name", Value: func(c model.Character) model.AttrValue { return model.StringAttr(c.Name) }},
	{Label: "Gender", Value: func(c model.Character) model.AttrValue { return model.StringAttr(c.Gender) }},
	{Label: "Age", Value: func(c model.Character) model.AttrValue { return model.IntAttr(c.Age) }},
	{Label: "First Appearance", Value: func(c model.Character) model.AttrValue { return model.StringAttr(c.FirstAppearance) }},
	{Label: "Role", Partial: true, Value: func(c model.Character) model.AttrValue { return model.StringAttr(c.Role) }},
	{Label: "Group", Partial: true, Value: func(c model.Character) model.AttrValue { return model.StringAttr(c.Group) }},
	{Label: "Status", Value: func(c model.Character) model.AttrValue { return model.StringAttr(c.Status) }},
	{Label: "Survival", Value: func(c model.Character) model.AttrValue { return model.StringAttr(c.Survival) }},
}

// Attributes returns the attribute table in display order
func Attributes() []Attribute {
	out := make([]Attribute, len(attributes))
	copy(out, attributes)
	return out
}

// Service evaluates guesses against the target character
type Service struct{}

// New creates a new comparison Service
func New() *Service {
	return &Service{}
}

// Compare returns one verdict per attribute, in declared order
func (s *Service) Compare(guess, target model.Character) []model.AttributeVerdict {
	verdicts := make([]model.AttributeVerdict, len(attributes))
	for i, attr := range attributes {
		gv := attr.Value(guess)
		verdicts[i] = model.AttributeVerdict{
			Label:   attr.Label,
			Value:   gv,
			Verdict: CompareValues(gv, attr.Value(target), attr.Partial),
		}
	}
	return verdicts
}

// CompareValues classifies a single attribute. Numbers are exact-or-incorrect.
func CompareValues(guess, target model.AttrValue, partial bool) model.Verdict {
	if guess.Equal(target) {
		return model.VerdictCorrect
	}

	if partial && guess.Kind == model.AttrString && target.Kind == model.AttrString {
		if tokensOverlap(Tokenize(guess.Str), Tokenize(target.Str)) {
			return model.VerdictPartial
		}
	}

	return model.VerdictIncorrect
}

// Tokenize lowercases s and splits it on whitespace, commas and parentheses,
// dropping empty tokens
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), isSeparator)
}

func isSeparator(r rune) bool {
	return r == ',' || r == '(' || r == ')' || unicode.IsSpace(r)
}

func tokensOverlap(a, b []string) bool {
	set := make(map[string]struct{}, len(b))
	for _, t := range b {
		set[t] = struct{}{}
	}
	for _, t := range a {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
