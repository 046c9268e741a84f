package restyle

import (
	"fmt"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// RuleKind distinguishes the two rule variants.
type RuleKind string

const (
	// KindLiteral replaces an exact substring.
	KindLiteral RuleKind = "literal"
	// KindPattern replaces every match of a regular expression.
	KindPattern RuleKind = "pattern"
)

// Rule is one step of a rewrite. Apply must be pure: the same input always
// yields the same output and nothing outside the returned string changes.
type Rule interface {
	Apply(buf string) string
	Kind() RuleKind
	// Match is the literal text or expression source the rule looks for.
	Match() string
	// Replacement is the text written in place of each match.
	Replacement() string
}

// Literal replaces every non-overlapping occurrence of Old with New,
// scanning left to right. Matching is case-sensitive.
type Literal struct {
	Old string
	New string
}

// Apply implements Rule. An empty Old leaves the buffer unchanged.
func (l Literal) Apply(buf string) string {
	if l.Old == "" {
		return buf
	}
	return strings.ReplaceAll(buf, l.Old, l.New)
}

func (l Literal) Kind() RuleKind { return KindLiteral }
func (l Literal) Match() string { return l.Old }
func (l Literal) Replacement() string { return l.New }

// Pattern replaces every leftmost-first, non-overlapping match of Expr with
// Repl. Repl is inserted verbatim; $1-style references are not expanded.
type Pattern struct {
	Expr *regexp.Regexp
	Repl string
}

// NewPattern compiles expr into a Pattern rule.
func NewPattern(expr, repl string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, errors.Errorf("%w: compiling %q: %s", ErrInvalidRule, expr, err.Error())
	}
	return Pattern{Expr: re, Repl: repl}, nil
}

// MustPattern is like NewPattern but panics if expr does not compile.
// Intended for rule sets declared at package level.
func MustPattern(expr, repl string) Pattern {
	p, err := NewPattern(expr, repl)
	if err != nil {
		panic(err)
	}
	return p
}

// Apply implements Rule.
func (p Pattern) Apply(buf string) string {
	if p.Expr == nil {
		return buf
	}
	return p.Expr.ReplaceAllLiteralString(buf, p.Repl)
}

func (p Pattern) Kind() RuleKind { return KindPattern }

func (p Pattern) Match() string {
	if p.Expr == nil {
		return ""
	}
	return p.Expr.String()
}

func (p Pattern) Replacement() string { return p.Repl }

// ValidateRules reports the first rule that cannot do any work: a nil rule,
// a literal with an empty search string, or a pattern without an expression.
func ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		switch r := rule.(type) {
		case nil:
			return errors.Errorf("%w: rule %d is nil", ErrInvalidRule, i)
		case Literal:
			if r.Old == "" {
				return errors.Errorf("%w: rule %d: literal search text is empty", ErrInvalidRule, i)
			}
		case Pattern:
			if r.Expr == nil {
				return errors.Errorf("%w: rule %d: pattern has no expression", ErrInvalidRule, i)
			}
		}
	}
	return nil
}

// DescribeRule renders a rule as `kind: "match" -> "replacement"`.
func DescribeRule(r Rule) string {
	return fmt.Sprintf("%s: %q -> %q", r.Kind(), r.Match(), r.Replacement())
}
