// Package lang defines the parsed-program representation the core evaluator
// consumes: schemas, facts, rules and queries, each built out of Predicates.
package lang

import "strings"

// ParamKind distinguishes a quoted literal from a bare variable name.
type ParamKind int

const (
	// Variable is an unquoted identifier, bound during evaluation.
	Variable ParamKind = iota
	// Literal is a quoted string constant, stored with its quotes intact.
	Literal
)

// Parameter is one positional argument of a Predicate.
type Parameter struct {
	Kind ParamKind
	// Value is the raw token text: for a Literal this includes the
	// surrounding single quotes; for a Variable it is the bare identifier.
	Value string
}

// NewVariable builds a variable parameter.
func NewVariable(name string) Parameter {
	return Parameter{Kind: Variable, Value: name}
}

// NewLiteral builds a literal parameter. value must already carry its
// surrounding single quotes (e.g. `'alice'`).
func NewLiteral(value string) Parameter {
	return Parameter{Kind: Literal, Value: value}
}

func (p Parameter) String() string {
	return p.Value
}

// Predicate is a relation name applied to an ordered list of parameters.
// It is used for schema declarations, facts, rule heads, rule-body atoms
// and queries alike; which of these a given Predicate represents is
// determined by where the caller places it, not by any field here.
type Predicate struct {
	Name       string
	Parameters []Parameter
}

// String renders the predicate in the source textual form, e.g.
// `tc(X,Y)` or `snap('1',N)`, with no spaces around commas.
func (p Predicate) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteByte('(')
	for i, param := range p.Parameters {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(param.Value)
	}
	b.WriteByte(')')
	return b.String()
}

// Rule is a Horn clause: head is true for any binding under which every
// body atom is true.
type Rule struct {
	Head Predicate
	Body []Predicate
}

// String renders the rule as `head :- body1,body2,...` with no trailing
// period, matching the output contract's rule-text requirement.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Head.String())
	b.WriteString(" :- ")
	for i, atom := range r.Body {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(atom.String())
	}
	return b.String()
}

// Program is a fully parsed Datalog source: relation schemas, ground facts,
// deductive rules and queries, in source order.
type Program struct {
	Schemes []Predicate
	Facts   []Predicate
	Rules   []Rule
	Queries []Predicate
}
