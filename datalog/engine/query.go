// Package engine implements the query evaluator, rule evaluator,
// fixed-point driver and dependency-graph builder described in spec.md
// §4.3–§4.6, as a small set of free functions over relation.Database and
// relation.Relation rather than as methods with dynamic dispatch — per the
// "interface-ish split" note in spec.md §4.5, the Query Evaluator and Rule
// Evaluator both call into the same algebra surface.
package engine

import (
	"log"

	"github.com/arnegard/datalogo/datalog/lang"
	"github.com/arnegard/datalogo/datalog/relation"
)

// EvaluateQuery computes the answer Relation for predicate p against db,
// per spec.md §4.3. The result's scheme is exactly the sequence of
// distinct variables appearing in p, in first-occurrence order, which is
// what lets a rule's body atoms natural-join on variable-name identity.
func EvaluateQuery(db *relation.Database, p lang.Predicate, diag *log.Logger) *relation.Relation {
	q := db.Get(p.Name)

	varIndex := make(map[string]int)
	var projectIndices []int
	var renameAttrs []string

	for i, param := range p.Parameters {
		if param.Kind == lang.Literal {
			q = q.SelectByLiteral(i, param.Value)
			continue
		}
		if first, seen := varIndex[param.Value]; seen {
			q = q.SelectByEquality(first, i)
			continue
		}
		varIndex[param.Value] = i
		projectIndices = append(projectIndices, i)
		renameAttrs = append(renameAttrs, param.Value)
	}

	q = q.Project(projectIndices, diag)
	q = q.Rename(renameAttrs)
	return q
}
