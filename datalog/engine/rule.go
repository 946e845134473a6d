package engine

import (
	"log"

	"github.com/arnegard/datalogo/datalog/lang"
	"github.com/arnegard/datalogo/datalog/relation"
)

// EvaluateRule evaluates each body atom of r via EvaluateQuery, natural
// joins the intermediates left-to-right, and projects/renames the result
// onto the head relation's declared scheme, per spec.md §4.4. It does not
// mutate db beyond what EvaluateQuery's reads require; the caller is
// responsible for unioning the result into the head relation.
func EvaluateRule(db *relation.Database, r lang.Rule, diag *log.Logger) *relation.Relation {
	joined := EvaluateQuery(db, r.Body[0], diag)
	for _, atom := range r.Body[1:] {
		joined = joined.NaturalJoin(EvaluateQuery(db, atom, diag))
	}

	head := db.Get(r.Head.Name)
	if len(head.Scheme) != len(r.Head.Parameters) {
		logf(diag, "mismatch in number of attributes between rule head and target scheme: %s", r.Head)
	}

	var indices []int
	var targetAttrs []string
	for j, param := range r.Head.Parameters {
		pos := indexOfAttr(joined.Scheme, param.Value)
		if pos == -1 {
			logf(diag, "attribute not found during evaluateRule(): %s", param.Value)
			continue
		}
		indices = append(indices, pos)
		if j < len(head.Scheme) {
			targetAttrs = append(targetAttrs, head.Scheme[j])
		} else {
			targetAttrs = append(targetAttrs, param.Value)
		}
	}

	result := joined.Project(indices, diag)
	result = result.Rename(targetAttrs)
	return result
}

func indexOfAttr(scheme relation.Scheme, attr string) int {
	for i, a := range scheme {
		if a == attr {
			return i
		}
	}
	return -1
}

func logf(diag *log.Logger, format string, args ...interface{}) {
	if diag == nil {
		return
	}
	diag.Printf(format, args...)
}
