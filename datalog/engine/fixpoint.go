package engine

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/arnegard/datalogo/datalog/lang"
	"github.com/arnegard/datalogo/datalog/relation"
)

// RunFixedPoint repeatedly applies every rule in rules, in program order,
// until a pass produces no new tuples in any head relation, per spec.md
// §4.5. Rules within a pass see tuples derived by earlier rules of that
// same pass (naive, in-pass-visible evaluation); across passes, every rule
// sees the tuple set as it stood at the end of the previous pass plus any
// in-pass additions already applied. It writes the "Rule Evaluation"
// section of the output contract to out as it goes, and returns the
// number of passes performed, including the final pass that added nothing.
func RunFixedPoint(db *relation.Database, rules []lang.Rule, out io.Writer, diag *log.Logger) int {
	fmt.Fprint(out, "Rule Evaluation\n")

	iteration := 0
	changed := true
	for changed {
		changed = false
		iteration++
		for _, r := range rules {
			result := EvaluateRule(db, r, diag)
			head := db.Get(r.Head.Name)

			before := head.Size()
			newTuples := result.Difference(head)
			head.UnionInPlace(result)
			if head.Size() > before {
				changed = true
			}

			fmt.Fprintf(out, "%s\n", trimTrailingPeriod(r.String()))
			for _, t := range newTuples.Tuples() {
				fmt.Fprintf(out, "  %s\n", t.Render(newTuples.Scheme))
			}
		}
	}

	fmt.Fprintf(out, "\nSchemes populated after %d passes through the Rules.\n", iteration)
	return iteration
}

func trimTrailingPeriod(s string) string {
	return strings.TrimSuffix(s, ".")
}
