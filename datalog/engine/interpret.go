package engine

import (
	"fmt"
	"io"
	"log"

	"github.com/arnegard/datalogo/datalog/lang"
	"github.com/arnegard/datalogo/datalog/relation"
)

// Interpret runs the full pipeline spec.md §6 describes — schemas, facts,
// rules (with their log), queries (with their log) — against a fresh
// Database, writing the textual output contract to out. diag receives the
// diagnostics §7 names (out-of-range index, arity mismatch, missing head
// variable); it may be nil to discard them.
func Interpret(program *lang.Program, out io.Writer, diag *log.Logger) {
	db := relation.NewDatabase()

	evaluateSchemes(db, program.Schemes)
	evaluateFacts(db, program.Facts)
	RunFixedPoint(db, program.Rules, out, diag)
	evaluateQueries(db, program.Queries, out, diag)
}

func evaluateSchemes(db *relation.Database, schemes []lang.Predicate) {
	for _, s := range schemes {
		attrs := make([]string, len(s.Parameters))
		for i, p := range s.Parameters {
			attrs[i] = p.Value
		}
		db.AddOrReplace(s.Name, relation.New(s.Name, relation.Scheme(attrs)))
	}
}

func evaluateFacts(db *relation.Database, facts []lang.Predicate) {
	for _, f := range facts {
		values := make(relation.Tuple, len(f.Parameters))
		for i, p := range f.Parameters {
			values[i] = p.Value
		}
		db.Get(f.Name).Add(values)
	}
}

func evaluateQueries(db *relation.Database, queries []lang.Predicate, out io.Writer, diag *log.Logger) {
	fmt.Fprint(out, "\nQuery Evaluation\n")
	for _, q := range queries {
		result := EvaluateQuery(db, q, diag)
		fmt.Fprintf(out, "%s? ", trimTrailingPeriod(q.String()))
		if result.Size() == 0 {
			fmt.Fprint(out, "No\n")
			continue
		}
		fmt.Fprintf(out, "Yes(%d)\n", result.Size())
		for _, t := range result.Tuples() {
			fmt.Fprintf(out, "  %s\n", t.Render(result.Scheme))
		}
	}
}
