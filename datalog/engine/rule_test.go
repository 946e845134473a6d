package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnegard/datalogo/datalog/lang"
	"github.com/arnegard/datalogo/datalog/relation"
)

func TestEvaluateRuleSingleBodyAtom(t *testing.T) {
	db := relation.NewDatabase()
	db.AddOrReplace("e", relation.New("e", relation.Scheme{"X", "Y"}))
	db.Get("e").Add(relation.Tuple{"'1'", "'2'"})
	db.AddOrReplace("tc", relation.New("tc", relation.Scheme{"X", "Y"}))

	// tc(X,Y) :- e(X,Y).
	rule := lang.Rule{
		Head: lang.Predicate{Name: "tc", Parameters: []lang.Parameter{
			lang.NewVariable("X"), lang.NewVariable("Y"),
		}},
		Body: []lang.Predicate{
			{Name: "e", Parameters: []lang.Parameter{lang.NewVariable("X"), lang.NewVariable("Y")}},
		},
	}

	result := EvaluateRule(db, rule, nil)
	assert.Equal(t, relation.Scheme{"X", "Y"}, result.Scheme)
	assert.Equal(t, 1, result.Size())
	assert.True(t, result.Has(relation.Tuple{"'1'", "'2'"}))
}

func TestEvaluateRuleJoinsMultipleBodyAtoms(t *testing.T) {
	db := relation.NewDatabase()
	db.AddOrReplace("e", relation.New("e", relation.Scheme{"X", "Y"}))
	db.Get("e").Add(relation.Tuple{"'1'", "'2'"})
	db.Get("e").Add(relation.Tuple{"'2'", "'3'"})
	db.AddOrReplace("tc", relation.New("tc", relation.Scheme{"X", "Y"}))
	db.Get("tc").Add(relation.Tuple{"'2'", "'3'"})

	// tc(X,Y) :- e(X,Z),tc(Z,Y).
	rule := lang.Rule{
		Head: lang.Predicate{Name: "tc", Parameters: []lang.Parameter{
			lang.NewVariable("X"), lang.NewVariable("Y"),
		}},
		Body: []lang.Predicate{
			{Name: "e", Parameters: []lang.Parameter{lang.NewVariable("X"), lang.NewVariable("Z")}},
			{Name: "tc", Parameters: []lang.Parameter{lang.NewVariable("Z"), lang.NewVariable("Y")}},
		},
	}

	result := EvaluateRule(db, rule, nil)
	assert.Equal(t, 1, result.Size())
	assert.True(t, result.Has(relation.Tuple{"'1'", "'3'"}))
}

func TestEvaluateRuleHeadVariableMissingFromBodyIsSkipped(t *testing.T) {
	db := relation.NewDatabase()
	db.AddOrReplace("e", relation.New("e", relation.Scheme{"X"}))
	db.Get("e").Add(relation.Tuple{"'1'"})
	db.AddOrReplace("h", relation.New("h", relation.Scheme{"X", "Y"}))

	// h(X,Y) :- e(X).   -- Y never appears in the body.
	rule := lang.Rule{
		Head: lang.Predicate{Name: "h", Parameters: []lang.Parameter{
			lang.NewVariable("X"), lang.NewVariable("Y"),
		}},
		Body: []lang.Predicate{
			{Name: "e", Parameters: []lang.Parameter{lang.NewVariable("X")}},
		},
	}

	result := EvaluateRule(db, rule, nil)
	assert.Equal(t, relation.Scheme{"X"}, result.Scheme)
	assert.Equal(t, 1, result.Size())
}
