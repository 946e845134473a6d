package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnegard/datalogo/datalog/lang"
	"github.com/arnegard/datalogo/datalog/relation"
)

func dbWithSnap() *relation.Database {
	db := relation.NewDatabase()
	db.AddOrReplace("snap", relation.New("snap", relation.Scheme{"S", "N"}))
	db.Get("snap").Add(relation.Tuple{"'1'", "'a'"})
	db.Get("snap").Add(relation.Tuple{"'2'", "'b'"})
	return db
}

// Scenario 1 of spec.md §8: snap('1',N)? against snap(S,N).
func TestEvaluateQueryLiteralAndVariable(t *testing.T) {
	db := dbWithSnap()
	p := lang.Predicate{Name: "snap", Parameters: []lang.Parameter{
		lang.NewLiteral("'1'"),
		lang.NewVariable("N"),
	}}

	result := EvaluateQuery(db, p, nil)
	assert.Equal(t, relation.Scheme{"N"}, result.Scheme)
	assert.Equal(t, 1, result.Size())
	assert.True(t, result.Has(relation.Tuple{"'a'"}))
}

// Scenario 2 of spec.md §8: R(X,X)? against R('x','x'). R('x','y').
func TestEvaluateQueryRepeatedVariable(t *testing.T) {
	db := relation.NewDatabase()
	db.AddOrReplace("R", relation.New("R", relation.Scheme{"A", "B"}))
	db.Get("R").Add(relation.Tuple{"'x'", "'x'"})
	db.Get("R").Add(relation.Tuple{"'x'", "'y'"})

	p := lang.Predicate{Name: "R", Parameters: []lang.Parameter{
		lang.NewVariable("X"),
		lang.NewVariable("X"),
	}}

	result := EvaluateQuery(db, p, nil)
	assert.Equal(t, relation.Scheme{"X"}, result.Scheme)
	assert.Equal(t, 1, result.Size())
	assert.True(t, result.Has(relation.Tuple{"'x'"}))
}

// Scenario 4 of spec.md §8: p('y')? against p('x'). yields no answer.
func TestEvaluateQueryNoMatch(t *testing.T) {
	db := relation.NewDatabase()
	db.AddOrReplace("p", relation.New("p", relation.Scheme{"A"}))
	db.Get("p").Add(relation.Tuple{"'x'"})

	p := lang.Predicate{Name: "p", Parameters: []lang.Parameter{lang.NewLiteral("'y'")}}
	result := EvaluateQuery(db, p, nil)
	assert.Equal(t, 0, result.Size())
}

// Scenario 5 of spec.md §8: a ground atom that is true yields one empty tuple.
func TestEvaluateQueryGroundAtomTrueYieldsEmptyTuple(t *testing.T) {
	db := relation.NewDatabase()
	db.AddOrReplace("p", relation.New("p", relation.Scheme{"A"}))
	db.Get("p").Add(relation.Tuple{"'x'"})

	p := lang.Predicate{Name: "p", Parameters: []lang.Parameter{lang.NewLiteral("'x'")}}
	result := EvaluateQuery(db, p, nil)
	assert.Equal(t, relation.Scheme{}, result.Scheme)
	assert.Equal(t, 1, result.Size())
}

// An atom whose parameters are all distinct variables returns the target
// relation renamed to the variable names (round-trip property of §8).
func TestEvaluateQueryAllDistinctVariablesIsRename(t *testing.T) {
	db := dbWithSnap()
	p := lang.Predicate{Name: "snap", Parameters: []lang.Parameter{
		lang.NewVariable("X"),
		lang.NewVariable("Y"),
	}}

	result := EvaluateQuery(db, p, nil)
	assert.Equal(t, relation.Scheme{"X", "Y"}, result.Scheme)
	assert.Equal(t, db.Get("snap").Size(), result.Size())
}
