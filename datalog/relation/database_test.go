package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseGetAutoVivifies(t *testing.T) {
	db := NewDatabase()
	r := db.Get("unknown")
	assert.NotNil(t, r)
	assert.Equal(t, 0, r.Size())
	assert.Equal(t, "unknown", r.Name)
}

func TestDatabaseGetReturnsSameRelationOnRepeatedCalls(t *testing.T) {
	db := NewDatabase()
	first := db.Get("r")
	first.Add(Tuple{"'1'"})
	second := db.Get("r")
	assert.Equal(t, 1, second.Size())
}

func TestDatabaseAddOrReplaceOverwrites(t *testing.T) {
	db := NewDatabase()
	db.AddOrReplace("r", New("r", Scheme{"A"}))
	db.Get("r").Add(Tuple{"'1'"})
	assert.Equal(t, 1, db.Get("r").Size())

	db.AddOrReplace("r", New("r", Scheme{"A"}))
	assert.Equal(t, 0, db.Get("r").Size())
}
