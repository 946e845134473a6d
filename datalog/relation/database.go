package relation

// Database is a name-keyed collection of Relations. It owns every Relation
// and every Tuple for the lifetime of the interpretation; there is no
// persistence, no transactions and no locking — this is the single
// long-lived mutable object the engine package touches, by reference.
type Database struct {
	relations map[string]*Relation
}

// NewDatabase creates an empty Database.
func NewDatabase() *Database {
	return &Database{relations: make(map[string]*Relation)}
}

// AddOrReplace inserts rel under name, overwriting any existing entry.
func (db *Database) AddOrReplace(name string, rel *Relation) {
	db.relations[name] = rel
}

// Get returns the Relation stored under name. If name has never been
// declared, a default empty Relation (no attributes) is created under that
// name and returned, per spec.md §4.2 — callers otherwise assume every
// referenced name was pre-declared by a schema.
func (db *Database) Get(name string) *Relation {
	rel, ok := db.relations[name]
	if !ok {
		rel = New(name, nil)
		db.relations[name] = rel
	}
	return rel
}

// Names returns every relation name currently stored, in no particular
// order; callers that need a stable order should sort the result.
func (db *Database) Names() []string {
	out := make([]string, 0, len(db.relations))
	for name := range db.relations {
		out = append(out, name)
	}
	return out
}
