// Package relation implements the five relational-algebra operations
// spec.md §4.1 names — select-by-literal, select-by-equality, project,
// rename and natural-join — plus set union, over a named, typed set of
// Tuples. Every operation returns a fresh Relation; none mutates its
// receiver, except UnionInPlace, which the fixed-point driver uses to grow
// a rule's head relation across passes.
package relation

import (
	"log"
	"sort"
)

// Relation is a named, typed set of tuples: (name, Scheme, set-of-Tuples).
// The tuple collection never contains duplicates; membership is by whole
// tuple equality.
type Relation struct {
	Name   string
	Scheme Scheme
	tuples map[string]Tuple
}

// New creates an empty Relation with the given name and scheme.
func New(name string, scheme Scheme) *Relation {
	return &Relation{
		Name:   name,
		Scheme: scheme.Clone(),
		tuples: make(map[string]Tuple),
	}
}

// Add inserts t into the tuple set. Duplicate tuples collapse silently,
// since the underlying store is a set.
func (r *Relation) Add(t Tuple) {
	r.tuples[t.key()] = t
}

// Size returns the cardinality of the tuple set.
func (r *Relation) Size() int {
	return len(r.tuples)
}

// Has reports whether t is a member of the relation.
func (r *Relation) Has(t Tuple) bool {
	_, ok := r.tuples[t.key()]
	return ok
}

// Tuples returns the tuple set in ascending lexicographic order, the
// canonical iteration order spec.md §3 mandates.
func (r *Relation) Tuples() []Tuple {
	out := make([]Tuple, 0, len(r.tuples))
	for _, t := range r.tuples {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return compareTuples(out[i], out[j]) < 0
	})
	return out
}

// SelectByLiteral retains exactly those tuples t with t[index] == literal.
// The scheme is unchanged. index must be in range; out-of-range indices
// cannot arise from the evaluator, which always derives index from the
// predicate's own arity.
func (r *Relation) SelectByLiteral(index int, literal string) *Relation {
	result := New(r.Name, r.Scheme)
	for _, t := range r.tuples {
		if index >= 0 && index < len(t) && t[index] == literal {
			result.Add(t)
		}
	}
	return result
}

// SelectByEquality retains exactly those tuples t with t[i] == t[j]. i and
// j may be equal, in which case every tuple passes.
func (r *Relation) SelectByEquality(i, j int) *Relation {
	result := New(r.Name, r.Scheme)
	for _, t := range r.tuples {
		if i >= 0 && i < len(t) && j >= 0 && j < len(t) && t[i] == t[j] {
			result.Add(t)
		}
	}
	return result
}

// Project produces tuples (t[indices[0]], t[indices[1]], ...) in the listed
// order; the new scheme is the corresponding reindexing of the receiver's
// scheme. Indices may repeat and need not be sorted. An out-of-range index
// is logged to diag and skipped, per spec.md §7 and §9 open question 1 —
// evaluation proceeds with the remaining columns.
func (r *Relation) Project(indices []int, diag *log.Logger) *Relation {
	newScheme := make(Scheme, 0, len(indices))
	validIdx := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(r.Scheme) {
			logf(diag, "index out of bounds in project(): %d", idx)
			continue
		}
		newScheme = append(newScheme, r.Scheme[idx])
		validIdx = append(validIdx, idx)
	}
	result := New(r.Name, newScheme)
	for _, t := range r.tuples {
		newTuple := make(Tuple, 0, len(validIdx))
		for _, idx := range validIdx {
			if idx >= len(t) {
				logf(diag, "index out of bounds in project tuple: %d", idx)
				continue
			}
			newTuple = append(newTuple, t[idx])
		}
		result.Add(newTuple)
	}
	return result
}

// Rename replaces the scheme positionally; len(newAttributes) must equal
// len(r.Scheme). Tuples are unchanged — rename is pure metadata, which is
// what lets a subsequent natural join align columns by name.
func (r *Relation) Rename(newAttributes []string) *Relation {
	result := New(r.Name, Scheme(newAttributes))
	for _, t := range r.tuples {
		result.Add(t)
	}
	return result
}

// NaturalJoin produces a new relation whose scheme is r.Scheme concatenated
// with the attributes of other.Scheme not already in r.Scheme, preserving
// first-occurrence order. A combined tuple is emitted iff every shared
// attribute agrees between the two source tuples.
func (r *Relation) NaturalJoin(other *Relation) *Relation {
	newScheme := r.Scheme.Clone()
	// sharedAt[j] is the position in r.Scheme that other.Scheme[j] also
	// names, or -1 if other.Scheme[j] is new.
	sharedAt := make([]int, len(other.Scheme))
	for j, attr := range other.Scheme {
		sharedAt[j] = indexOf(r.Scheme, attr)
		if sharedAt[j] == -1 {
			newScheme = append(newScheme, attr)
		}
	}

	result := New(r.Name, newScheme)
	for _, t1 := range r.tuples {
		for _, t2 := range other.tuples {
			joined, ok := joinTuples(t1, t2, sharedAt)
			if ok {
				result.Add(joined)
			}
		}
	}
	return result
}

func joinTuples(t1, t2 Tuple, sharedAt []int) (Tuple, bool) {
	combined := make(Tuple, len(t1), len(t1)+len(t2))
	copy(combined, t1)
	for j, pos := range sharedAt {
		if j >= len(t2) {
			continue
		}
		if pos == -1 {
			combined = append(combined, t2[j])
			continue
		}
		if pos >= len(t1) || t1[pos] != t2[j] {
			return nil, false
		}
	}
	return combined, true
}

func indexOf(scheme Scheme, attr string) int {
	for i, a := range scheme {
		if a == attr {
			return i
		}
	}
	return -1
}

// UnionInPlace adds every tuple of other into r's tuple set. The two
// schemes are assumed structurally compatible; this is a pure set union.
func (r *Relation) UnionInPlace(other *Relation) {
	for key, t := range other.tuples {
		r.tuples[key] = t
	}
}

// Difference returns the tuples present in r but absent from other,
// leaving both receivers untouched. Used by the fixed-point driver to
// report which tuples a pass actually derived, without relying on the
// order union-in-place happens to process them in.
func (r *Relation) Difference(other *Relation) *Relation {
	result := New(r.Name, r.Scheme)
	for key, t := range r.tuples {
		if _, ok := other.tuples[key]; !ok {
			result.Add(t)
		}
	}
	return result
}

func logf(diag *log.Logger, format string, args ...interface{}) {
	if diag == nil {
		return
	}
	diag.Printf(format, args...)
}
