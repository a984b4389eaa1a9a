// Package structref bridges plain cross-boundary records with richer value
// types without forcing a copy when the caller already owns storage.
package structref

// Ref wraps a plain data record either as a private owned copy or as a
// borrow of caller-supplied storage that stays editable in place. The two
// modes are fixed by the constructor; assignment behavior branches on it.
type Ref[T any] struct {
	p        *T
	borrowed bool
}

// New returns an owned Ref around a zero record.
func New[T any]() Ref[T] {
	return Ref[T]{p: new(T)}
}

// Own copies v into a private record.
func Own[T any](v T) Ref[T] {
	return Ref[T]{p: &v}
}

// Borrow aliases the caller's record in place. The Ref edits the caller's
// storage directly and never frees it. A nil record is an addon programming
// error.
func Borrow[T any](p *T) Ref[T] {
	if p == nil {
		panic("structref: borrow of a nil record")
	}
	return Ref[T]{p: p, borrowed: true}
}

// Borrowed reports whether the Ref aliases caller storage.
func (r Ref[T]) Borrowed() bool { return r.borrowed }

// Ptr exposes the underlying record for handing across the boundary. For a
// borrowed Ref this is the caller's own storage.
func (r Ref[T]) Ptr() *T { return r.p }

// Get returns a copy of the record.
func (r Ref[T]) Get() T { return *r.p }

// Set assigns the record value: a borrowed Ref overwrites the caller's
// storage in place, an owned Ref replaces its private copy.
func (r *Ref[T]) Set(v T) {
	if r.borrowed {
		*r.p = v
		return
	}
	r.p = &v
}

// Assign copies the record held by other into this Ref, following the same
// in-place vs replace rule as Set.
func (r *Ref[T]) Assign(other Ref[T]) {
	r.Set(*other.p)
}
