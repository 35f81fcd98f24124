package reactive

// EqualFunc is a function that compares two values of type T for
// equality. It returns true if the values are considered equal, in which
// case a write/recompute producing an equal value is not propagated to
// observers.
//
// Use a custom equality function when you need:
//   - Value-based comparison for complex types
//   - Comparison by specific fields (e.g. ID only)
//   - Custom business logic for equality
//
// Example:
//
//	type User struct {
//	    ID   int
//	    Name string
//	}
//
//	userSignal := reactive.NewSignalWithOptions(&User{ID: 1, Name: "Alice"}, reactive.Options[*User]{
//	    Equal: func(a, b *User) bool {
//	        if a == nil || b == nil {
//	            return a == b
//	        }
//	        return a.ID == b.ID
//	    },
//	})
type EqualFunc[T any] func(a, b T) bool

// AlwaysChanged returns an EqualFunc that always reports inequality,
// realizing the data model's "equality predicate may be false, to mean
// always changed" in a generics-friendly way — Go cannot store a literal
// false where a func(T, T) bool is expected.
func AlwaysChanged[T any]() EqualFunc[T] {
	return func(T, T) bool { return false }
}

// Options configures the behavior of a Signal or Computed.
type Options[T any] struct {
	// Equal is an optional custom equality function. If nil, the default
	// structural-equality fallback (reflect.DeepEqual) is used. This
	// differs from the teacher library's "nil means always notify"
	// default: the spec's data model calls for a default equality check
	// (referential/structural fallback), not an always-notify default —
	// see DESIGN.md.
	Equal EqualFunc[T]

	// Name is an optional debug name surfaced via Cell.DebugName and
	// structured log fields.
	Name string
}

// erase converts opts into the untyped equality/name pair Cell stores.
func (o Options[T]) erase() (equal func(a, b any) bool, name string) {
	if o.Equal != nil {
		fn := o.Equal
		equal = func(a, b any) bool {
			av, aok := a.(T)
			bv, bok := b.(T)
			if !aok || !bok {
				return false
			}
			return fn(av, bv)
		}
	}
	return equal, o.Name
}
