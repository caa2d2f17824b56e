package sqlq

// unbound marks a parameter position that was grown over but never set.
// It cannot collide with a caller value: BindNull stores an untyped nil.
type unbound struct{}

// ensureArg grows args so that the 1-based position pos is addressable,
// filling any gap with unbound markers.
func ensureArg(args []any, pos int) []any {
	if pos <= len(args) {
		return args
	}
	// Allocate more memory if needed
	if cap(args) < pos {
		newCap := cap(args) * 2
		if newCap < pos {
			newCap = pos
		}
		grown := make([]any, len(args), newCap)
		copy(grown, args)
		args = grown
	}
	for len(args) < pos {
		args = append(args, unbound{})
	}
	return args
}

// firstUnbound returns the 1-based position of the first gap left by
// explicit binds, or 0 when every position is set.
func firstUnbound(args []any) int {
	for n := range args {
		if _, ok := args[n].(unbound); ok {
			return n + 1
		}
	}
	return 0
}

// copyBytes returns a detached copy of b. A nil slice stays nil so it
// still binds as SQL NULL.
func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
