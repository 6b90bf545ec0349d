/*
File    : eta/object/rca.go

The Reference-Counted Allocator owns every non-sentinel Object. It does not
replace Go's garbage collector — Go already reclaims memory safely — but it
reproduces the original interpreter's bookkeeping discipline so the
evaluator's lifetime model (retain on handle copy, release on scope exit,
periodic sweep rather than continuous tracing) is explicit and testable, and
so a Purge at the end of a run leaves the table empty.
*/
package object

// sweepThreshold is the number of allocations between sweeps. A small
// constant, as recommended: frequent enough to bound table growth, large
// enough that sweeping isn't on every allocation's hot path.
const sweepThreshold = 30

// RCA is a reference-counted allocator instance. Tests construct their own
// so bookkeeping in one test can't bleed into another; the driver and REPL
// each own one for the lifetime of a single program run.
type RCA struct {
	refs          map[Object]uint32
	sinceLastSweep int
}

// NewRCA returns an empty allocator.
func NewRCA() *RCA {
	return &RCA{refs: make(map[Object]uint32)}
}

// isSentinel reports whether obj is one of the immortal singletons that the
// RCA never tracks.
func isSentinel(obj Object) bool {
	return obj == Object(NULL_OBJ) || obj == Object(TRUE_OBJ) || obj == Object(FALSE_OBJ)
}

// Alloc registers a freshly created Object with refcount 0 and triggers a
// sweep first if the allocation count since the last sweep has crossed the
// threshold.
func (r *RCA) Alloc(obj Object) Object {
	if obj == nil || isSentinel(obj) {
		return obj
	}
	if r.sinceLastSweep >= sweepThreshold {
		r.Sweep()
	}
	r.refs[obj] = 0
	r.sinceLastSweep++
	return obj
}

// Retain increments obj's reference count. It is a no-op for sentinels and
// for objects the allocator never saw (handles to values that didn't come
// through Alloc, e.g. literals built outside the evaluator in tests).
func (r *RCA) Retain(obj Object) {
	if obj == nil || isSentinel(obj) {
		return
	}
	if _, ok := r.refs[obj]; ok {
		r.refs[obj]++
	}
}

// Release decrements obj's reference count. A count reaching zero does not
// free the object immediately; it stays in the table until the next Sweep.
func (r *RCA) Release(obj Object) {
	if obj == nil || isSentinel(obj) {
		return
	}
	if n, ok := r.refs[obj]; ok && n > 0 {
		r.refs[obj] = n - 1
	}
}

// Sweep removes every tracked Object whose reference count is zero and
// resets the allocation counter.
func (r *RCA) Sweep() {
	for obj, n := range r.refs {
		if n == 0 {
			delete(r.refs, obj)
		}
	}
	r.sinceLastSweep = 0
}

// Purge frees every tracked Object regardless of refcount. The file driver
// calls it once after the program has run.
func (r *RCA) Purge() {
	r.refs = make(map[Object]uint32)
	r.sinceLastSweep = 0
}

// Len reports the number of Objects currently tracked, live or dead. Tests
// use this to assert the §8 "after purge() the table is empty" property.
func (r *RCA) Len() int {
	return len(r.refs)
}
