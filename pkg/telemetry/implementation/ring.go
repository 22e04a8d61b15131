package implementation

// ring is a fixed-capacity buffer that overwrites its oldest entry once full.
type ring[T any] struct {
	buf      []T
	start    int
	capacity int
}

func newRing[T any](capacity int) *ring[T] {
	return &ring[T]{capacity: capacity}
}

// push appends v and reports whether the oldest entry was evicted to make room.
func (r *ring[T]) push(v T) bool {
	if len(r.buf) < r.capacity {
		r.buf = append(r.buf, v)
		return false
	}
	r.buf[r.start] = v
	r.start = (r.start + 1) % r.capacity
	return true
}

func (r *ring[T]) len() int {
	return len(r.buf)
}

// each visits entries oldest first.
func (r *ring[T]) each(fn func(T)) {
	n := len(r.buf)
	for i := 0; i < n; i++ {
		fn(r.buf[(r.start+i)%n])
	}
}
