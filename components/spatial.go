package components

// Point is a screen position in pixels.
type Point struct {
	X, Y float32
}

// Trail is a bounded ring buffer of past positions, oldest first.
// Pushing into a full trail drops the oldest point.
type Trail struct {
	points []Point
	start  int
	n      int
}

// NewTrail creates a trail that holds at most capacity points.
func NewTrail(capacity int) Trail {
	if capacity < 0 {
		capacity = 0
	}
	return Trail{points: make([]Point, capacity)}
}

// Push appends a point, dropping the oldest when full.
func (t *Trail) Push(x, y float32) {
	capacity := len(t.points)
	if capacity == 0 {
		return
	}
	if t.n < capacity {
		t.points[(t.start+t.n)%capacity] = Point{X: x, Y: y}
		t.n++
		return
	}
	t.points[t.start] = Point{X: x, Y: y}
	t.start = (t.start + 1) % capacity
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.n
}

// Cap returns the maximum number of stored points.
func (t *Trail) Cap() int {
	return len(t.points)
}

// At returns the i-th point, where 0 is the oldest.
func (t *Trail) At(i int) Point {
	return t.points[(t.start+i)%len(t.points)]
}

// Newest returns the most recent point. ok is false when empty.
func (t *Trail) Newest() (p Point, ok bool) {
	if t.n == 0 {
		return Point{}, false
	}
	return t.At(t.n - 1), true
}
