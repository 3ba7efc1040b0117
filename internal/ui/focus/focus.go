// Package focus provides a focus ring that can trap sequential keyboard
// navigation inside an overlay.
package focus

// Trap tracks which of a fixed number of focusable targets has focus.
// While captured, movement wraps around so focus never leaves the ring.
type Trap struct {
	pos      int
	size     int
	captured bool
}

// Capture starts trapping focus among size targets, focusing start.
func (t *Trap) Capture(size, start int) {
	t.size = max(size, 0)
	t.captured = true
	t.pos = 0
	t.Jump(start)
}

// Release stops trapping and forgets the focused target.
// Safe to call when not captured.
func (t *Trap) Release() {
	t.captured = false
	t.pos = 0
}

// Captured reports whether focus is trapped.
func (t Trap) Captured() bool {
	return t.captured
}

// Pos returns the focused target, or -1 when nothing is focused.
func (t Trap) Pos() int {
	if !t.captured || t.size == 0 {
		return -1
	}
	return t.pos
}

// Size returns the number of targets in the ring.
func (t Trap) Size() int {
	return t.size
}

// Resize changes the number of targets, keeping the focused target in
// bounds. Useful when the item list changes while captured.
func (t *Trap) Resize(size int) {
	t.size = max(size, 0)
	if t.size == 0 {
		t.pos = 0
		return
	}
	t.pos = clamp(t.pos, t.size-1)
}

// Next moves focus forward, wrapping from the last target to the first.
// Returns false when nothing moved.
func (t *Trap) Next() bool {
	return t.Move(1)
}

// Prev moves focus backward, wrapping from the first target to the last.
func (t *Trap) Prev() bool {
	return t.Move(-1)
}

// Move moves focus by delta with wrap-around.
func (t *Trap) Move(delta int) bool {
	if !t.captured || t.size == 0 {
		return false
	}
	old := t.pos
	t.pos = ((t.pos+delta)%t.size + t.size) % t.size
	return t.pos != old
}

// Jump focuses target pos, clamped to the ring.
func (t *Trap) Jump(pos int) bool {
	if !t.captured || t.size == 0 {
		return false
	}
	old := t.pos
	t.pos = clamp(pos, t.size-1)
	return t.pos != old
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
