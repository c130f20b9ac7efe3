package tui

// cursor tracks the selected row of the current result page, independent of
// the row data itself. pos doubles as the materialized index used for
// display while nothing has been selected yet.
type cursor struct {
	pos    int
	active bool
	size   int
}

// Resize rebinds the cursor to a list of n rows and drops the previous
// selection. Selection does not survive a page or query change.
func (c *cursor) Resize(n int) {
	c.size = n
	c.pos = 0
	c.active = false
}

// First jumps to index 0. Valid on an empty list, where 0 is a placeholder.
func (c *cursor) First() {
	c.pos = 0
	c.active = true
}

// Last jumps to the final row, or 0 on an empty list.
func (c *cursor) Last() {
	if c.size == 0 {
		c.pos = 0
	} else {
		c.pos = c.size - 1
	}
	c.active = true
}

// StepForward moves amount rows ahead, clamping at the final row. The very
// first movement lands on row 0; the amount is consumed but not applied.
func (c *cursor) StepForward(amount int) {
	if !c.active {
		c.pos = 0
		c.active = true
		return
	}
	if c.size == 0 {
		c.pos = 0
		return
	}
	if c.pos+amount >= c.size-1 {
		c.pos = c.size - 1
	} else {
		c.pos += amount
	}
}

// StepBackward moves amount rows back, clamping at 0.
func (c *cursor) StepBackward(amount int) {
	if !c.active {
		c.pos = 0
		c.active = true
		return
	}
	if c.pos == 0 {
		return
	}
	if amount >= c.pos {
		c.pos = 0
	} else {
		c.pos -= amount
	}
}

// Index returns the materialized row index.
func (c *cursor) Index() int {
	return c.pos
}

// Active reports whether any navigation has happened since the last Resize.
func (c *cursor) Active() bool {
	return c.active
}
