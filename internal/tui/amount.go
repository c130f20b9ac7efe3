package tui

import "strconv"

// amountBuffer collects digit keystrokes into a pending step count for the
// next amount-aware action. It is transient state, never rendered as part of
// a result row and never persisted.
type amountBuffer struct {
	digits []rune
}

// Push appends one digit.
func (a *amountBuffer) Push(r rune) {
	a.digits = append(a.digits, r)
}

// Take parses and clears the buffer. An empty or unparseable buffer yields
// the default step of 1; an explicit "0" is honored as zero.
func (a *amountBuffer) Take() int {
	defer func() { a.digits = a.digits[:0] }()
	n, err := strconv.Atoi(string(a.digits))
	if err != nil {
		return 1
	}
	return n
}

// Pending returns the raw buffered digits for display.
func (a *amountBuffer) Pending() string {
	return string(a.digits)
}
