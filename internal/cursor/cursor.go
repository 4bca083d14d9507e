// Package cursor rebuilds a contiguous step partition from a stream of
// matches.
//
// Combinators that consume their children through NextMatch only know where
// matches are, not how the gaps between them were stepped. A Cursor tracks the
// end of the last emitted step and fills every gap with a single Reject,
// holding the match back for one call when that happens.
package cursor

import (
	"fmt"

	"github.com/coregx/corepat/search"
)

// Cursor is the position of a combinator in its haystack plus at most one
// match waiting behind a gap Reject. The zero Cursor starts at offset 0.
type Cursor struct {
	index    int
	buf      search.Step
	buffered bool
}

// Index returns the end of the last emitted step.
func (c *Cursor) Index() int {
	return c.index
}

// Advance moves the cursor to end without emitting anything. It is used by
// NextMatch fast paths that skip the steps before a match.
func (c *Cursor) Advance(end int) {
	c.index = end
	c.buffered = false
}

// Buffered returns the match held back by the previous call to Match.
func (c *Cursor) Buffered() (search.Step, bool) {
	if !c.buffered {
		return search.Step{}, false
	}
	c.buffered = false
	c.index = c.buf.End
	return c.buf, true
}

// Match emits Match(start, end). When the match starts after the cursor, the
// gap is emitted first as one Reject and the match is returned by the next
// call to Buffered.
//
// A match starting before the cursor is a broken child contract and panics.
func (c *Cursor) Match(start, end int) search.Step {
	switch {
	case start > c.index:
		c.buf, c.buffered = search.MatchStep(start, end), true
		return c.RejectTo(start)
	case start < c.index:
		panic(fmt.Sprintf("cursor: match [%d, %d) starts behind cursor %d", start, end, c.index))
	}
	c.index = end
	return search.MatchStep(start, end)
}

// RejectTo emits Reject(cursor, end).
func (c *Cursor) RejectTo(end int) search.Step {
	start := c.index
	c.index = end
	return search.RejectStep(start, end)
}

// Finish rejects everything from the cursor to n, or returns Done when the
// cursor is already there.
func (c *Cursor) Finish(n int) search.Step {
	if c.index < n {
		return c.RejectTo(n)
	}
	return search.DoneStep()
}
