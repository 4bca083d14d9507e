// Package adapter provides structural wrappers and quantitative combinators
// over searchers.
//
// Structural wrappers observe or buffer a child without changing the
// partition it produces:
//
//   - Indexed records the end of the last step
//   - Fused returns Done forever once the child returned Done
//   - Peekable buffers one step ahead (and one behind for reverse searchers)
//   - Simplify merges runs of rejects into one maximal reject
//
// Quantitative combinators derive new partitions:
//
//   - Then matches a match of one searcher immediately followed by a match
//     of another
//   - Repeat fuses runs of consecutive matches
//   - Limit, Skip and Take count matches
//
// Every combinator consumes its children exclusively. Combinators taking two
// children check once, at construction, that both search the same haystack.
package adapter
