// Package notation reads and writes cycle notation for puzzle moves.
//
// A notation string is a sequence of parenthesized groups. Each group lists
// position indices separated by commas and/or whitespace:
//
//	(0,1,2)(3 4)
//	( 5 , 6 )
//	()
//
// Every group is one cycle; several groups in one string are simultaneous
// cycles. Empty text yields no cycles. Indices must be non-negative integers
// below the parser's length.
package notation
