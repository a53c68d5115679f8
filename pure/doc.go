// Package pure provides memoization for pure functions.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this predicate really pure?"
//	→ "Can its contexts be treated as a lazy table?"
//
// Contexts produced by this module are immutable, so a pure effectful
// predicate can be tableized and its contexts shared between calls.
//
// WARNING: Do not use Tableize on impure functions (e.g., those counting
// calls, reading time, or doing I/O).
package pure
