// Package typeexpr models field type expressions as a closed tagged
// variant.
//
// A declaration front-end hands the layout engine raw type expression
// strings ("uint64", "*Node", "[32]byte", "map[string]int"). Parse
// classifies each string into one of a fixed set of kinds; anything it
// cannot classify becomes KindUnknown rather than an error, so malformed
// input degrades instead of failing. The original source text is always
// preserved on the Expr for display.
package typeexpr
