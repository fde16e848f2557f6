// Package grammar parses unit spec text into a tree of variable nodes.
//
// The canonical form has no whitespace:
//
//	urn:github:1:deploy(${1:branch},echo("hi",[1,2]),build())
//
// A word followed by parentheses is a call. A word containing a colon is a
// foreign reference whose owner is everything before the last colon; a plain
// word is a constructor call when the catalog knows the name and a local
// unit reference otherwise. String, number and bool literals use HCL literal
// syntax. Whitespace between tokens is accepted when parsing.
package grammar
