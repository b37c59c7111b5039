// Package prettyprint defines the interface of values with a human readable
// rendering.
package prettyprint

import "io"

// PrettyPrinter is an interface for types that know how to render
// themselves for a terminal (e.g., reports of CLI sub-commands).
type PrettyPrinter interface {
	// PrettyPrint writes a human readable representation of the value to
	// the given writer, starting every summary line with prefix.
	PrettyPrint(prefix string, w io.Writer)
}
