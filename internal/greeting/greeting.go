// Package greeting holds the fixed text printed by the hello command.
package greeting

import "io"

// Text is the greeting without a line terminator.
const Text = "Hello, Wandbox!"

// Line is exactly what Greet writes.
const Line = Text + "\n"

// Greet writes Line to w in a single call.
func Greet(w io.Writer) error {
	_, err := io.WriteString(w, Line)
	return err
}
