package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// waitAnyKey blocks until one key is pressed. It returns at once when in is
// not a terminal, so scripted runs never hang.
func waitAnyKey(in *os.File, out io.Writer) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	fmt.Fprintln(out, "press any key to exit...")

	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, state)

	var b [1]byte
	_, _ = in.Read(b[:])
}
