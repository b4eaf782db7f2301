package uci

import (
	"bufio"
	"fmt"
	"io"
)

// writer serializes UCI output lines; a plain struct rather than just
// wrapping io.Writer so formatInfo/formatBestMove call sites read as
// "write a UCI line" instead of manual fmt.Fprintln scattered everywhere.
type writer struct {
	out io.Writer
}

func (w *writer) WriteLine(line string) {
	fmt.Fprintln(w.out, line)
}

// newLineScanner wraps in with a generous buffer: "position ... moves"
// for a long game plus deep search PVs can exceed bufio's 64KB default.
func newLineScanner(in io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(in)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	return scanner
}
