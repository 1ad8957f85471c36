package ivmap

import (
	"bufio"
	"fmt"
	"io"

	"github.com/akmistry/intervalmap/internal/intervalmap"
)

// PrintWindow writes Lookup(k) for every k in [min, max), one key per line,
// followed by a blank line.
func PrintWindow(w io.Writer, m *intervalmap.Map[int, byte], min, max int) error {
	bw := bufio.NewWriter(w)
	for k := min; k < max; k++ {
		fmt.Fprintf(bw, "key = %d,val = %c\n", k, m.Lookup(k))
	}
	bw.WriteString("\n")
	return bw.Flush()
}
