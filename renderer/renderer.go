// Package renderer turns engine results into markdown reports, the form
// consumed by the CLI and by downstream report tooling.
package renderer

import (
	"io"
	"time"
)

// Now is the clock used for report timestamps. A variable so tests can pin it.
var Now = time.Now

// seriesStride thins the wealth series for display: one row every five
// years, plus the retirement-age and final rows.
const seriesStride = 5

func writeRow(w io.Writer, cells ...string) {
	io.WriteString(w, "|")
	for _, c := range cells {
		io.WriteString(w, " "+c+" |")
	}
	io.WriteString(w, "\n")
}

func writeSeparator(w io.Writer, n int) {
	io.WriteString(w, "|")
	for i := 0; i < n; i++ {
		io.WriteString(w, "---:|")
	}
	io.WriteString(w, "\n")
}
