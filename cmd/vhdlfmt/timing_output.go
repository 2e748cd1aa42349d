package main

import (
	"fmt"
	"io"

	"vhdlfmt/internal/observ"
)

func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	fmt.Fprint(out, timer.Summary())
}
