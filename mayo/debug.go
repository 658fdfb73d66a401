package mayo

import (
	"fmt"
	"io"
	"os"
)

var debugOn = os.Getenv("MAYO_DEBUG") == "1"
var dbgWriter io.Writer = os.Stderr

func dbg(w io.Writer, f string, a ...any) {
	if debugOn {
		fmt.Fprintf(w, f, a...)
	}
}
