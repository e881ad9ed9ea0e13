package frame

import (
	"fmt"
	"strings"
)

// String renders the stack above the sentinel, for trace logging.
func (f *Frame) String() string {
	var sb strings.Builder

	for i := 1; i < len(f.stack); i++ {
		e := f.stack[i]

		if e.Stage != StageNone {
			fmt.Fprintf(&sb, " [%s - %s]", e.Kind, e.Stage)
		} else {
			fmt.Fprintf(&sb, " [%s]", e.Kind)
		}
	}

	if sb.Len() == 0 {
		return "(empty)"
	}
	return sb.String()[1:]
}
