package diagnostic

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders every diagnostic followed by a dump of its info.
func (d Diagnostics) Dump() string {
	var sb strings.Builder
	for _, diag := range d {
		sb.WriteString(diag.String())
		sb.WriteByte('\n')

		if diag.Info != nil {
			sb.WriteString(dumper.Sdump(map[string]any(diag.Info)))
		}
	}

	return sb.String()
}
