package rtree

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		var rt *RTree
		datadriven.RunTest(t, path, func(t *testing.T, td *datadriven.TestData) string {
			if td.Cmd != "new" && rt == nil {
				td.Fatalf(t, "%s before new", td.Cmd)
			}
			var buf strings.Builder
			switch td.Cmd {
			case "new":
				var maxChildren int
				td.ScanArgs(t, "max", &maxChildren)
				var err error
				if rt, err = New(maxChildren, Rect{}); err != nil {
					return err.Error() + "\n"
				}
				return "ok\n"

			case "insert":
				for _, r := range parseRects(t, td) {
					if err := rt.Insert(r); err != nil {
						fmt.Fprintf(&buf, "%v\n", err)
					}
				}
				fmt.Fprintf(&buf, "len=%d height=%d\n", rt.Len(), rt.Height())

			case "delete", "delete-one":
				for _, r := range parseRects(t, td) {
					if td.Cmd == "delete" {
						fmt.Fprintf(&buf, "%t\n", rt.Delete(r))
					} else {
						fmt.Fprintf(&buf, "%t\n", rt.DeleteOne(r))
					}
				}

			case "query":
				rects := parseRects(t, td)
				if len(rects) != 1 {
					td.Fatalf(t, "query takes one window")
				}
				found := rt.Query(rects[0])
				slices.SortFunc(found, compareRects)
				for _, r := range found {
					fmt.Fprintf(&buf, "%v\n", r)
				}
				if len(found) == 0 {
					buf.WriteString("<empty>\n")
				}

			case "dump":
				buf.WriteString(rt.String())

			default:
				td.Fatalf(t, "unknown command: %q", td.Cmd)
			}
			rt.CheckInvariants()
			return buf.String()
		})
	})
}

func parseRects(t *testing.T, td *datadriven.TestData) []Rect {
	var rects []Rect
	for _, l := range strings.Split(strings.TrimSpace(td.Input), "\n") {
		var r Rect
		if _, err := fmt.Sscanf(l, "%g %g %g %g", &r.MinX, &r.MinY, &r.MaxX, &r.MaxY); err != nil {
			td.Fatalf(t, "invalid rect %q: %v", l, err)
		}
		rects = append(rects, r)
	}
	return rects
}
