package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rectree/rtree"
	"github.com/rectree/rtree/internal/logging"
	"github.com/rectree/rtree/internal/workload"
)

func newDumpCmd(a *app) *cobra.Command {
	var opts workload.Options

	cmd := &cobra.Command{
		Use:   "dump WORKLOAD",
		Short: "Apply a JSON workload and draw the resulting tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.load(args[0], opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return drawTree(out, report.Tree, newTreeStyles(out, logging.ColorEnabled(a.logCfg.Color, out)))
		},
	}
	cmd.Flags().IntVar(&opts.MaxChildren, "max-children", 0, "override the workload's fan-out")
	return cmd
}

// treeStyles colours each kind of line in a drawing. The zero value draws
// plain text.
type treeStyles struct {
	enabled  bool
	branch   lipgloss.Style
	internal lipgloss.Style
	leaf     lipgloss.Style
	entry    lipgloss.Style
	count    lipgloss.Style
}

func newTreeStyles(out io.Writer, color bool) treeStyles {
	if !color {
		return treeStyles{}
	}
	r := lipgloss.NewRenderer(out)
	return treeStyles{
		enabled:  true,
		branch:   r.NewStyle().Foreground(lipgloss.Color(logging.ColorGray60)),
		internal: r.NewStyle().Foreground(lipgloss.Color(logging.ColorBlue60)).Bold(true),
		leaf:     r.NewStyle().Foreground(lipgloss.Color(logging.ColorTeal40)),
		entry:    r.NewStyle(),
		count:    r.NewStyle().Foreground(lipgloss.Color(logging.ColorGray60)).Italic(true),
	}
}

func (s treeStyles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// drawTree writes one line per node and stored rectangle. Nodes are
// annotated with their kind and entry count.
func drawTree(w io.Writer, tree *rtree.RTree, s treeStyles) error {
	var err error
	tree.Visit(func(v rtree.NodeView) bool {
		var line string
		switch {
		case v.Entry:
			line = s.render(s.entry, v.Boundary.String())
		case tree.Len() == 0:
			line = s.render(s.count, "<empty>")
		case v.Leaf:
			line = s.render(s.leaf, v.Boundary.String()) + " " + s.render(s.count, fmt.Sprintf("leaf/%d", v.Entries))
		default:
			line = s.render(s.internal, v.Boundary.String()) + " " + s.render(s.count, fmt.Sprintf("node/%d", v.Entries))
		}
		_, err = fmt.Fprintf(w, "%s%s\n", s.render(s.branch, v.Prefix), line)
		return err == nil
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "len=%d height=%d max=%d\n", tree.Len(), tree.Height(), tree.MaxChildren())
	return err
}
