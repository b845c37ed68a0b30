package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rectree/rtree/internal/workload"
)

func newRunCmd(a *app) *cobra.Command {
	var opts workload.Options
	var dump bool

	cmd := &cobra.Command{
		Use:   "run WORKLOAD",
		Short: "Apply a JSON workload and print the result of every op",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.load(args[0], opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, res := range report.Results {
				switch res.Op {
				case workload.OpInsert:
					fmt.Fprintf(out, "#%d %s %d rect(s)\n", res.Index, res.Op, len(res.Rects))
				case workload.OpQuery:
					fmt.Fprintf(out, "#%d %s %v: %d found\n", res.Index, res.Op, res.Rects[0], len(res.Found))
					for _, r := range res.Found {
						fmt.Fprintf(out, "  %v\n", r)
					}
				default:
					fmt.Fprintf(out, "#%d %s %v: %t\n", res.Index, res.Op, res.Rects[0], res.Removed)
				}
			}
			fmt.Fprintf(out, "len=%d height=%d\n", report.Tree.Len(), report.Tree.Height())
			if dump {
				return report.Tree.Fprint(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "check results against a shadow set and validate the tree after every op")
	cmd.Flags().IntVar(&opts.MaxChildren, "max-children", 0, "override the workload's fan-out")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the tree after the run")
	return cmd
}
