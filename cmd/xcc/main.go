// Command xcc is a command-line front end for the xcc exact cover with
// colors solver: it reads an instance, runs the search, and prints
// solutions as they are found.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wallberg/xcc"
)

var (
	colored bool
	limit   int
	debug   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "xcc",
		Short: "Solve exact cover with colors instances",
	}
	root.AddCommand(newCoverCmd())
	return root
}

func newCoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cover [option ...]",
		Short: "Enumerate solutions for an instance given as comma-separated options",
		Long: "Each positional argument is one option: a comma-separated list of item\n" +
			"tokens. With --colored, a token of the form identifier:color attaches a\n" +
			"color to a secondary item occurrence. Primary items are inferred as the\n" +
			"tokens that never carry a color.",
		Args: cobra.MinimumNArgs(1),
		RunE: runCover,
	}
	cmd.Flags().BoolVar(&colored, "colored", false, "enable identifier:color-label tokens")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many solutions (0 means unlimited)")
	cmd.Flags().BoolVar(&debug, "debug", false, "log each choice and backtrack")
	return cmd
}

func runCover(cmd *cobra.Command, args []string) error {
	options := make([][]string, len(args))
	for i, arg := range args {
		options[i] = strings.Split(arg, ",")
	}

	var secondary []string
	if colored {
		seen := make(map[string]bool)
		for _, opt := range options {
			for _, tok := range opt {
				if i := strings.IndexByte(tok, ':'); i >= 0 && !seen[tok[:i]] {
					seen[tok[:i]] = true
					secondary = append(secondary, tok[:i])
				}
			}
		}
	}

	sv, err := xcc.Covers(options, nil, secondary, colored)
	if err != nil {
		return err
	}
	if debug {
		sv.WithStats(&xcc.Stats{Debug: true})
	}

	count := 0
	for limit == 0 || count < limit {
		sol, ok := sv.Next()
		if !ok {
			break
		}
		count++
		fmt.Fprintf(cmd.OutOrStdout(), "solution %d: %s\n", count, formatSolution(sol))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d solution(s)\n", count)
	return nil
}

func formatSolution(sol []int) string {
	parts := make([]string, len(sol))
	for i, idx := range sol {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, " ")
}
