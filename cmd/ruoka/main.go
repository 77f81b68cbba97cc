package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/ruoka/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ruoka: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd builds the command tree. Flag parsing is disabled because
// keywords such as "-curry" are exclusion filters, not flags; the filter
// package handles -lang itself.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:                "ruoka [-lang <code>] [keyword ...]",
		Short:              "Show today's lunch menus",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{Args: args})
		},
	}
	root.AddCommand(&cobra.Command{
		Use:                "browse [-lang <code>] [keyword ...]",
		Short:              "Browse and filter today's menus interactively",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{Args: args, Browse: true})
		},
	})
	return root
}
