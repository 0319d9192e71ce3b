package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Anstapen/LearnSTL/exercise"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "learnstl",
	Short: "Sequence-algorithm teaching exercises",
	Long: `learnstl runs a set of self-contained exercises demonstrating
idiomatic slice algorithms: copying, filtering, transforming, rotating and
searching collections, plus comparison design for simple value types.

Run without arguments to execute every exercise group.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGroups(cmd, nil)
	},
}

var runCmd = &cobra.Command{
	Use:   "run [group...]",
	Short: "Run all exercise groups, or only the named ones",
	RunE:  runGroups,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercise groups and their exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, g := range groups() {
			fmt.Fprintln(cmd.OutOrStdout(), g.Name)
			for _, ex := range g.Exercises {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", ex.Name)
			}
		}
		return nil
	},
}

func runGroups(cmd *cobra.Command, args []string) error {
	selected, err := selectGroups(groups(), args)
	if err != nil {
		return err
	}
	runner := exercise.NewRunner(cmd.OutOrStdout(), logger)
	return runner.Run(selected)
}

// selectGroups filters by name, case-insensitively. No names selects
// everything.
func selectGroups(all []exercise.Group, names []string) ([]exercise.Group, error) {
	if len(names) == 0 {
		return all, nil
	}
	var out []exercise.Group
	for _, name := range names {
		found := false
		for _, g := range all {
			if strings.EqualFold(g.Name, name) {
				out = append(out, g)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown exercise group %q", name)
		}
	}
	return out, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
