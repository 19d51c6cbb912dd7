// Package cli provides the command-line interface for coderev.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/isavita/coderev/internal/config"
	"github.com/isavita/coderev/internal/git"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Commit is set at build time.
	Commit = "none"

	// Date is set at build time.
	Date = "unknown"
)

// debugEnv is the environment variable that toggles debug output.
const debugEnv = "CODEREV_DEBUG"

var debugFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "coderev",
	Short: "AI-powered code review for git branches",
	Long: `Coderev diffs a local branch against a base branch, sends the diff to a
configurable LLM backend, and prints the model's review feedback.

Settings resolve per key with strict precedence: CLI flag, then the
per-repository config file, then built-in defaults.

Example:
  coderev init                        Create the per-repo config file
  coderev review feature-login       Review a branch against the base branch
  coderev config set temperature 0.2  Persist a setting`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug output")
}

// SetVersionInfo sets the version information for the CLI.
// This is called from main() with values set at build time.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
}

// IsDebug returns whether debug mode is enabled, either via the --debug
// flag or the CODEREV_DEBUG environment variable.
func IsDebug() bool {
	if debugFlag {
		return true
	}
	switch os.Getenv(debugEnv) {
	case "1", "true", "TRUE", "True":
		return true
	}
	return false
}

// Debug prints a message to stderr if debug mode is enabled.
func Debug(format string, args ...any) {
	if IsDebug() {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// openStore locates the enclosing repository and loads its config store.
func openStore(ctx context.Context) (*git.Repository, *config.Store, error) {
	repo, err := git.NewRepository("")
	if err != nil {
		return nil, nil, err
	}

	root, err := repo.GetRootDir(ctx)
	if err != nil {
		return nil, nil, err
	}

	store, err := config.Load(config.StorePath(root))
	if err != nil {
		return nil, nil, err
	}

	return repo, store, nil
}
