package root

import (
	"io"
	"os"

	"github.com/flarebyte/hello-wandbox/cmd/hello/version"
	"github.com/flarebyte/hello-wandbox/internal/greeting"
	"github.com/spf13/cobra"
)

// versionWord is the only argument that changes what hello does.
const versionWord = "version"

// NewRootCmd creates the root command for hello.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hello",
		Short: "CLI: prints a fixed greeting, used to smoke-test a remote compile and run service",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Like a plain print to stdout: a failed write does not change the exit status.
			_ = greeting.Greet(cmd.OutOrStdout())
			return nil
		},
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(version.NewCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	return run(args, os.Stdout, os.Stderr)
}

// run only hands args to the command tree when they start with the version
// word, so cobra's built-in words (help, flags, __complete) never replace the
// greeting.
func run(args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if len(args) == 0 || args[0] != versionWord {
		// Non-nil so cobra does not fall back to os.Args.
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}
