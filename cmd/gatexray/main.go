// Command gatexray lays out and renders gate operators from the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gatexray/internal/cli"
	xerrors "github.com/matzehuels/gatexray/pkg/errors"
)

// exitSignal follows the shell convention of 128+SIGINT.
const exitSignal = 130

var exitCodes = map[xerrors.Kind]int{
	xerrors.KindInternal:    1,
	xerrors.KindValidation:  2,
	xerrors.KindNotFound:    3,
	xerrors.KindLayout:      4,
	xerrors.KindUnsupported: 5,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRoot().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
		return
	case errors.Is(err, context.Canceled):
		os.Exit(exitSignal)
	default:
		fmt.Fprintln(os.Stderr, "Error:", xerrors.UserMessage(err))
		os.Exit(exitCodes[xerrors.KindOf(err)])
	}
}

// newRoot adds --verbose on top of the CLI's root command. The level must be
// set before the root pre-run loads the config, since loading logs.
func newRoot() *cobra.Command {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true

	verbose := root.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
	loadConfig := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if loadConfig == nil {
			return nil
		}
		return loadConfig(cmd, args)
	}
	return root
}
