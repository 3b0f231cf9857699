// Command lvsched solves, generates and benchmarks single-machine total
// tardiness instances.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsched/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		logrus.WithError(err).Error("lvsched failed")
		os.Exit(cli.GetExitCode(err))
	}
}
