package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/seshanpillay25/contexthub/cmd/contexthub"
	"github.com/seshanpillay25/contexthub/pkg/errors"
	"github.com/seshanpillay25/contexthub/pkg/style"
)

func main() {
	stderr := style.NewReporter(os.Stderr, style.FormatAuto)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		fmt.Fprintln(os.Stderr)
		stderr.Warning(contexthub.MsgCancelled)
		os.Exit(1)
	}()

	rootCmd := contexthub.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// A failed verification has already been reported line by line.
		if !errors.IsErrorCode(err, errors.ErrVerifyFailed) {
			stderr.Error(contexthub.MsgUnexpected, err)
		}
		os.Exit(1)
	}
}
