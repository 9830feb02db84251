// Command nlpdash is a terminal client for the NLP analysis service.
//
// Usage:
//
//	nlpdash analyze "Cats chase cats."
//	echo "Thiss is a tst" | nlpdash spell
//	nlpdash sentiment -f review.txt --json
//	nlpdash upload notes.txt more.txt
//	nlpdash transcribe memo.wav
//	nlpdash tui
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// errFailed is returned when the dashboard showed an error banner; the
// banner itself has already been printed.
var errFailed = errors.New("request failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "nlpdash:", err)
		}
		os.Exit(1)
	}
}
