package viewer

import (
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// handleSignals turns SIGINT and SIGTERM into a regular window close so
// the program still gets deleted.
func (v *Viewer) handleSignals() (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGINT, unix.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-ch:
			v.log(slog.LevelInfo, "received %s, closing window", unix.SignalName(sig.(unix.Signal)))
			v.RequestShutdown()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
