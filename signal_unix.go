//go:build unix

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/llehouerou/slidemenu/internal/menu"
)

// toggleOnSignal toggles the menu on every SIGUSR1 until stop is called.
func toggleOnSignal(ctrl *menu.Controller) (stop func()) {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, syscall.SIGUSR1)

	go func() {
		for {
			select {
			case <-sig:
				ctrl.Toggle()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sig)
		close(done)
	}
}
