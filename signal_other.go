//go:build !unix

package main

import "github.com/llehouerou/slidemenu/internal/menu"

func toggleOnSignal(*menu.Controller) (stop func()) {
	return func() {}
}
