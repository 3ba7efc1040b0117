package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/slidemenu/internal/app"
	"github.com/llehouerou/slidemenu/internal/config"
	"github.com/llehouerou/slidemenu/internal/errmsg"
	"github.com/llehouerou/slidemenu/internal/logging"
	"github.com/llehouerou/slidemenu/internal/menu"
)

// flags holds the values of the root command's flags.
type flags struct {
	configPath string
	position   string
	debug      bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "slidemenu",
		Short: "Slide-in navigation menu demo",
		Long: `slidemenu runs a small multi-page terminal app navigated through an
animated slide-in menu.

Press m (or click the toggle) to open the menu. The config file is watched
and theme changes apply while the app runs. Sending SIGUSR1 to the process
toggles the menu.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, f)
		},
	}

	root.SilenceUsage = true
	root.SilenceErrors = true

	root.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "config file (default: XDG config dir, then ./config.toml)")
	root.Flags().StringVarP(&f.position, "position", "p", "", "edge the menu slides in from: left or right")
	root.Flags().BoolVar(&f.debug, "debug", false, "write debug logs to the state directory")

	root.AddCommand(newTimelineCmd(f), newCurvesCmd())
	return root
}

func runDemo(cmd *cobra.Command, f *flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	var position *menu.Position
	if f.position != "" {
		p, err := menu.ParsePosition(f.position)
		if err != nil {
			return err
		}
		position = &p
	}

	logger, err := logging.New(config.AppName, cfg.Log.Logging(f.debug))
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLoggerInit, err))
	}
	defer func() { _ = logger.Sync() }()

	watcher, err := config.NewWatcher(f.configPath, logger.Named("config"))
	if err != nil {
		logger.Warn(errmsg.Format(errmsg.OpConfigWatch, err))
	} else {
		watcher.Start()
		defer func() { _ = watcher.Close() }()
	}

	ctrl := menu.NewController()
	stop := toggleOnSignal(ctrl)
	defer stop()

	m := app.New(app.Options{
		Config:     cfg,
		Watcher:    watcher,
		Controller: ctrl,
		Position:   position,
		Logger:     logger,
	})
	logger.Info("starting", zap.Strings("config_files", cfg.Files))

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(cmd.Context()),
	)
	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Dispose()
	} else {
		m.Dispose()
	}
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
