package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/app"
	"github.com/llehouerou/gallery/internal/catalog"
	"github.com/llehouerou/gallery/internal/config"
	"github.com/llehouerou/gallery/internal/errmsg"
	"github.com/llehouerou/gallery/internal/logging"
	"github.com/llehouerou/gallery/internal/mpris"
	"github.com/llehouerou/gallery/internal/notify"
	"github.com/llehouerou/gallery/internal/playback"
	"github.com/llehouerou/gallery/internal/player"
	"github.com/llehouerou/gallery/internal/state"
	"github.com/llehouerou/gallery/internal/stderr"
	"github.com/llehouerou/gallery/internal/transport"
	"github.com/llehouerou/gallery/internal/ui/preview"
)

var configPath string

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "gallery",
	Short:        "Browse a mixed-media feed in the terminal",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: XDG config dir)")
	rootCmd.AddCommand(listCmd, cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

// loadConfig reads the config and opens the file logger.
func loadConfig() (*config.Config, *zap.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := logging.New(cfg.LogPath(), cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}
	return cfg, log, nil
}

// newLoader picks the catalog backend from the config.
func newLoader(cfg *config.Config, log *zap.Logger) (catalog.Loader, error) {
	switch cfg.Source.Backend {
	case config.BackendRemote:
		if !cfg.HasRemote() {
			return nil, fmt.Errorf("source.remote.url is required for the remote backend")
		}
		return catalog.NewRemoteLoader(cfg.Source.Remote.URL, cfg.Source.Remote.Token, cfg.RemoteTimeout(), log), nil
	case config.BackendFixture, "":
		if cfg.Source.Fixture == "" {
			return nil, fmt.Errorf("source.fixture is required for the fixture backend")
		}
		return &catalog.FixtureLoader{Path: cfg.Source.Fixture, Log: log}, nil
	default:
		return nil, fmt.Errorf("unknown source backend %q", cfg.Source.Backend)
	}
}

func runTUI() error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	loader, err := newLoader(cfg, log)
	if err != nil {
		return err
	}

	st, err := state.Open(log)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}

	var surface transport.Surface = transport.Nop{}
	if cfg.MPRISEnabled() {
		s, err := mpris.New(log)
		if err != nil {
			log.Warn(errmsg.Format(errmsg.OpMediaKeys, err))
		} else {
			surface = s
		}
	}

	thumbs, err := preview.NewCache("")
	if err != nil {
		log.Warn("preview cache disabled", zap.Error(err))
	}

	minDistance, maxDuration := cfg.SwipeThresholds()
	m := app.New(app.Options{
		Loader:  loader,
		State:   st,
		Surface: surface,
		Players: playback.Players{
			Audio: player.New(cfg.VolumeLevel()),
			Video: player.NewClock(),
		},
		Previews:         preview.NewLoader(thumbs, log),
		Images:           preview.IsKittySupported(),
		SeekStep:         cfg.SeekStep(),
		SwipeMinDistance: minDistance,
		SwipeMaxDuration: maxDuration,
		Log:              log,
	})

	if cfg.NotifyEnabled() {
		if n, err := notify.New(); err != nil {
			log.Warn("desktop notifications disabled", zap.Error(err))
		} else {
			notify.Watch(m.Machine, n, cfg.NotifyTimeout(), log)
		}
	}

	// Audio backends write to fd 2 and would draw over the UI.
	capture, err := stderr.Start(func(line string) {
		log.Warn("stderr", zap.String("line", line))
	})
	if err != nil {
		log.Warn("stderr capture disabled", zap.Error(err))
	} else {
		defer capture.Stop()
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	m.Bridge.Bind(func(msg transport.SignalMsg) { p.Send(msg) })

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
