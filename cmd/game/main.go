// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	"go-ball-brawler/internal/logging"
	"go-ball-brawler/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "settings.yaml", "path to the YAML settings file")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	logLevel := flag.String("log-level", "", "log level, overrides the settings file")
	defsDir := flag.String("defs", "", "directory with YAML definition overrides")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	bootLog := logging.Console(os.Stderr, "info")
	if err != nil {
		bootLog.Fatal().Err(err).Str("path", *configPath).Msg("settings")
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *defsDir != "" {
		settings.DefsDir = *defsDir
	}
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	log := logging.Console(os.Stderr, settings.LogLevel)

	applied, err := defs.LoadOverrides(settings.DefsDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", settings.DefsDir).Msg("definition overrides")
	}
	for _, name := range applied {
		log.Info().Str("file", name).Msg("definition override applied")
	}

	if settings.PprofAddr != "" {
		go servePprof(settings.PprofAddr, log)
	}

	sm := state.NewStateMachine(state.Options{
		Seed:    settings.Seed,
		ShowAim: settings.ShowAimLine,
		Log:     log,
	})
	if settings.StartInMenu {
		sm.SetState(state.NewMenuState(sm))
	} else {
		sm.SetState(state.NewPlayState(sm))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(
		int(float64(config.ScreenWidth)*settings.WindowScale),
		int(float64(config.ScreenHeight)*settings.WindowScale),
	)
	ebiten.SetWindowTitle("Ball Brawler")

	log.Info().Int64("seed", settings.Seed).Msg("starting")
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop")
	}
}

func servePprof(addr string, log zerolog.Logger) {
	log.Info().Str("addr", addr).Msg("pprof listening")
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Error().Err(err).Msg("pprof")
	}
}
