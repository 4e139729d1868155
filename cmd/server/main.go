package main

import (
	"cognitive-tactics/internal/agent"
	"cognitive-tactics/internal/domain"
	"cognitive-tactics/internal/engine"
	"cognitive-tactics/internal/network"
	"cognitive-tactics/internal/scenario"
	"cognitive-tactics/internal/server"
	"cognitive-tactics/internal/systems"
	"cognitive-tactics/internal/version"
	"cognitive-tactics/pkg/logger"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Конфигурация: окружение, поверх него флаги
	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.Fatal("Bad configuration: ", err)
	}

	var headless, autopilot bool
	flag.StringVar(&cfg.ScenarioPath, "scenario", cfg.ScenarioPath, "Path to scenario YAML")
	flag.IntVar(&cfg.MaxTurns, "turns", cfg.MaxTurns, "Turn limit (0 = until the human is defeated)")
	flag.BoolVar(&headless, "headless", false, "Run the scenario script without the server, printing the map each turn")
	flag.BoolVar(&autopilot, "autopilot", false, "Let the bot play the human character")
	flag.Parse()

	logger.Log.Info("Starting Cognitive Tactics...")
	logger.Log.Info(version.String())

	sc, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		logger.Log.Fatal("Failed to load scenario: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Кто управляет игроком: бот, сеть или скрипт сценария
	var controller systems.Controller
	var sink server.CommandSink
	var bot *agent.Bot
	switch {
	case autopilot:
		bot = agent.NewBot()
		controller = bot
	case !headless:
		commands := systems.NewChannelController(16, cfg.CommandTimeout)
		defer commands.Close()
		controller, sink = commands, commands
	}

	game, err := scenario.Build(sc, controller)
	if err != nil {
		logger.Log.Fatal("Failed to build scenario: ", err)
	}
	if bot != nil {
		bot.Attach(game.Map, game.Registry)
	}

	logger.Log.WithFields(logrus.Fields{
		"scenario":   game.Name,
		"characters": game.Registry.Len(),
		"max_turns":  cfg.MaxTurns,
		"headless":   headless,
		"autopilot":  autopilot,
	}).Info("Scenario loaded")

	// 3. Куда уходят ходы
	var onTurn engine.TurnHandler
	if headless {
		fmt.Println(game.Map)
		onTurn = func(_ []domain.Event) {
			fmt.Printf("\n-- turn %d --\n%s\n", game.Turn, game.Map)
		}
	} else {
		srv := server.New(network.NewBroadcaster(256), sink, cfg.Port)
		srv.Publish(game.BuildState(nil))
		go func() {
			if err := srv.Run(ctx); err != nil {
				logger.Log.Fatal("Server start error: ", err)
			}
		}()
		onTurn = func(events []domain.Event) {
			srv.Publish(game.BuildState(events))
		}
	}

	// 4. Игровой цикл
	interval := cfg.TurnInterval
	if headless {
		interval = 0
	}
	err = game.Run(ctx, cfg.MaxTurns, interval, onTurn)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Log.Info("Shutting down...")
	case err != nil:
		logger.Log.WithError(err).Error("Game aborted")
		os.Exit(1)
	}

	// Сервер живёт, пока зрители не закроют процесс
	if !headless && ctx.Err() == nil {
		logger.Log.Info("Game finished, press Ctrl+C to stop the server")
		<-ctx.Done()
	}
	logger.Log.Info("Done.")
}
