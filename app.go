package main

import (
	"sync"
	"time"

	"github.com/moosethebrown/mission-net-bridge/adapters/mqtt"
	"github.com/moosethebrown/mission-net-bridge/adapters/simvehicle"
	"github.com/moosethebrown/mission-net-bridge/adapters/vehicle"
	"github.com/moosethebrown/mission-net-bridge/config"
	"github.com/moosethebrown/mission-net-bridge/core"
	"github.com/moosethebrown/mission-net-bridge/logging"
	"github.com/moosethebrown/mission-net-bridge/mission"
	"github.com/rs/zerolog"
)

type App struct {
	cfg            *config.Config
	logger         *zerolog.Logger
	mqttAdapter    *mqtt.Adapter
	vehicleAdapter *vehicle.Adapter
	missionService *core.MissionService
	wg             sync.WaitGroup
}

func NewApp(cfg *config.Config) *App {
	app := &App{
		cfg:    cfg,
		logger: logging.NewLogger(cfg.LogLevel, cfg.Log),
	}

	app.init()

	return app
}

func (app *App) Start() {
	if app.vehicleAdapter != nil {
		app.wg.Add(1)
		go func() {
			defer app.wg.Done()
			app.vehicleAdapter.Run()
		}()
	}

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		err := app.mqttAdapter.Run()
		if err != nil {
			panic("mqtt adapter exited unexpectedly")
		}
	}()
}

func (app *App) Stop() {
	app.mqttAdapter.Stop()
	if app.vehicleAdapter != nil {
		app.vehicleAdapter.Stop()
	}
	app.wg.Wait()
}

func (app *App) init() {
	var m mission.Mission

	switch app.cfg.Vehicle.Backend {
	case config.BackendSim:
		simLogger := app.logger.With().Str("component", "sim-vehicle").Logger()
		m = simvehicle.NewSimulator(time.Duration(app.cfg.Sim.Latency)*time.Millisecond,
			app.cfg.Sim.MaxMissionItems,
			&simLogger)
	default:
		vehicleLogger := app.logger.With().Str("component", "vehicle").Logger()
		app.vehicleAdapter = vehicle.NewAdapter(app.cfg.Vehicle.SocketName,
			app.cfg.Vehicle.QueueSize,
			time.Duration(app.cfg.Vehicle.IoTimeout)*time.Millisecond,
			&vehicleLogger)
		m = app.vehicleAdapter
	}

	coreLogger := app.logger.With().Str("component", "core").Logger()
	app.missionService = core.NewMissionService(m, &coreLogger)

	mqttLogger := app.logger.With().Str("component", "mqtt").Logger()
	app.mqttAdapter = mqtt.NewAdapter(app.cfg.Mqtt, app.missionService, &mqttLogger)
}
