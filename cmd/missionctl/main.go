// Command missionctl uploads and starts vehicle missions through the
// mission bridge's MQTT topics.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/moosethebrown/mission-net-bridge/adapters/mqtt"
	"github.com/moosethebrown/mission-net-bridge/config"
	"github.com/moosethebrown/mission-net-bridge/core"
	"github.com/moosethebrown/mission-net-bridge/mission"
	"github.com/moosethebrown/mission-net-bridge/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] upload <mission.yaml> | start\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	cfg := &config.MqttConfig{}
	var timeout time.Duration
	var logLevel string

	flag.StringVar(&cfg.Broker, "broker", "tcp://localhost:1883", "MQTT broker address")
	flag.StringVar(&cfg.VehicleId, "vehicle", "", "vehicle id")
	flag.StringVar(&cfg.Username, "username", "", "MQTT username")
	flag.StringVar(&cfg.Password, "password", "", "MQTT password")
	flag.BoolVar(&cfg.CertCheck, "cert-check", true, "verify the broker certificate")
	flag.IntVar(&cfg.ConnTimeout, "conn-timeout", 5000, "broker connect timeout, milliseconds")
	flag.DurationVar(&timeout, "timeout", time.Minute, "time to wait for the vehicle's result")
	flag.StringVar(&logLevel, "log-level", "warn", "log level")
	flag.Usage = usage
	flag.Parse()

	cfg.DisconnectTimeout = 250

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)

	if cfg.VehicleId == "" || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	result, err := run(cfg, timeout, flag.Args(), &logger)
	if err != nil {
		logger.Error().Err(err).Msg("call failed")
		os.Exit(1)
	}

	fmt.Println(result)
	if result != rpc.MissionResult_SUCCESS {
		os.Exit(1)
	}
}

func run(cfg *config.MqttConfig, timeout time.Duration, args []string,
	logger *zerolog.Logger) (rpc.MissionResult_Result, error) {
	var request *rpc.UploadMissionRequest

	switch args[0] {
	case "upload":
		if len(args) != 2 {
			return rpc.MissionResult_UNKNOWN, errors.New("upload needs a mission file")
		}
		items, err := readMission(args[1])
		if err != nil {
			return rpc.MissionResult_UNKNOWN, err
		}
		request = &rpc.UploadMissionRequest{Mission: core.TranslateMissionToRPC(items)}
	case "start":
	default:
		return rpc.MissionResult_UNKNOWN, errors.Errorf("unknown command %q", args[0])
	}

	client := mqtt.NewClient(cfg, logger)
	if err := client.Connect(); err != nil {
		return rpc.MissionResult_UNKNOWN, err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if request != nil {
		resp, err := client.UploadMission(ctx, request)
		if err != nil {
			return rpc.MissionResult_UNKNOWN, err
		}
		return resp.GetMissionResult().GetResult(), nil
	}

	resp, err := client.StartMission(ctx, &rpc.StartMissionRequest{})
	if err != nil {
		return rpc.MissionResult_UNKNOWN, err
	}
	return resp.GetMissionResult().GetResult(), nil
}

// readMission reads a list of mission items from a YAML or JSON file.
func readMission(filename string) ([]mission.MissionItem, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var items []mission.MissionItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrapf(err, "failed to parse mission file %s", filename)
	}

	return items, nil
}
