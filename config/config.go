package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	BackendSocket = "socket"
	BackendSim    = "sim"
)

// times are in milliseconds
type MqttConfig struct {
	Broker            string `json:"broker" yaml:"broker" validate:"required"`
	ConnTimeout       int    `json:"connTimeout" yaml:"connTimeout" validate:"min=0"`
	Username          string `json:"username" yaml:"username"`
	Password          string `json:"password" yaml:"password"`
	VehicleId         string `json:"vehicleId" yaml:"vehicleId" validate:"required"`
	AnnounceTopic     string `json:"announceTopic" yaml:"announceTopic" validate:"required"`
	AnnounceInterval  int    `json:"announceInterval" yaml:"announceInterval" validate:"min=0"`
	AnnounceTimeout   int    `json:"announceTimeout" yaml:"announceTimeout" validate:"min=0"`
	DisconnectTimeout int    `json:"disconnectTimeout" yaml:"disconnectTimeout" validate:"min=0"`
	CertCheck         bool   `json:"certCheck" yaml:"certCheck"`
	CallTimeout       int    `json:"callTimeout" yaml:"callTimeout" validate:"min=0"`
	Workers           int    `json:"workers" yaml:"workers" validate:"min=1"`
}

type VehicleConfig struct {
	Backend    string `json:"backend" yaml:"backend" validate:"oneof=socket sim"`
	SocketName string `json:"socketName" yaml:"socketName" validate:"required_if=Backend socket"`
	QueueSize  int    `json:"queueSize" yaml:"queueSize" validate:"min=1"`
	IoTimeout  int    `json:"ioTimeout" yaml:"ioTimeout" validate:"min=0"`
}

type SimConfig struct {
	Latency         int `json:"latency" yaml:"latency" validate:"min=0"`
	MaxMissionItems int `json:"maxMissionItems" yaml:"maxMissionItems" validate:"min=1"`
}

type LogConfig struct {
	File       string `json:"file" yaml:"file"`
	MaxSize    int    `json:"maxSize" yaml:"maxSize" validate:"min=0"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups" validate:"min=0"`
	MaxAge     int    `json:"maxAge" yaml:"maxAge" validate:"min=0"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

// Bridge configuration, read from a JSON file or, for .yaml/.yml files, YAML.
type Config struct {
	Mqtt     *MqttConfig    `json:"mqtt" yaml:"mqtt" validate:"required"`
	Vehicle  *VehicleConfig `json:"vehicle" yaml:"vehicle" validate:"required"`
	Sim      *SimConfig     `json:"sim" yaml:"sim" validate:"required"`
	Log      *LogConfig     `json:"log" yaml:"log" validate:"required"`
	LogLevel string         `json:"logLevel" yaml:"logLevel"`
}

func NewConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", filename)
	}

	config.applyDefaults()

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Mqtt == nil {
		c.Mqtt = &MqttConfig{}
	}
	if c.Mqtt.ConnTimeout == 0 {
		c.Mqtt.ConnTimeout = 5000
	}
	if c.Mqtt.AnnounceTopic == "" {
		c.Mqtt.AnnounceTopic = "vehicle/announce"
	}
	if c.Mqtt.AnnounceInterval == 0 {
		c.Mqtt.AnnounceInterval = 3000
	}
	if c.Mqtt.AnnounceTimeout == 0 {
		c.Mqtt.AnnounceTimeout = 1000
	}
	if c.Mqtt.DisconnectTimeout == 0 {
		c.Mqtt.DisconnectTimeout = 250
	}
	if c.Mqtt.Workers == 0 {
		c.Mqtt.Workers = 8
	}

	if c.Vehicle == nil {
		c.Vehicle = &VehicleConfig{}
	}
	if c.Vehicle.Backend == "" {
		c.Vehicle.Backend = BackendSocket
	}
	if c.Vehicle.QueueSize == 0 {
		c.Vehicle.QueueSize = 16
	}
	if c.Vehicle.IoTimeout == 0 {
		c.Vehicle.IoTimeout = 10000
	}

	if c.Sim == nil {
		c.Sim = &SimConfig{}
	}
	if c.Sim.Latency == 0 {
		c.Sim.Latency = 200
	}
	if c.Sim.MaxMissionItems == 0 {
		c.Sim.MaxMissionItems = 500
	}

	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Log.MaxSize == 0 {
		c.Log.MaxSize = 100
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
