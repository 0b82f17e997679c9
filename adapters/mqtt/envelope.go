package mqtt

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/moosethebrown/mission-net-bridge/config"
)

// Transport-level errors reported in Response.Error. Mission outcomes are
// never reported here; they travel inside Response.Result.
const (
	errMalformedRequest = "malformed request"
	errUnknownMethod    = "unknown method"
	errInvalidParams    = "invalid params"
	errTimeout          = "timeout"
	errBusy             = "busy"
)

// Request is the envelope of one RPC call published on the request topic.
type Request struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response is published on the response topic with the ID of its request.
type Response struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func requestTopic(vehicleId string) string {
	return fmt.Sprintf("vehicle/%s/mission/request", vehicleId)
}

func responseTopic(vehicleId string) string {
	return fmt.Sprintf("vehicle/%s/mission/response", vehicleId)
}

func newClientOptions(cfg *config.MqttConfig, clientId string) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions().AddBroker(cfg.Broker).SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(time.Duration(cfg.ConnTimeout) * time.Millisecond)
	opts.SetCredentialsProvider(func() (username string, password string) {
		return cfg.Username, cfg.Password
	})
	opts.SetClientID(clientId)
	opts.SetTLSConfig(&tls.Config{
		InsecureSkipVerify: !cfg.CertCheck,
	})

	return opts
}
