// Package mqtt carries mission service calls over MQTT request and response
// topics.
package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/buger/jsonparser"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/moosethebrown/mission-net-bridge/config"
	"github.com/moosethebrown/mission-net-bridge/rpc"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// requests accepted per worker, running or waiting
const backlogPerWorker = 16

// Adapter serves a mission service on the vehicle's request topic. Every
// call runs on its own goroutine; at most workers calls are in the service
// at once and at most workers*backlogPerWorker are accepted.
type Adapter struct {
	connTimeout       time.Duration
	vehicleId         string
	announceTopic     string
	announceInterval  time.Duration
	announceTimeout   time.Duration
	disconnectTimeout time.Duration
	callTimeout       time.Duration
	rqTopic           string
	respTopic         string
	cfg               *config.MqttConfig
	client            mqtt.Client
	service           rpc.MissionServiceServer
	workers           *semaphore.Weighted
	backlog           *semaphore.Weighted
	stopChan          chan bool
	responseChan      chan []byte
	logger            *zerolog.Logger
}

func NewAdapter(cfg *config.MqttConfig, service rpc.MissionServiceServer, logger *zerolog.Logger) *Adapter {
	return &Adapter{
		connTimeout:       time.Duration(cfg.ConnTimeout) * time.Millisecond,
		vehicleId:         cfg.VehicleId,
		announceTopic:     cfg.AnnounceTopic,
		announceInterval:  time.Duration(cfg.AnnounceInterval) * time.Millisecond,
		announceTimeout:   time.Duration(cfg.AnnounceTimeout) * time.Millisecond,
		disconnectTimeout: time.Duration(cfg.DisconnectTimeout) * time.Millisecond,
		callTimeout:       time.Duration(cfg.CallTimeout) * time.Millisecond,
		rqTopic:           requestTopic(cfg.VehicleId),
		respTopic:         responseTopic(cfg.VehicleId),
		cfg:               cfg,
		service:           service,
		workers:           semaphore.NewWeighted(int64(cfg.Workers)),
		backlog:           semaphore.NewWeighted(int64(cfg.Workers * backlogPerWorker)),
		stopChan:          make(chan bool, 1),
		responseChan:      make(chan []byte, 1000),
		logger:            logger,
	}
}

func (a *Adapter) Run() error {
	a.logger.Info().Msg("starting")
	defer a.logger.Info().Msg("stopping")

	err := a.connect()
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to connect to MQTT broker")
		return err
	}

	defer a.client.Disconnect(uint(a.disconnectTimeout.Milliseconds()))

	ticker := time.NewTicker(a.announceInterval)
	defer ticker.Stop()

main_loop:
	for {
		select {
		case <-a.stopChan:
			break main_loop
		case <-ticker.C:
			a.announce()
		case resp := <-a.responseChan:
			a.client.Publish(a.respTopic, 2, false, resp)
		}
	}

	return nil
}

func (a *Adapter) Stop() {
	a.stopChan <- true
}

func (a *Adapter) announce() {
	a.logger.Debug().Msg("announce")

	token := a.client.Publish(a.announceTopic, 2, false, a.vehicleId)
	if !token.WaitTimeout(a.announceTimeout) {
		a.logger.Error().Msg("timeout expired while publishing announce message")
	} else if err := token.Error(); err != nil {
		a.logger.Error().Err(err).Msg("error publishing announce message")
	}
}

func (a *Adapter) connect() error {
	opts := newClientOptions(a.cfg, a.vehicleId)
	opts.SetOnConnectHandler(func(cl mqtt.Client) {
		// subscribe to request topic
		cl.Subscribe(a.rqTopic, 2, func(cl mqtt.Client, msg mqtt.Message) {
			a.logger.Debug().Msgf("received request: %s", string(msg.Payload()))
			a.handleMessage(msg.Payload())
		})
	})

	a.client = mqtt.NewClient(opts)
	token := a.client.Connect()

	if !token.WaitTimeout(a.connTimeout) {
		return errors.New("failed to connect to broker")
	}

	return token.Error()
}

// handleMessage must not block: it runs on the MQTT client's delivery
// goroutine. Requests beyond the backlog are answered with errBusy.
func (a *Adapter) handleMessage(payload []byte) {
	var rq Request
	if err := json.Unmarshal(payload, &rq); err != nil {
		a.logger.Error().Err(err).Msg("failed to unmarshal request")
		// the id may still be readable, so the caller need not wait out its deadline
		id, _ := jsonparser.GetString(payload, "id")
		method, _ := jsonparser.GetString(payload, "method")
		a.respond(&Response{ID: id, Method: method, Error: errMalformedRequest})
		return
	}

	if !a.backlog.TryAcquire(1) {
		a.logger.Warn().Str("id", rq.ID).Str("method", rq.Method).Msg("request backlog is full")
		a.respond(&Response{ID: rq.ID, Method: rq.Method, Error: errBusy})
		return
	}

	go a.dispatch(&rq)
}

// dispatch answers within callTimeout of receipt, whether the request is
// still waiting for a worker or already in the service.
func (a *Adapter) dispatch(rq *Request) {
	defer a.backlog.Release(1)

	ctx, cancel := a.callContext()
	defer cancel()

	if err := a.workers.Acquire(ctx, 1); err != nil {
		a.logger.Warn().Str("id", rq.ID).Str("method", rq.Method).Msg("call timed out waiting for a worker")
		a.respond(&Response{ID: rq.ID, Method: rq.Method, Error: errTimeout})
		return
	}

	done := make(chan *Response, 1)
	go func() {
		defer a.workers.Release(1)
		done <- a.call(rq)
	}()

	select {
	case resp := <-done:
		a.respond(resp)
	case <-ctx.Done():
		a.logger.Warn().Str("id", rq.ID).Str("method", rq.Method).Msg("call timed out")
		a.respond(&Response{ID: rq.ID, Method: rq.Method, Error: errTimeout})
	}
}

func (a *Adapter) callContext() (context.Context, context.CancelFunc) {
	if a.callTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), a.callTimeout)
}

func (a *Adapter) call(rq *Request) *Response {
	resp := &Response{ID: rq.ID, Method: rq.Method}

	var result any
	switch rq.Method {
	case rpc.MethodUploadMission:
		var request *rpc.UploadMissionRequest
		if len(rq.Params) > 0 {
			request = &rpc.UploadMissionRequest{}
			if err := json.Unmarshal(rq.Params, request); err != nil {
				a.logger.Error().Err(err).Str("id", rq.ID).Msg("failed to unmarshal params")
				resp.Error = errInvalidParams
				return resp
			}
		}
		response := &rpc.UploadMissionResponse{}
		if err := a.service.UploadMission(request, response); err != nil {
			resp.Error = err.Error()
			return resp
		}
		result = response
	case rpc.MethodStartMission:
		response := &rpc.StartMissionResponse{}
		if err := a.service.StartMission(&rpc.StartMissionRequest{}, response); err != nil {
			resp.Error = err.Error()
			return resp
		}
		result = response
	default:
		a.logger.Error().Msgf("unknown method: %s", rq.Method)
		resp.Error = errUnknownMethod
		return resp
	}

	data, err := json.Marshal(result)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to marshal result")
		resp.Error = err.Error()
		return resp
	}
	resp.Result = data

	return resp
}

func (a *Adapter) respond(resp *Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to marshal response")
		return
	}

	select {
	case a.responseChan <- data:
	default:
		a.logger.Error().Str("id", resp.ID).Msg("response queue is full, dropping response")
	}
}
