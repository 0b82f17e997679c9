package mqtt

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/moosethebrown/mission-net-bridge/config"
	"github.com/moosethebrown/mission-net-bridge/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Client calls a remote mission service through the vehicle's request and
// response topics. Responses are matched to calls by request id.
type Client struct {
	cfg               *config.MqttConfig
	connTimeout       time.Duration
	disconnectTimeout time.Duration
	rqTopic           string
	respTopic         string
	client            mqtt.Client
	publish           func(payload []byte) error
	mu                sync.Mutex
	pending           map[string]chan *Response
	logger            *zerolog.Logger
}

func NewClient(cfg *config.MqttConfig, logger *zerolog.Logger) *Client {
	c := &Client{
		cfg:               cfg,
		connTimeout:       time.Duration(cfg.ConnTimeout) * time.Millisecond,
		disconnectTimeout: time.Duration(cfg.DisconnectTimeout) * time.Millisecond,
		rqTopic:           requestTopic(cfg.VehicleId),
		respTopic:         responseTopic(cfg.VehicleId),
		pending:           make(map[string]chan *Response),
		logger:            logger,
	}
	c.publish = c.publishRequest

	return c
}

// Connect connects to the broker and waits until the response topic is
// subscribed.
func (c *Client) Connect() error {
	subscribed := make(chan error, 1)

	opts := newClientOptions(c.cfg, "missionctl-"+uuid.NewString())
	opts.SetOnConnectHandler(func(cl mqtt.Client) {
		token := cl.Subscribe(c.respTopic, 2, func(cl mqtt.Client, msg mqtt.Message) {
			c.handleResponse(msg.Payload())
		})
		go func() {
			token.Wait()
			select {
			case subscribed <- token.Error():
			default:
			}
		}()
	})

	c.client = mqtt.NewClient(opts)
	token := c.client.Connect()
	if !token.WaitTimeout(c.connTimeout) {
		return errors.New("failed to connect to broker")
	}
	if err := token.Error(); err != nil {
		return errors.Wrap(err, "failed to connect to broker")
	}

	select {
	case err := <-subscribed:
		return errors.Wrap(err, "failed to subscribe to response topic")
	case <-time.After(c.connTimeout):
		return errors.New("timeout subscribing to response topic")
	}
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Disconnect(uint(c.disconnectTimeout.Milliseconds()))
	}
}

func (c *Client) UploadMission(ctx context.Context, request *rpc.UploadMissionRequest) (*rpc.UploadMissionResponse, error) {
	response := &rpc.UploadMissionResponse{}
	if err := c.call(ctx, rpc.MethodUploadMission, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) StartMission(ctx context.Context, request *rpc.StartMissionRequest) (*rpc.StartMissionResponse, error) {
	response := &rpc.StartMissionResponse{}
	if err := c.call(ctx, rpc.MethodStartMission, request, response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) call(ctx context.Context, method string, params any, result any) error {
	rq := &Request{
		ID:     uuid.NewString(),
		Method: method,
	}

	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return errors.Wrap(err, "failed to marshal params")
		}
		rq.Params = data
	}

	payload, err := json.Marshal(rq)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request")
	}

	respChan := make(chan *Response, 1)
	c.mu.Lock()
	c.pending[rq.ID] = respChan
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, rq.ID)
		c.mu.Unlock()
	}()

	if err := c.publish(payload); err != nil {
		return errors.WithMessage(err, method)
	}

	select {
	case resp := <-respChan:
		if resp.Error != "" {
			return errors.Errorf("%s: %s", method, resp.Error)
		}
		return errors.Wrap(json.Unmarshal(resp.Result, result), "failed to unmarshal result")
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), method)
	}
}

func (c *Client) publishRequest(payload []byte) error {
	token := c.client.Publish(c.rqTopic, 2, false, payload)
	if !token.WaitTimeout(c.connTimeout) {
		return errors.New("timeout publishing request")
	}
	return token.Error()
}

// handleResponse drops responses nobody is waiting for, such as late
// answers to calls whose context already expired.
func (c *Client) handleResponse(payload []byte) {
	var resp Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		c.logger.Error().Err(err).Msg("failed to unmarshal response")
		return
	}

	c.mu.Lock()
	respChan, ok := c.pending[resp.ID]
	c.mu.Unlock()

	if !ok {
		c.logger.Debug().Str("id", resp.ID).Msg("no pending call for response")
		return
	}

	select {
	case respChan <- &resp:
	default:
	}
}
