// Package vehicle implements the mission capability on top of the vehicle
// daemon's unix socket.
package vehicle

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"sync"
	"time"

	"github.com/moosethebrown/mission-net-bridge/mission"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var _ mission.Mission = (*Adapter)(nil)

type cmd struct {
	cmd      string
	items    []mission.MissionItem
	callback mission.ResultCallback
}

// Adapter executes mission commands one at a time in its Run loop and
// reports each result through the command's callback from that loop.
type Adapter struct {
	socketName string
	ioTimeout  time.Duration
	stopChan   chan bool
	cmdChan    chan *cmd
	mu         sync.Mutex
	stopped    bool
	conn       net.Conn
	reader     *bufio.Reader
	logger     *zerolog.Logger
}

func NewAdapter(socketName string, queueSize int, ioTimeout time.Duration, logger *zerolog.Logger) *Adapter {
	return &Adapter{
		socketName: socketName,
		ioTimeout:  ioTimeout,
		stopChan:   make(chan bool, 1),
		cmdChan:    make(chan *cmd, queueSize),
		logger:     logger,
	}
}

func (a *Adapter) Run() {
	a.logger.Info().Msg("starting")
	defer a.logger.Info().Msg("stopping")

main_loop:
	for {
		select {
		case c := <-a.cmdChan:
			c.callback(a.execute(c))
		case <-a.stopChan:
			break main_loop
		}
	}

	a.closeConn()

	// commands accepted before Stop must still complete
	for {
		select {
		case c := <-a.cmdChan:
			c.callback(mission.ResultError)
		default:
			return
		}
	}
}

func (a *Adapter) Stop() {
	a.mu.Lock()
	a.stopped = true
	a.mu.Unlock()

	a.stopChan <- true
}

func (a *Adapter) UploadMissionAsync(items []mission.MissionItem, callback mission.ResultCallback) {
	a.submit(&cmd{
		cmd:      cmdUploadMission,
		items:    items,
		callback: callback,
	})
}

func (a *Adapter) StartMissionAsync(callback mission.ResultCallback) {
	a.submit(&cmd{
		cmd:      cmdStartMission,
		callback: callback,
	})
}

func (a *Adapter) submit(c *cmd) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		go c.callback(mission.ResultError)
		return
	}

	select {
	case a.cmdChan <- c:
	default:
		a.logger.Warn().Str("cmd", c.cmd).Msg("command queue is full")
		go c.callback(mission.ResultBusy)
	}
}

func (a *Adapter) execute(c *cmd) mission.Result {
	if err := a.connect(); err != nil {
		a.logger.Error().Err(err).Msg("failed to connect to socket")
		return mission.ResultError
	}

	data, err := json.Marshal(&Request{
		Type:         rqTypeCmd,
		Cmd:          c.cmd,
		MissionItems: c.items,
	})
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to marshal request")
		return mission.ResultError
	}
	data = append(data, '\n')

	if a.ioTimeout > 0 {
		if err = a.conn.SetDeadline(time.Now().Add(a.ioTimeout)); err != nil {
			a.logger.Error().Err(err).Str("cmd", c.cmd).Msg("failed to set deadline")
			return a.ioFailure(err)
		}
	}

	if _, err = a.conn.Write(data); err != nil {
		a.logger.Error().Err(err).Str("cmd", c.cmd).Msg("failed to send request")
		return a.ioFailure(err)
	}

	line, err := a.reader.ReadBytes('\n')
	if err != nil {
		a.logger.Error().Err(err).Str("cmd", c.cmd).Msg("failed to receive response")
		return a.ioFailure(err)
	}

	var resp Response
	if err = json.Unmarshal(line, &resp); err != nil {
		a.logger.Error().Err(err).Msg("failed to unmarshal response")
		return mission.ResultError
	}

	result, ok := mission.ParseResult(resp.Result)
	if !ok {
		a.logger.Warn().Str("result", resp.Result).Msg("unknown result reported by vehicle")
	}

	return result
}

func (a *Adapter) connect() error {
	if a.conn != nil {
		return nil
	}

	conn, err := net.DialTimeout("unix", a.socketName, a.ioTimeout)
	if err != nil {
		return errors.Wrapf(err, "dial %s", a.socketName)
	}

	a.conn = conn
	a.reader = bufio.NewReader(conn)
	return nil
}

// ioFailure drops the connection, the stream position is unknown after a
// partial exchange.
func (a *Adapter) ioFailure(err error) mission.Result {
	a.closeConn()

	if errors.Is(err, os.ErrDeadlineExceeded) {
		return mission.ResultTimeout
	}
	return mission.ResultError
}

func (a *Adapter) closeConn() {
	if a.conn == nil {
		return
	}

	a.conn.Close()
	a.conn = nil
	a.reader = nil
}
