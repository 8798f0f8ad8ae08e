package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/dsaviz/internal/evaluator"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/logging"
	"github.com/GriffinCanCode/dsaviz/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/dsaviz/internal/shared/id"
	"github.com/GriffinCanCode/dsaviz/internal/shared/types"
	"github.com/GriffinCanCode/dsaviz/internal/utils"
)

// Message types
const (
	TypeRun    = "run"
	TypePing   = "ping"
	TypePong   = "pong"
	TypeResult = "result"
	TypeError  = "error"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // UI is served from another origin
	},
}

// ClientMessage is sent by the editor
type ClientMessage struct {
	Type   string `json:"type"`
	ID     string `json:"id,omitempty"`
	Source string `json:"source,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

// ServerMessage is sent to the editor
type ServerMessage struct {
	Type      string                     `json:"type"`
	ID        string                     `json:"id,omitempty"`
	Result    *evaluator.ExecutionResult `json:"result,omitempty"`
	Message   string                     `json:"message,omitempty"`
	Timestamp int64                      `json:"timestamp"`
}

// Config tunes the stream
type Config struct {
	// Debounce delays each run so that rapid edits only run the last one
	Debounce       time.Duration
	MaxSourceBytes int
}

// Handler manages live stream connections
type Handler struct {
	evaluator *evaluator.Evaluator
	logger    *logging.Logger
	metrics   *monitoring.Metrics
	config    Config
}

// NewHandler creates a new WebSocket handler. metrics may be nil.
func NewHandler(ev *evaluator.Evaluator, logger *logging.Logger, metrics *monitoring.Metrics, config Config) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handler{
		evaluator: ev,
		logger:    logger.Named("stream"),
		metrics:   metrics,
		config:    config,
	}
}

// HandleConnection upgrades the request and serves messages until the
// client disconnects
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Debug("WebSocket upgrade failed", zap.Error(err))
		return
	}
	conn.SetReadLimit(utils.MaxStreamMessageSize)

	ctx, cancel := context.WithCancel(c.Request.Context())
	s := &session{
		id:      id.NewConnectionID(),
		handler: h,
		conn:    conn,
		ctx:     ctx,
	}
	s.log = h.logger.ForConnection(s.id.String())

	if h.metrics != nil {
		h.metrics.IncStreamConnections()
		defer h.metrics.DecStreamConnections()
	}
	s.log.Debug("stream connected")

	s.serve()

	cancel()
	s.wg.Wait()
	conn.Close()
	s.log.Debug("stream closed")
}

// session is one live connection. At most one run is pending or in flight.
type session struct {
	id      id.ConnectionID
	handler *Handler
	log     *logging.Logger
	conn    *websocket.Conn
	ctx     context.Context
	wg      sync.WaitGroup

	writeMu sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
}

func (s *session) serve() {
	for {
		var msg ClientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Debug("WebSocket read error", zap.Error(err))
			}
			return
		}
		s.record("in", msg.Type)

		switch msg.Type {
		case TypeRun:
			s.handleRun(msg)
		case TypePing:
			s.send(ServerMessage{Type: TypePong})
		default:
			s.sendError(msg.ID, "unknown message type")
		}
	}
}

func (s *session) handleRun(msg ClientMessage) {
	kind, err := utils.ValidateKind(msg.Kind)
	if err != nil {
		s.sendError(msg.ID, err.Error())
		return
	}
	if err := utils.ValidateSource(msg.Source, s.handler.config.MaxSourceBytes); err != nil {
		s.sendError(msg.ID, err.Error())
		return
	}
	s.schedule(msg, kind)
}

// schedule supersedes any pending or running request with msg
func (s *session) schedule(msg ClientMessage, kind types.Kind) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		timer := time.NewTimer(s.handler.config.Debounce)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		result := s.handler.evaluator.Run(ctx, msg.Source, kind)
		if !s.current(seq) || s.ctx.Err() != nil {
			return
		}
		s.send(ServerMessage{Type: TypeResult, ID: msg.ID, Result: &result})
	}()
}

func (s *session) current(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq == seq
}

func (s *session) send(msg ServerMessage) error {
	msg.Timestamp = time.Now().Unix()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := s.conn.WriteJSON(msg); err != nil {
		return err
	}
	s.record("out", msg.Type)
	return nil
}

func (s *session) sendError(msgID, message string) error {
	return s.send(ServerMessage{Type: TypeError, ID: msgID, Message: message})
}

func (s *session) record(direction, msgType string) {
	if s.handler.metrics != nil {
		s.handler.metrics.RecordStreamMessage(direction, msgType)
	}
}
