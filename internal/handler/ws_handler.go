package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/Azad-roy/Online-Exam-System/internal/attempt"
	"github.com/Azad-roy/Online-Exam-System/internal/middleware"
	"github.com/Azad-roy/Online-Exam-System/internal/response"
	"github.com/Azad-roy/Online-Exam-System/internal/service"
	ws "github.com/Azad-roy/Online-Exam-System/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// WSHandler streams a live attempt over a WebSocket: a one-second tick
// push plus answer/submit actions mirroring the HTTP surface.
type WSHandler struct {
	attemptService *service.AttemptService
	upgrader       websocket.Upgrader
	log            zerolog.Logger
}

// NewWSHandler creates a new WSHandler. The upgrader only accepts
// origins from the CORS allow-list.
func NewWSHandler(attemptService *service.AttemptService, allowedOrigins []string, log zerolog.Logger) *WSHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &WSHandler{
		attemptService: attemptService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin] || allowed["*"]
			},
		},
		log: log.With().Str("component", "ws_handler").Logger(),
	}
}

// AttemptStream godoc
// GET /ws/v1/student/attempts/:attempt_id/stream?token=...
// Attaches to the caller's live attempt. The server pushes a tick every
// second and a terminal submitted event; the client sends answer,
// submit, and ping actions.
func (h *WSHandler) AttemptStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	attemptID, err := uuid.Parse(c.Param("attempt_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	a, err := h.attemptService.Get(attemptID, claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrAttemptNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	sess := &wsSession{conn: conn, attempt: a, log: h.log}
	sess.run()
}

// wsSession serializes all writes to one socket; the tick pusher and
// the action reader run concurrently.
type wsSession struct {
	conn    *websocket.Conn
	attempt *attempt.Attempt
	log     zerolog.Logger

	writeMu sync.Mutex
	once    sync.Once
	done    chan struct{}
}

func (s *wsSession) run() {
	s.done = make(chan struct{})
	defer s.conn.Close()

	go s.pushTicks()
	s.readActions()
	s.close()
}

func (s *wsSession) close() {
	s.once.Do(func() { close(s.done) })
}

func (s *wsSession) write(v interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return ws.WriteTyped(s.conn, v)
}

func (s *wsSession) writeError(msg string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	ws.WriteError(s.conn, msg)
}

// pushTicks sends the remaining time once a second and the terminal
// submitted event when the attempt finishes, whatever finished it.
func (s *wsSession) pushTicks() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			snap := s.attempt.Snapshot()

			if snap.State == attempt.StateSubmitted {
				if snap.Result != nil {
					s.write(ws.SubmittedResponse{
						Event: ws.EventSubmitted,
						Result: gin.H{
							"result":   snap.Result,
							"feedback": service.Feedback(snap.Result.Percentage),
						},
					})
				}
				s.close()
				s.conn.Close()
				return
			}

			if err := s.write(ws.TickResponse{
				Event:            ws.EventTick,
				RemainingSeconds: snap.RemainingSeconds,
			}); err != nil {
				s.close()
				return
			}
		}
	}
}

func (s *wsSession) readActions() {
	for {
		select {
		case <-s.done:
			return
		default:
		}

		var req ws.RequestPayload
		if err := ws.ReadJSON(s.conn, &req); err != nil {
			return
		}

		switch req.Action {
		case ws.ActionPing:
			s.write(ws.PongResponse{Event: ws.EventPong})

		case ws.ActionAnswer:
			questionID, err := uuid.Parse(req.QuestionID)
			if err != nil {
				s.writeError("invalid question id")
				continue
			}
			if err := s.attempt.SelectAnswer(questionID, req.Option); err != nil {
				s.writeError("attempt already finished")
				continue
			}
			s.write(ws.AnswerResponse{Event: ws.EventSuccess, Status: "saved"})

		case ws.ActionSubmit:
			res, err := s.attempt.Submit()
			if err != nil && res == nil {
				s.writeError("attempt already finished")
				continue
			}
			s.write(ws.SubmittedResponse{
				Event: ws.EventSubmitted,
				Result: gin.H{
					"result":   res,
					"feedback": service.Feedback(res.Percentage),
				},
			})
			s.close()
			return

		default:
			s.writeError("unknown action")
		}
	}
}
