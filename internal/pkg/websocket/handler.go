package websocket

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/idscan/internal/app/models"
	"github.com/yigit/idscan/internal/pkg/apperrors"
	"github.com/yigit/idscan/internal/pkg/validation"
)

// ScanProcessor reconciles capture events into the student list
type ScanProcessor interface {
	Scan(ctx context.Context, in models.ScanInput) (models.Decision, models.StudentRecord, error)
	ScanText(ctx context.Context, text string) (models.Decision, models.StudentRecord, error)
}

// Handler upgrades scan feed connections
type Handler struct {
	hub    *Hub
	scans  ScanProcessor
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, scans ScanProcessor, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		scans:  scans,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Open the live scan feed
// @Description Upgrades to a WebSocket. Clients send {"type":"scan",...} or {"type":"text","text":...}; the sender gets a scan_result and every client gets list_changed after each mutation.
// @Tags scans
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Router /scans/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:     h.hub,
		conn:    conn,
		send:    make(chan []byte, 256),
		process: h.Process,
		addr:    conn.RemoteAddr().String(),
		logger:  h.logger,
	}

	select {
	case h.hub.register <- client:
	case <-h.hub.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().Str("remoteAddr", client.addr).Msg("WebSocket connection established")
}

// Process reconciles one inbound message and builds the sender's reply
func (h *Handler) Process(ctx context.Context, msg Inbound) Outbound {
	var (
		decision models.Decision
		rec      models.StudentRecord
		err      error
	)

	switch msg.Type {
	case TypeScan:
		in := msg.ScanInput()
		if err := validation.StudentFields(in.Name, in.StudentNumber, in.Program); err != nil {
			return Outbound{Type: TypeScanResult, Error: apperrors.Message(err)}
		}
		decision, rec, err = h.scans.Scan(ctx, in)
	case TypeText:
		rule := validation.NewStringValidation("Text", msg.Text).WithMaxLength(validation.OCRTextMaxLength)
		if err := rule.Validate(); err != nil {
			return Outbound{Type: TypeScanResult, Error: apperrors.Message(err)}
		}
		decision, rec, err = h.scans.ScanText(ctx, msg.Text)
	default:
		return Outbound{Type: TypeError, Error: "Unknown message type"}
	}

	out := Outbound{Type: TypeScanResult, Action: decision.Action}
	if rec.ID != "" {
		out.Record = &rec
	}
	if err != nil {
		out.Error = apperrors.Message(err)
		if apperrors.Is(err, apperrors.ErrStorage) {
			out.Error = "Failed to save student list"
		}
	}
	return out
}
