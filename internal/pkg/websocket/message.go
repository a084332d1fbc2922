package websocket

import (
	"github.com/yigit/idscan/internal/app/models"
)

// Message types exchanged over the scan feed
const (
	TypeScan        = "scan"
	TypeText        = "text"
	TypeScanResult  = "scan_result"
	TypeListChanged = "list_changed"
	TypeError       = "error"
)

// Inbound is a capture event sent by a browser client. A "scan" carries the
// structured fields; a "text" carries raw OCR text.
type Inbound struct {
	Type          string `json:"type"`
	Name          string `json:"name,omitempty"`
	StudentNumber string `json:"studentNumber,omitempty"`
	Program       string `json:"program,omitempty"`
	Text          string `json:"text,omitempty"`
}

// ScanInput converts a "scan" message into the reconciliation input
func (m Inbound) ScanInput() models.ScanInput {
	return models.ScanInput{
		Name:          m.Name,
		StudentNumber: m.StudentNumber,
		Program:       m.Program,
	}
}

// Outbound is sent to clients: a scan_result to the sender, list_changed to
// everyone.
type Outbound struct {
	Type   string                 `json:"type"`
	Action models.ReconcileAction `json:"action,omitempty"`
	Record *models.StudentRecord  `json:"record,omitempty"`
	Error  string                 `json:"error,omitempty"`
	Count  *int                   `json:"count,omitempty"`
}

// ListChanged builds the broadcast sent after every committed list mutation
func ListChanged(count int) Outbound {
	return Outbound{Type: TypeListChanged, Count: &count}
}
