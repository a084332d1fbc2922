package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/idscan/internal/app/models"
	"github.com/yigit/idscan/internal/app/repositories"
	"github.com/yigit/idscan/internal/app/services"
)

func newFeed(t *testing.T) (*httptest.Server, *Hub, *services.StudentStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repositories.NewStudentListRepository(repositories.NewMemoryKV(), "students")
	store := services.NewStudentStore(repo, services.NewRecordFactory(""), zerolog.Nop())
	require.NoError(t, store.Load(context.Background()))

	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	store.Subscribe(hub.NotifyListChanged)

	r := gin.New()
	r.GET("/ws", NewHandler(hub, services.NewScanService(store, nil), zerolog.Nop()).HandleConnection)
	srv := httptest.NewServer(r)

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return srv, hub, store
}

func dial(t *testing.T, srv *httptest.Server) *gorilla.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readOutbound(t *testing.T, conn *gorilla.Conn) Outbound {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var out Outbound
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

// readTypes reads n messages and indexes them by type
func readTypes(t *testing.T, conn *gorilla.Conn, n int) map[string]Outbound {
	t.Helper()
	got := make(map[string]Outbound, n)
	for i := 0; i < n; i++ {
		out := readOutbound(t, conn)
		got[out.Type] = out
	}
	return got
}

func TestScanFeed_ScanAndBroadcast(t *testing.T) {
	srv, hub, store := newFeed(t)
	scanner := dial(t, srv)
	watcher := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ClientsCount() == 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, scanner.WriteJSON(Inbound{Type: TypeScan, Name: "Alice", StudentNumber: "001"}))

	got := readTypes(t, scanner, 2)
	require.Contains(t, got, TypeScanResult)
	require.Contains(t, got, TypeListChanged)
	assert.Equal(t, models.ActionInsert, got[TypeScanResult].Action)
	require.NotNil(t, got[TypeScanResult].Record)
	assert.Equal(t, "Alice", got[TypeScanResult].Record.Name)
	assert.Equal(t, 1, *got[TypeListChanged].Count)

	broadcast := readOutbound(t, watcher)
	assert.Equal(t, TypeListChanged, broadcast.Type)
	assert.Equal(t, 1, store.Count())
}

func TestScanFeed_DuplicateAndText(t *testing.T) {
	srv, _, store := newFeed(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteJSON(Inbound{Type: TypeText, Text: "RMIT UNIVERSITY\nJOHN SMITH\n1234567"}))
	got := readTypes(t, conn, 2)
	require.NotNil(t, got[TypeScanResult].Record)
	assert.Equal(t, "John Smith", got[TypeScanResult].Record.Name)

	require.NoError(t, conn.WriteJSON(Inbound{Type: TypeScan, Name: "john smith", StudentNumber: "1234567"}))
	dup := readOutbound(t, conn)
	assert.Equal(t, TypeScanResult, dup.Type)
	assert.Equal(t, models.ActionReject, dup.Action)
	assert.Equal(t, "This record already exists in the list.", dup.Error)
	assert.Equal(t, 1, store.Count())
}

func TestScanFeed_BadMessages(t *testing.T) {
	srv, _, _ := newFeed(t)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteMessage(gorilla.TextMessage, []byte("{oops")))
	out := readOutbound(t, conn)
	assert.Equal(t, TypeError, out.Type)

	require.NoError(t, conn.WriteJSON(Inbound{Type: "dance"}))
	out = readOutbound(t, conn)
	assert.Equal(t, "Unknown message type", out.Error)

	require.NoError(t, conn.WriteJSON(Inbound{Type: TypeText, Text: "no id here"}))
	out = readOutbound(t, conn)
	assert.Equal(t, "No match found in the provided ID data", out.Error)
}

// countingScans records how often reconciliation was reached
type countingScans struct {
	scans, texts int
}

func (c *countingScans) Scan(ctx context.Context, in models.ScanInput) (models.Decision, models.StudentRecord, error) {
	c.scans++
	return models.Decision{Action: models.ActionInsert, Index: -1}, models.StudentRecord{ID: "id-1"}, nil
}

func (c *countingScans) ScanText(ctx context.Context, text string) (models.Decision, models.StudentRecord, error) {
	c.texts++
	return models.Decision{Action: models.ActionInsert, Index: -1}, models.StudentRecord{ID: "id-1"}, nil
}

func TestHandler_ProcessEnforcesFieldLimits(t *testing.T) {
	scans := &countingScans{}
	h := NewHandler(NewHub(zerolog.Nop()), scans, zerolog.Nop())
	ctx := context.Background()

	out := h.Process(ctx, Inbound{Type: TypeText, Text: strings.Repeat("A", 20001)})
	assert.Equal(t, TypeScanResult, out.Type)
	assert.Equal(t, "Text must be at most 20000", out.Error)
	assert.Nil(t, out.Record)
	assert.Zero(t, scans.texts)

	out = h.Process(ctx, Inbound{Type: TypeScan, Name: "Alice", StudentNumber: strings.Repeat("1", 51)})
	assert.Equal(t, "StudentNumber must be at most 50", out.Error)
	assert.Zero(t, scans.scans)

	out = h.Process(ctx, Inbound{Type: TypeText, Text: strings.Repeat("A", 20000)})
	assert.Empty(t, out.Error)
	assert.Equal(t, 1, scans.texts)

	out = h.Process(ctx, Inbound{Type: TypeScan, Name: "Alice", StudentNumber: "3901234"})
	assert.Empty(t, out.Error)
	require.NotNil(t, out.Record)
	assert.Equal(t, 1, scans.scans)
}

func TestHub_BroadcastWithoutClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	for i := 0; i < 200; i++ {
		hub.NotifyListChanged(i)
	}
	assert.Zero(t, hub.ClientsCount())
}
