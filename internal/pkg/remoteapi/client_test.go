package remoteapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/idscan/internal/app/models"
)

func TestClient_UploadStudent(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, StudentsPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL+"/", time.Second, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, srv.URL+StudentsPath, c.Endpoint())

	err = c.UploadStudent(context.Background(), models.StudentRecord{
		ID: "local-id", Name: "Alice", StudentNumber: "001", Program: "CS", Timestamp: "t",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"name": "Alice", "studentNumber": "001", "program": "CS", "timestamp": "t",
	}, got, "identifier is not sent")
}

func TestClient_UploadStudent_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "duplicate", http.StatusConflict)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, time.Second, zerolog.Nop())
	require.NoError(t, err)

	err = c.UploadStudent(context.Background(), models.StudentRecord{Name: "A", StudentNumber: "1"})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
	assert.Equal(t, "duplicate", statusErr.Body)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(url, time.Second, zerolog.Nop())
	require.NoError(t, err)

	assert.Error(t, c.UploadStudent(context.Background(), models.StudentRecord{Name: "A", StudentNumber: "1"}))
}

func TestNewClient_NotConfigured(t *testing.T) {
	_, err := NewClient("  ", time.Second, zerolog.Nop())
	assert.ErrorIs(t, err, ErrNotConfigured)
}
