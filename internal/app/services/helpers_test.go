package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/idscan/internal/app/models"
	"github.com/yigit/idscan/internal/app/repositories"
)

var errDiskFull = errors.New("disk full")

// fakeClock advances one second on every reading
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 18, 15, 4, 5, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(time.Second)
	return t
}

// flakyRepository wraps a real repository and can be told to fail saves
type flakyRepository struct {
	*repositories.StudentListRepository
	failSaves bool
	saves     int
}

func (r *flakyRepository) Save(ctx context.Context, records []models.StudentRecord) error {
	r.saves++
	if r.failSaves {
		return errDiskFull
	}
	return r.StudentListRepository.Save(ctx, records)
}

func newTestFactory() *RecordFactory {
	f := NewRecordFactory("")
	f.WithClock(newFakeClock().Now)
	n := 0
	f.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return f
}

func newTestStore(t *testing.T) (*StudentStore, *flakyRepository) {
	t.Helper()
	repo := &flakyRepository{
		StudentListRepository: repositories.NewStudentListRepository(repositories.NewMemoryKV(), "students"),
	}
	store := NewStudentStore(repo, newTestFactory(), zerolog.Nop())
	require.NoError(t, store.Load(context.Background()))
	return store, repo
}

func seed(t *testing.T, store *StudentStore, inputs ...models.StudentInput) []models.StudentRecord {
	t.Helper()
	out := make([]models.StudentRecord, 0, len(inputs))
	for _, in := range inputs {
		rec, err := store.Add(context.Background(), in)
		require.NoError(t, err)
		out = append(out, rec)
	}
	return out
}
