package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/idscan/internal/app/models"
	"github.com/yigit/idscan/internal/pkg/remoteapi"
)

// writeConfig points a file-backed store at a temp dir
func writeConfig(t *testing.T, remoteURL string) (configPath, dataPath string) {
	t.Helper()
	dir := t.TempDir()
	dataPath = filepath.Join(dir, "students.json")
	configPath = filepath.Join(dir, "config.yaml")

	cfg := fmt.Sprintf(`storage:
  driver: file
  path: %s
  key: students
remote:
  base_url: %q
  timeout: 5s
logging:
  level: error
`, dataPath, remoteURL)
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o600))
	return configPath, dataPath
}

func run(t *testing.T, configPath, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func listJSON(t *testing.T, configPath string) []models.StudentRecord {
	t.Helper()
	out, err := run(t, configPath, "", "list", "--json")
	require.NoError(t, err)
	var records []models.StudentRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	return records
}

func TestAddListRemove(t *testing.T) {
	cfg, dataPath := writeConfig(t, "")

	out, err := run(t, cfg, "", "add", "Alice Nguyen", "3901234", "--program", "BP162")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Alice Nguyen (3901234)")

	_, err = run(t, cfg, "", "add", "Bob Smith", "3900002")
	require.NoError(t, err)

	_, err = run(t, cfg, "", "add", "Somebody", "3901234")
	require.Error(t, err)
	assert.Equal(t, "This record already exists in the list.", err.Error())

	records := listJSON(t, cfg)
	require.Len(t, records, 2)
	assert.Equal(t, "Alice Nguyen", records[0].Name)
	assert.Equal(t, "BP162", records[0].Program)

	raw, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "3900002")

	out, err = run(t, cfg, "", "list", "--search", "smith")
	require.NoError(t, err)
	assert.Contains(t, out, "Bob Smith")
	assert.NotContains(t, out, "Alice Nguyen")

	out, err = run(t, cfg, "", "remove", records[0].ID, "missing")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed "+records[0].ID)
	assert.Contains(t, out, "No record missing")
	assert.Len(t, listJSON(t, cfg), 1)
}

func TestEdit(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	_, err := run(t, cfg, "", "add", "Alice", "3901234", "-p", "BP162")
	require.NoError(t, err)
	id := listJSON(t, cfg)[0].ID

	_, err = run(t, cfg, "", "edit", id, "--name", "Alice Nguyen")
	require.NoError(t, err)

	rec := listJSON(t, cfg)[0]
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "Alice Nguyen", rec.Name)
	assert.Equal(t, "3901234", rec.StudentNumber)
	assert.Equal(t, "BP162", rec.Program)

	_, err = run(t, cfg, "", "edit", "nope", "--name", "X")
	assert.Error(t, err)
}

func TestClearRequiresConfirmation(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	_, err := run(t, cfg, "", "add", "Alice", "3901234")
	require.NoError(t, err)

	_, err = run(t, cfg, "", "clear")
	require.Error(t, err)
	assert.Len(t, listJSON(t, cfg), 1)

	out, err := run(t, cfg, "", "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 1 student(s)")
	assert.Empty(t, listJSON(t, cfg))
}

func TestScan(t *testing.T) {
	cfg, _ := writeConfig(t, "")

	out, err := run(t, cfg, "", "scan", "Alice Nguen", "3901234")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "INSERT"))

	out, err = run(t, cfg, "", "scan", "Alice Nguyen", "3901234")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "MERGE"))

	_, err = run(t, cfg, "", "scan", "alice nguyen", "3901234")
	require.Error(t, err)

	out, err = run(t, cfg, "RMIT UNIVERSITY\nBOB SMITH\n3900002\n", "scan", "--text", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "INSERT Bob Smith (3900002)")

	assert.Len(t, listJSON(t, cfg), 2)
}

func TestParse(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("Student\nMary McAllister 7654321\n"))
	cmd.SetArgs([]string{"parse"})
	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{"name":"Mary McAllister","studentNumber":"7654321"}`, out.String())

	cmd = NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("no id here"))
	cmd.SetArgs([]string{"parse"})
	assert.Error(t, cmd.Execute())
}

func TestExport(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	_, err := run(t, cfg, "", "add", "Alice", "3901234", "-p", "BP162")
	require.NoError(t, err)

	out, err := run(t, cfg, "", "export")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Name,Student Number,Program,Timestamp\nAlice,3901234,BP162,"))

	dir := t.TempDir()
	out, err = run(t, cfg, "", "export", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 student(s)")

	data, err := os.ReadFile(filepath.Join(dir, "CapturedStudents.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Alice,3901234,BP162,")
}

func TestUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != remoteapi.StudentsPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["studentNumber"] == "3900002" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	cfg, _ := writeConfig(t, srv.URL)
	for _, args := range [][]string{{"Alice", "3900001"}, {"Bob", "3900002"}, {"Carol", "3900003"}} {
		_, err := run(t, cfg, "", append([]string{"add"}, args...)...)
		require.NoError(t, err)
	}

	out, err := run(t, cfg, "", "upload")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully uploaded 2 student(s)")
	assert.Contains(t, out, "1 student(s) remain for retry")

	records := listJSON(t, cfg)
	require.Len(t, records, 1)
	assert.Equal(t, "3900002", records[0].StudentNumber)
}

func TestAddRejectsOverlongFields(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	_, err := run(t, cfg, "", "add", "Alice", strings.Repeat("9", 51))
	require.Error(t, err)
	assert.Equal(t, "StudentNumber must be at most 50", err.Error())
	assert.Empty(t, listJSON(t, cfg))
}
