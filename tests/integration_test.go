package tests

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/emptyrooms/internal/api"
	"github.com/campusops/emptyrooms/internal/config"
	"github.com/campusops/emptyrooms/internal/repository/memory"
	"github.com/campusops/emptyrooms/internal/service"
)

// fixedTextExtractor stands in for the pdftotext collaborator
type fixedTextExtractor struct {
	text string
}

func (f fixedTextExtractor) Extract(ctx context.Context, path string) (string, error) {
	return f.text, nil
}

// fixedGridLoader stands in for the workbook collaborator
type fixedGridLoader struct {
	grid [][]string
}

func (f fixedGridLoader) LoadGrid(path, sheet string) ([][]string, error) {
	return f.grid, nil
}

const seatingPlanText = "CS1234 - Intro to CS MDS-3A Room No. B-230 5th Floor " +
	"CY1101 - Chemistry BCY-5A Room No. A-110 1st Floor"

var scheduleGrid = [][]string{
	{"", "9:00 to 11:00 am", "11:30 am to 1:30 pm"},
	{"Mon, 12 May", "CS1234 Algorithms MDS-3A", "CY1101 CY(CY)-A"},
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dataDir := t.TempDir()
	roomsFile := filepath.Join(dataDir, "classrooms.txt")
	registry := "B-230\nA-110\nC-305\nLocked: storage\nD-401\n"
	require.NoError(t, os.WriteFile(roomsFile, []byte(registry), 0o644))

	svc := service.NewAvailabilityService(
		memory.NewRepository(),
		fixedTextExtractor{text: seatingPlanText},
		fixedGridLoader{grid: scheduleGrid},
		roomsFile,
	)

	mux := api.SetupRoutes(svc, config.ServerConfig{
		DataDir:       dataDir,
		RoomsFile:     roomsFile,
		ScheduleSheet: "Sheet1",
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func uploadFile(t *testing.T, url, field, filename string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("document bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(url, writer.FormDataContentType(), &buf)
	require.NoError(t, err)
	return resp
}

func TestUploadAndComputeFlow(t *testing.T) {
	server := newTestServer(t)

	// Availability before any upload is a conflict, not a crash
	resp, err := http.Get(server.URL + "/api/empty-rooms")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Upload both documents
	resp = uploadFile(t, server.URL+"/api/seating-plan", "pdf", "seating_plan.pdf")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = uploadFile(t, server.URL+"/api/schedule", "excel", "exam_schedule.xlsx")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The availability now joins both record sets
	resp, err = http.Get(server.URL + "/api/empty-rooms")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// CS1234/MDS-3A occupies B-230 in the morning slot, CY1101/CY-A
	// occupies A-110 before lunch; rooms after the Locked: marker
	// never appear
	assert.JSONEq(t, `{
		"9:00 to 11:00 am": ["A-110", "C-305"],
		"11:30 am to 1:30 pm": ["B-230", "C-305"]
	}`, string(body))
	assert.NotContains(t, string(body), "D-401")

	// Chronological key order in the raw payload
	assert.Regexp(t, `(?s)9:00 to 11:00 am.*11:30 am to 1:30 pm`, string(body))

	// The stored assignments round-trip out as CSV
	resp, err = http.Get(server.URL + "/api/export/assignments.csv")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))

	csvBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(csvBody), "Room,Course Code,Section")
	assert.Contains(t, string(csvBody), "B-230,CS1234,MDS-3A")
}

func TestUploadMissingFieldRejected(t *testing.T) {
	server := newTestServer(t)

	resp := uploadFile(t, server.URL+"/api/seating-plan", "not-pdf", "x.pdf")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
}
