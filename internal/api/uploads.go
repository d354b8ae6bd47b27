package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/campusops/emptyrooms/internal/utils"
)

// UploadHandler handles document upload requests: the seating-plan
// document and the exam-schedule workbook
type UploadHandler struct {
	service      AvailabilityServicer
	dataDir      string
	defaultSheet string
}

// NewUploadHandler creates an upload handler saving documents under
// dataDir before processing
func NewUploadHandler(service AvailabilityServicer, dataDir, defaultSheet string) *UploadHandler {
	return &UploadHandler{
		service:      service,
		dataDir:      dataDir,
		defaultSheet: defaultSheet,
	}
}

// HandleSeatingPlan handles POST /api/seating-plan with a multipart
// "pdf" field carrying the seating-plan document
func (h *UploadHandler) HandleSeatingPlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		http.Error(w, "No PDF file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	path, err := h.saveUpload(file, header.Filename)
	if err != nil {
		log.Printf("Error saving upload %s: %v", utils.SanitizeLogString(header.Filename), err)
		http.Error(w, "Failed to save uploaded file", http.StatusInternalServerError)
		return
	}

	count, err := h.service.ProcessSeatingPlan(r.Context(), path)
	if err != nil {
		log.Printf("Error processing seating plan %s: %v", utils.SanitizeLogString(header.Filename), err)
		http.Error(w, "Failed to process seating plan", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message": "Seating plan processed successfully",
		"records": count,
	})
}

// HandleSchedule handles POST /api/schedule with a multipart "excel"
// field carrying the schedule workbook. An optional "sheet" value
// overrides the configured sheet name.
func (h *UploadHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("excel")
	if err != nil {
		http.Error(w, "No Excel file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	sheet := r.FormValue("sheet")
	if sheet == "" {
		sheet = h.defaultSheet
	}

	path, err := h.saveUpload(file, header.Filename)
	if err != nil {
		log.Printf("Error saving upload %s: %v", utils.SanitizeLogString(header.Filename), err)
		http.Error(w, "Failed to save uploaded file", http.StatusInternalServerError)
		return
	}

	count, err := h.service.ProcessSchedule(r.Context(), path, sheet)
	if err != nil {
		log.Printf("Error processing schedule %s: %v", utils.SanitizeLogString(header.Filename), err)
		http.Error(w, "Failed to process exam schedule", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message": "Exam schedule processed successfully",
		"entries": count,
	})
}

// saveUpload writes an uploaded file into the data directory, keeping
// only the base name of the client-supplied filename
func (h *UploadHandler) saveUpload(file multipart.File, filename string) (string, error) {
	if err := os.MkdirAll(h.dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(h.dataDir, filepath.Base(filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
