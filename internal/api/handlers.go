package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vianieuws/perstool/internal/engine"
	"github.com/vianieuws/perstool/internal/extract"
	"github.com/vianieuws/perstool/internal/model"
	"github.com/vianieuws/perstool/internal/store"
)

// processResponse is the JSON shape of both process endpoints.
type processResponse struct {
	OK            bool           `json:"ok"`
	JobID         string         `json:"job_id,omitempty"`
	Signals       []model.Signal `json:"signals"`
	OutputText    string         `json:"output_txt,omitempty"`
	CleanedLength int            `json:"cleaned_length"`
	TechLog       string         `json:"tech_log,omitempty"`
}

// ---------------------------------------------------------------------------
// POST /api/process
// ---------------------------------------------------------------------------

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		// MaxBytesReader surfaces an oversized body through this path; any
		// other parse failure means the form itself is unreadable.
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.rejectSignal(w, model.CodeFileTooLarge)
			return
		}
		s.rejectSignal(w, model.CodeUnreadableFile)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.rejectSignal(w, model.CodeUnreadableFile)
		return
	}
	defer file.Close()

	if !extract.Supported(header.Filename) {
		s.rejectSignal(w, model.CodeUnreadableFile)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxUpload+1))
	if err != nil {
		s.rejectSignal(w, model.CodeUnreadableFile)
		return
	}
	if int64(len(data)) > s.maxUpload {
		s.rejectSignal(w, model.CodeFileTooLarge)
		return
	}

	raw, err := extract.Text(header.Filename, data)
	if err != nil {
		s.logger.Info("extraction failed", zap.String("filename", header.Filename), zap.Error(err))
		s.rejectSignal(w, model.CodeUnreadableFile)
		return
	}

	s.runJob(w, r, raw, started)
}

// ---------------------------------------------------------------------------
// POST /api/reprocess
// ---------------------------------------------------------------------------

type reprocessRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleReprocess(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req reprocessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	s.runJob(w, r, req.Text, started)
}

// runJob creates a job around the raw text, runs the orchestrator
// synchronously and persists the outcome.
func (s *Server) runJob(w http.ResponseWriter, r *http.Request, raw string, started time.Time) {
	ctx := r.Context()

	id := uuid.New().String()
	sourcePath := filepath.Join(s.spoolDir, id+".src.txt")
	if err := os.WriteFile(sourcePath, []byte(raw), 0o600); err != nil {
		s.logger.Error("write source artifact", zap.String("job_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}

	job := model.NewJob(id, sourcePath)
	if err := s.store.Put(ctx, job); err != nil {
		s.logger.Error("create job", zap.String("job_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create job")
		return
	}

	res := s.orch.Process(ctx, engine.Request{RawText: raw, Started: started})

	if !res.OK {
		if err := s.store.SetStatus(ctx, id, model.JobError, res.ErrorCode(), ""); err != nil {
			s.logger.Error("update job", zap.String("job_id", id), zap.Error(err))
		}
		writeJSON(w, http.StatusBadRequest, processResponse{
			OK:            false,
			JobID:         id,
			Signals:       res.Signals,
			CleanedLength: res.CleanedLength,
			TechLog:       res.TechLog,
		})
		return
	}

	outputPath := filepath.Join(s.spoolDir, id+".out.txt")
	if err := os.WriteFile(outputPath, []byte(res.OutputText), 0o600); err != nil {
		s.logger.Error("write output artifact", zap.String("job_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to store result")
		return
	}
	if err := s.store.SetStatus(ctx, id, model.JobProcessed, "", outputPath); err != nil {
		s.logger.Error("update job", zap.String("job_id", id), zap.Error(err))
	}

	writeJSON(w, http.StatusOK, processResponse{
		OK:            true,
		JobID:         id,
		Signals:       res.Signals,
		OutputText:    res.OutputText,
		CleanedLength: res.CleanedLength,
		TechLog:       res.TechLog,
	})
}

// rejectSignal answers an input error with its catalog signal.
func (s *Server) rejectSignal(w http.ResponseWriter, code string) {
	sig := model.NewSignal(code)
	writeJSON(w, http.StatusBadRequest, processResponse{
		OK:      false,
		Signals: []model.Signal{sig},
		TechLog: fmt.Sprintf("%d\t%s\trejected at upload", time.Now().Unix(), code),
	})
}

// ---------------------------------------------------------------------------
// GET /api/jobs/{id}
// ---------------------------------------------------------------------------

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	job, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get job")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// ---------------------------------------------------------------------------
// GET /api/jobs/{id}/download
// ---------------------------------------------------------------------------

// handleDownload streams the output artifact and consumes the job: after a
// successful download all artifacts are cleaned up.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	job, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get job")
		return
	}
	if job.Status != model.JobProcessed || job.OutputPath == "" {
		writeError(w, http.StatusConflict, "job has no downloadable result")
		return
	}

	content, err := os.ReadFile(job.OutputPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read result")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="nieuwsconcept.txt"`)
	w.WriteHeader(http.StatusOK)
	w.Write(content)

	if err := s.store.Cleanup(r.Context(), id); err != nil {
		s.logger.Warn("cleanup after download failed", zap.String("job_id", id), zap.Error(err))
	}
}

// ---------------------------------------------------------------------------
// GET /healthz
// ---------------------------------------------------------------------------

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
