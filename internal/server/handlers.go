package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ukaji3/excelviz-go/internal/session"
	"github.com/ukaji3/excelviz-go/pkg/excelviz"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/chart"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/ingest"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/logging"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/models"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/render"
)

const (
	// multipart framing allowance on top of the file size limit
	uploadOverhead = 1 << 20
	// form data kept in memory before spilling to temp files
	maxMemory = 32 << 20
)

type sessionResponse struct {
	ID        string             `json:"id"`
	File      models.FileInfo    `json:"file"`
	Columns   []string           `json:"columns"`
	RowCount  int                `json:"row_count"`
	Preview   models.Preview     `json:"preview"`
	Selection *session.Selection `json:"selection,omitempty"`
	Charts    []session.Chart    `json:"charts"`
}

type chartRequest struct {
	Kind  string `json:"kind"`
	XAxis string `json:"x_axis"`
	YAxis string `json:"y_axis"`
	Title string `json:"title"`
	Is3D  bool   `json:"is_3d"`
}

type selectionRequest struct {
	XAxis string `json:"x_axis"`
	YAxis string `json:"y_axis"`
}

type chartResponse struct {
	Index int `json:"index"`
	session.Chart
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, ingest.MaxFileSize+uploadOverhead)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, ingest.ErrFileTooLarge.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing form field \"file\"")
		return
	}
	defer file.Close()

	src := &uploadSource{file: file, header: header}
	ds, err := excelviz.Load(r.Context(), src)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	sess := s.store.Create(models.NewFileInfo(src.Name(), src.Size(), src.MIMEType()), ds)
	writeJSON(w, http.StatusCreated, s.sessionBody(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.sessionBody(sess))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSelectAxes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.Get(id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	var body selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := chart.ValidateAxes(sess.Dataset, body.XAxis, body.YAxis); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	if err := s.store.SelectAxes(id, body.XAxis, body.YAxis); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	sess, err = s.store.Get(id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.sessionBody(sess))
}

func (s *Server) handleCreateChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.Get(id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	var body chartRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req := excelviz.Request{XAxis: body.XAxis, YAxis: body.YAxis, Title: body.Title, ThreeD: body.Is3D}
	if body.Kind != "" {
		if req.Kind, err = chart.ParseKind(body.Kind); err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
	}
	if body.Is3D {
		req.Kind = models.KindBar
	}

	res := &excelviz.Result{Dataset: sess.Dataset}
	if err := excelviz.BuildChart(res, req, s.opts); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	entry := session.Chart{
		Kind:        req.Kind,
		ThreeD:      req.ThreeD,
		XAxis:       req.XAxis,
		YAxis:       req.YAxis,
		Description: res.Chart,
		Scene:       res.Scene,
	}
	if res.Chart != nil {
		entry.Kind = res.Chart.Kind
	}
	idx, err := s.store.SaveChart(id, entry)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	entry, _ = s.store.Chart(id, idx)

	logging.Logger().Info("chart created",
		slog.String("session", id),
		slog.String("kind", string(entry.Kind)),
		slog.Bool("3d", entry.ThreeD))
	writeJSON(w, http.StatusCreated, chartResponse{Index: idx, Chart: entry})
}

func (s *Server) handleChartImage(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "chart index must be a number")
		return
	}
	entry, err := s.store.Chart(chi.URLParam(r, "id"), index)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	if entry.Description == nil {
		writeError(w, http.StatusUnprocessableEntity, "3D scenes have no image export")
		return
	}

	q := r.URL.Query()
	format, err := render.ParseFormat(q.Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	size := render.Size{Width: queryInt(q.Get("width")), Height: queryInt(q.Get("height"))}

	var buf bytes.Buffer
	if err := render.Render(&buf, entry.Description, format, size); err != nil {
		logging.Logger().Warn("render failed", slog.Int("index", index), slog.Any("error", err))
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) sessionBody(sess *session.Session) sessionResponse {
	return sessionResponse{
		ID:        sess.ID,
		File:      sess.File,
		Columns:   sess.Dataset.Columns,
		RowCount:  sess.Dataset.RowCount,
		Preview:   sess.Dataset.Preview(s.opts.PreviewLimit()),
		Selection: sess.Selection,
		Charts:    sess.Charts,
	}
}

func queryInt(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
