// Package web exposes the corridor compositor over HTTP: an upload form
// page, a multipart upload endpoint and a JSON merge endpoint returning the
// composited PNG.
package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/corridorlab/corridor"
	"github.com/corridorlab/corridor/internal/store"
)

//go:embed index.html
var content embed.FS

// DefaultMaxUpload is the default upload size limit in bytes.
const DefaultMaxUpload = 32 << 20

// Config configures a Server.
type Config struct {
	// Store holds uploaded images. Required.
	Store store.Store

	// Compositor renders merges. Defaults to corridor.NewCompositor().
	Compositor *corridor.Compositor

	// MaxUpload caps the request body size of uploads in bytes.
	// Defaults to DefaultMaxUpload.
	MaxUpload int64

	// Logger receives request-level logs. Defaults to a silent logger.
	Logger *slog.Logger
}

// Server is the HTTP handler for the corridor service.
type Server struct {
	store     store.Store
	comp      *corridor.Compositor
	maxUpload int64
	log       *slog.Logger
	index     *template.Template
	mux       *http.ServeMux
}

// New creates a Server.
func New(cfg Config) *Server {
	if cfg.Compositor == nil {
		cfg.Compositor = corridor.NewCompositor()
	}
	if cfg.MaxUpload <= 0 {
		cfg.MaxUpload = DefaultMaxUpload
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		store:     cfg.Store,
		comp:      cfg.Compositor,
		maxUpload: cfg.MaxUpload,
		log:       cfg.Logger,
		index:     template.Must(template.ParseFS(content, "index.html")),
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /upload", s.handleUpload)
	s.mux.HandleFunc("POST /merge", s.handleMerge)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.index.Execute(w, nil); err != nil {
		s.log.Error("render index", "err", err)
	}
}

// uploadResponse is the JSON body returned by a successful upload.
type uploadResponse struct {
	ImageID string `json:"image_id"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// handleUpload receives a multipart form upload with an image file, saves
// it under a fresh identifier and returns the identifier and natural size.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, "no file part")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.jsonError(w, http.StatusBadRequest, "no selected file")
		return
	}
	ext := filepath.Ext(header.Filename)
	if !store.AllowedExt(ext) {
		s.jsonError(w, http.StatusBadRequest, fmt.Sprintf("file type not allowed: %s", ext))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	id, err := s.store.Save(data, ext)
	if err != nil {
		s.log.Error("save upload", "err", err)
		s.jsonError(w, http.StatusInternalServerError, "could not store upload")
		return
	}

	// Validate it decodes as an image and report its natural size.
	width, height, err := corridor.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		_ = s.store.Remove(id)
		s.jsonError(w, http.StatusBadRequest, fmt.Sprintf("invalid image: %v", err))
		return
	}

	s.log.Info("image uploaded", "id", id, "width", width, "height", height, "bytes", len(data))
	s.writeJSON(w, http.StatusOK, uploadResponse{ImageID: id, Width: width, Height: height})
}

// mergeRequest is the JSON body accepted by the merge endpoint. The fade
// and marker fields are pointers so absent values fall back to defaults
// before clamping.
type mergeRequest struct {
	ImageID     string         `json:"image_id"`
	Points      []pointPayload `json:"points"`
	CorridorPx  int            `json:"corridor_px"`
	OutsideFade *float64       `json:"outside_fade"`
	MarkerAlpha *float64       `json:"marker_alpha"`
}

type pointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// handleMerge renders the corridor composite for a stored image and
// returns it as a PNG attachment.
func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.ImageID == "" || len(req.Points) == 0 || req.CorridorPx <= 0 {
		s.jsonError(w, http.StatusBadRequest, "missing image_id, points, or corridor_px")
		return
	}

	style := corridor.DefaultStyle(req.CorridorPx)
	if req.OutsideFade != nil {
		style.OutsideFade = *req.OutsideFade
	}
	if req.MarkerAlpha != nil {
		style.MarkerAlpha = *req.MarkerAlpha
	}

	path := make([]corridor.Point, len(req.Points))
	for i, p := range req.Points {
		path[i] = corridor.Point{X: p.X, Y: p.Y}
	}

	data, err := s.store.Load(req.ImageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.jsonError(w, http.StatusNotFound, "image not found")
			return
		}
		s.log.Error("load upload", "id", req.ImageID, "err", err)
		s.jsonError(w, http.StatusInternalServerError, "could not load image")
		return
	}

	png, err := s.comp.CompositePNG(bytes.NewReader(data), path, style)
	if err != nil {
		s.mergeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="corridor_masked.png"`)
	if _, err := w.Write(png); err != nil {
		s.log.Warn("write merge response", "err", err)
	}
}

// mergeError maps compositor errors to HTTP statuses: bad input is the
// caller's fault, anything else is ours.
func (s *Server) mergeError(w http.ResponseWriter, err error) {
	var inErr *corridor.InputError
	if errors.As(err, &inErr) {
		s.jsonError(w, http.StatusBadRequest, inErr.Error())
		return
	}
	s.log.Error("merge failed", "err", err)
	s.jsonError(w, http.StatusInternalServerError, "merge failed")
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("write json response", "err", err)
	}
}

func (s *Server) jsonError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
