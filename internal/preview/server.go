// Package preview serves rendered exercise figures over HTTP.
//
// It is a development surface for the renderer: figures can be fetched in
// any registered drawing format at any progress, and SVG targets can be mounted and watched
// while the shared animation loop runs.
package preview

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/gogpu/figure"
	"github.com/gogpu/figure/catalog"
	"github.com/gogpu/figure/drawing"
	"github.com/gogpu/figure/illustrate"
)

// Size limits for rendered figures, in pixels of width.
const (
	DefaultSize = 240
	MinSize     = 16
	MaxSize     = 2048
)

var (
	errBadSize     = errors.New("size must be an integer between 16 and 2048")
	errBadProgress = errors.New("t must be a number between 0 and 1")
)

// Server is the preview HTTP service.
type Server struct {
	ctx     *illustrate.Context
	catalog *catalog.Catalog
	logger  *slog.Logger
	newID   func() string
	router  chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithCatalog sets the catalog listed by the service. It should be the one
// the illustrate context renders from.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Server) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator sets how mounted targets are named. The default is a
// random UUID.
func WithIDGenerator(fn func() string) Option {
	return func(s *Server) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New creates a server rendering through ctx.
func New(ctx *illustrate.Context, opts ...Option) *Server {
	s := &Server{
		ctx:     ctx,
		catalog: catalog.Default(),
		logger:  figure.Logger(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/categories", s.listCategories)

	r.Route("/exercises", func(r chi.Router) {
		r.Get("/", s.listExercises)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getExercise)
			r.Get("/figure.{format}", s.figure)
		})
	})

	r.Route("/targets", func(r chi.Router) {
		r.Post("/", s.mountTarget)
		r.Get("/{id}", s.getTarget)
		r.Delete("/{id}", s.unmountTarget)
	})

	r.Post("/animation/start", func(w http.ResponseWriter, _ *http.Request) {
		s.ctx.StartAnimations()
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/animation/stop", func(w http.ResponseWriter, _ *http.Request) {
		s.ctx.StopAnimations()
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("preview: request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}

type categoryJSON struct {
	ID    catalog.BodyPart `json:"id"`
	Label string           `json:"label"`
	Count int              `json:"count"`
}

type exerciseJSON struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	BodyPart      catalog.BodyPart `json:"bodyPart"`
	BodyPartLabel string           `json:"bodyPartLabel"`
	Sets          int              `json:"sets"`
	Reps          int              `json:"reps"`
	HoldSeconds   int              `json:"holdSeconds,omitempty"`
	Highlight     string           `json:"highlight"`
}

func summarize(ex catalog.Exercise) exerciseJSON {
	hl := ex.Start.Highlight
	if hl.Empty() {
		hl = ex.End.Highlight
	}
	return exerciseJSON{
		ID:            ex.ID,
		Name:          ex.Name,
		BodyPart:      ex.BodyPart,
		BodyPartLabel: ex.BodyPart.Label(),
		Sets:          ex.Sets,
		Reps:          ex.Reps,
		HoldSeconds:   ex.HoldSeconds,
		Highlight:     hl.String(),
	}
}

type targetJSON struct {
	InstanceID string `json:"instanceId"`
	ExerciseID string `json:"exerciseId"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func (s *Server) listCategories(w http.ResponseWriter, _ *http.Request) {
	cats := catalog.Categories()
	out := make([]categoryJSON, len(cats))
	for i, bp := range cats {
		out[i] = categoryJSON{ID: bp, Label: bp.Label(), Count: len(s.catalog.ByBodyPart(bp))}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) listExercises(w http.ResponseWriter, r *http.Request) {
	exercises := s.catalog.All()
	if q := r.URL.Query().Get("bodyPart"); q != "" {
		bp, ok := catalog.ParseBodyPart(q)
		if !ok {
			s.writeError(w, http.StatusBadRequest, errors.New("unknown body part "+strconv.Quote(q)))
			return
		}
		exercises = s.catalog.ByBodyPart(bp)
	}
	out := make([]exerciseJSON, len(exercises))
	for i, ex := range exercises {
		out[i] = summarize(ex)
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) getExercise(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.catalog.Get(chi.URLParam(r, "id"))
	if !ok {
		s.notFound(w)
		return
	}
	s.writeJSON(w, http.StatusOK, summarize(ex))
}

// renderRequest renders the figure named by the URL using the size, t and
// gender query parameters. It writes the error response itself and reports
// false on failure.
func (s *Server) renderRequest(w http.ResponseWriter, r *http.Request) (illustrate.Illustration, bool) {
	q := r.URL.Query()
	size := DefaultSize
	if v := q.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < MinSize || n > MaxSize {
			s.writeError(w, http.StatusBadRequest, errBadSize)
			return illustrate.Illustration{}, false
		}
		size = n
	}
	t := 0.0
	if v := q.Get("t"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			s.writeError(w, http.StatusBadRequest, errBadProgress)
			return illustrate.Illustration{}, false
		}
		t = f
	}
	var opts []illustrate.RenderOption
	if v := q.Get("gender"); v != "" {
		opts = append(opts, illustrate.ForGender(figure.ParseGender(v)))
	}
	if q.Get("caption") == "1" {
		opts = append(opts, illustrate.WithCaption())
	}

	ill, ok := s.ctx.RenderAt(chi.URLParam(r, "id"), size, t, opts...)
	if !ok {
		s.notFound(w)
		return illustrate.Illustration{}, false
	}
	return ill, true
}

// figure encodes the figure in any registered drawing format.
func (s *Server) figure(w http.ResponseWriter, r *http.Request) {
	f, err := drawing.LookupFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	ill, ok := s.renderRequest(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", f.ContentType)
	if err := ill.Encode(w, f.Name); err != nil {
		s.logger.Warn("preview: encode figure",
			slog.String("format", f.Name),
			slog.String("error", err.Error()))
	}
}

func (s *Server) mountTarget(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExerciseID string `json:"exerciseId"`
		Size       int    `json:"size"`
		Gender     string `json:"gender"`
		Caption    bool   `json:"caption"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Size == 0 {
		req.Size = DefaultSize
	}
	if req.Size < MinSize || req.Size > MaxSize {
		s.writeError(w, http.StatusBadRequest, errBadSize)
		return
	}
	opts := []illustrate.RenderOption{illustrate.WithInstanceID(s.newID())}
	if req.Gender != "" {
		opts = append(opts, illustrate.ForGender(figure.ParseGender(req.Gender)))
	}
	if req.Caption {
		opts = append(opts, illustrate.WithCaption())
	}
	ill, ok := s.ctx.Render(req.ExerciseID, req.Size, opts...)
	if !ok {
		s.notFound(w)
		return
	}
	tg, err := illustrate.NewSVGTarget(ill)
	if err != nil {
		s.logger.Warn("preview: mount", slog.String("error", err.Error()))
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.ctx.Mount(tg)
	s.logger.Info("preview: target mounted",
		slog.String("instance", ill.InstanceID),
		slog.String("exercise", ill.ExerciseID))

	w.Header().Set("Location", "/targets/"+ill.InstanceID)
	s.writeJSON(w, http.StatusCreated, targetJSON{InstanceID: ill.InstanceID, ExerciseID: ill.ExerciseID})
}

func (s *Server) getTarget(w http.ResponseWriter, r *http.Request) {
	tg, ok := s.ctx.Targets().Get(chi.URLParam(r, "id"))
	if !ok {
		s.notFound(w)
		return
	}
	st, ok := tg.(*illustrate.SVGTarget)
	if !ok {
		s.writeError(w, http.StatusNotAcceptable, errors.New("target has no SVG representation"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(st.Document()))
}

func (s *Server) unmountTarget(w http.ResponseWriter, r *http.Request) {
	if !s.ctx.Unmount(chi.URLParam(r, "id")) {
		s.notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) notFound(w http.ResponseWriter) {
	s.writeJSON(w, http.StatusNotFound, errorJSON{Error: "not found"})
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorJSON{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("preview: encode response", slog.String("error", err.Error()))
	}
}
