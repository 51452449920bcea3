package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pfrederiksen/ffcv-tracker/internal/calendar"
	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
	"github.com/pfrederiksen/ffcv-tracker/internal/logger"
)

//go:embed static
var staticFiles embed.FS

const shutdownTimeout = 10 * time.Second

// Error messages returned to clients
const (
	msgStandingsFailed = "Error al obtener la clasificación"
	msgRoundFailed     = "Error al obtener la jornada actual"
	msgCalendarFailed  = "Error al obtener el calendario"
)

// Source provides the competition records; *scraper.Scraper implements it
type Source interface {
	Standings(ctx context.Context) ([]competition.StandingEntry, error)
	Round(ctx context.Context) ([]competition.Match, error)
	Calendar(ctx context.Context) ([]competition.MatchdayGroup, error)
}

// Options configures a Server
type Options struct {
	CalendarName string         // X-WR-CALNAME of the ICS feed
	Location     *time.Location // zone of the provider's dates
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server serves the JSON API and the web UI
type Server struct {
	source Source
	opts   Options
}

// New creates a Server reading from source
func New(source Source, opts Options) *Server {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Server{source: source, opts: opts}
}

// Handler returns the routed handler wrapped in the middleware chain
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/clasificacion", s.handleStandings).Methods(http.MethodGet)
	api.HandleFunc("/jornada", s.handleRound).Methods(http.MethodGet)
	api.HandleFunc("/calendario", s.handleCalendar).Methods(http.MethodGet)
	api.HandleFunc("/calendario.ics", s.handleCalendarICS).Methods(http.MethodGet)
	api.HandleFunc("/metrics", handleMetrics).Methods(http.MethodGet)

	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("embedded static files: %v", err))
	}
	r.PathPrefix("/").Handler(http.FileServer(http.FS(static))).Methods(http.MethodGet, http.MethodHead)

	return RequestTracing(RecoverPanic(RequestLogging(CORS(r))))
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", logger.Fields{"addr": ln.Addr().String()})
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("http server shutting down", nil)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	entries, err := s.source.Standings(r.Context())
	if err != nil {
		writeError(w, r, msgStandingsFailed, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleRound(w http.ResponseWriter, r *http.Request) {
	matches, err := s.source.Round(r.Context())
	if err != nil {
		writeError(w, r, msgRoundFailed, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	groups, err := s.source.Calendar(r.Context())
	if err != nil {
		writeError(w, r, msgCalendarFailed, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleCalendarICS(w http.ResponseWriter, r *http.Request) {
	groups, err := s.source.Calendar(r.Context())
	if err != nil {
		writeError(w, r, msgCalendarFailed, err)
		return
	}

	body := calendar.GenerateICS(competition.HighlightedGroups(groups), calendar.Options{
		Name:     s.opts.CalendarName,
		Location: s.opts.Location,
	})

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="calendario.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func handleMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, logger.GetMetricsSnapshot())
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError logs the cause and answers 500 with a short client message
func writeError(w http.ResponseWriter, r *http.Request, message string, err error) {
	logger.Error(message, logger.Fields{"path": r.URL.Path}, err)
	logger.IncrCounter("http.errors")
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: message})
}
