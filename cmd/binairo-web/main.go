package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "svw.info/binairo/internal/adapters/http"
	"svw.info/binairo/internal/generator"
	"svw.info/binairo/internal/hint"
	"svw.info/binairo/internal/infrastructure/storage"
	"svw.info/binairo/internal/ports"
	"svw.info/binairo/internal/solver"
	"svw.info/binairo/internal/usecase"
	"svw.info/binairo/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func newSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	case "fc", "forward-checking":
		return solver.NewForwardCheckingSolver()
	case "ac3":
		return solver.NewAC3Solver()
	case "ac4":
		return solver.NewAC4Solver()
	case "mac":
		return solver.NewMACSolver()
	default:
		return solver.NewHeuristicSolver()
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	persist := flag.String("persist-path", "./data", "save directory")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	solverKind := flag.String("solver", "heuristic", "solver to use: backtrack|fc|ac3|ac4|heuristic|mac")
	seed := flag.Int64("seed", 0, "generator seed (0 = time-based)")
	unique := flag.Bool("unique", false, "generated puzzles must have a unique solution")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(*persist, 0o755)

	s := newSolver(*solverKind)
	genSeed := *seed
	if genSeed == 0 {
		genSeed = time.Now().UnixNano()
	}

	// Wire providers → use cases → HTTP adapter
	g := generator.New(s, &generator.Options{Seed: genSeed, RequireUnique: *unique})
	v := validator.New(s)
	st := storage.NewFS(*persist)
	hin := hint.NewSingles()
	uc := usecase.NewService(s, g, v, hin, st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "persist", *persist, "solver", s.Name(), "seed", genSeed)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
