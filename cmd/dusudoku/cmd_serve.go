package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	httpadapter "github.com/rmerry/dusudoku/internal/adapters/http"
	"github.com/rmerry/dusudoku/internal/generator"
	"github.com/rmerry/dusudoku/internal/hint"
	"github.com/rmerry/dusudoku/internal/infrastructure/storage"
	"github.com/rmerry/dusudoku/internal/solver"
	"github.com/rmerry/dusudoku/internal/usecase"
	"github.com/rmerry/dusudoku/internal/validator"
)

var (
	serveAddr    string
	servePersist string
)

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver as a JSON API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	commandServe.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	commandServe.Flags().StringVar(&servePersist, "persist-path", "./data", "save directory")
	mainCommand.AddCommand(commandServe)
}

// requestLogger logs method, path, status, bytes, and duration per request.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("http",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"dur", time.Since(start).Round(time.Millisecond),
			)
		})
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Wire providers → use cases → HTTP adapter
	s := solver.NewBacktrackingSolver()
	uc := usecase.NewService(
		s,
		generator.NewUniqueGenerator(s),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(servePersist),
	)

	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Mount("/", httpadapter.New(uc).Routes())

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", serveAddr, "persist", servePersist)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
