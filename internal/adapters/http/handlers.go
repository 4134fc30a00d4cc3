// Package httpadapter exposes the solver, generator, hinter and storage as a
// JSON API. Puzzle payloads travel in the canonical 81-character form.
package httpadapter

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/rmerry/dusudoku/internal/domain"
	"github.com/rmerry/dusudoku/internal/solver"
	"github.com/rmerry/dusudoku/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Routes builds the API router. Middlewares (logging etc.) are the caller's.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/api/solve", h.handleSolve)
	r.Post("/api/validate", h.handleValidate)
	r.Post("/api/generate", h.handleGenerate)
	r.Post("/api/hint", h.handleHint)
	r.Post("/api/save", h.handleSave)
	r.Get("/api/load/{id}", h.handleLoad)
	r.Get("/api/list", h.handleList)
	return r
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, map[string]string{"error": msg})
}

// ---- Solve ----

type solveReq struct {
	Puzzle string `json:"puzzle"`
}

type solveResp struct {
	Solvable   bool   `json:"solvable"`
	Solution   string `json:"solution,omitempty"`
	DurationMs int64  `json:"durationMs"`
	Nodes      int    `json:"nodes"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	st, err := h.UC.Parse(r.Context(), req.Puzzle)
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}
	out, stats, err := h.UC.Solve(r.Context(), st)
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) {
			render.JSON(w, r, solveResp{Solvable: false, DurationMs: stats.Duration.Milliseconds(), Nodes: stats.Nodes})
			return
		}
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}
	render.JSON(w, r, solveResp{
		Solvable:   true,
		Solution:   out.String(),
		DurationMs: stats.Duration.Milliseconds(),
		Nodes:      stats.Nodes,
	})
}

// ---- Validate ----

type validateResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if _, err := h.UC.Parse(r.Context(), req.Puzzle); err != nil {
		render.JSON(w, r, validateResp{OK: false, Error: err.Error()})
		return
	}
	render.JSON(w, r, validateResp{OK: true})
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle     string `json:"puzzle"`
	Seed       int64  `json:"seed"`
	Difficulty string `json:"difficulty"`
	DurationMs int64  `json:"durationMs"`
	Nodes      int    `json:"nodes"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, stats, err := h.UC.Generate(r.Context(), seed, diff)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}
	render.JSON(w, r, generateResp{
		Puzzle:     p.Givens,
		Seed:       seed,
		Difficulty: diff.String(),
		DurationMs: stats.Duration.Milliseconds(),
		Nodes:      stats.Nodes,
	})
}

// ---- Hint ----

type hintReq struct {
	Puzzle  string `json:"puzzle"`
	MaxTier string `json:"maxTier,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func parseTier(s string) domain.StrategyTier {
	switch s {
	case "pairs":
		return domain.StrategyPairs
	case "advanced":
		return domain.StrategyAdvanced
	default:
		return domain.StrategySingles
	}
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	st, err := h.UC.Parse(r.Context(), req.Puzzle)
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}
	hh, found, err := h.UC.Hint(r.Context(), st, parseTier(req.MaxTier))
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}
	render.JSON(w, r, hintResp{Found: found, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if err := render.DecodeJSON(r.Body, &p); err != nil {
		badRequest(w, r, "invalid JSON: "+err.Error())
		return
	}
	if _, err := h.UC.Parse(r.Context(), p.Givens); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}
	render.JSON(w, r, saveResp{ID: p.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.UC.Load(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		render.Status(r, status)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}
	render.JSON(w, r, p)
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ps, err := h.UC.List(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}
	render.JSON(w, r, listResp{Puzzles: ps})
}
