package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/MikeSquared-Agency/anderson/internal/agent"
	"github.com/MikeSquared-Agency/anderson/internal/gateway"
)

type Server struct {
	router *chi.Mux
	port   int
	agent  *agent.Agent
	llm    *gateway.Client
	logger *slog.Logger
}

func NewServer(port int, a *agent.Agent, llm *gateway.Client, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		port:   port,
		agent:  a,
		llm:    llm,
		logger: logger,
	}

	router.Get("/", s.index)
	router.Post("/chat", s.chat)
	router.Get("/history", s.history)
	router.Get("/health", s.health)
	router.Get("/api/v1/anderson/status", s.status)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Prompt == "" {
		respondError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	reply, err := s.agent.Handle(r.Context(), req.Prompt)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func (s *Server) history(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.agent.History())
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// status reports connectivity diagnostics; it reads no chat state.
func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	gatewayStatus := "ok"
	if err := s.llm.ListModels(ctx); err != nil {
		s.logger.Warn("gateway probe failed", "error", err)
		gatewayStatus = fmt.Sprintf("failed: %s", err)
	}

	dnsStatus := "ok"
	if _, err := net.DefaultResolver.LookupHost(ctx, "google.com"); err != nil {
		dnsStatus = "failed"
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"agent":   "anderson",
		"model":   s.llm.Model(),
		"gateway": gatewayStatus,
		"dns":     dnsStatus,
	})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
