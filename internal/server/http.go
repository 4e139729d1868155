package server

import (
	"cognitive-tactics/internal/domain"
	"cognitive-tactics/internal/network"
	"cognitive-tactics/internal/version"
	"cognitive-tactics/pkg/api"
	"cognitive-tactics/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"
)

// CommandSink принимает команды игрока из сети (systems.ChannelController).
type CommandSink interface {
	Submit(cmd domain.Command) bool
}

type Server struct {
	Hub      *network.Broadcaster
	Commands CommandSink
	Port     string

	mu    sync.RWMutex
	state api.ServerResponse
}

func New(hub *network.Broadcaster, commands CommandSink, port string) *Server {
	return &Server{
		Hub:      hub,
		Commands: commands,
		Port:     port,
		state:    api.ServerResponse{Type: "UPDATE"},
	}
}

// Publish запоминает последний снимок и рассылает его всем клиентам.
func (s *Server) Publish(state api.ServerResponse) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.Hub.Broadcast(state)
}

// State возвращает последний опубликованный снимок.
func (s *Server) State() api.ServerResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Handler собирает роуты
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	mux.HandleFunc("/state", enableCORS(s.handleState))
	return mux
}

// Run запускает HTTP сервер и гасит его при отмене ctx
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Warn("server shutdown failed")
		}
	}()

	logger.Log.Infof("🛡️  Cognitive Tactics server running on :%s", s.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, version.Info())
}

// /state - последний снимок партии (для отладки и опроса без WebSocket)
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.State())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Debug("write json response failed")
	}
}
