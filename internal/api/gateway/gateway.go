// Gateway API implementation
package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/UmaisNisar/AES-Encryption-App/internal/pkg/helpers"
	vis "github.com/UmaisNisar/AES-Encryption-App/internal/pkg/visualizer"
	"github.com/UmaisNisar/AES-Encryption-App/internal/protocol"
	"github.com/UmaisNisar/AES-Encryption-App/internal/services/cipher"
	"github.com/UmaisNisar/AES-Encryption-App/internal/services/visualizer"
)

// Version reported on the root endpoint.
const Version = "1.0.0"

// Server represents the API gateway
type Server struct {
	addr          string
	allowedOrigin string
	cipherSvc     *cipher.Service
	visualizerSvc *visualizer.Service
	logger        *helpers.Logger

	registry        *prometheus.Registry
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates a new gateway server
func New(addr, allowedOrigin, metricsNamespace string, cipherSvc *cipher.Service, visualizerSvc *visualizer.Service) *Server {
	registry := prometheus.NewRegistry()

	requestCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
		},
		[]string{"method", "path"},
	)
	registry.MustRegister(requestCount, requestDuration)

	return &Server{
		addr:            addr,
		allowedOrigin:   allowedOrigin,
		cipherSvc:       cipherSvc,
		visualizerSvc:   visualizerSvc,
		logger:          helpers.NewLogger("Gateway"),
		registry:        registry,
		requestCount:    requestCount,
		requestDuration: requestDuration,
	}
}

// corsMiddleware adds CORS headers to all responses
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware records request counts and latencies per route.
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		s.requestCount.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rec.status)).Inc()
		s.requestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()

	// Root endpoint - service banner for health checks
	router.HandleFunc("/", s.handleRoot).Methods("GET", "OPTIONS")

	router.HandleFunc("/encrypt", s.handleEncrypt).Methods("POST", "OPTIONS")
	router.HandleFunc("/decrypt", s.handleDecrypt).Methods("POST", "OPTIONS")
	router.HandleFunc("/visualize", s.handleVisualize).Methods("POST", "OPTIONS")

	// WebSocket endpoint streaming one step per message
	router.HandleFunc("/ws/visualize", s.handleVisualizeStream)

	router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods("GET")

	return router
}

// Start starts the gateway server
func (s *Server) Start() error {
	handler := s.corsMiddleware(s.metricsMiddleware(s.routes()))

	fmt.Printf("Gateway server listening on %s\n", s.addr)
	return http.ListenAndServe(s.addr, handler)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"message": "AES Encryption/Decryption API",
		"version": Version,
	})
}

func (s *Server) handleEncrypt(w http.ResponseWriter, r *http.Request) {
	var req protocol.EncryptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := s.cipherSvc.Encrypt(&req)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, resp)
}

func (s *Server) handleDecrypt(w http.ResponseWriter, r *http.Request) {
	var req protocol.DecryptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := s.cipherSvc.Decrypt(&req)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, resp)
}

func (s *Server) handleVisualize(w http.ResponseWriter, r *http.Request) {
	var req protocol.VisualizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := s.visualizerSvc.Visualize(&req)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, resp)
}

// handleVisualizeStream upgrades to a WebSocket, reads one
// visualization request and streams the trace back one step per
// message, so the frontend can animate as steps arrive.
func (s *Server) handleVisualizeStream(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("WebSocket upgrade failed", err)
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(30 * time.Second))

	var req protocol.VisualizationRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.logger.Error("invalid visualization request", err)
		conn.WriteJSON(map[string]string{"error": "invalid request"})
		return
	}

	resp, err := s.visualizerSvc.Visualize(&req)
	if err != nil {
		conn.WriteJSON(map[string]string{"error": err.Error()})
		return
	}

	for _, step := range resp.Steps {
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(step); err != nil {
			s.logger.Error("step write failed", err, "step", step.Index)
			return
		}
	}

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "trace complete"))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// statusForError maps bad-input failures to 400 and everything else,
// including cipher failures, to 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, cipher.ErrInvalidKeySize),
		errors.Is(err, cipher.ErrInvalidMode),
		errors.Is(err, cipher.ErrMissingIV),
		errors.Is(err, vis.ErrInvalidKeySize):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
