package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/signalscope/signalscope/analogmod"
	"github.com/signalscope/signalscope/convert"
	"github.com/signalscope/signalscope/core"
	"github.com/signalscope/signalscope/linecode"
	"github.com/signalscope/signalscope/modem"
	"github.com/signalscope/signalscope/perf"
)

// Server routes conversion requests to the engine packages.
type Server struct {
	cfg     *Config
	metrics *Metrics

	pingInterval time.Duration
}

// NewServer wires a Server from configuration. Metrics are optional.
func NewServer(cfg *Config, metrics *Metrics) *Server {
	return &Server{cfg: cfg, metrics: metrics, pingInterval: wsPingInterval}
}

// Handler builds the full route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/convert", s.handleConvert)
	mux.HandleFunc("/api/v1/schemes", s.handleSchemes)
	mux.HandleFunc("/api/v1/perf", s.handlePerf)
	mux.HandleFunc("/api/v1/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", s.handleHealth)
	if s.cfg.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	return mux
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	RequestID string `json:"request_id"`
}

// kindLabel maps the engine error taxonomy onto response vocabulary.
func kindLabel(k convert.Kind) string {
	switch k {
	case convert.KindInvalidParameter:
		return "invalid_parameter"
	case convert.KindInvalidInput:
		return "invalid_input"
	case convert.KindUnsupportedScheme:
		return "unsupported_scheme"
	default:
		return "internal"
	}
}

// kindStatus maps the taxonomy onto HTTP status codes.
func kindStatus(k convert.Kind) int {
	switch k {
	case convert.KindInvalidParameter, convert.KindInvalidInput:
		return http.StatusBadRequest
	case convert.KindUnsupportedScheme:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: writing response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, requestID string, err error) {
	kind := convert.Classify(err)
	s.metrics.RecordError(kindLabel(kind))
	writeJSON(w, kindStatus(kind), errorResponse{
		Error:     err.Error(),
		Kind:      kindLabel(kind),
		RequestID: requestID,
	})
}

// convertResponse wraps the engine result with the request ID.
type convertResponse struct {
	RequestID string `json:"request_id"`
	core.SignalResult
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.NewString()
	start := time.Now()

	var req convert.Request
	body := http.MaxBytesReader(w, r.Body, int64(s.cfg.Limits.MaxBodySize))
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.metrics.RecordError("bad_json")
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:     "invalid JSON body: " + err.Error(),
			Kind:      "bad_json",
			RequestID: requestID,
		})
		return
	}

	if len(req.Bits) > s.cfg.Limits.MaxBits {
		s.metrics.RecordError("invalid_input")
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:     "bit string exceeds configured maximum",
			Kind:      "invalid_input",
			RequestID: requestID,
		})
		return
	}

	res, err := convert.Do(req)
	if err != nil {
		s.metrics.RecordConversion(req.Family, req.Scheme, "error", 0)
		s.writeError(w, requestID, err)
		log.Printf("convert %s family=%s scheme=%s error=%v (%.3fms)",
			requestID, req.Family, req.Scheme, err, float64(time.Since(start))/float64(time.Millisecond))
		return
	}

	s.metrics.RecordConversion(req.Family, req.Scheme, "ok", res.CalcTimeMs)
	writeJSON(w, http.StatusOK, convertResponse{RequestID: requestID, SignalResult: res})
	log.Printf("convert %s family=%s scheme=%s points=%d engine=%.3fms",
		requestID, req.Family, req.Scheme, len(res.Transmitted), res.CalcTimeMs)
}

// schemesResponse lists every scheme per family for client discovery.
type schemesResponse struct {
	Families map[string][]string `json:"families"`
}

func (s *Server) handleSchemes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, schemesResponse{Families: map[string][]string{
		convert.FamilyLineCoding: {
			linecode.NRZL.String(), linecode.NRZI.String(),
			linecode.Manchester.String(), linecode.DiffManchester.String(),
			linecode.AMI.String(), linecode.Pseudoternary.String(),
			linecode.B8ZS.String(), linecode.HDB3.String(),
		},
		convert.FamilyDigitalModulation: {
			modem.ASK.String(), modem.FSK.String(), modem.PSK.String(),
			modem.DPSK.String(), modem.QPSK.String(), modem.OQPSK.String(),
			modem.MPSK.String(), modem.QAM.String(), modem.MFSK.String(),
		},
		convert.FamilyAnalogSampling: {"PCM", "DELTA"},
		convert.FamilyAnalogModulation: {
			analogmod.AM.String(), analogmod.FM.String(), analogmod.PM.String(),
		},
	}})
}

func (s *Server) handlePerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summaries, err := perf.MeasureAll(perf.Suite(), 20)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: err.Error(),
			Kind:  "internal",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"scenarios": summaries})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
