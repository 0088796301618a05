// Package server exposes the randx distributions over HTTP and websocket.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tutils/randx"
	"github.com/tutils/randx/counter"
	"github.com/tutils/randx/counter/period"
)

// SampleRequest asks for size variates of a distribution. Args, Size and
// Seed may be JSON numbers or numeric strings.
type SampleRequest struct {
	Distribution string        `json:"distribution"`
	Args         []interface{} `json:"args"`
	Size         interface{}   `json:"size"`
	Seed         interface{}   `json:"seed,omitempty"`
}

// SampleResponse carries the variates, or Error when the request failed.
type SampleResponse struct {
	ID           string      `json:"id"`
	Distribution string      `json:"distribution,omitempty"`
	Seed         int64       `json:"seed,omitempty"`
	Size         int         `json:"size,omitempty"`
	Values       interface{} `json:"values,omitempty"`
	Error        string      `json:"error,omitempty"`
}

// DistributionInfo describes a distribution in the listing endpoint.
type DistributionInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Discrete    bool          `json:"discrete"`
	Params      []randx.Param `json:"params"`
}

// CounterInfo reports the variates served for one distribution.
type CounterInfo struct {
	Served     int64 `json:"served"`
	RatePerSec int64 `json:"rate_per_sec"`
}

// Server serves sampling requests. Each request builds its own generator,
// so requests never share state.
type Server struct {
	opts   Options
	srv    *http.Server
	mux    *http.ServeMux
	served map[string]counter.Counter
}

// New creates a Server. Call ListenAndServe to start it, or mount
// Handler in another server.
func New(opts ...Option) *Server {
	opt := newOptions(opts...)
	initMetrics()

	s := &Server{
		opts:   *opt,
		mux:    http.NewServeMux(),
		served: make(map[string]counter.Counter),
	}
	for _, d := range randx.Distributions() {
		s.served[d.Name] = period.NewPeriodCounter(time.Second)
	}

	s.mux.HandleFunc("GET /api/distributions", s.handleDistributions)
	s.mux.HandleFunc("GET /api/sample/{name}", s.handleSampleQuery)
	s.mux.HandleFunc("POST /api/sample", s.handleSampleBody)
	s.mux.HandleFunc("GET /api/stats", s.handleStats)
	s.mux.HandleFunc("GET /ws", s.handleWebsocket)
	s.mux.Handle("GET /metrics", promhttp.Handler())

	s.srv = &http.Server{
		Addr:              opt.listenAddr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe listens on the configured address and blocks until the
// server is shut down.
func (s *Server) ListenAndServe() error {
	level.Info(s.opts.logger).Log("msg", "listening", "addr", s.srv.Addr)
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Sample runs one request. The returned status is the HTTP status code
// that describes the outcome.
func (s *Server) Sample(req *SampleRequest) (*SampleResponse, int) {
	resp := &SampleResponse{ID: uuid.NewString()}
	logger := log.With(s.opts.logger, "id", resp.ID, "distribution", req.Distribution)

	d, ok := randx.Lookup(req.Distribution)
	if !ok {
		resp.Error = randx.ErrUnknownDistribution.Error()
		rejectedRequests.WithLabelValues(unknownLabel).Inc()
		level.Debug(logger).Log("msg", "sample rejected", "err", resp.Error)
		return resp, http.StatusNotFound
	}

	opts := append([]randx.Option{}, s.opts.sampleOpts...)
	opts = append(opts,
		randx.WithMaxSize(s.opts.maxSize),
		randx.WithMaxDraws(s.opts.maxDraws),
		randx.WithLogger(logger),
	)
	res, err := d.SampleWithSeed(req.Args, req.Size, req.Seed, opts...)
	if err != nil {
		resp.Error = err.Error()
		rejectedRequests.WithLabelValues(d.Name).Inc()
		level.Debug(logger).Log("msg", "sample rejected", "err", err)
		return resp, http.StatusBadRequest
	}

	s.served[d.Name].Add(int64(res.Len()))
	servedVariates.WithLabelValues(d.Name).Add(float64(res.Len()))
	resp.Distribution = res.Distribution
	resp.Seed = res.Seed
	resp.Size = res.Size
	resp.Values = res.Values()
	level.Debug(logger).Log("msg", "sampled", "seed", res.Seed, "size", res.Size, "n", res.Len())
	return resp, http.StatusOK
}

func (s *Server) handleDistributions(w http.ResponseWriter, r *http.Request) {
	ds := randx.Distributions()
	infos := make([]DistributionInfo, len(ds))
	for i, d := range ds {
		infos[i] = DistributionInfo{
			Name:        d.Name,
			Description: d.Description,
			Discrete:    d.Discrete,
			Params:      d.Params(),
		}
	}
	s.writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleSampleQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &SampleRequest{
		Distribution: r.PathValue("name"),
		Args:         []interface{}{},
	}
	for _, a := range q["arg"] {
		req.Args = append(req.Args, a)
	}
	if q.Has("size") {
		req.Size = q.Get("size")
	}
	if q.Has("seed") {
		req.Seed = q.Get("seed")
	}

	resp, status := s.Sample(req)
	s.writeJSON(w, status, resp)
}

func (s *Server) handleSampleBody(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, &SampleResponse{ID: uuid.NewString(), Error: err.Error()})
		return
	}

	resp, status := s.Sample(req)
	s.writeJSON(w, status, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := make(map[string]CounterInfo, len(s.served))
	for name, c := range s.served {
		stats[name] = CounterInfo{Served: c.Value(), RatePerSec: c.RatePerSec()}
	}
	s.writeJSON(w, http.StatusOK, stats)
}

// decodeRequest keeps numbers as json.Number so integer parameters can be
// told apart from floats.
func decodeRequest(r io.Reader) (*SampleRequest, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var req SampleRequest
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// writeJSON encodes v before writing any header so that values JSON
// cannot represent, such as +Inf, turn into a 500.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		level.Error(s.opts.logger).Log("msg", "encode response", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
