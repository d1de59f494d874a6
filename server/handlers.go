package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/peertopo/builder"
	"github.com/katalvlaran/peertopo/serial"
	"github.com/katalvlaran/peertopo/topology"
)

// response is the JSON body of GET /topology/{strategy}.
type response struct {
	*serial.SerializedTopology
	Seed  int64          `json:"seed"`
	Stats topology.Stats `json:"stats"`
}

func (s *Server) handleTopology(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, seed, err := parseParams(builder.Strategy(chi.URLParam(r, "strategy")), q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if params.Nodes > s.cfg.MaxNodes {
		http.Error(w, fmt.Sprintf("nodes=%d above server limit %d", params.Nodes, s.cfg.MaxNodes), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	start := time.Now()
	t, err := builder.Generate(params,
		builder.WithSeed(seed),
		builder.WithWorkers(s.cfg.Workers),
		builder.WithObserver(s.metrics),
		builder.WithContext(ctx))
	var st *serial.SerializedTopology
	if err == nil {
		minPeers, maxPeers := params.Bounds(t)
		st, err = serial.Serialize(t, params.Nodes, minPeers, maxPeers)
	}
	edges := 0
	if t != nil {
		edges = t.EdgeCount()
	}
	s.metrics.ObserveGeneration(string(params.Strategy), time.Since(start), edges, err)

	if err != nil {
		s.log.Warn("Topology generation failed", "reqid", middleware.GetReqID(r.Context()),
			"strategy", params.Strategy, "nodes", params.Nodes, "seed", seed, "err", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	s.log.Debug("Topology generated", "reqid", middleware.GetReqID(r.Context()),
		"strategy", params.Strategy, "nodes", params.Nodes, "edges", edges, "seed", seed,
		"elapsed", time.Since(start))

	switch q.Get("format") {
	case "", "json":
		if err := writeJSON(w, http.StatusOK, response{SerializedTopology: st, Seed: seed, Stats: t.Stats()}); err != nil {
			s.log.Error("Writing JSON failed", "err", err)
		}
	case "header":
		w.Header().Set("Content-Type", "text/x-c; charset=utf-8")
		if err := serial.WriteHeader(w, st); err != nil {
			s.log.Error("Writing header failed", "err", err)
		}
	case "source":
		w.Header().Set("Content-Type", "text/x-c; charset=utf-8")
		if err := serial.WriteSource(w, st); err != nil {
			s.log.Error("Writing source failed", "err", err)
		}
	default:
		http.Error(w, fmt.Sprintf("unknown format %q", q.Get("format")), http.StatusBadRequest)
	}
}

// parseParams reads strategy parameters from the query string. A missing
// seed is drawn from the clock and echoed back so the run can be reproduced.
func parseParams(strategy builder.Strategy, q url.Values) (builder.Params, int64, error) {
	p := builder.Params{Strategy: strategy}
	var err error

	if p.Nodes, err = intParam(q, "nodes", 0); err != nil {
		return p, 0, err
	}
	if p.MinPeers, err = intParam(q, "min", 0); err != nil {
		return p, 0, err
	}
	if p.MaxPeers, err = intParam(q, "max", 0); err != nil {
		return p, 0, err
	}

	switch strategy {
	case builder.StrategyRandomSymmetric:
	case builder.StrategySmallWorld:
		if p.Density, err = floatParam(q, "density"); err != nil {
			return p, 0, err
		}
		if p.Propagation, err = floatParam(q, "propagation"); err != nil {
			return p, 0, err
		}
		if p.MaxDistance, err = floatParam(q, "distance"); err != nil {
			return p, 0, err
		}
		if p.Trial, err = builder.ParseTrialMode(q.Get("trial")); err != nil {
			return p, 0, err
		}
	default:
		return p, 0, fmt.Errorf("unknown strategy %q", strategy)
	}

	seed := time.Now().UnixNano()
	if raw := q.Get("seed"); raw != "" {
		if seed, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return p, 0, fmt.Errorf("seed: %w", err)
		}
	}
	return p, seed, nil
}

func intParam(q url.Values, key string, def int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func floatParam(q url.Values, key string) (float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// statusFor maps generation errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, builder.ErrInvalidParameters):
		return http.StatusBadRequest
	case errors.Is(err, builder.ErrGenerationStarvation), errors.Is(err, builder.ErrDegreeBound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON sends payload with status. Once the header is out only the
// encoding error is left to report.
func writeJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}
