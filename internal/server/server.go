// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package server exposes the comparator over HTTP: lookups, prometheus
// metrics and health endpoints.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/heptiolabs/healthcheck"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/gaissmai/iplpm"
	"github.com/gaissmai/iplpm/internal/compare"
)

var (
	log  = logrus.WithField("component", "server")
	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

// LookupResponse is the body of a successful /lookup request.
type LookupResponse struct {
	Addr      string                 `json:"addr"`
	Trie      compare.Result[string] `json:"trie"`
	Tree      compare.Result[string] `json:"tree"`
	Reference compare.Result[string] `json:"reference"`
	Agree     bool                   `json:"agree"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server, the tables are complete before the first request,
// handlers only read.
type Server struct {
	cmp     *compare.Comparator[string]
	mux     *http.ServeMux
	health  healthcheck.Handler
	address string
}

// New returns a server for a filled comparator, gatherer serves /metrics.
func New(address string, cmp *compare.Comparator[string], gatherer prometheus.Gatherer) *Server {
	s := &Server{
		cmp:     cmp,
		mux:     http.NewServeMux(),
		health:  healthcheck.NewHandler(),
		address: address,
	}

	s.health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(1000))
	s.health.AddReadinessCheck("routes-loaded", s.routesLoaded)

	s.mux.HandleFunc("/lookup", s.handleLookup)
	s.mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	s.mux.HandleFunc("/live", s.health.LiveEndpoint)
	s.mux.HandleFunc("/ready", s.health.ReadyEndpoint)

	return s
}

func (s *Server) routesLoaded() error {
	if s.cmp.Trie().Size() == 0 {
		return errors.New("no routes loaded")
	}
	return nil
}

// ServeHTTP implements [http.Handler].
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	text := r.URL.Query().Get("addr")
	addr, err := iplpm.ParseIPv4(text)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	m, agree := s.cmp.Lookup(addr)
	writeJSON(w, http.StatusOK, LookupResponse{
		Addr:      iplpm.FormatIPv4(addr),
		Trie:      m.Trie,
		Tree:      m.Tree,
		Reference: m.Reference,
		Agree:     agree,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	buf, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("can't marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf); err != nil {
		log.WithError(err).Debug("can't write response")
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("address", s.address).Info("starting HTTP listener")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("shutting down HTTP listener")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
