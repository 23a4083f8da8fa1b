package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"go.dedis.ch/sssrecover/recovery"
	"go.dedis.ch/sssrecover/recovery/impl"
	"go.dedis.ch/sssrecover/storage"
	"go.dedis.ch/sssrecover/types"
)

// maxBodySize bounds the size of a posted test case.
const maxBodySize = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// Server answers solve requests over HTTP. Results are cached in the store
// by input digest.
type Server struct {
	configurations map[recovery.Method]recovery.Configuration
	solvers        map[recovery.Method]recovery.Solver
	defaultMethod  recovery.Method

	store storage.ResultStore
	log   zerolog.Logger
}

// New creates a server. Requests use conf.Method unless they ask for another
// one with ?method=.
func New(conf recovery.Configuration, store storage.ResultStore) (*Server, error) {
	defaultMethod, err := recovery.ParseMethod(string(conf.Method))
	if err != nil {
		return nil, err
	}

	s := Server{
		configurations: map[recovery.Method]recovery.Configuration{},
		solvers:        map[recovery.Method]recovery.Solver{},
		defaultMethod:  defaultMethod,
		store:          store,
		log:            conf.Logger,
	}

	for _, method := range []recovery.Method{recovery.MethodLagrange, recovery.MethodVandermonde} {
		c := conf
		c.Method = method
		solver, err := impl.NewSolver(c)
		if err != nil {
			return nil, err
		}
		s.configurations[method] = c
		s.solvers[method] = solver
	}

	return &s, nil
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.notFoundHandler)
	mux.HandleFunc("/healthz", s.healthHandler)
	mux.HandleFunc("/solve", s.solveHandler)
	return mux
}

func (s *Server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusNotFound, errorResponse{
		Error: fmt.Sprintf("%s is not a known route", r.URL.Path),
	})
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, err := w.Write([]byte("ok"))
	if err != nil {
		s.log.Debug().Msgf("failed to write health response: %v", err)
	}
}

func (s *Server) solveHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "use POST"})
		return
	}

	method := s.defaultMethod
	if name := r.URL.Query().Get("method"); name != "" {
		m, err := recovery.ParseMethod(name)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		method = m
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if xerrors.As(err, &tooLarge) {
			s.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
				Error: fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit),
			})
			return
		}
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tc, err := types.ParseTestCaseJSON(body)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	digest, err := storage.Digest(tc, s.configurations[method].Identity())
	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	result, ok := s.store.Get(digest)
	if ok {
		s.log.Debug().Msgf("cache hit for %s", digest)
		s.writeJSON(w, http.StatusOK, result)
		return
	}

	result, err = s.solvers[method].Solve(tc)
	if err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	err = s.store.Put(digest, result)
	if err != nil {
		s.log.Warn().Msgf("failed to cache result: %v", err)
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		s.log.Debug().Msgf("failed to write response: %v", err)
	}
}
