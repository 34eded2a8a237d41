// Package server exposes explorer networks over a small JSON API.
//
// The visual editor only ever sees plain numbers read off the graph: parameter
// data and gradients, per-neuron sums and outputs, and loss values.
package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/config"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/dataset"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/nn"
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/train"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MaxTrainSteps bounds the work a single train request may ask for.
const MaxTrainSteps = 10000

// ErrNotFound is returned for unknown network ids.
var ErrNotFound = errors.New("network not found")

// session is one network being edited. mu serializes every access to the
// model, its trainer and its dataset.
type session struct {
	mu      sync.Mutex
	id      uuid.UUID
	model   *nn.MLP
	trainer *train.Trainer
	data    *dataset.Dataset
	created time.Time
}

// Server owns the HTTP handlers and the live sessions.
type Server struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session

	cfg    config.Config
	data   *dataset.Dataset
	logger *log.Logger
}

// New creates a server that builds networks from cfg and trains them on data
// unless a request supplies its own. A nil data means kiki/bouba; a nil logger
// discards output.
func New(cfg config.Config, data *dataset.Dataset, logger *log.Logger) *Server {
	if data == nil {
		data = dataset.KikiBouba()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Server{
		sessions: make(map[uuid.UUID]*session),
		cfg:      cfg,
		data:     data,
		logger:   logger,
	}
}

// RegisterRoutes attaches all endpoints to mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/networks", s.handleCreate)
	mux.HandleFunc("GET /api/networks/{id}", s.handleGet)
	mux.HandleFunc("DELETE /api/networks/{id}", s.handleDelete)
	mux.HandleFunc("POST /api/networks/{id}/forward", s.handleForward)
	mux.HandleFunc("POST /api/networks/{id}/train", s.handleTrain)
	mux.HandleFunc("PUT /api/networks/{id}/params/{index}", s.handleSetParam)
}

// Handler returns a mux with every route registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return mux
}

// Len returns the number of live sessions.
func (s *Server) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Server) lookup(r *http.Request) (*session, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return nil, errors.Wrapf(ErrNotFound, "bad id %q", r.PathValue("id"))
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errors.Wrap(ErrNotFound, id.String())
	}
	return sess, nil
}

// newSession builds the network, trainer and training set for req.
func (s *Server) newSession(req CreateNetworkRequest) (*session, error) {
	netCfg := s.cfg.Network
	if req.Network != nil {
		netCfg = *req.Network
	}
	trainCfg := s.cfg.Training
	if req.Training != nil {
		trainCfg = *req.Training
	}

	model, err := nn.NewMLPWithConfig(netCfg)
	if err != nil {
		return nil, err
	}
	trainer, err := train.NewTrainer(model, trainCfg, s.logger)
	if err != nil {
		return nil, err
	}

	data := s.data
	if len(req.Samples) > 0 {
		if data, err = dataset.New("custom", req.Samples); err != nil {
			return nil, err
		}
	}
	if data.Dim() != model.NumInputs() {
		return nil, errors.Wrapf(nn.ErrDimensionMismatch,
			"dataset has %d features, network expects %d", data.Dim(), model.NumInputs())
	}

	return &session{
		id:      uuid.New(),
		model:   model,
		trainer: trainer,
		data:    data,
		created: time.Now(),
	}, nil
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateNetworkRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := s.newSession(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Printf("created network %s %v with %d parameters",
		sess.id, sess.model.Sizes(), sess.model.NumParameters())

	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, sess.view())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, err := s.lookup(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.writeJSON(w, http.StatusOK, sess.view())
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	sess, err := s.lookup(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()

	s.logger.Printf("deleted network %s", sess.id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleForward(w http.ResponseWriter, r *http.Request) {
	sess, err := s.lookup(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var req ForwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	resp, err := sess.forward(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTrain(w http.ResponseWriter, r *http.Request) {
	sess, err := s.lookup(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	req := TrainRequest{}
	if err := decodeOptionalJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Steps <= 0 {
		req.Steps = 1
	}
	if req.Steps > MaxTrainSteps {
		http.Error(w, "steps must not exceed "+strconv.Itoa(MaxTrainSteps), http.StatusBadRequest)
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if req.LearningRate != nil {
		if err := sess.trainer.SetLearningRate(*req.LearningRate); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	resp, err := sess.train(r, req)
	if err != nil {
		if r.Context().Err() != nil {
			s.logger.Printf("train %s cancelled after %d steps", sess.id, len(resp.Losses))
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetParam(w http.ResponseWriter, r *http.Request) {
	sess, err := s.lookup(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "bad parameter index: "+err.Error(), http.StatusBadRequest)
		return
	}
	var req SetParamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.model.SetParameter(index, req.Data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, http.StatusOK, sess.params()[index])
}

// writeJSON is a helper to consistently send JSON responses.
//
// The payload is encoded before any header is written. JSON has no Inf or
// NaN, so a network whose values overflowed gets a 422 naming the problem
// instead of an empty success.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		s.logger.Printf("encode response: %v", err)
		http.Error(w, "response contains a non-finite value (Inf or NaN): "+err.Error(),
			http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// decodeOptionalJSON decodes JSON when body is present.
// Empty bodies are treated as "use defaults" rather than errors.
func decodeOptionalJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == io.EOF {
		return nil
	}
	return err
}
