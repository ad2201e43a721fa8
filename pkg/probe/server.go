package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Handler serves probe results over HTTP. Every request runs the probes
// anew.
type Handler struct {
	registry *Registry
	timeout  time.Duration
}

func NewProbeHandler(reg *Registry, timeout time.Duration) *Handler {
	return &Handler{registry: reg, timeout: timeout}
}

func (h *Handler) Router() *mux.Router {
	m := mux.NewRouter()
	m.Path("/status").Methods(http.MethodGet).HandlerFunc(h.HandleStatus)
	m.Path("/probes").Methods(http.MethodGet).HandlerFunc(h.HandleList)
	m.Path("/probes/{name}").Methods(http.MethodGet).HandlerFunc(h.HandleProbe)
	return m
}

func (h *Handler) requestContext(req *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout > 0 {
		return context.WithTimeout(req.Context(), h.timeout)
	}
	return context.WithCancel(req.Context())
}

func (h *Handler) HandleStatus(res http.ResponseWriter, req *http.Request) {
	runID := uuid.New().String()
	logger := log.WithFields(log.Fields{"kind": "server", "run": runID})

	ctx, cancel := h.requestContext(req)
	defer cancel()

	report, err := RunAll(ctx, h.registry)
	if err != nil {
		logger.WithError(err).Warn("probe run aborted")
		http.Error(res, fmt.Sprintf("probe run aborted: %s", err), http.StatusServiceUnavailable)
		return
	}

	logger.WithFields(log.Fields{"passed": report.Passed(), "total": report.Len()}).Info("probe run finished")

	body, err := report.MarshalJSON()
	if err != nil {
		logger.WithError(err).Error("failed to encode report")
		http.Error(res, "failed to encode report", http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("X-Run-Id", runID)

	if report.Passed() < report.Len() {
		res.WriteHeader(http.StatusServiceUnavailable)
	}

	_, _ = res.Write(body)
}

func (h *Handler) HandleList(res http.ResponseWriter, _ *http.Request) {
	res.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(res).Encode(h.registry.Names())
}

func (h *Handler) HandleProbe(res http.ResponseWriter, req *http.Request) {
	name := mux.Vars(req)["name"]

	p, ok := h.registry.Lookup(name)
	if !ok {
		http.Error(res, fmt.Sprintf("unknown probe %q", name), http.StatusNotFound)
		return
	}

	ctx, cancel := h.requestContext(req)
	defer cancel()

	result := Run(ctx, p)

	body, err := result.MarshalJSON()
	if err != nil {
		http.Error(res, "failed to encode result", http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	if !result.OK {
		res.WriteHeader(http.StatusServiceUnavailable)
	}
	_, _ = res.Write(body)
}

// RunProbeServer serves h on port until ctx is cancelled.
func RunProbeServer(ctx context.Context, h *Handler, port int) error {
	server := http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.WithField("kind", "server").Info("shutting down probe server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "probe server on port %d failed", port)
	}

	return nil
}
