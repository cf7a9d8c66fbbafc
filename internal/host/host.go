// Package host is the locally-hosted functions runtime: an HTTP listener
// serving every discovered HTTP-triggered function under a composed
// route, plus the admin status endpoint the startup synchronizer probes.
package host

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/funcbase/cli/internal/domain"
)

// StatusRoute is the admin liveness endpoint.
const StatusRoute = "/admin/host/status"

// Config holds host configuration.
type Config struct {
	Addr        string
	RoutePrefix string
	CORSOrigins []string
	UseHTTPS    bool
	CertFile    string
	KeyFile     string
}

// Host serves discovered functions over HTTP.
type Host struct {
	cfg       Config
	functions []Function
	logger    domain.Logger
	store     domain.InvocationStore
	out       domain.OutputWriter

	server *http.Server

	mu         sync.RWMutex
	traceLevel TraceLevel
}

// New creates a host for the given functions. The store may be nil, in
// which case invocations are not recorded.
func New(cfg Config, functions []Function, logger domain.Logger, store domain.InvocationStore, out domain.OutputWriter) *Host {
	h := &Host{
		cfg:        cfg,
		functions:  functions,
		logger:     logger,
		store:      store,
		out:        out,
		traceLevel: TraceInfo,
	}

	h.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           h.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return h
}

// Functions returns the discovered functions.
func (h *Host) Functions() []Function {
	return h.functions
}

// Addr returns the address the host binds.
func (h *Host) Addr() string {
	return h.cfg.Addr
}

// SetTraceLevel adjusts the host's console tracing at runtime.
func (h *Host) SetTraceLevel(l TraceLevel) {
	h.mu.Lock()
	h.traceLevel = l
	h.mu.Unlock()
}

// GetTraceLevel returns the current trace level.
func (h *Host) GetTraceLevel() TraceLevel {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.traceLevel
}

// Serve opens the listener and blocks until the server closes. The
// listener opens asynchronously from the caller's point of view: run
// Serve on its own goroutine and use the startup synchronizer to learn
// when it is live.
func (h *Host) Serve() error {
	var err error
	if h.cfg.UseHTTPS {
		err = h.server.ListenAndServeTLS(h.cfg.CertFile, h.cfg.KeyFile)
	} else {
		err = h.server.ListenAndServe()
	}
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Close tears the listener down without draining in-flight requests.
func (h *Host) Close() error {
	return h.server.Close()
}

func (h *Host) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(h.traceMiddleware)

	r.Get(StatusRoute, h.handleStatus)

	for _, fn := range h.functions {
		if !fn.IsHTTP() {
			continue
		}
		pattern := "/" + ComposeRoute(h.cfg.RoutePrefix, fn)
		handler := h.invokeHandler(fn)
		if len(fn.Methods) == 0 {
			r.Handle(pattern, handler)
			continue
		}
		for _, m := range fn.Methods {
			r.Method(strings.ToUpper(m), pattern, handler)
		}
	}

	return r
}

func (h *Host) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"state":"Running","functions":%d}`, len(h.functions))
}

// invokeHandler runs the function's script with the request body on
// stdin and relays its stdout as the response body.
func (h *Host) invokeHandler(fn Function) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		status := http.StatusOK

		cmd := exec.CommandContext(r.Context(), "/bin/sh", fn.ScriptPath())
		cmd.Stdin = r.Body
		cmd.Env = append(os.Environ(),
			"FB_FUNCTION_NAME="+fn.Name,
			"FB_HTTP_METHOD="+r.Method,
			"FB_REQUEST_PATH="+r.URL.Path,
		)

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			status = http.StatusInternalServerError
			h.tracef(TraceError, "function %s failed: %v: %s", fn.Name, err, stderr.String())
			http.Error(w, fmt.Sprintf("function %s failed", fn.Name), status)
		} else {
			_, _ = w.Write(stdout.Bytes())
		}

		h.record(fn, r, status, time.Since(start))
	}
}

// record logs the invocation to the store. Store failures are logged and
// otherwise ignored: the invocation already completed.
func (h *Host) record(fn Function, r *http.Request, status int, d time.Duration) {
	if h.store == nil {
		return
	}
	err := h.store.Insert(domain.Invocation{
		Function:   fn.Name,
		Route:      ComposeRoute(h.cfg.RoutePrefix, fn),
		Method:     r.Method,
		Status:     status,
		DurationMs: d.Milliseconds(),
		CreatedAt:  time.Now(),
	})
	if err != nil {
		h.logger.Error("record invocation: %v", err)
	}
}

func (h *Host) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.tracef(TraceInfo, "%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// tracef emits host console tracing, gated by the current trace level.
// Suppressed entirely after the post-start fixup drops the level to off,
// so host output does not interleave with the tool's own.
func (h *Host) tracef(sev TraceLevel, format string, args ...any) {
	if !h.GetTraceLevel().allows(sev) {
		return
	}
	_, _ = h.out.Printf("[host] "+format+"\n", args...)
}
