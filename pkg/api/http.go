package api

import (
	"context"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/gorilla/mux"
	"github.com/luscis/swengine/pkg/libol"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NotFound(w http.ResponseWriter, r *http.Request) {
	ResponseMsg(w, http.StatusNotFound, "Oops!")
}

func NotAllowed(w http.ResponseWriter, r *http.Request) {
	ResponseMsg(w, http.StatusMethodNotAllowed, "Oops!")
}

// Http serves the switch api and its metrics on listen.
type Http struct {
	sw     Switcher
	listen string
	server *http.Server
	router *mux.Router
	out    *libol.SubLogger
}

func NewHttp(listen string, sw Switcher) *Http {
	h := &Http{
		sw:     sw,
		listen: listen,
		out:    libol.NewSubLogger("http"),
	}
	h.server = &http.Server{
		Addr:         listen,
		Handler:      h.Router(),
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 10 * time.Minute,
	}
	h.LoadRouter()
	return h
}

func (h *Http) PProf(r *mux.Router) {
	r.HandleFunc("/debug/pprof/", pprof.Index)
	r.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	r.HandleFunc("/debug/pprof/profile", pprof.Profile)
	r.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	r.HandleFunc("/debug/pprof/trace", pprof.Trace)
}

func (h *Http) Prome(r *mux.Router) {
	handler := promhttp.HandlerFor(h.sw.Registry(), promhttp.HandlerOpts{})
	r.Handle("/metrics", handler)
}

func (h *Http) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.out.Info("Http.Middleware %s %s", r.Method, r.URL.Path)
		start := time.Now()
		next.ServeHTTP(w, r)
		if dt := time.Since(start); dt > 2*time.Second {
			h.out.Warn("Http.Middleware %s %s long time %s", r.Method, r.URL.Path, dt)
		}
	})
}

func (h *Http) Router() *mux.Router {
	if h.router == nil {
		h.router = mux.NewRouter()
		h.router.NotFoundHandler = http.HandlerFunc(NotFound)
		h.router.MethodNotAllowedHandler = http.HandlerFunc(NotAllowed)
		h.router.Use(h.Middleware)
	}
	return h.router
}

func (h *Http) LoadRouter() {
	router := h.Router()
	h.PProf(router)
	h.Prome(router)
	Add(router, h.sw)
}

func (h *Http) Start() {
	h.out.Info("Http.Start %s", h.listen)
	libol.Go(func() {
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			h.out.Error("Http.Start on %s: %s", h.listen, err)
		}
	})
}

func (h *Http) Shutdown() {
	h.out.Info("Http.Shutdown %s", h.listen)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.server.Shutdown(ctx); err != nil {
		h.out.Error("Http.Shutdown: %v", err)
	}
}
