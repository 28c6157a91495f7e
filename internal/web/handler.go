package web

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mesh-intelligence/octofit/internal/listview"
	"github.com/mesh-intelligence/octofit/internal/render"
	"github.com/mesh-intelligence/octofit/internal/views"
	"github.com/mesh-intelligence/octofit/pkg/types"
)

// Brand is the product name shown in the navigation bar.
const Brand = "OctoFit Tracker"

// Handler serves the dashboard pages.
type Handler struct {
	fetcher listview.Fetcher
	env     views.Env
	logger  *log.Logger
}

// NewHandler builds a Handler that mounts a fresh view per request against f.
// A nil logger discards output.
func NewHandler(f listview.Fetcher, env views.Env, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Handler{fetcher: f, env: env, logger: logger}
}

// RegisterRoutes attaches the home page, the view pages, /healthz and
// /metrics to r.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.home).Methods(http.MethodGet)
	for _, v := range views.All() {
		r.HandleFunc(v.Route, h.view(v)).Methods(http.MethodGet)
	}
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// NewRouter returns a router with every dashboard route and request logging.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logRequests)
	h.RegisterRoutes(r)
	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.WriteHome(w, page("Home", "")); err != nil {
		h.logger.Printf("rendering home: %v", err)
	}
}

// view streams a page for v: while the fetch is outstanding the loading panel
// is flushed, then the panel for whichever phase the fetch ends in follows.
// The stylesheet only shows the last panel.
func (h *Handler) view(v views.View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		m := v.New(h.fetcher, h.env)
		m.Mount(ctx)
		defer m.Unmount()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := render.WriteShellStart(w, page(v.Label, v.Route)); err != nil {
			h.logger.Printf("rendering %s: %v", v.Name, err)
			return
		}
		if first := m.Panel(); types.IsLoading(first.Phase) {
			if err := render.WritePanelHTML(w, first); err != nil {
				h.logger.Printf("rendering %s: %v", v.Name, err)
				return
			}
			if f, ok := w.(http.Flusher); ok {
				f.Flush()
			}
		}

		select {
		case <-m.Done():
		case <-ctx.Done():
			h.logger.Printf("%s: client went away before the fetch completed", v.Name)
			return
		}

		panel := m.Panel()
		pageCounter.WithLabelValues(v.Name, panel.Phase.String()).Inc()
		if err := render.WritePanelHTML(w, panel); err != nil {
			h.logger.Printf("rendering %s: %v", v.Name, err)
			return
		}
		if err := render.WriteShellEnd(w); err != nil {
			h.logger.Printf("rendering %s: %v", v.Name, err)
		}
	}
}

func page(title, active string) render.Page {
	all := views.All()
	nav := make([]render.NavLink, len(all))
	for i, v := range all {
		nav[i] = render.NavLink{Href: v.Route, Label: v.Label, Active: v.Route == active}
	}
	return render.Page{Brand: Brand, Title: title, Nav: nav}
}
