package handlers

import (
	"bytes"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"

	"github.com/testmaster-app/testmaster/auth"
	"github.com/testmaster-app/testmaster/config"
	"github.com/testmaster-app/testmaster/logging"
	"github.com/testmaster-app/testmaster/monitoring"
	"github.com/testmaster-app/testmaster/page"
	"github.com/testmaster-app/testmaster/registry"
	"github.com/testmaster-app/testmaster/view"
)

const anonymousPageKey = "landing:anonymous"

// Handlers serves the landing page and its JSON view.
type Handlers struct {
	config   *config.Config
	metrics  *monitoring.Metrics
	events   *logging.PageEventLogger
	registry *registry.Registry
	pages    *cache.Cache
}

// Deps are the collaborators the handlers need. Registry may be nil.
type Deps struct {
	Config   *config.Config
	Metrics  *monitoring.Metrics
	Events   *logging.PageEventLogger
	Registry *registry.Registry
}

// New creates the handlers. A zero CacheTTL disables the page cache.
func New(d Deps) *Handlers {
	h := &Handlers{
		config:   d.Config,
		metrics:  d.Metrics,
		events:   d.Events,
		registry: d.Registry,
	}
	if ttl := d.Config.Site.CacheTTL; ttl > 0 {
		h.pages = cache.New(ttl, 2*ttl)
	}
	return h
}

func variant(state auth.State) string {
	if state.IsAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

func (h *Handlers) document() view.DocumentProps {
	return view.DocumentProps{
		Title:       h.config.Site.Title,
		Description: h.config.Site.Description,
		Stylesheets: []string{"/static/landing.css"},
		Scripts:     []string{"/static/mount.js"},
	}
}

// requestState resolves the auth snapshot for c and records rejected tokens.
func (h *Handlers) requestState(c echo.Context) auth.State {
	if auth.TokenRejected(c) {
		h.metrics.TokensRejected.Inc()
		h.events.LogPageEvent(logging.EventTokenRejected, net.ParseIP(c.RealIP()), c.Request().URL.Path, false, nil)
	}
	return auth.StateFromContext(c)
}

// renderHTML renders the full document for state. Anonymous pages come from
// the cache when possible.
func (h *Handlers) renderHTML(state auth.State) ([]byte, bool, error) {
	cacheable := !state.IsAuthenticated && h.pages != nil
	if cacheable {
		if body, found := h.pages.Get(anonymousPageKey); found {
			return body.([]byte), true, nil
		}
	}

	var buf bytes.Buffer
	l := page.New(auth.Static(state), page.WithRegistry(h.registry))
	if err := view.RenderDocument(&buf, h.document(), l.Render()); err != nil {
		return nil, false, err
	}

	body := buf.Bytes()
	if cacheable {
		h.pages.SetDefault(anonymousPageKey, body)
	}
	return body, false, nil
}

// LandingPage serves the landing page HTML
func (h *Handlers) LandingPage(c echo.Context) error {
	started := time.Now()
	state := h.requestState(c)

	body, cached, err := h.renderHTML(state)
	if err != nil {
		logging.ErrorLogger.Printf("Failed to render landing page: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render page")
	}

	if !state.IsAuthenticated {
		if cached {
			h.metrics.CacheHits.Inc()
		} else {
			h.metrics.CacheMisses.Inc()
		}
	}
	h.metrics.ObserveRender(variant(state), "html", started)
	h.events.LogPageEvent(logging.EventPageView, net.ParseIP(c.RealIP()), c.Request().URL.Path, state.IsAuthenticated,
		map[string]interface{}{"cached": cached})

	c.Response().Header().Set("Vary", "Authorization, Cookie")
	if state.IsAuthenticated {
		c.Response().Header().Set("Cache-Control", "private, no-store")
	}
	return c.HTMLBlob(http.StatusOK, body)
}

// LandingTree is the JSON form of a rendered page.
type LandingTree struct {
	Authenticated bool       `json:"authenticated"`
	Greeting      string     `json:"greeting,omitempty"`
	Mounted       bool       `json:"mounted"`
	Tree          *view.Node `json:"tree"`
}

// LandingJSON serves the page's view tree in the standard envelope
func (h *Handlers) LandingJSON(c echo.Context) error {
	started := time.Now()
	state := h.requestState(c)

	l := page.New(auth.Static(state), page.WithRegistry(h.registry))
	tree := LandingTree{
		Authenticated: state.IsAuthenticated,
		Mounted:       l.Mounted(),
		Tree:          l.Render(),
	}
	if state.IsAuthenticated {
		tree.Greeting = page.Greeting(state)
	}

	h.metrics.ObserveRender(variant(state), "json", started)
	h.events.LogPageEvent(logging.EventTreeView, net.ParseIP(c.RealIP()), c.Request().URL.Path, state.IsAuthenticated, nil)

	return JSONResponse(c, http.StatusOK, "Landing page", tree)
}

// RegistryEntries lists the nodes recorded by the design-time registry
func (h *Handlers) RegistryEntries(c echo.Context) error {
	if h.registry == nil {
		return JSONError(c, http.StatusNotFound, "Registry is disabled")
	}

	h.events.LogPageEvent(logging.EventRegistryAccess, net.ParseIP(c.RealIP()), c.Request().URL.Path, false,
		map[string]interface{}{"entries": h.registry.Len()})

	return JSONResponse(c, http.StatusOK, "", map[string]interface{}{
		"entries": h.registry.Entries(),
		"count":   h.registry.Len(),
	})
}
