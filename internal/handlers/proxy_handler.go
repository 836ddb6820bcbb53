package handlers

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProxyHandler forwards API requests unchanged to an external lesson server
type ProxyHandler struct {
	BaseHandler
	target *url.URL
	proxy  *httputil.ReverseProxy
}

// NewProxyHandler creates a reverse proxy to targetURL
func NewProxyHandler(targetURL string, logger *zap.Logger) (*ProxyHandler, error) {
	target, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy target: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid proxy target: %q", targetURL)
	}

	h := &ProxyHandler{
		target:      target,
		BaseHandler: BaseHandler{logger: logger},
	}
	h.proxy = &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ErrorHandler: h.handleProxyError,
	}
	return h, nil
}

// RegisterRoutes forwards every request below the router's mount point
func (h *ProxyHandler) RegisterRoutes(r chi.Router) {
	r.Handle("/*", h)
}

func (h *ProxyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.proxy.ServeHTTP(w, r)
}

func (h *ProxyHandler) handleProxyError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("proxy request failed",
		zap.String("target", h.target.String()),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	h.respondError(w, http.StatusBadGateway, "external API unavailable")
}
