// Package gateway fronts the HR and user services behind one origin.
package gateway

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	appHTTP "github.com/basratech/hr-suite-go/internal/handler/http"
	"github.com/basratech/hr-suite-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type Options struct {
	HRServiceURL   string
	AuthServiceURL string
	AllowedOrigins []string
	Logger         *slog.Logger
	Now            func() time.Time
}

// HRPrefixes are the path prefixes served by the HR service.
var HRPrefixes = []string{"/api/timetracking", "/api/holidays", "/api/staff", "/api/salaryslips"}

const AuthPrefix = "/api/auth"

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewRouter builds the gateway router.
func NewRouter(opts Options) (*chi.Mux, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	hrProxy, err := newProxy("hr", opts.HRServiceURL, opts.Logger)
	if err != nil {
		return nil, err
	}
	authProxy, err := newProxy("auth", opts.AuthServiceURL, opts.Logger)
	if err != nil {
		return nil, err
	}

	r := appHTTP.NewBaseRouter(opts.Logger, opts.AllowedOrigins)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, healthResponse{
			Status:    "healthy",
			Timestamp: opts.Now().UTC().Format(time.RFC3339),
		})
	})

	mount(r, AuthPrefix, authProxy)
	for _, prefix := range HRPrefixes {
		mount(r, prefix, hrProxy)
	}

	return r, nil
}

func mount(r chi.Router, prefix string, h http.Handler) {
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}

// newProxy forwards with path and query untouched.
func newProxy(name, rawURL string, logger *slog.Logger) (*httputil.ReverseProxy, error) {
	target, err := url.Parse(rawURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid %s service url %q", name, rawURL)
	}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ModifyResponse: stripCORSHeaders,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.ErrorContext(r.Context(), "Upstream request failed",
				"upstream", name,
				"path", r.URL.Path,
				"error", err,
			)
			response.BadGateway(w, fmt.Sprintf("%s service unavailable", name))
		},
	}, nil
}

// stripCORSHeaders drops upstream CORS headers. The gateway's own CORS
// middleware has already written them, and the proxy appends rather than
// replaces, which would leave two Access-Control-Allow-Origin values.
func stripCORSHeaders(res *http.Response) error {
	for key := range res.Header {
		if strings.HasPrefix(key, "Access-Control-") {
			res.Header.Del(key)
		}
	}
	return nil
}
