package httpserver

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"casa_schuck/internal/adapters/observability"
	"casa_schuck/internal/domain"
)

func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return http.TimeoutHandler(next, d, "timeout") }
}

// ---- status-recording ResponseWriter ----

type srw struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *srw) WriteHeader(code int) {
	if !w.wrote {
		w.status = code
		w.wrote = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *srw) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *srw) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// ---- Metrics middleware ----

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &srw{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		observability.ObserveHTTP(route, r.Method, sw.Status(), time.Since(start))
	})
}

// ---- Structured logging middleware ----

func Logger(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &srw{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = r.URL.Path
			}
			l.Info().
				Str("route", route).
				Str("method", r.Method).
				Int("status", sw.Status()).
				Dur("duration", time.Since(start)).
				Str("remote", remoteIP(r)).
				Str("ua", r.UserAgent()).
				Msg("http_request")
		})
	}
}

// Picks first X-Forwarded-For IP, else X-Real-IP, else RemoteAddr host.
func remoteIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

// ---- Per-client rate limiting ----

// RateLimit applies a token bucket per remote IP. Buckets are kept for the
// process lifetime; the key space is bounded by the site's real audience.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	var mu sync.Mutex
	buckets := make(map[string]*rate.Limiter)
	limiter := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := buckets[ip]
		if !ok {
			l = rate.NewLimiter(rate.Limit(rps), burst)
			buckets[ip] = l
		}
		return l
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter(remoteIP(r)).Allow() {
				writeProblem(w, http.StatusTooManyRequests, "Too Many Requests", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ---- Locale resolution ----

// Routes the locale resolver must leave alone: APIs, static assets, and
// anything with a file extension.
var bypassPrefixes = []string{"/v1/", "/api/", "/static/", "/images/", "/metrics", "/healthz"}

// langMatcher's tag order mirrors domain.Locales(): the matched index maps
// straight back to a Locale.
var langMatcher = language.NewMatcher([]language.Tag{language.English, language.Spanish})

// LocaleRedirect ensures every page path carries exactly one locale segment.
// Paths already prefixed with a supported locale pass through unchanged, as
// do asset and API routes. Everything else gets a redirect to the same path
// with the negotiated locale prepended; the redirect target then matches the
// bypass rule, so applying the resolver twice is a no-op.
//
// A first segment that looks like a locale but is not supported also passes
// through: the page handler answers it with a plain 404, never a redirect.
func LocaleRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path

		seg := firstSegment(p)
		if _, ok := domain.ParseLocale(seg); ok {
			next.ServeHTTP(w, r)
			return
		}
		if looksLikeLocale(seg) || bypass(p) {
			next.ServeHTTP(w, r)
			return
		}

		loc := negotiateLocale(r.Header.Get("Accept-Language"))
		target := "/" + string(loc) + p
		if q := r.URL.RawQuery; q != "" {
			target += "?" + q
		}
		observability.ObserveRedirect(string(loc))
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	})
}

func firstSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

// looksLikeLocale reports whether seg has the shape of a two-letter language
// code. Unsupported codes are page-not-found territory, not redirect fodder.
func looksLikeLocale(seg string) bool {
	if len(seg) != 2 {
		return false
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func bypass(p string) bool {
	for _, pre := range bypassPrefixes {
		if strings.HasPrefix(p, pre) || p == strings.TrimSuffix(pre, "/") {
			return true
		}
	}
	// file extension anywhere in the path (favicon.ico, og-image.jpg, ...)
	return strings.Contains(p, ".")
}

// negotiateLocale matches Accept-Language against the supported set.
// Malformed or non-matching headers degrade to the default locale.
func negotiateLocale(header string) domain.Locale {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return domain.DefaultLocale
	}
	_, idx, conf := langMatcher.Match(tags...)
	if conf == language.No {
		return domain.DefaultLocale
	}
	return domain.Locales()[idx]
}
