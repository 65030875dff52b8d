// Package router sets up all HTTP routes and middleware chains for the
// Steelgate website. Page routes sit behind the full-page cache; the lead
// endpoints sit behind the per-IP rate limiter.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"steelgate/internal/cache"
	"steelgate/internal/handlers"
	"steelgate/internal/metrics"
	"steelgate/internal/middleware"
	"steelgate/web"
)

// leadRateLimit allows this many lead submissions per client IP per window.
const (
	leadRateLimit  = 8
	leadRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(public *handlers.Public, leads *handlers.Leads, seoHandlers *handlers.SEO, pageCache *cache.PageCache) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(metrics.Middleware)

	// Health check and metrics — never cached.
	r.Get("/health", handlers.Health)
	r.Handle("/metrics", metrics.Handler())

	// Embedded static assets.
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	// Lead submission endpoints — rate limited, JSON in/out.
	limiter := middleware.NewRateLimiter(leadRateLimit, leadRateWindow)
	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Post("/contact", leads.Contact)
		r.Post("/request-quote", leads.RequestQuote)
	})

	// Public pages and SEO artifacts — served through the page cache so a
	// content snapshot is re-rendered at most once per revalidation window.
	r.Group(func(r chi.Router) {
		r.Use(cache.Pages(pageCache))

		r.Get("/", public.Homepage)
		r.Get("/about", public.About)
		r.Get("/contact", public.Contact)
		r.Get("/sell", public.Sell)
		r.Get("/terms", public.Terms)

		r.Get("/inventory", public.InventoryIndex)
		r.Get("/inventory/{category}", public.Category)
		r.Get("/inventory/{category}/{subcategory}", public.Subcategory)
		r.Get("/inventory/{category}/{subcategory}/{machine}", public.Machine)

		r.Get("/brands", public.BrandIndex)
		r.Get("/brands/{brand}", public.Brand)

		r.Get("/blog", public.BlogIndex)
		r.Get("/blog/{slug}", public.BlogPost)

		r.Get("/sitemap.xml", seoHandlers.Sitemap)
		r.Get("/sitemap-images.xml", seoHandlers.ImageSitemap)
		r.Get("/robots.txt", seoHandlers.Robots)
	})

	// Unmatched routes share the rendered not-found page.
	r.NotFound(public.NotFound)

	return r
}
