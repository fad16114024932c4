package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/development-sample/eceta.com/internal/assets"
	"github.com/development-sample/eceta.com/internal/blog"
	"github.com/development-sample/eceta.com/internal/config"
	"github.com/development-sample/eceta.com/internal/content"
	"github.com/development-sample/eceta.com/internal/forms"
	"github.com/development-sample/eceta.com/internal/handlers"
	"github.com/development-sample/eceta.com/internal/i18n"
	"github.com/development-sample/eceta.com/internal/leads"
	mw "github.com/development-sample/eceta.com/internal/middleware"
	"github.com/development-sample/eceta.com/internal/observability"
	"github.com/development-sample/eceta.com/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	baseLogger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()
	logger := baseLogger.Named("web")

	ctx := observability.WithLogger(context.Background(), logger)
	leadStore, notifier, closeGCP, err := openLeadBackends(ctx, cfg.GCP)
	if err != nil {
		logger.Fatal("failed to initialise lead backends", zap.Error(err))
	}
	defer closeGCP()

	handler, err := newHandler(cfg, logger, leadStore, notifier)
	if err != nil {
		logger.Fatal("failed to build handler", zap.Error(err))
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("eceta web listening",
			zap.String("env", cfg.Environment),
			zap.String("base_url", cfg.Site.BaseURL),
			zap.Bool("cms", cfg.Content.CMSBaseURL != ""),
			zap.Bool("gcp", cfg.GCP.Enabled()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newHandler assembles the content sources and the route tree.
func newHandler(cfg config.Config, logger *zap.Logger, store leads.Store, notifier leads.Notifier) (http.Handler, error) {
	bundle, err := i18n.Load(i18n.Embedded(), i18n.Default)
	if err != nil {
		return nil, fmt.Errorf("load dictionaries: %w", err)
	}

	contentOpts := []content.Option{
		content.WithCacheTTL(cfg.Content.CacheTTL),
		content.WithLogger(logger.Named("content")),
	}
	if cfg.Content.Dir != "" {
		contentOpts = append(contentOpts, content.WithFS(os.DirFS(cfg.Content.Dir)))
	}
	if cfg.Content.CMSBaseURL != "" {
		contentOpts = append(contentOpts, content.WithRemote(cfg.Content.CMSBaseURL, &http.Client{Timeout: cfg.Content.CMSTimeout}))
	}
	provider, err := content.New(contentOpts...)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	postsFS := blog.Embedded()
	if cfg.Content.PostsDir != "" {
		postsFS = os.DirFS(cfg.Content.PostsDir)
	}
	posts, err := blog.New(postsFS)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}

	rt := router.New(provider, bundle, posts, router.WithChrome(router.NeedCopy|router.NeedDictionary))
	submitter := forms.NewClient(cfg.Forms.SubmitBaseURL, &http.Client{Timeout: cfg.Forms.SubmitTimeout})
	site := handlers.NewSite(rt, provider, bundle, cfg.Site.BaseURL,
		handlers.WithAnalytics(handlers.AnalyticsFromConfig(cfg.Analytics)),
		handlers.WithSubmitter(submitter),
	)

	if store == nil {
		store = leads.NewMemoryStore()
	}
	intake := leads.NewHandler(store, notifier)

	return routes(cfg, logger, bundle, site, intake), nil
}

func routes(cfg config.Config, logger *zap.Logger, bundle *i18n.Bundle, site *handlers.Site, intake *leads.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; deploy only behind a proxy that overwrites it.
	r.Use(chimw.RealIP)
	r.Use(chimw.GetHead)
	r.Use(observability.InjectLoggerMiddleware(logger))
	r.Use(observability.RequestLoggerMiddleware)
	r.Use(observability.RecoveryMiddleware(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(cfg.Server.RequestTimeout))
	r.Use(chimw.StripSlashes)
	r.Use(mw.HTMX)

	r.Get("/healthz", handlers.Healthz)
	r.Get("/robots.txt", site.Robots)
	r.Get("/sitemap.xml", site.Sitemap)
	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(assets.FS())))
	r.Handle("/favicon.ico", http.RedirectHandler("/assets/favicon.svg", http.StatusMovedPermanently))

	r.Get("/", mw.RootRedirect(bundle))
	r.Route("/api", intake.Routes)

	notFound := http.HandlerFunc(site.NotFound)
	r.Route("/{"+mw.LocaleParam+"}", func(r chi.Router) {
		r.Use(mw.Locale(notFound, cfg.Security.Secure))
		r.Use(mw.CSRF(mw.CSRFConfig{
			Key:    []byte(cfg.Security.CSRFKey),
			Secure: cfg.Security.Secure,
			Domain: cfg.Security.CookieHost,
		}))
		r.Use(mw.VaryLocale)
		r.Get("/", site.Page)
		r.Get("/*", site.Page)
		r.Post("/forms/{"+handlers.KindParam+"}", site.Submit)
	})
	r.NotFound(site.NotFound)
	return r
}

// openLeadBackends connects Firestore and Pub/Sub when GCP is configured. Without a project the
// caller falls back to the in-memory store.
func openLeadBackends(ctx context.Context, cfg config.GCPConfig) (leads.Store, leads.Notifier, func(), error) {
	logger := observability.FromContext(ctx)
	if !cfg.Enabled() {
		logger.Info("gcp not configured; leads kept in memory")
		return nil, leads.NopNotifier{}, func() {}, nil
	}

	var (
		fsClient *firestore.Client
		psClient *pubsub.Client
		topic    *pubsub.Topic
	)
	closeAll := func() {
		if topic != nil {
			topic.Stop()
		}
		if psClient != nil {
			if err := psClient.Close(); err != nil {
				logger.Warn("pubsub close error", zap.Error(err))
			}
		}
		if fsClient != nil {
			if err := fsClient.Close(); err != nil {
				logger.Warn("firestore close error", zap.Error(err))
			}
		}
	}

	fsClient, err := leads.NewFirestoreClient(ctx, cfg.ProjectID, cfg.CredentialsFile)
	if err != nil {
		return nil, nil, func() {}, err
	}
	store, err := leads.NewFirestoreStore(fsClient, cfg.FirestoreCollection)
	if err != nil {
		closeAll()
		return nil, nil, func() {}, err
	}

	var notifier leads.Notifier = leads.NopNotifier{}
	if cfg.PubSubTopic != "" {
		psClient, topic, err = leads.OpenTopic(ctx, cfg.ProjectID, cfg.PubSubTopic, cfg.CredentialsFile)
		if err != nil {
			closeAll()
			return nil, nil, func() {}, err
		}
		n, err := leads.NewPubSubNotifier(topic)
		if err != nil {
			closeAll()
			return nil, nil, func() {}, err
		}
		notifier = n
	}

	return store, notifier, closeAll, nil
}
