package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/nats-io/nats.go"
	"golang.org/x/sync/errgroup"

	"github.com/dukerupert/foodmania/internal"
	"github.com/dukerupert/foodmania/internal/auth"
	"github.com/dukerupert/foodmania/internal/billing"
	"github.com/dukerupert/foodmania/internal/bootstrap"
	"github.com/dukerupert/foodmania/internal/cookie"
	"github.com/dukerupert/foodmania/internal/delivery"
	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/email"
	"github.com/dukerupert/foodmania/internal/events"
	"github.com/dukerupert/foodmania/internal/handler/admin"
	"github.com/dukerupert/foodmania/internal/handler/api"
	"github.com/dukerupert/foodmania/internal/handler/webhook"
	"github.com/dukerupert/foodmania/internal/middleware"
	"github.com/dukerupert/foodmania/internal/postgres"
	"github.com/dukerupert/foodmania/internal/pricing"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/dukerupert/foodmania/internal/router"
	"github.com/dukerupert/foodmania/internal/routes"
	"github.com/dukerupert/foodmania/internal/service"
	"github.com/dukerupert/foodmania/internal/storage"
	"github.com/dukerupert/foodmania/internal/tax"
	"github.com/dukerupert/foodmania/internal/telemetry"
	"github.com/dukerupert/foodmania/internal/worker"
)

const metricsNamespace = "foodmania"

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)
	slog.SetDefault(logger)

	// Initialize Sentry
	flushSentry, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:              cfg.Sentry.DSN,
		Enabled:          cfg.Sentry.Enabled,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		Debug:            cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer flushSentry()

	// One pool for the whole process
	logger.Info("Connecting to database...")
	pool, err := postgres.Connect(ctx, cfg.DatabaseUrl, cfg.DBMaxConns)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("Database connection established")

	// Run migrations over the same pool
	sqlDB := stdlib.OpenDBFromPool(pool)
	err = internal.RunMigrations(ctx, sqlDB, logger)
	sqlDB.Close()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	repo := repository.New(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Auth
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL, "foodmania")
	if err != nil {
		return fmt.Errorf("failed to initialize token manager: %w", err)
	}
	cookies := cookie.NewConfig(cfg.Auth.CookieDomain, cfg.Auth.CookieSecure, cfg.Auth.CookieCrossSite)

	if err := bootstrap.EnsureAdmin(ctx, repo, hasher, &bootstrap.AdminConfig{
		Email:     cfg.Admin.Email,
		Password:  cfg.Admin.Password,
		FirstName: cfg.Admin.FirstName,
		LastName:  cfg.Admin.LastName,
	}, logger); err != nil {
		return fmt.Errorf("admin bootstrap failed: %w", err)
	}

	// Storage for dish images
	store, err := storage.NewStorage(storage.Config{
		Provider:      cfg.Storage.Provider,
		LocalPath:     cfg.Storage.LocalPath,
		LocalURL:      cfg.Storage.LocalURL,
		R2AccountID:   cfg.Storage.R2AccountID,
		R2AccessKeyID: cfg.Storage.R2AccessKeyID,
		R2SecretKey:   cfg.Storage.R2SecretKey,
		R2BucketName:  cfg.Storage.R2BucketName,
		R2PublicURL:   cfg.Storage.R2PublicURL,
		R2Endpoint:    cfg.Storage.R2Endpoint,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "provider", cfg.Storage.Provider)

	// Events. Without NATS, events are dropped and no worker runs.
	var publisher events.Publisher = events.NoopPublisher{}
	var natsConn *nats.Conn
	if cfg.NATS.URL != "" {
		natsConn, err = events.Connect(cfg.NATS.URL, "foodmania-api", logger)
		if err != nil {
			return err
		}
		defer natsConn.Drain()
		publisher = events.NewNATSPublisher(natsConn, cfg.NATS.SubjectPrefix, logger)
		logger.Info("NATS connected", "url", natsConn.ConnectedUrl())
	} else {
		logger.Warn("NATS_URL not set, order events disabled")
	}

	// Billing. Without a Stripe key only demo checkout is available.
	var billingProvider billing.Provider
	if cfg.Stripe.SecretKey != "" {
		stripeProvider, err := billing.NewStripeProvider(billing.StripeConfig{
			APIKey:         cfg.Stripe.SecretKey,
			WebhookSecret:  cfg.Stripe.WebhookSecret,
			Currency:       cfg.Pricing.Currency,
			TimeoutSeconds: cfg.Stripe.TimeoutSeconds,
			Transport:      &telemetry.HTTPTransport{Transport: http.DefaultTransport},
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Stripe provider: %w", err)
		}
		billingProvider = stripeProvider
		logger.Info("Stripe billing provider initialized", "currency", stripeProvider.Currency())
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, gateway checkout and webhooks disabled")
	}

	// Pricing
	var taxCalculator tax.Calculator = tax.NewNoTaxCalculator()
	if cfg.Pricing.TaxRate.IsPositive() {
		taxCalculator, err = tax.NewPercentageCalculator(cfg.Pricing.TaxRate)
		if err != nil {
			return fmt.Errorf("failed to initialize tax calculator: %w", err)
		}
	}
	deliveryProvider, err := delivery.NewFlatRateProvider(cfg.Pricing.DeliveryFee, cfg.Pricing.FreeDeliveryThreshold)
	if err != nil {
		return fmt.Errorf("failed to initialize delivery provider: %w", err)
	}
	engine := pricing.NewEngine(taxCalculator, deliveryProvider, cfg.Pricing.Currency)

	// Services
	userService := postgres.NewUserService(repo, hasher, tokens, logger)
	dishService := postgres.NewDishService(repo, store, logger)
	cartService := service.NewCartService(repo, logger)
	orderService := service.NewOrderService(repo, txRunner, publisher, logger)
	reviewService := service.NewReviewService(repo)
	voucherService := service.NewVoucherService(repo)
	adminService := service.NewAdminService(repo, logger)
	checkoutService := service.NewCheckoutService(repo, txRunner, engine, billingProvider, publisher, logger, service.CheckoutConfig{
		SuccessURL:        cfg.FrontendURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:         cfg.FrontendURL + "/payment/cancel",
		DemoPaymentStatus: domain.PaymentStatus(cfg.Pricing.DemoPaymentStatus),
		DisableDemo:       !cfg.Pricing.DemoCheckoutEnabled,
	})

	// Metrics
	metrics := middleware.NewMetrics(metricsNamespace, nil)
	telemetry.InitBusinessMetrics(metricsNamespace)

	securityConfig := middleware.DefaultSecurityHeadersConfig()
	if cfg.Env == "dev" {
		securityConfig.HSTSMaxAge = 0
	}

	defaultRateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	defer defaultRateLimiter.Stop()
	authRateLimiter := middleware.NewRateLimiter(middleware.StrictRateLimiterConfig())
	defer authRateLimiter.Stop()

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		middleware.WithClientIP(),
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
		telemetry.SentryMiddleware(),
		metrics.Middleware,
		middleware.SecurityHeaders(securityConfig),
		middleware.Timeout(middleware.DefaultTimeout),
		defaultRateLimiter.Middleware,
		middleware.WithUser(userService),
		middleware.WithUserLogger,
		telemetry.SentryContextMiddleware(),
	)
	r.Use(router.CORS(router.CORSConfig{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterHealthRoutes(r, metrics.Handler())

	dishHandler := api.NewDishHandler(dishService)
	orderHandler := api.NewOrderHandler(orderService)
	voucherHandler := api.NewVoucherHandler(voucherService)

	routes.RegisterAPIRoutes(r, routes.APIDeps{
		Auth:            api.NewAuthHandler(userService, cookies),
		Dishes:          dishHandler,
		Cart:            api.NewCartHandler(cartService),
		Checkout:        api.NewCheckoutHandler(checkoutService, orderService),
		Orders:          orderHandler,
		Reviews:         api.NewReviewHandler(reviewService),
		Vouchers:        voucherHandler,
		StrictRateLimit: authRateLimiter.Middleware,
	})
	routes.RegisterAdminRoutes(r, routes.AdminDeps{
		Dashboard:  admin.NewDashboardHandler(adminService),
		Users:      admin.NewUserHandler(adminService),
		Vouchers:   admin.NewVoucherHandler(voucherService),
		DishImages: admin.NewDishImageHandler(dishService),
		Dishes:     dishHandler,
		Orders:     orderHandler,
		Validate:   voucherHandler,
	})
	if billingProvider != nil {
		routes.RegisterWebhookRoutes(r, routes.WebhookDeps{
			Stripe: webhook.NewStripeHandler(billingProvider, checkoutService, orderService, logger),
		})
	}

	if local, ok := store.(*storage.LocalStorage); ok {
		r.Static(cfg.Storage.LocalURL, local.BasePath())
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting server", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if natsConn != nil {
		mailer, err := newMailer(cfg.Email, logger)
		if err != nil {
			return err
		}
		w := worker.NewWorker(natsConn, orderService, mailer, worker.Config{
			SubjectPrefix: cfg.NATS.SubjectPrefix,
		}, logger)
		g.Go(func() error {
			return w.Start(gctx)
		})
	}

	return g.Wait()
}

// newMailer picks Postmark, then SMTP, then a logging sender.
func newMailer(cfg internal.EmailConfig, logger *slog.Logger) (*email.Service, error) {
	var sender email.Sender
	switch {
	case cfg.PostmarkToken != "":
		postmark, err := email.NewPostmarkSender(cfg.PostmarkToken, cfg.From)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postmark sender: %w", err)
		}
		sender = postmark
		logger.Info("Email sender initialized", "provider", "postmark")
	case cfg.Host != "":
		smtp, err := email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.Host,
			Port:     int(cfg.Port),
			Username: cfg.Username,
			Password: cfg.Password,
			From:     cfg.From,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize smtp sender: %w", err)
		}
		sender = smtp
		logger.Info("Email sender initialized", "provider", "smtp", "host", cfg.Host)
	default:
		sender = email.NewLogSender(logger)
		logger.Warn("No email provider configured, emails will be logged")
	}

	svc, err := email.NewService(sender, cfg.From, cfg.FromName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email service: %w", err)
	}
	return svc, nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
