package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"unipact/internal/adapter/event"
	httpadapter "unipact/internal/adapter/http"
	"unipact/internal/adapter/memory"
	"unipact/internal/adapter/metrics"
	"unipact/internal/adapter/payment"
	"unipact/internal/adapter/postgres"
	"unipact/internal/adapter/report"
	"unipact/internal/adapter/storage"
	"unipact/internal/adapter/usecase"
	"unipact/internal/adapter/worker"
	"unipact/internal/config"
	"unipact/internal/config/configs"
	"unipact/internal/core/port"
	"unipact/internal/db"
	"unipact/internal/telemetry"
)

// repositories is the persistence side of the service, backed either by
// PostgreSQL or by the in-process store.
type repositories struct {
	campaigns port.CampaignRepository
	ledger    port.LedgerRepository
	profiles  port.ProfileRepository
	reviews   port.ReviewRepository
	close     func()
}

// main loads configuration, wires the adapters to the use cases and serves
// the API until SIGINT or SIGTERM, then shuts down gracefully.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	if err = run(cfg, logger); err != nil {
		logger.Error("service stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.Env)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer scancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracer shutdown", slog.Any("error", err))
		}
	}()

	repos, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repos.close()

	var files port.FileStorage = memory.NewFiles()
	if cfg.S3.Enabled() {
		s3, err := storage.NewS3(ctx, cfg.S3)
		if err != nil {
			return fmt.Errorf("s3: %w", err)
		}
		files = s3
		logger.Info("storing files in s3", slog.String("bucket", cfg.S3.Bucket))
	}

	var events port.EventPublisher = event.NewLogPublisher(logger)
	if cfg.Kafka.Enabled() {
		kp := event.NewKafkaPublisher(event.NewKafkaWriter(cfg.Kafka), cfg.Kafka.PublishTimeout)
		defer func() {
			if err := kp.Close(); err != nil {
				logger.Warn("kafka writer close", slog.Any("error", err))
			}
		}()
		events = kp
		logger.Info("publishing events to kafka", slog.String("topic", cfg.Kafka.Topic))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []usecase.Option{
		usecase.WithLogger(logger),
		usecase.WithEvents(events),
		usecase.WithMetrics(metrics.NewPrometheus(reg)),
	}
	campaigns := usecase.NewCampaignUseCase(repos.campaigns, repos.profiles, repos.ledger, files, report.NewPDF(files), opts...)
	reputation := usecase.NewReputationUseCase(repos.reviews, repos.profiles, repos.campaigns, opts...)
	payments := usecase.NewPaymentUseCase(repos.ledger, repos.campaigns, payment.NewMockProcessor(), opts...)

	handler := httpadapter.NewHandler(campaigns, reputation, payments,
		httpadapter.NewAuthenticator(cfg.Auth), logger,
		httpadapter.Options{Gatherer: reg, MaxUploadBytes: cfg.HTTP.MaxUploadBytes},
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return worker.NewRankRefresher(reputation, cfg.Reputation.RefreshInterval, logger).Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, scancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer scancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}

func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (*repositories, error) {
	if cfg.Store.Backend == configs.BackendMemory {
		store := memory.NewStore()
		if cfg.Psql.RunSeed {
			if err := seedMemory(ctx, store); err != nil {
				return nil, err
			}
			logger.Info("memory store seeded with demo data")
		}
		return &repositories{
			campaigns: store,
			ledger:    store,
			profiles:  store,
			reviews:   store,
			close:     func() {},
		}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool, db.Demo(time.Now())); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("database seeded with demo data")
	}
	return postgresRepositories(pool), nil
}

func postgresRepositories(pool *pgxpool.Pool) *repositories {
	return &repositories{
		campaigns: postgres.NewCampaignRepository(pool),
		ledger:    postgres.NewLedgerRepository(pool),
		profiles:  postgres.NewProfileRepository(pool),
		reviews:   postgres.NewReviewRepository(pool),
		close:     pool.Close,
	}
}

func seedMemory(ctx context.Context, store *memory.Store) error {
	demo := db.Demo(time.Now())
	for _, c := range demo.Companies {
		store.PutCompany(c)
	}
	for _, c := range demo.Clubs {
		store.PutClub(c)
	}
	for _, r := range demo.Reviews {
		store.PutReview(r)
	}
	for i := range demo.Campaigns {
		if err := store.CreateCampaign(ctx, &demo.Campaigns[i]); err != nil {
			return fmt.Errorf("seed campaign %s: %w", demo.Campaigns[i].Title, err)
		}
	}
	return nil
}
