// Command server runs the userhub HTTP API: profile management, profile
// links, and the invitation lifecycle. main only wires dependencies;
// business logic lives in the internal services.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
	"golang.org/x/sync/errgroup"

	"userhub/internal/audit"
	"userhub/internal/notification"
	"userhub/internal/platform/config"
	"userhub/internal/platform/httpserver"
	"userhub/internal/platform/logger"
	"userhub/internal/platform/metrics"
	"userhub/internal/platform/middleware"
	"userhub/internal/platform/postgres"
	platformredis "userhub/internal/platform/redis"
	"userhub/internal/profile/handler"
	"userhub/internal/profile/models"
	"userhub/internal/profile/service"
	"userhub/internal/profile/store/cache"
	"userhub/internal/profile/store/employer"
	"userhub/internal/profile/store/individual"
	"userhub/internal/profile/store/invitation"
	"userhub/internal/profile/store/link"
	"userhub/internal/user"
	id "userhub/pkg/domain"
	"userhub/pkg/platform/tx"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(db); err != nil {
			return err
		}
	}

	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	individuals, employers := profileStores(db, redisClient, cfg.Redis)

	opts := []service.Option{
		service.WithLogger(log),
		service.WithTxRunner(tx.NewSQLRunner(db)),
	}

	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := kgo.NewClient(kgo.SeedBrokers(cfg.Kafka.Brokers...))
		if err != nil {
			return fmt.Errorf("kafka client: %w", err)
		}
		defer kafkaClient.Close()

		if cfg.Kafka.EnsureTopics {
			if err := ensureTopics(ctx, kafkaClient, cfg.Kafka); err != nil {
				return err
			}
		}

		opts = append(opts,
			service.WithAuditPublisher(audit.NewGuardedPublisher(
				audit.NewKafkaPublisher(kafkaClient, cfg.Kafka.AuditTopic), log)),
			service.WithNotificationPublisher(notification.NewKafkaPublisher(
				kafkaClient,
				cfg.Kafka.NotificationTopic,
				cfg.Portal.IndividualClaimURL,
				cfg.Portal.EmployerClaimURL,
			)),
		)
	} else {
		log.Warn("kafka not configured; audit events and invitation emails are disabled")
	}

	svc, err := service.New(
		individuals,
		employers,
		link.NewPostgresStore(db),
		invitation.NewPostgresStore(db),
		user.NewPostgresStore(db),
		opts...,
	)
	if err != nil {
		return err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestMeta)
	router.Use(middleware.Trace)
	router.Use(metrics.Instrument)
	router.Use(middleware.AccessLog(log))

	router.Get("/healthz", healthHandler(db, redisClient))
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	verifier := middleware.NewJWTVerifier(cfg.Auth.JWTSigningKey)
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(verifier, log))
		handler.New(svc, log).Register(r)
	})

	srv := httpserver.New(cfg.HTTP.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting userhub", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// profileStores builds the two profile stores, wrapped in the Redis
// read-through cache when Redis is configured.
func profileStores(db *sql.DB, redisClient *platformredis.Client, cfg config.Redis) (service.IndividualStore, service.EmployerStore) {
	individuals := individual.NewPostgresStore(db)
	employers := employer.NewPostgresStore(db)
	if redisClient == nil {
		return individuals, employers
	}

	cachedIndividuals := cache.New[models.IndividualProfile, models.IndividualFilters](
		individuals, redisClient.Client, "profile:individual",
		func(p *models.IndividualProfile) id.ProfileID { return p.ID },
		cache.WithTTL[models.IndividualProfile, models.IndividualFilters](cfg.CacheTTL),
	)
	cachedEmployers := cache.New[models.EmployerProfile, models.EmployerFilters](
		employers, redisClient.Client, "profile:employer",
		func(p *models.EmployerProfile) id.ProfileID { return p.ID },
		cache.WithTTL[models.EmployerProfile, models.EmployerFilters](cfg.CacheTTL),
	)
	return cachedIndividuals, cachedEmployers
}

func healthHandler(db pinger, redisClient *platformredis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}

type pinger interface {
	PingContext(ctx context.Context) error
}

// ensureTopics creates the audit and notification topics when missing so a
// fresh environment comes up without manual broker setup.
func ensureTopics(ctx context.Context, client *kgo.Client, cfg config.Kafka) error {
	topics := []string{cfg.AuditTopic}
	if cfg.NotificationTopic != "" {
		topics = append(topics, cfg.NotificationTopic)
	}

	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopics(ctx, -1, -1, nil, topics...)
	if err != nil {
		return fmt.Errorf("create topics: %w", err)
	}
	for _, r := range resp.Sorted() {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}
