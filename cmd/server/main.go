package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	catalogGateway "cafepos/internal/catalog/gateway"
	catalogService "cafepos/internal/catalog/service"
	customerGateway "cafepos/internal/customer/gateway"
	customerService "cafepos/internal/customer/service"
	"cafepos/internal/datasource"
	"cafepos/internal/datasource/fakepayment"
	"cafepos/internal/datasource/memory"
	"cafepos/internal/datasource/mercadopago"
	"cafepos/internal/datasource/notifier"
	"cafepos/internal/datasource/postgres"
	notificationGateway "cafepos/internal/notification/gateway"
	orderGateway "cafepos/internal/order/gateway"
	orderService "cafepos/internal/order/service"
	paymentGateway "cafepos/internal/payment/gateway"
	"cafepos/internal/payment/reconciliation"
	paymentService "cafepos/internal/payment/service"
	"cafepos/internal/platform/config"
	"cafepos/internal/platform/httpserver"
	"cafepos/internal/platform/idgen"
	"cafepos/internal/platform/kafka"
	"cafepos/internal/platform/logger"
	"cafepos/internal/platform/metrics"
	"cafepos/internal/platform/middleware"
	"cafepos/internal/platform/redis"
	storeGateway "cafepos/internal/store/gateway"
	storeService "cafepos/internal/store/service"
)

const reconciliationInboxSize = 256

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cafepos: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	m := metrics.New(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	general, closeStore, err := openDataSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	provider, err := openPaymentProvider(cfg)
	if err != nil {
		return err
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	notifierOpts := []notifier.Option{notifier.WithLogger(log)}
	if redisClient != nil {
		defer redisClient.Close()
		notifierOpts = append(notifierOpts, notifier.WithRedis(redisClient))
	}

	ds := datasource.NewProxy(general, provider, notifier.New(notifierOpts...))

	stores := storeGateway.New(ds)
	customers := customerGateway.New(ds)
	catalog := catalogGateway.New(ds)
	orders := orderGateway.New(ds)
	payments := paymentGateway.New(ds)

	storeSvc := storeService.New(stores, storeService.WithLogger(log), storeService.WithMetrics(m))
	customerSvc := customerService.New(customers, customerService.WithLogger(log), customerService.WithMetrics(m))
	catalogSvc := catalogService.New(catalog, storeSvc, catalogService.WithLogger(log), catalogService.WithMetrics(m))
	orderSvc := orderService.New(orders, storeSvc, customerSvc, catalogSvc,
		orderService.WithLogger(log),
		orderService.WithMetrics(m),
		orderService.WithNotifier(notificationGateway.New(ds)),
	)

	var publisher paymentService.ReconciliationPublisher
	var consumer *kafka.Consumer
	var inbox *reconciliation.ChannelPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.ReconciliationTopic)
		if err != nil {
			return err
		}
		defer producer.Close()
		consumer, err = kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.ReconciliationTopic, log)
		if err != nil {
			return err
		}
		defer consumer.Close()
		publisher = reconciliation.NewKafkaPublisher(producer)
	} else {
		inbox = reconciliation.NewChannelPublisher(reconciliationInboxSize)
		publisher = inbox
	}
	paymentSvc := paymentService.New(payments, storeSvc, orderSvc,
		paymentService.WithLogger(log),
		paymentService.WithMetrics(m),
		paymentService.WithReconciliationPublisher(publisher),
	)

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	if consumer != nil {
		g.Go(func() error { return consumer.Run(ctx, reconciliation.Handler(paymentSvc)) })
	} else {
		g.Go(func() error {
			err := reconciliation.NewWorker(paymentSvc, inbox.Events(), log).Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	srv := httpserver.New(cfg.Addr, router(redisClient))
	log.Info("cafepos starting", "data_source", cfg.DataSource, "payment_provider", cfg.PaymentProvider)
	g.Go(func() error { return httpserver.Serve(ctx, srv, ln, cfg.ShutdownTimeout, log) })
	return g.Wait()
}

func openDataSource(ctx context.Context, cfg config.Server) (datasource.General, func(), error) {
	if cfg.DataSource != config.DataSourcePostgres {
		return memory.New(), func() {}, nil
	}
	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return postgres.New(db), closer(db), nil
}

func closer(db *sql.DB) func() {
	return func() { _ = db.Close() }
}

func openPaymentProvider(cfg config.Server) (datasource.PaymentProvider, error) {
	if cfg.PaymentProvider != config.PaymentProviderMercadoPago {
		return fakepayment.New(idgen.Random{}), nil
	}
	return mercadopago.New(cfg.MercadoPago.AccessToken, cfg.MercadoPago.PayerEmail)
}

func router(redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, middleware.RequestContext, chimw.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				slog.WarnContext(r.Context(), "health check failed", "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
