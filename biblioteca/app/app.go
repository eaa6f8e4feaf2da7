package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/biblioteca/config"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/handler"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/repository"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/server"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/service"
	"github.com/Astemirdum/biblioteca-service/biblioteca/migrations"
	"github.com/Astemirdum/biblioteca-service/pkg/circuit_breaker"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/Astemirdum/biblioteca-service/pkg/logger"
	"github.com/Astemirdum/biblioteca-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "biblioteca")
	if err := cfg.Auth.Validate(); err != nil {
		log.Fatal("auth config", zap.Error(err))
	}
	ctx := context.Background()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	bookRepo, err := repository.NewRecords[model.Book](db, repository.TableBooks, log)
	if err != nil {
		log.Fatal("repo libro", zap.Error(err))
	}
	userRepo, err := repository.NewRecords[model.User](db, repository.TableUsers, log)
	if err != nil {
		log.Fatal("repo usuario", zap.Error(err))
	}

	publisher, closePublisher := newPublisher(cfg.Kafka, log)
	defer closePublisher()

	svc := service.NewService(repo, publisher, cfg.Auth, log)
	if err := svc.LoadReportTypes(ctx); err != nil {
		log.Fatal("report types", zap.Error(err))
	}

	h := handler.New(handler.Services{
		Books:         service.NewRecords[model.Book](bookRepo, repository.TableBooks.Name(), log),
		Users:         service.NewRecords[model.User](userRepo, repository.TableUsers.Name(), log),
		Inventory:     svc,
		Loans:         svc,
		Notifications: svc,
		Reports:       svc,
		Auth:          svc,
	}, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}

// newPublisher falls back to a no-op publisher when no brokers are set or
// they cannot be reached at startup.
func newPublisher(cfg kafka.Config, log *zap.Logger) (kafka.Publisher, func()) {
	if len(cfg.Addrs) == 0 {
		log.Info("kafka disabled")
		return kafka.NopPublisher{}, func() {}
	}
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		log.Warn("kafka.NewProducer", zap.Strings("addrs", cfg.Addrs), zap.Error(err))
		return kafka.NopPublisher{}, func() {}
	}
	const (
		recordLength     = 10
		timeout          = 30 * time.Second
		percentile       = 0.5
		recoveryRequests = 3
	)
	cb := circuit_breaker.New(recordLength, timeout, percentile, recoveryRequests)
	return kafka.NewPublisher(producer, cb), func() {
		if err := producer.Close(); err != nil {
			log.Warn("producer close", zap.Error(err))
		}
	}
}
