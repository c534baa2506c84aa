package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Eveneto/sistema-crm-simples-sub001/infrastructure/cache"
	"github.com/Eveneto/sistema-crm-simples-sub001/infrastructure/database/postgres"
	"github.com/Eveneto/sistema-crm-simples-sub001/infrastructure/repository"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/analytics"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/api"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/api/handler"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/config"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/scheduler"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/usecases/authenticating"
	"github.com/Eveneto/sistema-crm-simples-sub001/internal/usecases/reporting"
	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/log"
)

func main() {
	chdirToSource()
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	location, err := cfg.App.Location()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	dealRepo := repository.NewDealRepository(pgConn, cfg.Database.QueryTimeout)
	stageRepo := repository.NewStageRepository(pgConn, cfg.Database.QueryTimeout)

	authenticator := authenticating.NewService(cfg.Auth)

	healthChecks := map[string]handler.Pinger{"postgres": pgConn}

	// Inicializa o serviço de relatórios com suporte a cache
	reportService := reporting.NewService(dealRepo, stageRepo, forecastPolicy(cfg.Forecast)).(*reporting.Service).
		WithClock(func() time.Time { return time.Now().In(location) })

	if cfg.Cache.Enabled {
		store, closeStore := resultStore(ctx, cfg.Cache)
		defer closeStore()

		if pinger, ok := store.(handler.Pinger); ok {
			healthChecks["redis"] = pinger
		}

		reportService = reportService.WithCache(cache.NewResultCache(store, cfg.Cache.KeyPrefix, cfg.Cache.TTL))
		logrus.WithField("ttl", cfg.Cache.TTL.String()).Info("Cache de relatórios habilitado")
	}

	// Inicializa o agendador de invalidação de cache
	invalidationService := scheduler.NewCacheInvalidationService(dealRepo, reportService, cfg)
	if err := invalidationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de invalidação de cache")
	} else {
		logrus.Info("Agendador de invalidação de cache iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Reporter:        reportService,
		Authenticator:   authenticator,
		InvalidationJob: invalidationService,
		HealthChecks:    healthChecks,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource faz o .env ao lado do main ser encontrado em desenvolvimento
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) postgres.Conn {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// resultStore usa Redis quando configurado e cai para memória local caso contrário
func resultStore(ctx context.Context, cacheConfig config.Cache) (cache.Store, func()) {
	if cacheConfig.RedisURL == "" {
		logrus.Warn("CACHE_REDIS_URL vazio, usando cache em memória")
		return cache.NewMemoryStore(), func() {}
	}

	client, err := cache.Connect(ctx, cacheConfig.RedisURL)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return cache.NewRedisStore(client), func() {
		if err := client.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com Redis")
		}
	}
}

func forecastPolicy(cfg config.Forecast) analytics.ForecastPolicy {
	return analytics.ForecastPolicy{
		PessimisticMultiplier:     decimal.NewFromFloat(cfg.PessimisticMultiplier),
		RealisticMultiplier:       decimal.NewFromFloat(cfg.RealisticMultiplier),
		OptimisticMultiplier:      decimal.NewFromFloat(cfg.OptimisticMultiplier),
		MediumConfidenceThreshold: cfg.MediumConfidenceThreshold,
		HighConfidenceThreshold:   cfg.HighConfidenceThreshold,
	}
}
