package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jocianoperin/PromoPredictor-sub000/infrastructure/database/postgres"
	"github.com/jocianoperin/PromoPredictor-sub000/infrastructure/repository"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/api"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/config"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/scheduler"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/usecases/authenticating"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/usecases/detecting"
	"github.com/jocianoperin/PromoPredictor-sub000/internal/usecases/indicating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	salesRepo := repository.NewSalesHistoryRepository(pgConn)
	inventoryRepo := repository.NewInventoryAuditRepository(pgConn)
	promotionRepo := repository.NewPromotionRepository(pgConn)
	indicatorRepo := repository.NewSalesIndicatorRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	detectionService, err := detecting.NewService(cfg.DetectionSync, salesRepo, promotionRepo)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o serviço de detecção de promoções")
	}

	indicatorService := indicating.NewService(
		cfg.IndicatorSync,
		salesRepo,
		inventoryRepo,
		promotionRepo,
		indicatorRepo,
	)

	// Inicializa os agendadores de sincronização separados
	detectionSyncService := scheduler.NewPromotionDetectionSyncService(detectionService, cfg)
	indicatorSyncService := scheduler.NewIndicatorSyncService(indicatorService, cfg)

	// Inicia os agendadores em background
	if err := detectionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de detecção de promoções")
	} else {
		logrus.Info("Agendador de detecção de promoções iniciado com sucesso")
	}

	if err := indicatorSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de indicadores de vendas")
	} else {
		logrus.Info("Agendador de indicadores de vendas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		detectionSyncService,
		indicatorSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
