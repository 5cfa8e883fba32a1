package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	delivery "scholarpress-backend/internal/delivery/http"
	"scholarpress-backend/internal/delivery/http/utils"
	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
	kafkarepo "scholarpress-backend/internal/repo/kafka"
	miniorepo "scholarpress-backend/internal/repo/minio"
	"scholarpress-backend/internal/repo/postgres"
	"scholarpress-backend/internal/usecase/service"
	"scholarpress-backend/pkg/connector"
	"scholarpress-backend/pkg/goosehelper"
	"scholarpress-backend/pkg/retry"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Info(".env file not found")
	}
	postgresDSN := os.Getenv("POSTGRES_DSN")
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	minioPublicURL := os.Getenv("MINIO_PUBLIC_URL")
	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	jwtSecret := os.Getenv("JWT_SECRET")
	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = "0.0.0.0:8080"
	}

	// postgres: на старте внешние зависимости могут подниматься параллельно
	// с нами, поэтому подключаемся с повторами
	var dbConn *sqlx.DB
	err = retry.Retry(func() error {
		var connErr error
		dbConn, connErr = connector.GetPostgresConnector(postgresDSN)
		return connErr
	})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			log.Errorf("failed to close postgres connection: %v", err)
		}
	}()
	goosehelper.MigrateUp(dbConn.DB, "migrations")

	// minio
	minioClient, err := connector.GetMinioConnector(minioEndpoint, minioAccessKey, minioSecretKey, false)
	if err != nil {
		log.Fatalf("failed to connect to minio: %v", err)
	}

	// репозитории
	userRepo := postgres.NewUser(dbConn)
	bookRepo := postgres.NewBook(dbConn)
	journalRepo := postgres.NewJournal(dbConn)
	datasetRepo := postgres.NewDataset(dbConn)
	assetRepo, err := miniorepo.NewAsset(minioClient, minioPublicURL, []string{
		entity.BucketBookCovers,
		entity.BucketThumbnails,
		entity.BucketDatasetFiles,
	})
	if err != nil {
		log.Fatalf("failed to create asset repository: %v", err)
	}
	// поток событий необязателен: без брокеров отправки просто не публикуются
	var eventRepo repo.RecordEvent
	if kafkaBrokers != "" {
		err = retry.Retry(func() error {
			var kafkaErr error
			eventRepo, kafkaErr = kafkarepo.NewRecordEventKafkaRepository(strings.Split(kafkaBrokers, ","))
			return kafkaErr
		})
		if err != nil {
			log.Fatalf("failed to create record event repository: %v", err)
		}
	} else {
		log.Info("KAFKA_BROKERS is not set, record events are disabled")
	}

	// usecase
	userUseCase := service.NewUser(userRepo)
	bookUseCase := service.NewBook(bookRepo, assetRepo, eventRepo)
	journalUseCase := service.NewJournal(journalRepo, assetRepo, eventRepo)
	datasetUseCase := service.NewDataset(datasetRepo, assetRepo, eventRepo)
	publisherUseCase := service.NewPublisher(bookRepo, journalRepo, datasetRepo)

	// delivery
	cookieManager := utils.NewCookieManager(false)
	authManager := utils.NewAuthManager([]byte(jwtSecret), time.Hour*24*365)
	userDelivery := delivery.NewUser(userUseCase, authManager, cookieManager)
	bookDelivery := delivery.NewBook(authManager, bookUseCase)
	journalDelivery := delivery.NewJournal(authManager, journalUseCase)
	datasetDelivery := delivery.NewDataset(authManager, datasetUseCase)
	publisherDelivery := delivery.NewPublisher(authManager, publisherUseCase)

	// REST API
	echoServer := echo.New()

	// Не более 60 МБ: файл датасета до 50 МБ плюс превью и поля формы
	echoServer.Use(middleware.BodyLimit("60M"))
	echoServer.Use(middleware.Decompress())
	echoServer.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	echoServer.Use(middleware.RequestID())

	// CORS
	echoServer.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctx.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "localhost:3000")
			ctx.Response().Header().Set(echo.HeaderAccessControlAllowMethods, strings.Join([]string{
				http.MethodGet,
				http.MethodPut,
				http.MethodPost,
				http.MethodDelete,
				http.MethodOptions,
			}, ","))
			ctx.Response().Header().Set(echo.HeaderAccessControlAllowHeaders, strings.Join([]string{
				echo.HeaderOrigin,
				echo.HeaderAccept,
				echo.HeaderXRequestedWith,
				echo.HeaderContentType,
				echo.HeaderAccessControlRequestMethod,
				echo.HeaderAccessControlRequestHeaders,
				echo.HeaderCookie,
				"X-Csrf",
			}, ","))
			ctx.Response().Header().Set(echo.HeaderAccessControlAllowCredentials, "true")
			ctx.Response().Header().Set(echo.HeaderAccessControlMaxAge, "86400")
			return next(ctx)
		}
	})

	// Endpoints
	api := echoServer.Group("/api")
	// users
	users := api.Group("/user")
	userDelivery.Configure(users)
	// books
	books := api.Group("/books")
	bookDelivery.Configure(books)
	// journals
	journals := api.Group("/journals")
	journalDelivery.Configure(journals)
	// datasets
	datasets := api.Group("/datasets")
	datasetDelivery.Configure(datasets)
	// publishers
	publishers := api.Group("/publishers")
	publisherDelivery.Configure(publishers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()
	go func(server *echo.Echo) {
		if err := server.Start(listenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			server.Logger.Fatalf("server stopped with error: %v\n", err)
		}
	}(echoServer)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(10)*time.Second,
	)
	defer cancel()
	if err := echoServer.Shutdown(shutdownCtx); err != nil {
		echoServer.Logger.Fatalf("error during server shutdown: %s\n", err)
	}
}
