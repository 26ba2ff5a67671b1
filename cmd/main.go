package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"training-center-files/config"
	_ "training-center-files/docs"
	"training-center-files/internal/handler"
	"training-center-files/internal/ports"
	"training-center-files/internal/repository"
	"training-center-files/internal/security"
	"training-center-files/internal/service"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Training-center-files
// @version 1.0
// @description REST API для документов и файлов учебного центра

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	contentTTL := time.Duration(cfg.TTL.FileContent) * time.Second

	var contentCache ports.ContentCache
	if cfg.FileCache.Backend == "redis" {
		redisClient, err := config.SetupRedis(&cfg.RedisConfig)
		if err != nil {
			log.Fatalf("Ошибка подключения к Redis: %v", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Ошибка при закрытии Redis: %v", err)
			}
		}()
		contentCache = repository.NewRedisContentCache(redisClient, contentTTL)
	} else {
		contentCache = repository.NewMemoryContentCache(contentTTL, time.Now)
	}

	srv, router := config.SetupServer(cfg.ServerAddr)

	docRepo := repository.NewDocumentRepository(db)

	remoteClient, err := service.NewS3FileClient(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания файлового клиента: %v", err)
	}

	fileService := service.NewFileContentService(remoteClient, contentCache, cfg.FileCache.ChunkSize)
	docService := service.NewDocumentService(docRepo, fileService)

	jwtService := security.NewJWTService(&cfg.JWT)
	authService := service.NewAuthenticationService(&cfg.Admin, jwtService)

	authHandler := handler.NewAuthenticationHandler(authService)
	docHandler := handler.NewDocumentHandler(docService)
	fileHandler := handler.NewFileHandler(fileService, docService)

	router.Use(config.DBMiddleware(db))
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Post("/api/auth", authHandler.Login)

	setupDocumentRoutes(router, docHandler, fileHandler, jwtService, cfg)

	runServer(ctx, srv)
}

func setupDocumentRoutes(r chi.Router, docHandler *handler.DocumentHandler, fileHandler *handler.FileHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Route("/api/scopes/{scope_type}/{scope_uuid}/docs", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService, cfg.Admin.AdminToken))
		r.Get("/", docHandler.ListDocuments)
		r.Post("/", docHandler.CreateDocument)
	})

	r.Route("/api/docs/{doc_id}", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService, cfg.Admin.AdminToken))
		r.Get("/", docHandler.GetDocument)
		r.Delete("/", docHandler.DeleteDocument)

		r.Route("/files", func(r chi.Router) {
			r.Get("/", fileHandler.ListFiles)
			r.Post("/", fileHandler.UploadFile)
			r.Delete("/", fileHandler.DeleteAllFiles)
			r.Get("/content", fileHandler.GetFileContent)
			r.Get("/{file_id}/content", fileHandler.GetFileContentByID)
			r.Delete("/{file_id}", fileHandler.DeleteFile)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
