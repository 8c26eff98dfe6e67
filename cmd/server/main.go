package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/visioncraftlabs/backend/internal/handler"
	"github.com/visioncraftlabs/backend/internal/logging"
	"github.com/visioncraftlabs/backend/internal/mailer"
	"github.com/visioncraftlabs/backend/internal/repository"
	"github.com/visioncraftlabs/backend/internal/service"
	"github.com/visioncraftlabs/backend/internal/storage"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()
	logging.Setup()

	port := env("PORT", "8080")
	frontendURL := env("FRONTEND_URL", "http://localhost:4321")
	uploadDir := env("UPLOAD_DIR", "./uploads")

	// Repositories: in-memory by default, PostgreSQL when DATABASE_URL is
	// set. The handler contract is identical either way.
	var (
		db          repository.DB
		contactRepo repository.ContactRepository
		uploadRepo  repository.UploadRepository
	)
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pool, err := repository.NewPool(context.Background(), dbURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()
		db = pool
		contactRepo = repository.NewPgContactRepository(pool)
		uploadRepo = repository.NewPgUploadRepository(pool)
		slog.Info("using postgres repositories")
	} else {
		mem := repository.NewMemContactRepository()
		db = mem
		contactRepo = mem
		uploadRepo = repository.NewMemUploadRepository()
		slog.Info("using in-memory repositories; records are lost on restart")
	}

	store, err := storage.NewLocalStorage(uploadDir)
	if err != nil {
		logging.Fatal("failed to prepare upload directory", "error", err, "dir", uploadDir)
	}

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	mail := mailer.New(mailer.Config{
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       smtpPort,
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		From:           os.Getenv("FROM_EMAIL"),
		To:             os.Getenv("TO_EMAIL"),
	})

	contactService := service.NewContactService(contactRepo, mail)
	uploadService := service.NewUploadService(uploadRepo, store, mail)

	h := handler.New(db, frontendURL)
	contactHandler := handler.NewContactHandler(contactService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/contact-submissions", contactHandler.List)
	mux.HandleFunc("POST /api/upload-image", uploadHandler.Upload)
	mux.HandleFunc("GET /api/uploads", uploadHandler.List)
	mux.HandleFunc("GET /api/uploads/{filename}", uploadHandler.Serve)
	mux.HandleFunc("GET /api/admin/uploads/{id}", uploadHandler.Get)
	mux.HandleFunc("PATCH /api/admin/uploads/{id}/status", uploadHandler.UpdateStatus)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           h.CORS(handler.RequestLogger(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		// Long enough for a full 10 MiB upload on a slow link.
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
