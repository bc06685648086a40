package main

import (
	"fmt"
	"log"

	"job-board/internal/config"
	"job-board/internal/database"
	"job-board/internal/handlers"
	"job-board/internal/notify"
	"job-board/internal/server"
	"job-board/internal/service"
	"job-board/internal/storage"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN)

	resumes, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	var notifier notify.Notifier = notify.LogNotifier{}
	if cfg.SMTPHost != "" {
		notifier = notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	}

	apps := service.NewApplications(database.DB, resumes, notifier)
	appHandler := handlers.NewApplicationHandler(apps, resumes)

	r := server.NewRouter(cfg, appHandler)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
