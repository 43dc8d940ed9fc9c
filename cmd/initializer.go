package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/abdullah-abacus/UDST-Lost-Found/internal/config"
	"github.com/abdullah-abacus/UDST-Lost-Found/internal/handlers"
	"github.com/abdullah-abacus/UDST-Lost-Found/internal/repositories"
	"github.com/abdullah-abacus/UDST-Lost-Found/internal/services"
	"github.com/abdullah-abacus/UDST-Lost-Found/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB
	tokens   *utils.Manager

	reportHandler *handlers.ReportHandler
	authHandler   *handlers.AuthHandler
	setupHandler  *handlers.SetupHandler
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	tokens, err := utils.NewManager(utils.TokenConfig{
		SigningKey:     cfg.Auth.SigningKey,
		ClientID:       cfg.Auth.ClientID,
		ClientSecret:   cfg.Auth.ClientSecret,
		IssuanceCutoff: cfg.Auth.CutoffTime,
	})
	if err != nil {
		return nil, fmt.Errorf("token manager: %w", err)
	}

	reportRepo := repositories.ReportRepository{DB: db, Table: cfg.Database.Table}
	reportService := &services.ReportService{ReportRepo: &reportRepo}

	return &application{
		errorLog:      errorLog,
		infoLog:       infoLog,
		db:            db,
		tokens:        tokens,
		reportHandler: &handlers.ReportHandler{Service: reportService},
		authHandler:   &handlers.AuthHandler{Tokens: tokens},
		setupHandler:  &handlers.SetupHandler{Service: reportService},
	}, nil
}
