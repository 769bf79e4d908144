package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/ritmo/internal/app"
	"github.com/alexanderramin/ritmo/internal/auth"
	"github.com/alexanderramin/ritmo/internal/calendar"
	"github.com/alexanderramin/ritmo/internal/cli"
	"github.com/alexanderramin/ritmo/internal/config"
	"github.com/alexanderramin/ritmo/internal/db"
	"github.com/alexanderramin/ritmo/internal/mission"
	"github.com/alexanderramin/ritmo/internal/repository"
	"github.com/alexanderramin/ritmo/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	accountRepo := repository.NewSQLiteAccountRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	stateRepo := repository.NewSQLiteDailyStateRepo(database)
	logRepo := repository.NewSQLiteActionLogRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewSlogUseCaseObserver(logger)
	}

	// Wire services
	clock := calendar.SystemClock{}
	actions := service.NewActionLogger(logRepo, clock, logger)
	daily := service.NewDailyStateService(stateRepo, actions, clock, observer)
	profiles := service.NewProfileService(profileRepo, actions, observer)
	sessions := auth.NewSessionStore(cfg.SessionPath)

	a := &cli.App{
		State:    app.NewState(sessions, profiles, daily),
		Auth:     auth.NewService(accountRepo, uow, sessions, auth.WithClock(clock)),
		Daily:    daily,
		Progress: service.NewProgressService(stateRepo, logRepo, observer),
		Clock:    clock,
		Messages: mission.NewSelector(nil),
	}

	// Forms and the chat view need a terminal on stdin.
	a.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(a).Execute()
}
