package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"planwise/internal/config"
	"planwise/internal/repository"
	"planwise/internal/service"
)

// app owns the wired services. The store handle is opened once here,
// at the entry point, and shared by every command.
type app struct {
	cfg        config.Config
	store      repository.TaskStore
	tasks      *service.TaskService
	categories *service.CategoryService
	agenda     *service.AgendaService
	reminders  *service.ReminderService
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	db, err := repository.NewDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}

	store := repository.NewStore(db)
	return &app{
		cfg:        cfg,
		store:      store,
		tasks:      service.NewTaskService(store),
		categories: service.NewCategoryService(store),
		agenda:     service.NewAgendaService(store),
		reminders:  service.NewReminderService(store),
	}, nil
}

func main() {
	a, err := newApp()
	if err != nil {
		log.Fatalf("planwise: %v", err)
	}

	rootCmd := &cobra.Command{
		Use:           "planwise",
		Short:         "PlanWise - local task planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(agendaCmd(a))
	rootCmd.AddCommand(taskCmd(a))
	rootCmd.AddCommand(categoryCmd(a))
	rootCmd.AddCommand(watchCmd(a))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
