package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"planwise/internal/service"
)

func watchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print reminders as they come due",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			scheduler := service.NewSchedulerService(time.Local)
			err := a.reminders.Watch(scheduler, a.cfg.PollInterval, func(n service.Notification) {
				fmt.Printf("%s  %s (%s)\n",
					n.At.Format("15:04"), n.Task.Name, n.Relative)
			})
			if err != nil {
				return fmt.Errorf("schedule reminders: %w", err)
			}

			if _, err := scheduler.ScheduleDaily(a.cfg.DailyAgenda, func() {
				jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				printAgenda(jobCtx, a)
			}); err != nil {
				return fmt.Errorf("schedule agenda: %w", err)
			}

			scheduler.Start()
			defer scheduler.Stop()

			log.Println("PlanWise watcher started.")
			<-ctx.Done()
			log.Println("Shutdown complete.")
			return nil
		},
	}
}

func printAgenda(ctx context.Context, a *app) {
	agenda, err := a.agenda.ForDay(ctx, time.Now())
	if err != nil {
		log.Printf("agenda: %v", err)
		return
	}
	fmt.Printf("Agenda for %s %s:\n", agenda.Month, agenda.Year)
	for _, item := range agenda.Items {
		fmt.Printf("  %s  %s\n", item.TimeRange, item.Task.Name)
	}
}
