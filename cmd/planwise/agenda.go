package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func agendaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "agenda [date]",
		Short: "Show the agenda for a day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now()
			if len(args) == 1 {
				parsed, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
				}
				day = parsed
			}

			agenda, err := a.agenda.ForDay(cmd.Context(), day)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n", agenda.Month, agenda.Year)
			if len(agenda.Items) == 0 {
				fmt.Println("nothing planned")
				return nil
			}
			for _, item := range agenda.Items {
				mark := " "
				if item.Task.IsCompleted {
					mark = "x"
				}
				name := item.CategoryName
				if name == "" {
					name = "(no category)"
				}
				fmt.Printf("[%s] #%d %s  %s  %s\n",
					mark, item.Task.ID, item.TimeRange, item.Task.Name, name)
				for _, rel := range item.Reminders {
					fmt.Printf("      %s\n", rel)
				}
			}
			return nil
		},
	}
}
