package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"planwise/internal/model"
	"planwise/internal/reminder"
)

func taskCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(taskAddCmd(a))
	cmd.AddCommand(taskShowCmd(a))
	cmd.AddCommand(taskDoneCmd(a))
	cmd.AddCommand(taskRmCmd(a))
	return cmd
}

func taskAddCmd(a *app) *cobra.Command {
	var (
		description string
		categoryID  int64
		startStr    string
		endStr      string
		reminders   []string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.ParseInLocation("2006-01-02 15:04", startStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --start %q, expected \"YYYY-MM-DD HH:MM\"", startStr)
			}
			end, err := time.ParseInLocation("2006-01-02 15:04", endStr, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --end %q, expected \"YYYY-MM-DD HH:MM\"", endStr)
			}

			task := model.Task{
				Name:        args[0],
				Description: description,
				CategoryID:  categoryID,
				Start:       start,
				End:         end,
			}
			for _, spec := range reminders {
				rel, err := parseReminder(spec)
				if err != nil {
					return err
				}
				task.Reminders = append(task.Reminders, rel.Before(start))
			}

			id, err := a.tasks.Save(cmd.Context(), task)
			if err != nil {
				return err
			}
			fmt.Printf("task #%d created\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().Int64VarP(&categoryID, "category", "c", 0, "category id")
	cmd.Flags().StringVar(&startStr, "start", "", "start time, \"YYYY-MM-DD HH:MM\"")
	cmd.Flags().StringVar(&endStr, "end", "", "end time, \"YYYY-MM-DD HH:MM\"")
	cmd.Flags().StringSliceVarP(&reminders, "remind", "r", nil, "reminder offset before start, e.g. 15m, 2h, 1d")
	return cmd
}

// parseReminder reads offsets like "15m", "2h" or "1d". Input ranges
// follow the picker: under 60 minutes, 24 hours or 30 days.
func parseReminder(spec string) (reminder.Reminder, error) {
	if len(spec) < 2 {
		return reminder.Reminder{}, fmt.Errorf("invalid reminder %q", spec)
	}
	value, err := strconv.ParseInt(spec[:len(spec)-1], 10, 64)
	if err != nil || value < 0 {
		return reminder.Reminder{}, fmt.Errorf("invalid reminder %q", spec)
	}

	var unit reminder.Unit
	var limit int64
	switch strings.ToLower(spec[len(spec)-1:]) {
	case "m":
		unit, limit = reminder.Minutes, 60
	case "h":
		unit, limit = reminder.Hours, 24
	case "d":
		unit, limit = reminder.Days, 30
	default:
		return reminder.Reminder{}, fmt.Errorf("invalid reminder unit in %q, use m, h or d", spec)
	}
	if value >= limit {
		return reminder.Reminder{}, fmt.Errorf("reminder %q out of range, must be under %d%s", spec, limit, spec[len(spec)-1:])
	}
	return reminder.Reminder{Value: value, Unit: unit}, nil
}

func taskShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			task, err := a.tasks.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if task == nil {
				return fmt.Errorf("task %d not found", id)
			}

			fmt.Printf("#%d %s\n", task.ID, task.Name)
			if task.Description != "" {
				fmt.Println(task.Description)
			}
			fmt.Printf("%s - %s\n",
				task.Start.Format("2006-01-02 15:04"), task.End.Format("15:04"))
			fmt.Printf("category: %d  completed: %v\n", task.CategoryID, task.IsCompleted)
			for _, at := range task.Reminders {
				fmt.Printf("reminder: %s (%s)\n",
					at.Format("2006-01-02 15:04"), reminder.FromDifference(task.Start, at))
			}
			return nil
		},
	}
}

func taskDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.tasks.SetCompleted(cmd.Context(), id, true)
		},
	}
}

func taskRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.tasks.Delete(cmd.Context(), id)
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
