package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"planwise/internal/service"
)

func categoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage task categories",
	}
	cmd.AddCommand(categoryAddCmd(a))
	cmd.AddCommand(categoryLsCmd(a))
	cmd.AddCommand(categoryRmCmd(a))
	return cmd
}

func categoryAddCmd(a *app) *cobra.Command {
	var colorStr string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := parseColor(colorStr)
			if err != nil {
				return err
			}
			return a.categories.Create(cmd.Context(), args[0], color)
		},
	}

	cmd.Flags().StringVar(&colorStr, "color", "#FF9E9E9E", "ARGB color, e.g. #FF4CAF50")
	return cmd
}

// parseColor reads a packed ARGB value written as #AARRGGBB. A plain
// #RRGGBB gets a full alpha channel.
func parseColor(raw string) (uint32, error) {
	hex := strings.TrimPrefix(raw, "#")
	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q, expected #RRGGBB or #AARRGGBB", raw)
	}
	color, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", raw, err)
	}
	return uint32(color), nil
}

func categoryLsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := a.categories.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, category := range categories {
				fmt.Printf("#%d %s #%08X\n", category.ID, category.Name, category.Color)
			}
			return nil
		},
	}
}

func categoryRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete an unused category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			err = a.categories.Delete(cmd.Context(), id)
			if errors.Is(err, service.ErrCategoryInUse) {
				return fmt.Errorf("category %d is still used by a task", id)
			}
			return err
		},
	}
}
