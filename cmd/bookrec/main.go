// Package main provides the bookrec operator CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"bookrec/internal/app"
	"bookrec/internal/config"
	"bookrec/internal/platform/logger"
	"bookrec/internal/preference"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "bookrec"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Book recommendation operator tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(searchCmd(), recommendCmd(), preferencesCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})
	return cmd
}

func searchCmd() *cobra.Command {
	var maxResults int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a provider search and print normalized books",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				return printJSON(cmd.OutOrStdout(), a.Search.Search(cmd.Context(), args[0], maxResults))
			})
		},
	}
	cmd.Flags().IntVar(&maxResults, "max", 20, "Maximum results (1-40)")
	return cmd
}

func recommendCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recommend <user-id>",
		Short: "Compute recommendations for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 || limit > 40 {
				return fmt.Errorf("--limit must be between 1 and 40")
			}
			return withApp(cmd.Context(), func(a *app.App) error {
				res, err := a.Recommend.Recommend(cmd.Context(), args[0], limit)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum recommendations (1-40)")
	return cmd
}

func preferencesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preferences",
		Short: "Inspect or replace a user's preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <user-id>",
		Short: "Print favorite genres and authors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				set, err := a.Preferences.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), set)
			})
		},
	})

	var genres, authors []string
	set := &cobra.Command{
		Use:   "set <user-id>",
		Short: "Replace favorite genres and authors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				stored, err := a.Preferences.Replace(cmd.Context(), args[0], preference.Set{Genres: genres, Authors: authors})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), stored)
			})
		},
	}
	set.Flags().StringArrayVar(&genres, "genre", nil, "Favorite genre (repeatable)")
	set.Flags().StringArrayVar(&authors, "author", nil, "Favorite author (repeatable)")
	cmd.AddCommand(set)

	return cmd
}

func withApp(ctx context.Context, fn func(a *app.App) error) error {
	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
