package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"bookrec/internal/app"
	"bookrec/internal/config"
	"bookrec/internal/platform/logger"
	"bookrec/internal/preference"
	"bookrec/internal/user"
)

type demoUser struct {
	Username string
	Email    string
	Prefs    preference.Set
}

var demoUsers = []demoUser{
	{
		Username: "frodo",
		Email:    "frodo@example.com",
		Prefs: preference.Set{
			Genres:  []string{"Fantasy", "Adventure"},
			Authors: []string{"J.R.R. Tolkien", "Ursula K. Le Guin"},
		},
	},
	{
		Username: "ripley",
		Email:    "ripley@example.com",
		Prefs: preference.Set{
			Genres:  []string{"Science Fiction", "Horror"},
			Authors: []string{"Isaac Asimov"},
		},
	},
	{
		Username: "marple",
		Email:    "marple@example.com",
		Prefs: preference.Set{
			Genres:  []string{"Mystery"},
			Authors: []string{"Agatha Christie"},
		},
	},
	{
		Username: "newcomer",
		Email:    "newcomer@example.com",
	},
}

func main() {
	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()
	db, err := app.OpenDB(ctx, cfg.DBDSN)
	if err != nil {
		log.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	users := user.NewService(user.NewPostgresRepo(db, cfg.DBTimeout))
	prefs := preference.NewService(preference.NewPostgresRepo(db, cfg.DBTimeout), users, log)

	created, err := seed(ctx, users, prefs, log)
	if err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
	log.Info("seed complete", "users_created", created, "users_total", len(demoUsers))
}

type userCreator interface {
	Create(ctx context.Context, username, email string) (user.User, error)
}

type preferenceReplacer interface {
	Replace(ctx context.Context, userID string, set preference.Set) (preference.Set, error)
}

// seed creates the demo users and their preferences. Users that already
// exist are left untouched.
func seed(ctx context.Context, users userCreator, prefs preferenceReplacer, log *logger.Logger) (int, error) {
	created := 0
	for _, d := range demoUsers {
		u, err := users.Create(ctx, d.Username, d.Email)
		if errors.Is(err, user.ErrAlreadyExists) {
			log.Info("user exists, skipping", "username", d.Username)
			continue
		}
		if err != nil {
			return created, fmt.Errorf("create %s: %w", d.Username, err)
		}
		created++

		if len(d.Prefs.Genres) == 0 && len(d.Prefs.Authors) == 0 {
			continue
		}
		if _, err := prefs.Replace(ctx, u.ID, d.Prefs); err != nil {
			return created, fmt.Errorf("preferences for %s: %w", d.Username, err)
		}
		log.Info("seeded user", "id", u.ID, "username", d.Username)
	}
	return created, nil
}
