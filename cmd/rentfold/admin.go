package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"syscall"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"github.com/rentfold/rentfold/internal/adapter/postgres"
	"github.com/rentfold/rentfold/internal/config"
	"github.com/rentfold/rentfold/internal/domain/owner"
	"github.com/rentfold/rentfold/internal/service"
)

// runAdmin dispatches the owner administration subcommands. These run on
// the machine with database access and bypass the HTTP admin gate.
func runAdmin(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: rentfold admin <create-owner|reset-password|list-owners> [flags]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, cfg.Postgres.DSN); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	store := postgres.NewStore(pool)
	authSvc := service.NewAuthService(store, &cfg.Auth, nil)

	switch args[0] {
	case "create-owner":
		return adminCreateOwner(ctx, authSvc, args[1:])
	case "reset-password":
		return adminResetPassword(ctx, store.GetOwnerByEmail, authSvc, args[1:])
	case "list-owners":
		return adminListOwners(ctx, authSvc)
	default:
		return fmt.Errorf("unknown admin command %q", args[0])
	}
}

func adminCreateOwner(ctx context.Context, authSvc *service.AuthService, args []string) error {
	fs := flag.NewFlagSet("create-owner", flag.ExitOnError)
	email := fs.String("email", "", "owner email (required)")
	name := fs.String("name", "", "owner name (required)")
	isAdmin := fs.Bool("admin", false, "grant the admin flag")
	if err := fs.Parse(args); err != nil {
		return err
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	o, err := authSvc.Register(ctx, &owner.CreateRequest{
		Email:    *email,
		Name:     *name,
		Password: password,
		IsAdmin:  *isAdmin,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created owner %d (%s)\n", o.ID, o.Email)
	return nil
}

func adminResetPassword(ctx context.Context, byEmail func(context.Context, string) (*owner.Owner, error), authSvc *service.AuthService, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ExitOnError)
	email := fs.String("email", "", "owner email (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("-email is required")
	}

	o, err := byEmail(ctx, *email)
	if err != nil {
		return err
	}

	password, err := promptPassword("New password: ")
	if err != nil {
		return err
	}

	if err := authSvc.ResetPassword(ctx, o.ID, password); err != nil {
		return err
	}

	fmt.Printf("password reset for owner %d (%s)\n", o.ID, o.Email)
	return nil
}

func adminListOwners(ctx context.Context, authSvc *service.AuthService) error {
	owners, err := authSvc.ListOwners(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tNAME\tADMIN\tLAST LOGIN")
	for _, o := range owners {
		last := "-"
		if !o.LastLogin.IsZero() {
			last = o.LastLogin.Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%t\t%s\n", o.ID, o.Email, o.Name, o.IsAdmin, last)
	}
	return tw.Flush()
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
