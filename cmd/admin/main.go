// Command admin registers an instructor account directly against the
// database, bypassing the HTTP API. Intended for bootstrapping the first
// account on a fresh deployment.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/CARE-UiT/Reflectometer/internal/server/config"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/repomanager"
	"github.com/CARE-UiT/Reflectometer/internal/server/services"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context) error {

	cfg := config.LoadConfig()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Enter user name")
	userName, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	userName = strings.TrimSpace(userName)

	fmt.Println("Enter email")
	email, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	email = strings.TrimSpace(email)

	fmt.Println("Enter password")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}

	users := services.NewUserService(db, rm, cfg)
	user, err := users.Register(ctx, userName, email, string(password))
	if err != nil {
		return err
	}

	fmt.Printf("Registered instructor %q (id=%d)\n", user.UserName, user.ID)
	return nil
}
