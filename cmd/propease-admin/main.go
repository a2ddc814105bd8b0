package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/propease/propease-api/internal/config"
	"github.com/propease/propease-api/internal/database"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"github.com/propease/propease-api/internal/services"
	"github.com/propease/propease-api/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "propease-admin",
		Short:        "PropEase maintenance commands",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(migrateCmd(), createAdminCmd(), testEmailCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func connect() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger.Setup(cfg.Environment, cfg.LogLevel)
	db, err := database.Connect(cfg.DatabaseURL, cfg.Environment)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}

func createAdminCmd() *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the first admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			repos := repository.NewRepositories(db)
			ctx := context.Background()

			email = strings.ToLower(strings.TrimSpace(email))
			if _, err := repos.User.FindByEmail(ctx, email); err == nil {
				return fmt.Errorf("user %s already exists", email)
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			generated := password == ""
			if generated {
				if password, err = services.GenerateTempPassword(16); err != nil {
					return err
				}
			} else if err := services.ValidatePassword(password); err != nil {
				return err
			}
			hashed, err := services.HashPassword(password)
			if err != nil {
				return err
			}

			user := &models.User{
				Email:             email,
				FullName:          name,
				Role:              models.RoleAdmin,
				Status:            models.StatusActive,
				EncryptedPassword: hashed,
			}
			if err := repos.User.Create(ctx, user); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (id %d)\n", user.Email, user.ID)
			if generated {
				fmt.Fprintf(cmd.OutOrStdout(), "Temporary password: %s\n", password)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&name, "name", "Administrator", "full name")
	cmd.Flags().StringVar(&password, "password", "", "password (generated when empty)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func testEmailCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "test-email",
		Short: "Send a welcome email to check the Resend setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Setup(cfg.Environment, cfg.LogLevel)
			if cfg.ResendAPIKey == "" {
				return errors.New("RESEND_API_KEY is not set")
			}
			if to == "" {
				return errors.New("no recipient: pass --to or set TEST_EMAIL_TO")
			}

			cfg.EnableEmailNotifications = true
			emailService := services.NewEmailService(cfg)
			user := &models.User{FullName: "Test User", Email: to, Role: models.RoleEmployee}
			if err := emailService.SendAccountCreated(context.Background(), user); err != nil {
				return fmt.Errorf("send account created email: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Email sent to %s\n", to)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", os.Getenv("TEST_EMAIL_TO"), "recipient, defaults to TEST_EMAIL_TO")
	return cmd
}
