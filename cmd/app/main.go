package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/humanbelnik/cinevault/internal/app"
	"github.com/humanbelnik/cinevault/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	envFile string

	// admin add
	adminEmail    string
	adminPassword string
)

var rootCmd = &cobra.Command{
	Use:   "cinevault",
	Short: "CineVault admin console backend",
	Long: `CineVault serves the admin API of a Telegram movie catalog:
catalog management, episodes, feature flags and bot settings.

Run without arguments to start the HTTP server.`,
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the admin HTTP API",
	RunE:  runServe,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the demo catalog to the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		n, err := app.Seed(ctx, cfg)
		if err != nil {
			return err
		}
		fmt.Printf("seeded %d titles\n", n)
		return nil
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var adminAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		email, err := app.AddAdmin(ctx, cfg, adminEmail, adminPassword)
		if err != nil {
			return err
		}
		fmt.Printf("admin %s created\n", email)
		return nil
	},
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Go(ctx, cfg)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "config", "c", "", "Env file to load (default: .env)")

	adminAddCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email")
	adminAddCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password")
	_ = adminAddCmd.MarkFlagRequired("email")
	_ = adminAddCmd.MarkFlagRequired("password")
	adminCmd.AddCommand(adminAddCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(adminCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
