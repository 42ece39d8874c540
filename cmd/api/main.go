package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yigit/schoolportal/internal/app/migrations"
	"github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/bootstrap"
	"github.com/yigit/schoolportal/internal/config"
	"github.com/yigit/schoolportal/internal/pkg/logger"
	"github.com/yigit/schoolportal/internal/server"
)

// @title School Portal API
// @version 1.0
// @description Teacher and student portal: cohorts, tasks, attendance, exams and academic summaries.

// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "schoolportal",
		Short:         "School portal API server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "configs/config.yaml", "Path to the YAML configuration file")

	serve := serveCmd()
	root.AddCommand(serve, migrateCmd(), createTeacherCmd())

	// "serve" is the default when no subcommand is given
	root.RunE = serve.RunE

	return root
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := server.NewServer(cmd.Context(), configPath(cmd))
			if err != nil {
				logger.Error().Err(err).Msg("Failed to initialize server")
				return err
			}

			if err := srv.Run(); err != nil {
				logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
				return err
			}

			logger.Info().Msg("Application finished gracefully.")
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath(cmd))
			if err != nil {
				return err
			}
			if cfg.Database.Driver != config.DriverPostgres {
				return fmt.Errorf("migrate requires the %s driver, got %q", config.DriverPostgres, cfg.Database.Driver)
			}

			database, err := bootstrap.ConnectPostgres(ctx, cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := migrations.NewMigrator(database.Pool).Migrate(ctx, migrations.Embedded()); err != nil {
				lgr.Error().Err(err).Msg("Database migration error")
				return err
			}

			lgr.Info().Msg("Database migrations successfully applied.")
			return nil
		},
	}
}

func createTeacherCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-teacher",
		Short: "Register a teacher account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			email, _ := cmd.Flags().GetString("email")
			name, _ := cmd.Flags().GetString("name")
			password, _ := cmd.Flags().GetString("password")

			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath(cmd))
			if err != nil {
				return err
			}
			if cfg.Database.Driver == config.DriverMemory {
				return fmt.Errorf("create-teacher needs a persistent store, the %s driver forgets it on exit", config.DriverMemory)
			}

			store, database, err := bootstrap.SetupStore(ctx, cfg, lgr)
			if err != nil {
				return err
			}
			if database != nil {
				defer database.Close()
			}

			deps := bootstrap.NewDependencies(cfg, store, lgr)
			defer deps.Close()

			teacher, err := deps.Services.Auth.RegisterTeacher(ctx, services.TeacherInput{
				Email:    email,
				Password: password,
				FullName: name,
			})
			if err != nil {
				lgr.Error().Err(err).Str("email", email).Msg("Failed to register teacher")
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "teacher %s created with id %s\n", teacher.Email, teacher.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.String("email", "", "Teacher email (required)")
	f.String("name", "", "Teacher full name (required)")
	f.String("password", "", "Teacher password, at least 8 characters (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
