package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/palemoky/tonetrainer/internal/app"
	"github.com/palemoky/tonetrainer/internal/config"
	"github.com/palemoky/tonetrainer/internal/database"
	apperrors "github.com/palemoky/tonetrainer/internal/errors"
	"github.com/palemoky/tonetrainer/internal/logger"
	"github.com/palemoky/tonetrainer/internal/settings"
)

var (
	configPath string
	debug      bool
	top        int
	limit      int
	workers    int
)

func main() {
	os.Exit(run())
}

// run executes the command tree and maps the outcome to an exit code.
// Deferred cleanup happens here so that main's os.Exit never skips it.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd()
	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	if err != nil {
		logger.Error("Command execution failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	logger.Sync()

	return apperrors.ExitCode(err)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tonetrainer",
		Short: "Mandarin tone trainer",
		Long: "Plays native pronunciations of random two-character words and checks your guess of their tones. " +
			"Without a subcommand the welcome menu is shown.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return quiz(cmd, true)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file (defaults and environment variables apply without one)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")

	quizCmd := &cobra.Command{
		Use:   "quiz",
		Short: "Start the quiz right away, skipping the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return quiz(cmd, false)
		},
	}

	settingsCmd := &cobra.Command{
		Use:       "settings [simplified|traditional]",
		Short:     "Show or change the character form used to reveal words",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(database.LangSimplified), string(database.LangTraditional)},
		RunE:      runSettings,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show pronunciation availability and the most practised words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.Stats(cmd.Context(), top)
		},
	}
	statsCmd.Flags().IntVarP(&top, "top", "t", 10, "Number of most tested words to list")

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "Look up pronunciations of unchecked words ahead of time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			_, err = a.Probe(cmd.Context(), limit, workers)
			return err
		},
	}
	probeCmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of words to check (0 = all)")
	probeCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of concurrent lookups (0 = based on CPUs)")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare stored tones with dictionary readings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			_, err = a.Verify(cmd.Context())
			return err
		},
	}

	rootCmd.AddCommand(quizCmd, settingsCmd, statsCmd, probeCmd, verifyCmd)
	return rootCmd
}

func newApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, apperrors.Config("failed to load configuration", err)
	}
	return app.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout()), nil
}

func quiz(cmd *cobra.Command, menu bool) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return a.Quiz(cmd.Context(), menu)
}

func runSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return apperrors.Config("failed to load configuration", err)
	}

	if len(args) == 0 {
		lang, err := settings.Load(cfg.Files.Settings)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), lang)
		return nil
	}

	lang, err := database.ParseLang(args[0])
	if err != nil {
		return apperrors.Config("invalid character form", err)
	}
	if err := settings.Save(cfg.Files.Settings, lang); err != nil {
		return err
	}
	logger.Info("Character form changed", zap.String("form", string(lang)))
	return nil
}
