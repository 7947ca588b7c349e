package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Harshitk-cp/mindshift/internal/api"
	"github.com/Harshitk-cp/mindshift/internal/buildconfig"
	"github.com/Harshitk-cp/mindshift/internal/config"
	"github.com/Harshitk-cp/mindshift/internal/domain"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "mindshift",
		Short:        "Turn a limiting belief into fifteen empowering ones",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newTransformCmd(&verbose))
	root.AddCommand(newVersionCmd())
	return root
}

func newTransformCmd(verbose *bool) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "transform <belief...>",
		Short: "Transform one limiting belief",
		Long: `Transform a limiting belief into five beliefs each for the Logic, Emotion
and Animal brain, with Vietnamese translations and English tense labels.

Without an API key for the configured provider the example result is printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			belief := strings.Join(args, " ")
			if strings.TrimSpace(belief) == "" {
				return errors.New("a limiting belief is required")
			}

			if err := config.Load(); err != nil {
				return err
			}
			logger, err := newLogger(*verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			svc, err := api.NewTransformService(cmd.Context(), logger)
			if err != nil {
				return err
			}

			result, err := svc.Transform(cmd.Context(), belief)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return printBeliefs(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw JSON result")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildconfig.Current())
		},
	}
}

// newLogger writes warnings and errors to stderr so stdout only carries results.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func printBeliefs(w io.Writer, t *domain.TransformedBeliefs) error {
	var b strings.Builder
	for i, c := range domain.Categories {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(c.Title())
		b.WriteString("\n")
		for _, belief := range t.Beliefs(c) {
			fmt.Fprintf(&b, "  - %s\n    %s\n    (%s)\n", belief.Text, belief.Translation, belief.Tense)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
