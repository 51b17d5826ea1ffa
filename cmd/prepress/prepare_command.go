package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"prepress/internal/logging"
	"prepress/internal/manifest"
)

func newPrepareCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prepare",
		Short: "Strip the elara-transport dependency and normalize features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}
			logger = logging.WithRun(logger, uuid.NewString())

			rewriter := manifest.NewRewriter(cfg, logger)
			result, err := rewriter.Prepare(cmd.Context())
			if err != nil {
				return err
			}

			if !result.Changed() {
				logger.Info("manifest already prepared", slog.String("path", rewriter.Path()))
			}
			fmt.Fprintln(cmd.OutOrStdout(), manifest.ConfirmationMessage)
			return nil
		},
	}
}
