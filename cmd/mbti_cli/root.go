package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mbti_cli",
		Short:         "MBTI questionnaire tools",
		Long:          "Offline access to the MBTI question bank, classifier and compatibility tables.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Bool("verbose", false, "log classifier diagnostics to stderr")

	root.AddCommand(newQuestionsCmd())
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newCompatCmd())
	root.AddCommand(newTypesCmd())
	root.AddCommand(newTokenCmd())
	return root
}

// newLogger returns a development logger when --verbose is set, otherwise a no-op.
func newLogger(cmd *cobra.Command) *zap.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		if logger, err := cfg.Build(); err == nil {
			return logger
		}
	}
	return zap.NewNop()
}
