package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fortune-api/internal/config"
	"fortune-api/internal/domain"
	"fortune-api/internal/service"
)

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Print the question bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, q := range service.Questions() {
				fmt.Fprintf(out, "%2d. [%s] %s\n", q.ID, q.Dimension, q.Prompt)
				fmt.Fprintf(out, "    A) %s\n", q.Options[0].Text)
				fmt.Fprintf(out, "    B) %s\n", q.Options[1].Text)
			}
			return nil
		},
	}
}

func newClassifyCmd() *cobra.Command {
	var raw string
	cmd := &cobra.Command{
		Use:     "classify",
		Short:   "Classify a set of answers",
		Example: "  mbti_cli classify --answers 1:A,2:B,3:A,4:B",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := parseAnswers(raw)
			if err != nil {
				return err
			}
			logger := newLogger(cmd)
			defer logger.Sync()

			svc := service.NewMBTIService(logger, nil, nil, nil, 0)
			result, err := svc.Classify(cmd.Context(), answers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type: %s (%s)\n", result.Type, result.DisplayType)
			fmt.Fprintf(out, "name: %s\n", result.Profile.Name)
			for _, d := range domain.Dimensions {
				fmt.Fprintf(out, "  %s %3d\n", d, result.Tendency.Get(d))
			}
			if len(result.Skipped) > 0 {
				fmt.Fprintf(out, "skipped question ids: %v\n", result.Skipped)
			}
			if len(result.Unanswered) > 0 {
				fmt.Fprintf(out, "unanswered dimensions: %v\n", result.Unanswered)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&raw, "answers", "", "comma separated id:choice pairs, e.g. 1:A,2:B")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

func newCompatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compat TYPE_A TYPE_B",
		Short: "Score the compatibility of two types",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := service.Compatibility(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s x %s: %d\n%s\n", result.TypeA, result.TypeB, result.Score, result.Description)
			return nil
		},
	}
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types [CODE]",
		Short: "List all types or show one profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, code := range service.TypeCodes() {
					profile, err := service.ProfileOf(code.String())
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s  %s\n", code, profile.Name)
				}
				return nil
			}

			profile, err := service.ProfileOf(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s  %s (%s)\n", profile.Type, profile.Name, profile.Nickname)
			fmt.Fprintf(out, "%s\n", profile.Summary)
			fmt.Fprintf(out, "strengths:  %s\n", strings.Join(profile.Strengths, ", "))
			fmt.Fprintf(out, "weaknesses: %s\n", strings.Join(profile.Weaknesses, ", "))
			fmt.Fprintf(out, "careers:    %s\n", strings.Join(profile.Careers, ", "))
			fmt.Fprintf(out, "best:       %s\n", matchCodes(profile.BestMatches))
			fmt.Fprintf(out, "good:       %s\n", matchCodes(profile.GoodMatches))
			fmt.Fprintf(out, "worst:      %s\n", matchCodes(profile.WorstMatches))
			return nil
		},
	}
}

func newTokenCmd() *cobra.Command {
	var (
		userID string
		email  string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for local testing (needs JWT_SECRET)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
			token, err := jwtSvc.IssueAccessToken(userID, email)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id to embed in the token")
	cmd.Flags().StringVar(&email, "email", "", "optional email claim")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

// parseAnswers reads "1:A,2:b,3:B". Choices are validated; unknown ids are left
// for the classifier to skip.
func parseAnswers(raw string) ([]domain.Answer, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("no answers given")
	}
	parts := strings.Split(raw, ",")
	answers := make([]domain.Answer, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idText, choiceText, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("answer %q: expected id:choice", part)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idText))
		if err != nil {
			return nil, fmt.Errorf("answer %q: bad question id: %w", part, err)
		}
		choice, err := domain.ParseChoice(choiceText)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", part, err)
		}
		answers = append(answers, domain.Answer{QuestionID: id, Choice: choice})
	}
	if len(answers) == 0 {
		return nil, errors.New("no answers given")
	}
	return answers, nil
}

func matchCodes(entries []domain.MatchEntry) string {
	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		codes = append(codes, e.Type.String())
	}
	return strings.Join(codes, ", ")
}
