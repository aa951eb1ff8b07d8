package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewCaptchaCommand creates the captcha command group.
func NewCaptchaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "captcha",
		Short: "Handle captcha challenges",
		Long:  "Submit captcha solutions and manage the stored captcha token",
	}

	cmd.AddCommand(newCaptchaSolveCommand())
	cmd.AddCommand(newCaptchaClearCommand())

	return cmd
}

func newCaptchaSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve CHALLENGE",
		Short: "Solve a captcha",
		Long:  "Submit a solved captcha challenge and attach it to later requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			req, err := client.Captchas().Solve().CaptchaChallenge(args[0]).Build()
			if err != nil {
				return err
			}

			if _, err := req.Send(context.Background()); err != nil {
				return fmt.Errorf("failed to solve captcha: %w", err)
			}

			if err := NewConfigPersister().UpdateCaptcha(args[0]); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Captcha accepted")

			return nil
		},
	}
}

func newCaptchaClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the stored captcha",
		Long:  "Remove the stored captcha token from the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := NewConfigPersister().UpdateCaptcha(""); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Captcha cleared")

			return nil
		},
	}
}
