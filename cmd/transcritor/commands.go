package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// appFactory builds the service wiring; tests replace it with fakes
type appFactory func(verbose bool) (*app, error)

func newRootCmd(factory appFactory) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "transcritor",
		Short:         "Consulta vídeos de processos, transcreve e envia ao SOLAR",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to the n8n workflows")

	build := func() (*app, error) { return factory(verbose) }
	cmd.AddCommand(newLookupCmd(build))
	cmd.AddCommand(newTranscribeCmd(build))
	return cmd
}

func newLookupCmd(build func() (*app, error)) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "lookup <numero_processo>",
		Short: "List the videos of a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.svc.LookupCase(cmd.Context(), a.sessionID, args[0])
			if err != nil {
				return fmt.Errorf("failed to look up case: %w", err)
			}
			return printer{out: cmd.OutOrStdout(), json: jsonOutput}.videos(out.CaseNumber, out.Videos)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func newTranscribeCmd(build func() (*app, error)) *cobra.Command {
	var (
		jsonOutput bool
		submit     bool
	)

	cmd := &cobra.Command{
		Use:   "transcribe <numero_processo> <documento>",
		Short: "Transcribe a video of a case, optionally sending the transcript to SOLAR",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			if _, err := a.svc.LookupCase(ctx, a.sessionID, args[0]); err != nil {
				return fmt.Errorf("failed to look up case: %w", err)
			}
			out, err := a.svc.Transcribe(ctx, a.sessionID, args[1])
			if err != nil {
				return fmt.Errorf("failed to transcribe video: %w", err)
			}

			p := printer{out: cmd.OutOrStdout(), json: jsonOutput}
			if err := p.transcript(out.Video, out.Transcript); err != nil {
				return err
			}
			if !submit {
				return nil
			}

			if _, err := a.svc.Submit(ctx, a.sessionID); err != nil {
				return fmt.Errorf("failed to submit transcript: %w", err)
			}
			return p.submitted()
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&submit, "submit", false, "Send the transcript to SOLAR")
	return cmd
}
