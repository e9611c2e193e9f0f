package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/hire-caliber/internal/notify"
)

func newJobsCandidatesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates <job-id>",
		Short: "List candidates who uploaded a resume for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}

			candidates, err := a.service.ListCandidates(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				notify.Infof(a.notifier, "No candidates for job %s yet.", args[0])
				return nil
			}
			a.printer.PrintCandidates(candidates)
			return nil
		},
	}
}
