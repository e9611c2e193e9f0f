package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/hire-caliber/internal/notify"
)

func newJobsMatchesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "matches <job-id>",
		Short: "Show the top-ranked candidate matches for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}

			matches, err := a.service.ListMatches(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				notify.Infof(a.notifier, "No matches for job %s yet.", args[0])
				return nil
			}
			a.printer.PrintMatches(matches)
			return nil
		},
	}
}
