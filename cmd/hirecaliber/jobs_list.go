package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/hire-caliber/internal/joblist"
)

func newJobsListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List job postings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}

			list := joblist.New(a.service, a.notifier, a.logger)
			if err := list.Refresh(cmd.Context()); err != nil {
				return err
			}
			a.printer.PrintJobs(list.Snapshot().Jobs)
			return nil
		},
	}
}
