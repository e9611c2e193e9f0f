package main

import "github.com/spf13/cobra"

func newJobsCmd(flags *globalFlags) *cobra.Command {
	jobsCmd := &cobra.Command{
		Use:   "jobs",
		Short: "List, create, inspect and screen job postings",
	}
	jobsCmd.AddCommand(
		newJobsListCmd(flags),
		newJobsCreateCmd(flags),
		newJobsShowCmd(flags),
		newJobsCandidatesCmd(flags),
		newJobsMatchesCmd(flags),
	)
	return jobsCmd
}
