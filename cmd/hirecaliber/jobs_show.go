package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/hire-caliber/internal/jobdetail"
	"github.com/jonathan/hire-caliber/internal/notify"
)

func newJobsShowCmd(flags *globalFlags) *cobra.Command {
	var screen bool

	cmd := &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show a job posting and optionally screen candidates for it",
		Long: `Fetch a job posting by ID.

With --screen, the backend is also asked to find matching candidates. The detail fetch and the screening run concurrently; a failure in one does not cancel the other.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			view := jobdetail.New(a.service, a.logger)
			view.Select(args[0])

			var g errgroup.Group
			g.Go(func() error { return view.Reload(ctx) })
			if screen {
				a.logger.Debug("screening candidates", "job_id", args[0])
				g.Go(func() error { return view.Screen(ctx) })
			}
			runErr := g.Wait()

			state := view.Snapshot()
			if state.Job != nil {
				a.printer.PrintJob(state.Job)
			}
			if screen && runErr == nil {
				if state.ShowCandidates() {
					a.printer.PrintCandidates(state.Candidates)
				} else {
					notify.Infof(a.notifier, "No matching candidates found.")
				}
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&screen, "screen", false, "Screen candidates for the job ("+jobdetail.LabelScreen+")")
	return cmd
}
