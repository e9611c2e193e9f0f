package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/hire-caliber/internal/notify"
	"github.com/jonathan/hire-caliber/internal/upload"
)

func newResumesCmd(flags *globalFlags) *cobra.Command {
	resumesCmd := &cobra.Command{
		Use:   "resumes",
		Short: "Manage candidate resumes",
	}
	resumesCmd.AddCommand(newResumesUploadCmd(flags))
	return resumesCmd
}

func newResumesUploadCmd(flags *globalFlags) *cobra.Command {
	var jobID string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a resume for a job",
		Long: `Upload a resume file (PDF or Word, up to 5 MB) for a job.

The job defaults to job_id from the config file or HIRECALIBER_JOB_ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("job") {
				a.cfg.JobID = jobID
			}
			if strings.TrimSpace(a.cfg.JobID) == "" {
				return errors.New("--job is required (or set job_id in the config file or HIRECALIBER_JOB_ID)")
			}

			file, err := upload.FileFromPath(args[0])
			if err != nil {
				return err
			}
			if !upload.Accepted(file.Name) {
				notify.Warnf(a.notifier, "%s is not a %s file; uploading anyway.", file.Name, strings.Join(upload.AcceptedExtensions, "/"))
			}

			workflow := upload.New(a.service, a.cfg.JobID, a.notifier, a.logger)
			if err := workflow.Select(file, upload.SourcePicker); err != nil {
				return err
			}
			return workflow.Upload(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&jobID, "job", "j", "", "Job ID to attach the resume to")
	return cmd
}
