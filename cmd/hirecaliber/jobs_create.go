package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/hire-caliber/internal/jobform"
	"github.com/jonathan/hire-caliber/internal/joblist"
	"github.com/jonathan/hire-caliber/internal/types"
)

type createOptions struct {
	title       string
	description string
	skills      []string
}

func newJobsCreateCmd(flags *globalFlags) *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a job posting",
		Long: `Create a job posting from a title, a description and any number of skills.

Skills are given as name[:type], where type is "required" or "nice" (the default). Repeat --skill to add several; order is kept.`,
		Example: `  hirecaliber jobs create --title "Backend Engineer" --description "Own the API" --skill Go:required --skill Kubernetes`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runJobsCreate(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "Job title")
	cmd.Flags().StringVar(&opts.description, "description", "", "Job description")
	cmd.Flags().StringArrayVar(&opts.skills, "skill", nil, "Skill as name[:required|:nice] (repeatable)")
	return cmd
}

func runJobsCreate(cmd *cobra.Command, flags *globalFlags, opts *createOptions) error {
	skills := make([]types.Skill, 0, len(opts.skills))
	for _, raw := range opts.skills {
		skill, err := parseSkillFlag(raw)
		if err != nil {
			return err
		}
		skills = append(skills, skill)
	}

	a, err := newApp(cmd, flags)
	if err != nil {
		return err
	}

	list := joblist.New(a.service, a.notifier, a.logger)
	list.OpenCreate()
	form := list.Form()
	form.EditField(jobform.FieldTitle, opts.title)
	form.EditField(jobform.FieldDescription, opts.description)
	for _, skill := range skills {
		form.AddSkill(skill.Name, skill.Type)
	}

	if err := form.Save(cmd.Context()); err != nil {
		return err
	}

	created := list.Snapshot().Jobs
	if len(created) > 0 {
		a.printer.PrintJob(&created[len(created)-1])
	}
	return nil
}

// parseSkillFlag splits name[:type]. A suffix that is not a skill type is
// an error rather than part of the name.
func parseSkillFlag(raw string) (types.Skill, error) {
	name, kind := raw, ""
	if i := strings.LastIndex(raw, ":"); i >= 0 {
		name, kind = raw[:i], raw[i+1:]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Skill{}, fmt.Errorf("invalid --skill %q: name is empty", raw)
	}

	skillType, err := types.ParseSkillType(kind)
	if err != nil {
		return types.Skill{}, fmt.Errorf("invalid --skill %q: %w", raw, err)
	}
	return types.Skill{Name: name, Type: skillType}, nil
}
