package cmd

import (
	"context"
	"io"

	"github.com/anotherempty/env-sync/merge"
)

// Sync merges the template file into the local env file and writes the
// result back. It is the default command.
type Sync struct {
	Local    string `help:"Path to the local env file."    placeholder:"FILE" short:"l" name:"local"`
	Template string `help:"Path to the template env file." placeholder:"FILE" short:"t" name:"template"`
	DryRun   bool   `help:"Print the merged result instead of writing it."   name:"dry-run"`
}

// Run executes the sync command.
func (s *Sync) Run(ctx context.Context) error {
	res, err := merge.Sync(ctx, merge.Options{
		Local:    s.Local,
		Template: s.Template,
		DryRun:   s.DryRun,
	})
	if err != nil {
		return err
	}

	if s.DryRun {
		_, err = io.WriteString(stdout(ctx), res.After)
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}
