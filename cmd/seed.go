// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"time"

	"atomicgo.dev/cursor"
	"brewkit/cli/internal/cms"
	"brewkit/cli/internal/errors"
	"brewkit/cli/internal/logging"
	"brewkit/cli/internal/seed"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var seedVerbose bool

// seedCmd represents the seed command. It populates the CMS collections
// with the starter coffee-shop content: page sections, the product catalog
// and customer testimonials. Sections are refreshed in place; products and
// testimonials are only inserted into empty collections, so rerunning the
// command never duplicates rows.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the CMS with starter coffee-shop content",
	Long: `The seed command populates the backend CMS collections with starter content
for the coffee-shop site: the hero, about, header, footer and contact page
sections, a six-item product catalog, and three customer testimonials.

Seeding is idempotent: page sections are upserted (reruns refresh the
content in place) and products and testimonials are only inserted when
their collections are empty.

Writes require either a signed-in session ('brewkit login') or service
mode (--service with the service-role key exported).`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client, err := newClient(false)
		if err != nil {
			return err
		}

		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Backend: ") + pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(logging.Mask(client.BaseURL())))
		pterm.Println()

		runner := seed.NewRunner(cms.NewService(client))
		if seedVerbose {
			pterm.Printf("Run ID: %s\n", runner.RunID)
		}

		cursor.Hide()
		defer cursor.Show()

		spinner, _ := pterm.DefaultSpinner.Start("Seeding content")
		started := time.Now()

		var (
			okCount      int
			skippedCount int
		)
		runner.OnStep = func(s seed.Step) {
			switch s.Status {
			case seed.StepOK:
				okCount++
				spinner.UpdateText("Seeded " + s.Name)
			case seed.StepSkipped:
				skippedCount++
				spinner.UpdateText("Skipped " + s.Name + " (already present)")
			case seed.StepFailed:
				spinner.Fail("Failed on " + s.Name)
			}
		}

		if err := runner.Run(ctx); err != nil {
			pterm.Println(logging.PresentError("seeding", err))
			return errors.Wrap(errors.SeedFailed, "seeding aborted", err)
		}

		spinner.Success("Seeding completed")

		elapsed := time.Since(started).Round(time.Millisecond)
		details := fmt.Sprintf("Steps applied: %d\nSteps skipped: %d\nDuration:      %s", okCount, skippedCount, elapsed)
		title := pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("Seeding Completed")
		box := pterm.DefaultBox.WithTitle(title).WithTopPadding(1).WithBottomPadding(1).WithLeftPadding(1).WithRightPadding(1).Sprint(details)
		pterm.Println(box)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedVerbose, "verbose", false, "Print the run ID and per-step detail")
	rootCmd.AddCommand(seedCmd)
}
