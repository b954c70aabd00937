// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package seed

import (
	"context"
	"fmt"

	"brewkit/cli/internal/cms"

	"github.com/google/uuid"
)

// StepStatus describes the outcome of one seeding step.
type StepStatus string

const (
	StepOK      StepStatus = "ok"
	StepSkipped StepStatus = "skipped"
	StepFailed  StepStatus = "failed"
)

// Step is one unit of seeding work reported to the progress callback.
type Step struct {
	Name   string
	Status StepStatus
	Err    error
}

// Runner seeds the starter CMS content through the typed service.
type Runner struct {
	svc *cms.Service
	// RunID tags a seeding run in verbose output and logs.
	RunID string
	// OnStep, when set, receives every step outcome as it happens.
	OnStep func(Step)
}

// NewRunner creates a Runner over the given CMS service.
func NewRunner(svc *cms.Service) *Runner {
	return &Runner{svc: svc, RunID: uuid.NewString()}
}

func (r *Runner) report(name string, status StepStatus, err error) {
	if r.OnStep != nil {
		r.OnStep(Step{Name: name, Status: status, Err: err})
	}
}

// Run seeds sections, products and testimonials in order. Sections are
// upserted so reruns refresh content in place; products and testimonials are
// only inserted when their collections are empty, so reruns do not duplicate
// rows. The first failure aborts the run.
func (r *Runner) Run(ctx context.Context) error {
	for _, sec := range SectionContent() {
		name := "section " + sec.Key
		if err := r.svc.UpsertSection(ctx, sec.Key, sec.Content); err != nil {
			r.report(name, StepFailed, err)
			return fmt.Errorf("seed %s: %w", name, err)
		}
		r.report(name, StepOK, nil)
	}

	if err := r.seedProducts(ctx); err != nil {
		return err
	}
	return r.seedTestimonials(ctx)
}

func (r *Runner) seedProducts(ctx context.Context) error {
	existing, err := r.svc.Products(ctx, false)
	if err != nil {
		r.report("products", StepFailed, err)
		return fmt.Errorf("list products: %w", err)
	}
	if len(existing) > 0 {
		r.report("products", StepSkipped, nil)
		return nil
	}

	for _, p := range Products() {
		name := "product " + p.Name
		if _, err := r.svc.CreateProduct(ctx, p); err != nil {
			r.report(name, StepFailed, err)
			return fmt.Errorf("seed %s: %w", name, err)
		}
		r.report(name, StepOK, nil)
	}
	return nil
}

func (r *Runner) seedTestimonials(ctx context.Context) error {
	existing, err := r.svc.Testimonials(ctx, false)
	if err != nil {
		r.report("testimonials", StepFailed, err)
		return fmt.Errorf("list testimonials: %w", err)
	}
	if len(existing) > 0 {
		r.report("testimonials", StepSkipped, nil)
		return nil
	}

	for _, t := range Testimonials() {
		name := "testimonial " + t.AuthorName
		if err := r.svc.CreateTestimonial(ctx, t); err != nil {
			r.report(name, StepFailed, err)
			return fmt.Errorf("seed %s: %w", name, err)
		}
		r.report(name, StepOK, nil)
	}
	return nil
}
