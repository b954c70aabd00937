// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cms

import (
	"context"
	"fmt"
	"strings"

	"brewkit/cli/internal/radb"
)

// Service wraps the RaDB client with the queries the site and admin panel
// actually run. Every method maps to one or two builder round trips; errors
// from the envelope are promoted to Go errors at this layer.
type Service struct {
	client *radb.Client
}

// NewService creates a Service over the given client.
func NewService(client *radb.Client) *Service {
	return &Service{client: client}
}

// asError promotes an envelope error to a Go error.
func asError(res radb.Result) error {
	if res.Error == nil {
		return nil
	}
	return res.Error
}

// Section fetches one page section by key. Returns nil when absent.
func (s *Service) Section(ctx context.Context, key string) (*Section, error) {
	res := s.client.From(SectionsCollection).
		Select().
		Eq("section_key", key).
		Limit(1).
		Execute(ctx)
	if err := asError(res); err != nil {
		return nil, err
	}

	var sections []Section
	if err := radb.DecodeInto(res.Data, &sections); err != nil {
		return nil, fmt.Errorf("decode section %q: %w", key, err)
	}
	if len(sections) == 0 {
		return nil, nil
	}
	return &sections[0], nil
}

// Sections fetches all page sections.
func (s *Service) Sections(ctx context.Context) ([]Section, error) {
	res := s.client.From(SectionsCollection).Select().Execute(ctx)
	if err := asError(res); err != nil {
		return nil, err
	}
	var sections []Section
	if err := radb.DecodeInto(res.Data, &sections); err != nil {
		return nil, fmt.Errorf("decode sections: %w", err)
	}
	return sections, nil
}

// UpsertSection writes a section's content: update in place when a row with
// the key exists, insert otherwise. An insert that races another writer into
// a unique violation is retried as an update.
func (s *Service) UpsertSection(ctx context.Context, key string, content map[string]any) error {
	existing, err := s.Section(ctx, key)
	if err != nil {
		return err
	}

	if existing != nil {
		res := s.client.From(SectionsCollection).
			Update(map[string]any{"content": content}).
			Eq("id", existing.ID).
			Execute(ctx)
		return asError(res)
	}

	res := s.client.From(SectionsCollection).
		Insert(map[string]any{"section_key": key, "content": content}).
		Execute(ctx)
	if res.Error != nil && isUniqueViolation(res.Error) {
		upd := s.client.From(SectionsCollection).
			Update(map[string]any{"content": content}).
			Eq("section_key", key).
			Execute(ctx)
		return asError(upd)
	}
	return asError(res)
}

// isUniqueViolation sniffs a duplicate-key failure from the backend's error
// message, which is the only signal some deployments give.
func isUniqueViolation(e *radb.ErrorInfo) bool {
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}

// Products lists catalog products ordered for display. With activeOnly set,
// inactive products are filtered out server-side.
func (s *Service) Products(ctx context.Context, activeOnly bool) ([]Product, error) {
	q := s.client.From(ProductsCollection).Select()
	if activeOnly {
		q = q.Eq("is_active", true)
	}
	res := q.Order("order", true).Execute(ctx)
	if err := asError(res); err != nil {
		return nil, err
	}
	var products []Product
	if err := radb.DecodeInto(res.Data, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// Product fetches one product by id. Returns nil when absent.
func (s *Service) Product(ctx context.Context, id string) (*Product, error) {
	res := s.client.From(ProductsCollection).
		Select().
		Eq("id", id).
		Limit(1).
		Execute(ctx)
	if err := asError(res); err != nil {
		return nil, err
	}
	var products []Product
	if err := radb.DecodeInto(res.Data, &products); err != nil {
		return nil, fmt.Errorf("decode product %s: %w", id, err)
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}

// CreateProduct inserts a product and returns the created row when the
// backend echoes it back.
func (s *Service) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	res := s.client.From(ProductsCollection).Insert(input).Execute(ctx)
	if err := asError(res); err != nil {
		return nil, err
	}
	return decodeFirstProduct(res.Data)
}

// UpdateProduct applies a partial update to the product with the given id.
func (s *Service) UpdateProduct(ctx context.Context, id string, fields map[string]any) error {
	res := s.client.From(ProductsCollection).Update(fields).Eq("id", id).Execute(ctx)
	return asError(res)
}

// DeleteProduct removes the product with the given id.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	res := s.client.From(ProductsCollection).Delete().Eq("id", id).Execute(ctx)
	return asError(res)
}

// decodeFirstProduct handles the two success shapes the backend uses for
// inserts: a bare object or a one-element array.
func decodeFirstProduct(data any) (*Product, error) {
	if data == nil {
		return nil, nil
	}
	if _, ok := data.([]any); ok {
		var products []Product
		if err := radb.DecodeInto(data, &products); err != nil {
			return nil, fmt.Errorf("decode inserted product: %w", err)
		}
		if len(products) == 0 {
			return nil, nil
		}
		return &products[0], nil
	}
	var product Product
	if err := radb.DecodeInto(data, &product); err != nil {
		return nil, fmt.Errorf("decode inserted product: %w", err)
	}
	return &product, nil
}

// Testimonials lists testimonials ordered for display.
func (s *Service) Testimonials(ctx context.Context, activeOnly bool) ([]Testimonial, error) {
	q := s.client.From(TestimonialsCollection).Select()
	if activeOnly {
		q = q.Eq("is_active", true)
	}
	res := q.Order("order", true).Execute(ctx)
	if err := asError(res); err != nil {
		return nil, err
	}
	var testimonials []Testimonial
	if err := radb.DecodeInto(res.Data, &testimonials); err != nil {
		return nil, fmt.Errorf("decode testimonials: %w", err)
	}
	return testimonials, nil
}

// CreateTestimonial inserts a testimonial.
func (s *Service) CreateTestimonial(ctx context.Context, input TestimonialInput) error {
	res := s.client.From(TestimonialsCollection).Insert(input).Execute(ctx)
	return asError(res)
}

// UpdateTestimonial applies a partial update to the testimonial with the
// given id.
func (s *Service) UpdateTestimonial(ctx context.Context, id string, fields map[string]any) error {
	res := s.client.From(TestimonialsCollection).Update(fields).Eq("id", id).Execute(ctx)
	return asError(res)
}

// DeleteTestimonial removes the testimonial with the given id.
func (s *Service) DeleteTestimonial(ctx context.Context, id string) error {
	res := s.client.From(TestimonialsCollection).Delete().Eq("id", id).Execute(ctx)
	return asError(res)
}
