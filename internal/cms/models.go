// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cms provides typed access to the coffee-shop content model stored
// behind the RaDB client: page sections with free-form JSON content, the
// product catalog, and customer testimonials.
package cms

// Collection names in the backend.
const (
	SectionsCollection     = "cms_sections"
	ProductsCollection     = "cms_products"
	TestimonialsCollection = "cms_testimonials"
)

// Section keys the site knows how to render.
const (
	SectionHero    = "hero"
	SectionAbout   = "about"
	SectionHeader  = "header"
	SectionFooter  = "footer"
	SectionContact = "contact"
)

// Section is one editable page section. Content is free-form JSON whose
// shape depends on the section key; the rendering layer owns that contract.
type Section struct {
	ID         string         `json:"id"`
	SectionKey string         `json:"section_key"`
	Content    map[string]any `json:"content"`
	UpdatedAt  string         `json:"updated_at,omitempty"`
	UpdatedBy  string         `json:"updated_by,omitempty"`
	CreatedAt  string         `json:"created_at,omitempty"`
}

// Product is one catalog entry.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`
	Order       int     `json:"order"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// ProductInput is the writable subset of Product.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url,omitempty"`
	Order       int     `json:"order"`
	IsActive    bool    `json:"is_active"`
}

// Testimonial is one customer quote.
type Testimonial struct {
	ID         string   `json:"id"`
	AuthorName string   `json:"author_name"`
	AuthorRole *string  `json:"author_role"`
	Content    string   `json:"content"`
	Rating     *float64 `json:"rating"`
	ImageURL   *string  `json:"image_url"`
	Order      int      `json:"order"`
	IsActive   bool     `json:"is_active"`
	CreatedAt  string   `json:"created_at,omitempty"`
	UpdatedAt  string   `json:"updated_at,omitempty"`
}

// TestimonialInput is the writable subset of Testimonial.
type TestimonialInput struct {
	AuthorName string   `json:"author_name"`
	AuthorRole *string  `json:"author_role,omitempty"`
	Content    string   `json:"content"`
	Rating     *float64 `json:"rating,omitempty"`
	ImageURL   *string  `json:"image_url,omitempty"`
	Order      int      `json:"order"`
	IsActive   bool     `json:"is_active"`
}
