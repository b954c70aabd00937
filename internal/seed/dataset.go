// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package seed populates a fresh CMS backend with the starter coffee-shop
// content: the five page sections, a small product catalog, and a handful of
// testimonials. Runs are idempotent for sections (upsert by key) and
// additive for products and testimonials.
package seed

import (
	"fmt"
	"time"

	"brewkit/cli/internal/cms"
)

// strPtr avoids taking the address of literals inline.
func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// SectionContent returns the starter content for every known section key,
// in the order they should be written.
func SectionContent() []struct {
	Key     string
	Content map[string]any
} {
	return []struct {
		Key     string
		Content map[string]any
	}{
		{
			Key: cms.SectionHero,
			Content: map[string]any{
				"title":                 "The best coffee you could be drinking",
				"subtitle":              "Discover the unique flavor of our artisan coffee, brewed from hand-picked beans and a signature roast, for an experience worth slowing down for.",
				"primaryButtonText":     "Try our coffees",
				"primaryButtonAction":   "#products",
				"secondaryButtonText":   "More about us",
				"secondaryButtonAction": "#about",
				"backgroundImageUrl":    "https://images.unsplash.com/photo-1509042239860-f550ce710b93?auto=format&fit=crop&w=1920&q=80",
			},
		},
		{
			Key: cms.SectionAbout,
			Content: map[string]any{
				"title":       "About Brewkit Café",
				"description": "Traditional, welcoming and a little obsessive: we are passionate about coffee and about building small moments around it, from the first aroma of the morning to the perfect evening espresso.",
				"stats": map[string]any{
					"years":        10,
					"yearsLabel":   "years of tradition",
					"coffees":      50,
					"coffeesLabel": "coffees and recipes",
					"rating":       4.5,
					"ratingLabel":  "average rating",
				},
			},
		},
		{
			Key: cms.SectionContact,
			Content: map[string]any{
				"title":       "Get in touch",
				"description": "We are always happy to hear from you. Reach out with questions, suggestions, or to book a table.",
				"email":       "hello@brewkitcafe.example",
				"phone":       "(99) 99999-9999",
				"address":     "123 Bean Street\nOld Town",
				"formFields":  []any{},
			},
		},
		{
			Key: cms.SectionHeader,
			Content: map[string]any{
				"logoText": "Brewkit Café",
				"menuItems": []any{
					map[string]any{"label": "Home", "href": "#home"},
					map[string]any{"label": "About", "href": "#about"},
					map[string]any{"label": "Products", "href": "#products"},
					map[string]any{"label": "Testimonials", "href": "#testimonials"},
					map[string]any{"label": "Contact", "href": "#contact"},
				},
			},
		},
		{
			Key: cms.SectionFooter,
			Content: map[string]any{
				"description": "",
				"address":     "123 Bean Street, Old Town",
				"phone":       "(99) 99999-9999",
				"email":       "hello@brewkitcafe.example",
				"copyright":   fmt.Sprintf("© %d Brewkit Café. All rights reserved.", time.Now().Year()),
				"socialLinks": []any{
					map[string]any{"platform": "Instagram", "url": "https://instagram.com/brewkitcafe"},
					map[string]any{"platform": "Facebook", "url": "https://facebook.com/brewkitcafe"},
				},
				"links": []any{
					map[string]any{"label": "Home", "href": "#home"},
					map[string]any{"label": "About", "href": "#about"},
					map[string]any{"label": "Products", "href": "#products"},
					map[string]any{"label": "Testimonials", "href": "#testimonials"},
					map[string]any{"label": "Contact", "href": "#contact"},
				},
			},
		},
	}
}

// Products returns the starter catalog.
func Products() []cms.ProductInput {
	return []cms.ProductInput{
		{
			Name:        "Classic Espresso",
			Description: "An irresistible classic to start the day.",
			Price:       5.5,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1459257868276-5e65389e2722?auto=format&fit=crop&w=400&q=80"),
			Order:       0,
			IsActive:    true,
		},
		{
			Name:        "Creamy Cappuccino",
			Description: "Espresso, steamed milk and a generous cap of foam.",
			Price:       8.0,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1511920170033-f8396924c348?auto=format&fit=crop&w=400&q=80"),
			Order:       1,
			IsActive:    true,
		},
		{
			Name:        "Hazelnut Latte",
			Description: "Hazelnut over velvety milk, quietly sophisticated.",
			Price:       9.5,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1464983953574-0892a716854b?auto=format&fit=crop&w=400&q=80"),
			Order:       2,
			IsActive:    true,
		},
		{
			Name:        "Chocolate Mocha",
			Description: "For chocolate lovers: intense espresso, milk and cocoa.",
			Price:       10.0,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1465101162946-4377e57745c3?auto=format&fit=crop&w=400&q=80"),
			Order:       3,
			IsActive:    true,
		},
		{
			Name:        "Iced Tropical Coffee",
			Description: "Refreshing and a little exotic, built for hot days.",
			Price:       7.0,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1464306076886-debca5e8a6b0?auto=format&fit=crop&w=400&q=80"),
			Order:       4,
			IsActive:    true,
		},
		{
			Name:        "Caramel Macchiato",
			Description: "Layers of espresso, caramel and foam.",
			Price:       8.5,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=400&q=80"),
			Order:       5,
			IsActive:    true,
		},
	}
}

// Testimonials returns the starter testimonials.
func Testimonials() []cms.TestimonialInput {
	return []cms.TestimonialInput{
		{
			AuthorName: "Maria Silva",
			Content:    "An incredible place! The best beans I have ever tasted, impeccable service and a genuinely cozy room. Recommended to every coffee lover.",
			ImageURL:   strPtr("https://images.unsplash.com/photo-1517841905240-472988babdf9?w=200&h=200&fit=facearea&facepad=2&q=80"),
			Rating:     floatPtr(5),
			Order:      0,
			IsActive:   true,
		},
		{
			AuthorName: "John Pereira",
			Content:    "The best cappuccino I have ever had. Pleasant atmosphere and consistently high quality.",
			ImageURL:   strPtr("https://images.unsplash.com/photo-1511367461989-f85a21fda167?w=200&h=200&fit=facearea&facepad=2&q=80"),
			Rating:     floatPtr(4),
			Order:      1,
			IsActive:   true,
		},
		{
			AuthorName: "Ana Clara",
			Content:    "I love the room here, perfect for unwinding over a good cup. Attentive staff and great products.",
			ImageURL:   strPtr("https://images.unsplash.com/photo-1529626455594-4ff0802cfb7e?w=200&h=200&fit=facearea&facepad=2&q=80"),
			Rating:     floatPtr(5),
			Order:      2,
			IsActive:   true,
		},
	}
}
