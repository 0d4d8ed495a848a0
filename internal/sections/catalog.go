// Package sections holds the static section catalog: the fixed set of
// content blocks a client site can be assembled from, their default
// ordering and payloads, and the per-style theme presets.
package sections

import "template-renderer/internal/model"

// Catalog is the fixed set of available sections. Exactly these ten ids
// are valid; entries flagged Required must be present in every client
// configuration.
var Catalog = []model.Section{
	{
		ID:          "hero",
		Name:        "Hero Section",
		Description: "Main section with background image and call to action",
		Required:    true,
		Order:       1,
		Template:    "hero",
		Category:    model.CategoryContent,
		Icon:        "🏠",
		DataSchema: map[string]string{
			"title":           "string",
			"subtitle":        "string",
			"backgroundImage": "string",
			"ctaButtons":      "array",
		},
	},
	{
		ID:          "about",
		Name:        "About Us",
		Description: "Information about the company or business",
		Required:    false,
		Order:       2,
		Template:    "about",
		Category:    model.CategoryContent,
		Icon:        "ℹ️",
		DataSchema: map[string]string{
			"title":    "string",
			"content":  "array",
			"image":    "string",
			"imageAlt": "string",
		},
	},
	{
		ID:          "products",
		Name:        "Products",
		Description: "Catalog of products or services",
		Required:    false,
		Order:       3,
		Template:    "products",
		Category:    model.CategoryCommerce,
		Icon:        "🛍️",
		DataSchema: map[string]string{
			"title":            "string",
			"subtitle":         "string",
			"featuredProducts": "array",
			"categories":       "array",
		},
	},
	{
		ID:          "services",
		Name:        "Services",
		Description: "List of offered services",
		Required:    false,
		Order:       4,
		Template:    "services",
		Category:    model.CategoryCommerce,
		Icon:        "🔧",
		DataSchema: map[string]string{
			"title":    "string",
			"subtitle": "string",
			"services": "array",
		},
	},
	{
		ID:          "testimonials",
		Name:        "Testimonials",
		Description: "Customer opinions and reviews",
		Required:    false,
		Order:       5,
		Template:    "testimonials",
		Category:    model.CategorySocial,
		Icon:        "💬",
		DataSchema: map[string]string{
			"title":    "string",
			"subtitle": "string",
			"reviews":  "array",
		},
	},
	{
		ID:          "gallery",
		Name:        "Gallery",
		Description: "Image gallery",
		Required:    false,
		Order:       6,
		Template:    "gallery",
		Category:    model.CategoryContent,
		Icon:        "🖼️",
		DataSchema: map[string]string{
			"title":    "string",
			"subtitle": "string",
			"images":   "array",
		},
	},
	{
		ID:          "contact",
		Name:        "Contact",
		Description: "Contact information and form",
		Required:    false,
		Order:       7,
		Template:    "contact",
		Category:    model.CategoryContact,
		Icon:        "📞",
		DataSchema: map[string]string{
			"title":    "string",
			"subtitle": "string",
			"info":     "object",
			"map":      "object",
		},
	},
	{
		ID:          "cart",
		Name:        "Shopping Cart",
		Description: "Shopping cart functionality",
		Required:    false,
		Order:       8,
		Template:    "cart",
		Category:    model.CategoryCommerce,
		Icon:        "🛒",
		DataSchema: map[string]string{
			"title": "string",
			"items": "array",
		},
	},
	{
		ID:          "appointments",
		Name:        "Appointments",
		Description: "Booking and appointment system",
		Required:    false,
		Order:       9,
		Template:    "appointments",
		Category:    model.CategoryCommerce,
		Icon:        "📅",
		DataSchema: map[string]string{
			"title":          "string",
			"subtitle":       "string",
			"availableSlots": "array",
		},
	},
	{
		ID:          "stats",
		Name:        "Statistics",
		Description: "Key business metrics and numbers",
		Required:    false,
		Order:       10,
		Template:    "stats",
		Category:    model.CategoryContent,
		Icon:        "📊",
		DataSchema: map[string]string{
			"title":    "string",
			"subtitle": "string",
			"metrics":  "array",
		},
	},
}

// CategoryLabels maps section categories to display labels.
var CategoryLabels = map[model.SectionCategory]string{
	model.CategoryContent:  "Content",
	model.CategoryCommerce: "Commerce",
	model.CategorySocial:   "Social",
	model.CategoryContact:  "Contact",
}

var displayNames = map[string]string{
	"hero":         "Home",
	"about":        "About Us",
	"products":     "Products",
	"services":     "Services",
	"testimonials": "Testimonials",
	"gallery":      "Gallery",
	"contact":      "Contact",
	"cart":         "Cart",
	"appointments": "Appointments",
	"stats":        "Statistics",
}

var descriptions = map[string]string{
	"hero":         "Main page with the company's highlighted information",
	"about":        "Learn more about us and our history",
	"products":     "Browse our product catalog",
	"services":     "Discover the services we offer",
	"testimonials": "Opinions and experiences from our customers",
	"gallery":      "Image gallery of our work",
	"contact":      "Contact information and forms",
	"cart":         "Shopping cart and order management",
	"appointments": "Appointment booking and scheduling",
	"stats":        "Business statistics and achievements",
}

// ByID returns the catalog entry for id, or ok=false for unknown ids.
func ByID(id string) (model.Section, bool) {
	for _, s := range Catalog {
		if s.ID == id {
			return s, true
		}
	}
	return model.Section{}, false
}

// Required returns the catalog entries every configuration must include.
func Required() []model.Section {
	var out []model.Section
	for _, s := range Catalog {
		if s.Required {
			out = append(out, s)
		}
	}
	return out
}

// DisplayName returns the navigation label for a section id, falling back
// to the raw id when unmapped.
func DisplayName(id string) string {
	if name, ok := displayNames[id]; ok {
		return name
	}
	return id
}

// Description returns the page description for a section id.
func Description(id string) string {
	if d, ok := descriptions[id]; ok {
		return d
	}
	return "Custom section content"
}
