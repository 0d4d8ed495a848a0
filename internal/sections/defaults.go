package sections

import "template-renderer/internal/model"

// DefaultData returns the starter payload for a section id, used when a
// configuration is created without caller-supplied data for that section.
// Image fields intentionally carry "/images/..." example placeholders; the
// resolver swaps them for uploaded images at render time.
func DefaultData(id string) map[string]any {
	switch id {
	case "hero":
		return map[string]any{
			"title":           "Welcome",
			"subtitle":        "Discover our unique collection",
			"backgroundImage": "/images/hero-bg.jpg",
			"ctaButtons": []any{
				map[string]any{"text": "See More", "href": "#products", "style": "primary"},
				map[string]any{"text": "Contact", "href": "#contact", "style": "outline"},
			},
		}
	case "about":
		return map[string]any{
			"title":    "About Us",
			"content":  []any{"We are a company committed to excellence and customer satisfaction."},
			"image":    "/images/about.jpg",
			"imageAlt": "About us",
		}
	case "products":
		return map[string]any{
			"title":            "Our Products",
			"subtitle":         "Discover our collection",
			"featuredProducts": []any{},
			"categories":       []any{},
		}
	case "services":
		return map[string]any{
			"title":    "Our Services",
			"subtitle": "We offer professional solutions",
			"services": []any{
				map[string]any{
					"icon":        "🛠️",
					"title":       "Professional Service",
					"description": "High quality services backed by years of experience",
					"features":    []any{"Guaranteed quality", "Personalized attention", "Proven results"},
				},
			},
		}
	case "testimonials":
		return map[string]any{
			"title":    "What our customers say",
			"subtitle": "Testimonials from satisfied customers",
			"testimonials": []any{
				map[string]any{
					"name":     "Happy Customer",
					"position": "Customer",
					"quote":    "Excellent service and customer care",
					"rating":   []any{1, 1, 1, 1, 1},
					"avatar":   "/images/avatar1.jpg",
				},
			},
		}
	case "gallery":
		return map[string]any{
			"title":    "Our Gallery",
			"subtitle": "Take a look at our work",
			"images": []any{
				map[string]any{
					"src":         "/images/gallery1.jpg",
					"alt":         "Gallery image",
					"title":       "Work 1",
					"description": "Work description",
				},
			},
			"categories": []any{
				map[string]any{"name": "All"},
				map[string]any{"name": "Category 1"},
				map[string]any{"name": "Category 2"},
			},
		}
	case "contact":
		return map[string]any{
			"title":    "Contact Us",
			"subtitle": "We are here to help",
			"contactInfo": []any{
				map[string]any{"icon": "📞", "title": "Phone", "value": "+52 (55) 1234-5678"},
				map[string]any{"icon": "📧", "title": "Email", "value": "info@company.com"},
				map[string]any{"icon": "📍", "title": "Address", "value": "123 Main Street, City"},
			},
			"socialMedia": []any{
				map[string]any{"icon": "📘", "url": "#"},
				map[string]any{"icon": "📷", "url": "#"},
				map[string]any{"icon": "🐦", "url": "#"},
			},
		}
	case "cart":
		return map[string]any{
			"title":    "Shopping Cart",
			"subtitle": "Review your selected products",
			"items":    []any{},
			"subtotal": "0.00",
			"shipping": "0.00",
			"taxes":    "0.00",
			"total":    "0.00",
		}
	case "appointments":
		return map[string]any{
			"title":          "Book Your Appointment",
			"subtitle":       "Schedule a personalized consultation",
			"availableSlots": []any{},
		}
	case "stats":
		return map[string]any{
			"title":    "Our Numbers",
			"subtitle": "Statistics that speak for themselves",
			"statistics": []any{
				map[string]any{"value": "500+", "label": "Happy Customers"},
				map[string]any{"value": "50+", "label": "Completed Projects"},
				map[string]any{"value": "5+", "label": "Years of Experience"},
				map[string]any{"value": "100%", "label": "Satisfaction Guaranteed"},
			},
			"achievements": []any{
				map[string]any{
					"icon":        "🏆",
					"title":       "Excellence Award",
					"description": "Recognition for service quality",
				},
			},
		}
	}
	return map[string]any{}
}

// ThemeForStyle returns the theme preset for a style. Unknown styles get
// the classic preset.
func ThemeForStyle(style model.Style) model.Theme {
	switch style {
	case model.StyleModern:
		return model.Theme{
			Colors: model.ThemeColors{
				Primary:             "220 14% 96%",
				PrimaryForeground:   "220 9% 46%",
				Secondary:           "220 14% 96%",
				SecondaryForeground: "220 9% 46%",
				Background:          "0 0% 100%",
				Foreground:          "220 9% 46%",
				Accent:              "220 14% 96%",
				AccentForeground:    "220 9% 46%",
			},
			Fonts: model.ThemeFonts{
				Heading: "'Inter', sans-serif",
				Body:    "'Inter', sans-serif",
			},
		}
	case model.StyleMinimalist:
		return model.Theme{
			Colors: model.ThemeColors{
				Primary:             "220 9% 46%",
				PrimaryForeground:   "0 0% 100%",
				Secondary:           "220 9% 46%",
				SecondaryForeground: "0 0% 100%",
				Background:          "0 0% 100%",
				Foreground:          "220 9% 46%",
				Accent:              "220 9% 46%",
				AccentForeground:    "0 0% 100%",
			},
			Fonts: model.ThemeFonts{
				Heading: "'Inter', sans-serif",
				Body:    "'Inter', sans-serif",
			},
		}
	case model.StyleColorful:
		return model.Theme{
			Colors: model.ThemeColors{
				Primary:             "262 83% 58%",
				PrimaryForeground:   "0 0% 100%",
				Secondary:           "38 92% 50%",
				SecondaryForeground: "222.2 84% 4.9%",
				Background:          "0 0% 100%",
				Foreground:          "222.2 84% 4.9%",
				Accent:              "174 72% 56%",
				AccentForeground:    "0 0% 100%",
			},
			Fonts: model.ThemeFonts{
				Heading: "'Poppins', sans-serif",
				Body:    "'Poppins', sans-serif",
			},
		}
	default:
		return model.Theme{
			Colors: model.ThemeColors{
				Primary:             "340 82% 52%",
				PrimaryForeground:   "0 0% 100%",
				Secondary:           "120 61% 34%",
				SecondaryForeground: "0 0% 100%",
				Background:          "0 0% 100%",
				Foreground:          "222.2 84% 4.9%",
				Accent:              "340 82% 52%",
				AccentForeground:    "0 0% 100%",
			},
			Fonts: model.ThemeFonts{
				Heading: "'Dancing Script', cursive",
				Body:    "'Poppins', sans-serif",
			},
		}
	}
}
