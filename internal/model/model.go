// Package model defines the persisted and derived data structures of the
// template renderer: per-client configurations, the section catalog entry
// shape, uploaded image records, and template metadata.
package model

import "time"

// Style identifies one of the fixed layout/theme styles.
type Style string

const (
	StyleClassic    Style = "classic"
	StyleModern     Style = "modern"
	StyleMinimalist Style = "minimalist"
	StyleColorful   Style = "colorful"
)

// Styles lists every valid style value.
var Styles = []Style{StyleClassic, StyleModern, StyleMinimalist, StyleColorful}

// ValidStyle reports whether s is a member of the style enumeration.
func ValidStyle(s string) bool {
	for _, v := range Styles {
		if string(v) == s {
			return true
		}
	}
	return false
}

// ThemeColors holds the eight named HSL-triplet strings a layout consumes.
type ThemeColors struct {
	Primary             string `json:"primary"`
	PrimaryForeground   string `json:"primaryForeground"`
	Secondary           string `json:"secondary"`
	SecondaryForeground string `json:"secondaryForeground"`
	Background          string `json:"background"`
	Foreground          string `json:"foreground"`
	Accent              string `json:"accent"`
	AccentForeground    string `json:"accentForeground"`
}

// ThemeFonts holds the heading/body font stacks.
type ThemeFonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Theme combines colors and fonts for one style.
type Theme struct {
	Colors ThemeColors `json:"colors"`
	Fonts  ThemeFonts  `json:"fonts"`
}

// Company holds the tenant's presentation data. Logo and favicon go
// through image resolution before rendering.
type Company struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline,omitempty"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Favicon     string `json:"favicon,omitempty"`
}

// SectionConfiguration is one section instance inside a client
// configuration. Data is free-form; its shape is described (not enforced)
// by the catalog entry's DataSchema.
type SectionConfiguration struct {
	ID      string         `json:"id"`
	Enabled bool           `json:"enabled"`
	Order   int            `json:"order"`
	Data    map[string]any `json:"data"`
}

// ClientConfiguration is the per-tenant document, one JSON file per
// client. clientId uniquely identifies at most one configuration.
type ClientConfiguration struct {
	ClientID    string                 `json:"clientId"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Style       Style                  `json:"style"`
	Sections    []SectionConfiguration `json:"sections"`
	Company     Company                `json:"company"`
	Theme       Theme                  `json:"theme"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// SectionCategory groups catalog entries.
type SectionCategory string

const (
	CategoryContent  SectionCategory = "content"
	CategoryCommerce SectionCategory = "commerce"
	CategorySocial   SectionCategory = "social"
	CategoryContact  SectionCategory = "contact"
)

// Section is a static catalog entry, not per-client. Required entries
// must be present in every valid client configuration.
type Section struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Required    bool              `json:"required"`
	Order       int               `json:"order"`
	Template    string            `json:"template"`
	Category    SectionCategory   `json:"category"`
	Icon        string            `json:"icon,omitempty"`
	DataSchema  map[string]string `json:"dataSchema"`
}

// UploadedImage is one stored image file's metadata record.
// FileName is unique within its client+category directory; URL is a
// deterministic function of clientId and fileName.
type UploadedImage struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"originalName"`
	FileName     string    `json:"fileName"`
	FilePath     string    `json:"filePath"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mimeType"`
	UploadedAt   time.Time `json:"uploadedAt"`
	ClientID     string    `json:"clientId"`
}

// ImageMetadata is the per-client metadata document holding every
// uploaded image record.
type ImageMetadata struct {
	ClientID  string          `json:"clientId"`
	Images    []UploadedImage `json:"images"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ImageStats aggregates a client's image pool. MimeTypes and Categories
// count images per mime type and per storage category.
type ImageStats struct {
	ClientID    string         `json:"clientId"`
	TotalImages int            `json:"totalImages"`
	TotalSize   int64          `json:"totalSize"`
	MimeTypes   map[string]int `json:"mimeTypes"`
	Categories  map[string]int `json:"categories"`
	LastUpload  *time.Time     `json:"lastUpload"`
}

// TemplateFileInfo describes one file inside a legacy template directory.
type TemplateFileInfo struct {
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	Modified    time.Time `json:"modified"`
	IsDirectory bool      `json:"isDirectory"`
}

// TemplateInfo is derived, never persisted: existence flags plus the file
// listing for a named legacy template directory.
type TemplateInfo struct {
	Name          string             `json:"name"`
	Category      string             `json:"category,omitempty"`
	HasTemplate   bool               `json:"hasTemplate"`
	HasStaticData bool               `json:"hasStaticData"`
	HasCustomData bool               `json:"hasCustomData"`
	Files         []TemplateFileInfo `json:"files"`
}
