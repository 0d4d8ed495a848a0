// Package resolver rewrites image references inside configuration data so
// rendered pages point at a client's uploaded images instead of editor-local
// blob URLs or example placeholders.
package resolver

import (
	"regexp"
	"strings"

	"template-renderer/internal/model"
)

// imageFields are the keys treated as image references at any nesting depth.
var imageFields = []string{"logo", "favicon", "backgroundImage", "image", "src"}

// fieldKeywords maps an image field to original-name keywords tried when a
// blob URL cannot be matched by its identifier.
var fieldKeywords = map[string][]string{
	"logo":            {"logo", "brand", "banner"},
	"favicon":         {"favicon", "icon", "logo"},
	"backgroundImage": {"banner", "background", "hero"},
}

var defaultKeywords = []string{"photo", "image", "picture", "banner"}

// generatedFileName matches bare stored file names such as
// "550e8400-e29b-41d4-a716-446655440000.png".
var generatedFileName = regexp.MustCompile(`^[0-9a-fA-F-]{8,}\.\w{2,}$`)

const publicURLPrefix = "/api/v1/storage/images/"

// Resolver applies the image resolution policy for one client against a
// fixed pool of uploaded images. It never mutates its input.
type Resolver struct {
	clientID string
	pool     []model.UploadedImage
}

// New creates a Resolver for the client's uploaded-image pool.
func New(clientID string, pool []model.UploadedImage) *Resolver {
	return &Resolver{clientID: clientID, pool: pool}
}

// Resolve walks an arbitrary JSON-like value and rewrites recognized image
// fields. Lists keep their order and length; maps are copied, not mutated.
func (r *Resolver) Resolve(value any) any {
	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = r.Resolve(item)
		}
		return out
	case map[string]any:
		return r.resolveMap(v)
	default:
		return value
	}
}

// ResolveMap is Resolve specialized for a top-level map, as stored in
// section data and company blocks.
func (r *Resolver) ResolveMap(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	return r.resolveMap(data)
}

func (r *Resolver) resolveMap(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}

	for _, field := range imageFields {
		value, present := out[field]
		str, isString := value.(string)

		if (!present || value == nil || (isString && strings.TrimSpace(str) == "")) && len(r.pool) > 0 {
			out[field] = r.pool[0].URL
			continue
		}
		if isString && str != "" {
			out[field] = r.resolveString(field, str)
		}
	}

	for k, v := range out {
		switch v.(type) {
		case map[string]any, []any:
			out[k] = r.Resolve(v)
		}
	}
	return out
}

func (r *Resolver) resolveString(field, value string) string {
	if strings.HasPrefix(value, "blob:http://") || strings.HasPrefix(value, "blob:https://") {
		return r.resolveBlob(field, value)
	}
	if strings.HasPrefix(value, publicURLPrefix) {
		return value
	}
	if generatedFileName.MatchString(value) {
		return publicURLPrefix + r.clientID + "/" + value
	}
	if strings.HasPrefix(value, "/images/") {
		if len(r.pool) > 0 {
			return r.pool[0].URL
		}
		return value
	}
	return value
}

func (r *Resolver) resolveBlob(field, value string) string {
	if len(r.pool) == 0 {
		return value
	}
	blobID := value[strings.LastIndex(value, "/")+1:]
	if blobID != "" {
		for _, img := range r.pool {
			if strings.Contains(img.FileName, blobID) ||
				strings.Contains(img.OriginalName, blobID) ||
				strings.Contains(img.URL, blobID) {
				return img.URL
			}
		}
	}

	keywords, ok := fieldKeywords[field]
	if !ok {
		keywords = defaultKeywords
	}
	for _, img := range r.pool {
		name := strings.ToLower(img.OriginalName)
		for _, keyword := range keywords {
			if strings.Contains(name, keyword) {
				return img.URL
			}
		}
	}
	return r.pool[0].URL
}

// needsAssignment reports whether a reference is empty, a placeholder, or a
// blob URL and therefore should be replaced from the pool.
func needsAssignment(ref string) bool {
	return ref == "" || strings.HasPrefix(ref, "/images/") || strings.HasPrefix(ref, "blob:")
}

// AssignToGallery fills gallery entries' src cyclically from the pool.
func (r *Resolver) AssignToGallery(images []any) []any {
	if len(images) == 0 || len(r.pool) == 0 {
		return images
	}
	out := make([]any, len(images))
	for i, item := range images {
		entry, ok := item.(map[string]any)
		if !ok {
			out[i] = item
			continue
		}
		copied := copyMap(entry)
		src, _ := copied["src"].(string)
		if needsAssignment(src) {
			copied["src"] = r.pool[i%len(r.pool)].URL
		}
		out[i] = copied
	}
	return out
}

// AssignToTestimonials fills testimonial avatars cyclically from the pool.
func (r *Resolver) AssignToTestimonials(reviews []any) []any {
	if len(reviews) == 0 || len(r.pool) == 0 {
		return reviews
	}
	out := make([]any, len(reviews))
	for i, item := range reviews {
		entry, ok := item.(map[string]any)
		if !ok {
			out[i] = item
			continue
		}
		copied := copyMap(entry)
		image, _ := copied["image"].(string)
		if needsAssignment(image) {
			copied["image"] = r.pool[i%len(r.pool)].URL
		}
		out[i] = copied
	}
	return out
}

// AssignToProducts fills product images, preferring a pool entry whose
// original name overlaps the product name before cycling by index.
func (r *Resolver) AssignToProducts(products []any) []any {
	if len(products) == 0 || len(r.pool) == 0 {
		return products
	}
	out := make([]any, len(products))
	for i, item := range products {
		entry, ok := item.(map[string]any)
		if !ok {
			out[i] = item
			continue
		}
		image, _ := entry["image"].(string)
		if strings.TrimSpace(image) != "" && !strings.HasPrefix(image, "blob:") {
			out[i] = item
			continue
		}

		copied := copyMap(entry)
		name, _ := copied["name"].(string)
		if match := r.matchByName(name); match != "" {
			copied["image"] = match
		} else {
			copied["image"] = r.pool[i%len(r.pool)].URL
		}
		out[i] = copied
	}
	return out
}

// matchByName finds a pool image whose original name and the given name
// contain each other in either direction. Comparison is case-insensitive
// and ignores spaces, hyphens, and underscores, so "Rosa Roja" matches
// "rosa-roja.jpg".
func (r *Resolver) matchByName(name string) string {
	needle := normalizeName(name)
	if needle == "" {
		return ""
	}
	for _, img := range r.pool {
		original := img.OriginalName
		if dot := strings.LastIndexByte(original, '.'); dot > 0 {
			original = original[:dot]
		}
		base := normalizeName(original)
		if base == "" {
			continue
		}
		if strings.Contains(base, needle) || strings.Contains(needle, base) {
			return img.URL
		}
	}
	return ""
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, s)
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
