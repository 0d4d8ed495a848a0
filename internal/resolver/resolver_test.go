package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"template-renderer/internal/model"
)

func testPool() []model.UploadedImage {
	return []model.UploadedImage{
		{
			FileName:     "abc123-def.png",
			OriginalName: "company-logo.png",
			URL:          "/api/v1/storage/images/acme/abc123-def.png",
		},
		{
			FileName:     "fff999-aaa.jpg",
			OriginalName: "rosa-roja.jpg",
			URL:          "/api/v1/storage/images/acme/fff999-aaa.jpg",
		},
	}
}

func TestResolveEmptyFieldUsesFirstPoolImage(t *testing.T) {
	r := New("acme", testPool())

	out := r.ResolveMap(map[string]any{"logo": "", "title": "Acme"})
	assert.Equal(t, testPool()[0].URL, out["logo"])
	assert.Equal(t, "Acme", out["title"])
}

func TestResolveAbsentFieldIsInjected(t *testing.T) {
	r := New("acme", testPool())

	out := r.ResolveMap(map[string]any{"title": "Acme"})
	assert.Equal(t, testPool()[0].URL, out["image"])
	assert.Equal(t, testPool()[0].URL, out["logo"])
}

func TestResolveEmptyFieldWithEmptyPoolUnchanged(t *testing.T) {
	r := New("acme", nil)

	out := r.ResolveMap(map[string]any{"logo": ""})
	assert.Equal(t, "", out["logo"])
}

func TestResolveBlobURLMatchesByIdentifier(t *testing.T) {
	r := New("acme", testPool())

	out := r.ResolveMap(map[string]any{"image": "blob:http://localhost:4200/fff999-aaa"})
	assert.Equal(t, testPool()[1].URL, out["image"])
}

func TestResolveBlobURLFallsBackToKeywords(t *testing.T) {
	r := New("acme", testPool())

	out := r.ResolveMap(map[string]any{"logo": "blob:https://editor/unknown-id"})
	assert.Equal(t, testPool()[0].URL, out["logo"], "keyword match on original name containing logo")
}

func TestResolveBlobURLEmptyPoolUnchanged(t *testing.T) {
	r := New("acme", nil)

	in := "blob:http://localhost/xyz"
	out := r.ResolveMap(map[string]any{"src": in})
	assert.Equal(t, in, out["src"])
}

func TestResolvePublicURLUnchanged(t *testing.T) {
	r := New("acme", testPool())

	in := "/api/v1/storage/images/acme/already.png"
	out := r.ResolveMap(map[string]any{"image": in})
	assert.Equal(t, in, out["image"])
}

func TestResolveBareFileNameRewritten(t *testing.T) {
	r := New("acme", testPool())

	out := r.ResolveMap(map[string]any{"favicon": "550e8400-e29b-41d4.webp"})
	assert.Equal(t, "/api/v1/storage/images/acme/550e8400-e29b-41d4.webp", out["favicon"])
}

func TestResolvePlaceholderReplaced(t *testing.T) {
	r := New("acme", testPool())
	out := r.ResolveMap(map[string]any{"backgroundImage": "/images/hero-bg.jpg"})
	assert.Equal(t, testPool()[0].URL, out["backgroundImage"])

	empty := New("acme", nil)
	out = empty.ResolveMap(map[string]any{"backgroundImage": "/images/hero-bg.jpg"})
	assert.Equal(t, "/images/hero-bg.jpg", out["backgroundImage"])
}

func TestResolveRecursesWithoutMutatingInput(t *testing.T) {
	r := New("acme", testPool())

	in := map[string]any{
		"items": []any{
			map[string]any{"image": "", "name": "first"},
		},
	}
	out := r.ResolveMap(in)

	items := out["items"].([]any)
	first := items[0].(map[string]any)
	assert.Equal(t, testPool()[0].URL, first["image"])

	original := in["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "", original["image"], "input must not be mutated")
}

func TestAssignToGalleryCycles(t *testing.T) {
	r := New("acme", testPool())

	out := r.AssignToGallery([]any{
		map[string]any{"src": ""},
		map[string]any{"src": "/images/gallery1.jpg"},
		map[string]any{"src": "https://cdn.example.com/kept.jpg"},
	})
	require.Len(t, out, 3)
	assert.Equal(t, testPool()[0].URL, out[0].(map[string]any)["src"])
	assert.Equal(t, testPool()[1].URL, out[1].(map[string]any)["src"])
	assert.Equal(t, "https://cdn.example.com/kept.jpg", out[2].(map[string]any)["src"])
}

func TestAssignToTestimonialsCycles(t *testing.T) {
	r := New("acme", testPool())

	out := r.AssignToTestimonials([]any{
		map[string]any{"image": "blob:http://x/y", "author": "Ana"},
	})
	assert.Equal(t, testPool()[0].URL, out[0].(map[string]any)["image"])
	assert.Equal(t, "Ana", out[0].(map[string]any)["author"])
}

func TestAssignToProductsPrefersNameMatch(t *testing.T) {
	r := New("acme", testPool())

	out := r.AssignToProducts([]any{
		map[string]any{"name": "Rosa Roja", "image": ""},
		map[string]any{"name": "Tulipan", "image": ""},
	})
	require.Len(t, out, 2)
	assert.Equal(t, testPool()[1].URL, out[0].(map[string]any)["image"], "name match beats cyclic order")
	assert.Equal(t, testPool()[1].URL, out[1].(map[string]any)["image"], "index 1 mod 2 cycles to second image")
}

func TestAssignToProductsKeepsValidImage(t *testing.T) {
	r := New("acme", testPool())

	out := r.AssignToProducts([]any{
		map[string]any{"name": "Rosa Roja", "image": "https://cdn.example.com/rose.jpg"},
	})
	assert.Equal(t, "https://cdn.example.com/rose.jpg", out[0].(map[string]any)["image"])
}

func TestAssignPassesEmptyPoolNoOp(t *testing.T) {
	r := New("acme", nil)

	in := []any{map[string]any{"src": ""}}
	assert.Equal(t, in, r.AssignToGallery(in))
	assert.Equal(t, in, r.AssignToTestimonials(in))
	assert.Equal(t, in, r.AssignToProducts(in))
}
