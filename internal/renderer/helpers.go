package renderer

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
)

// helperFuncs builds the helper set shared by layouts, partials, and
// standalone templates. The partial dispatch helper is added per render
// because it closes over the parsed template set.
func helperFuncs() template.FuncMap {
	return template.FuncMap{
		"eq":            helperEq,
		"ifEquals":      helperIfEquals,
		"subtract":      helperSubtract,
		"json":          helperJSON,
		"times":         helperTimes,
		"formatPrice":   helperFormatPrice,
		"safeUrl":       helperSafeURL,
		"eachWithIndex": helperEachWithIndex,
		"truncate":      helperTruncate,
		"css":           helperCSS,
	}
}

func helperEq(a, b any) bool {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af == bf
		}
	}
	return a == b
}

// helperIfEquals compares loosely across types, so 2 equals "2".
func helperIfEquals(a, b any) bool {
	if helperEq(a, b) {
		return true
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func helperSubtract(a, b any) float64 {
	af, _ := toFloat(a)
	bf, _ := toFloat(b)
	return af - bf
}

func helperJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// helperTimes yields the indexes 0..n-1 for bounded repetition.
func helperTimes(n any) []int {
	f, ok := toFloat(n)
	if !ok || f < 0 {
		return nil
	}
	out := make([]int, int(f))
	for i := range out {
		out[i] = i
	}
	return out
}

// helperFormatPrice renders a currency amount with two decimals.
// Non-numeric input renders as "0.00".
func helperFormatPrice(v any) string {
	f, ok := toFloat(v)
	if !ok {
		return "0.00"
	}
	return fmt.Sprintf("$%.2f", f)
}

// helperSafeURL passes a string through only when it parses as an
// absolute URL.
func helperSafeURL(v any) template.URL {
	s, ok := v.(string)
	if !ok || s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		return ""
	}
	return template.URL(s)
}

// helperEachWithIndex exposes each element's own fields plus its position
// under the "index" key.
func helperEachWithIndex(list any) []map[string]any {
	items, ok := list.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		entry := map[string]any{"index": i}
		if m, ok := item.(map[string]any); ok {
			for k, v := range m {
				entry[k] = v
			}
			entry["index"] = i
		} else {
			entry["value"] = item
		}
		out = append(out, entry)
	}
	return out
}

func helperTruncate(v any, length any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	n, ok := toFloat(length)
	if !ok || n < 0 {
		return s
	}
	// Truncate by characters, not bytes, so multibyte runes stay intact.
	runes := []rune(s)
	max := int(n)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// helperCSS emits a theme value verbatim in a stylesheet context. Theme
// values come from server-side configuration, never from page visitors.
func helperCSS(v any) template.CSS {
	s, _ := v.(string)
	return template.CSS(s)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
