package attrs

import (
	"regexp"
	"strings"
)

// Sentinel values for unresolved attributes.
const (
	SizeFree  = "FREE"
	NoColor   = "-"
	sizeLabel = "size"
)

// Option is a structured option attached to a Stock API variant,
// e.g. {Type: "ไซส์", Value: "M"}.
type Option struct {
	Type  string
	Value string
}

// Attributes are the normalized size and color of a variant.
type Attributes struct {
	Size  string
	Color string
}

var (
	sizeTokens = map[string]struct{}{
		"XS": {}, "S": {}, "M": {}, "L": {}, "XL": {},
		"2XL": {}, "3XL": {}, "4XL": {}, "5XL": {}, "FREE": {},
	}
	numericToken = regexp.MustCompile(`^[0-9]+$`)
	segmentSplit = regexp.MustCompile(`\s*[/,-]\s*`)

	sizeTypeLabels  = []string{sizeLabel, "ไซส์", "ขนาด"}
	colorTypeLabels = []string{"color", "สี"}
)

// Resolve derives normalized size and color attributes from a variant's
// structured options, falling back to parsing its free-text name.
//
// Structured options take strict precedence: if at least one option type
// matches a size or color label, both attributes come from this branch and
// the missing one defaults to its sentinel. The name-parsing fallback for
// two ambiguous segments deliberately assumes "color / size" ordering; richer
// intent is not guessed.
func Resolve(name string, options []Option) Attributes {
	if attrs, ok := resolveFromOptions(options); ok {
		return attrs
	}

	return resolveFromName(name)
}

func resolveFromOptions(options []Option) (Attributes, bool) {
	attrs := Attributes{Size: SizeFree, Color: NoColor}
	matched := false

	for _, option := range options {
		switch {
		case matchesLabel(option.Type, sizeTypeLabels):
			attrs.Size = strings.ToUpper(option.Value)
			matched = true
		case matchesLabel(option.Type, colorTypeLabels):
			attrs.Color = option.Value
			matched = true
		}
	}

	return attrs, matched
}

func resolveFromName(name string) Attributes {
	segments := splitName(name)

	switch len(segments) {
	case 0:
		return Attributes{Size: SizeFree, Color: NoColor}
	case 1:
		if isSizeToken(segments[0]) {
			return Attributes{Size: strings.ToUpper(segments[0]), Color: NoColor}
		}
		return Attributes{Size: SizeFree, Color: segments[0]}
	case 2:
		if isSizeToken(segments[0]) {
			return Attributes{Size: strings.ToUpper(segments[0]), Color: segments[1]}
		}
		if isSizeToken(segments[1]) {
			return Attributes{Size: strings.ToUpper(segments[1]), Color: segments[0]}
		}
		// Ambiguous two-segment name: assume "color / size" ordering.
		return Attributes{Size: segments[1], Color: segments[0]}
	default:
		// Degenerate name: keep the raw text for manual inspection.
		return Attributes{Size: SizeFree, Color: name}
	}
}

func splitName(name string) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}

	segments := make([]string, 0, 3)
	for _, segment := range segmentSplit.Split(trimmed, -1) {
		segment = strings.TrimSpace(segment)
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	return segments
}

func isSizeToken(segment string) bool {
	if _, ok := sizeTokens[strings.ToUpper(segment)]; ok {
		return true
	}
	return numericToken.MatchString(segment)
}

func matchesLabel(optionType string, labels []string) bool {
	lowered := strings.ToLower(strings.TrimSpace(optionType))
	for _, label := range labels {
		if strings.Contains(lowered, label) {
			return true
		}
	}
	return false
}
