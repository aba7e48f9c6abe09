package catalog

import "strings"

// SizeOption is derived per request and never persisted.
type SizeOption struct {
	Label   string
	SoldOut bool
	Variant *Variant
}

// ResolveSizeOptions lists one option per distinct size label in first
// occurrence order. Products without variants fall back to the legacy
// sizes list, all in stock.
func ResolveSizeOptions(p *Product) []SizeOption {
	if p == nil {
		return nil
	}
	if len(p.Variants) > 0 {
		seen := make(map[string]struct{}, len(p.Variants))
		options := make([]SizeOption, 0, len(p.Variants))
		for i := range p.Variants {
			v := &p.Variants[i]
			label := v.SizeLabel()
			if _, dup := seen[label]; dup {
				continue
			}
			seen[label] = struct{}{}
			options = append(options, SizeOption{Label: label, SoldOut: !v.Sellable(), Variant: v})
		}
		return options
	}
	options := make([]SizeOption, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		options = append(options, SizeOption{Label: strings.TrimSpace(s)})
	}
	return options
}

// ResolveVariantForSize returns the first sellable variant carrying label.
// Callers treat a miss as "base price, no variant metadata".
func ResolveVariantForSize(p *Product, label string) (*Variant, bool) {
	if p == nil {
		return nil, false
	}
	label = strings.TrimSpace(label)
	for i := range p.Variants {
		v := &p.Variants[i]
		if v.SizeLabel() == label && v.Sellable() {
			return v, true
		}
	}
	return nil, false
}

// DefaultSize is the label preselected when the shopper has not picked
// one: the first size that can be bought, else the first listed, else "".
func DefaultSize(p *Product) string {
	options := ResolveSizeOptions(p)
	for _, opt := range options {
		if !opt.SoldOut {
			return opt.Label
		}
	}
	if len(options) > 0 {
		return options[0].Label
	}
	return ""
}
