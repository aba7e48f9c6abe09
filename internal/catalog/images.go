package catalog

import "strings"

// PlaceholderImage is served when a product has no usable image at all.
const PlaceholderImage = "/assets/placeholder.svg"

// CardGalleryLimit is how many images a grid card carousel shows.
const CardGalleryLimit = 3

type Image struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Srcset string `json:"srcset,omitempty"`
	Sizes  string `json:"sizes,omitempty"`
}

type imageResolver func(p *Product) (Image, bool)

type galleryResolver func(p *Product) []Image

// Evaluated in order; the first hit wins.
var displayImageResolvers = []imageResolver{
	thumbnailImage,
	firstMediaImage,
	firstLegacyImage,
	firstLookbookImage,
}

var galleryResolvers = []galleryResolver{
	mediaGallery,
	legacyImagesGallery,
	lookbookGallery,
}

// ResolveDisplayImage picks the single image used for cards, cart lines and
// share previews. It never fails: the placeholder is the last resort.
func ResolveDisplayImage(p *Product) Image {
	if p == nil {
		return placeholder(nil)
	}
	for _, resolve := range displayImageResolvers {
		if img, ok := resolve(p); ok {
			return img
		}
	}
	return placeholder(p)
}

// ResolveGallery returns every image from the highest priority source that
// has any. Sources are never mixed. limit <= 0 means no truncation.
func ResolveGallery(p *Product, limit int) []Image {
	images := []Image{placeholder(p)}
	if p != nil {
		for _, resolve := range galleryResolvers {
			if found := resolve(p); len(found) > 0 {
				images = found
				break
			}
		}
	}
	if limit > 0 && len(images) > limit {
		images = images[:limit]
	}
	return images
}

func placeholder(p *Product) Image {
	alt := "Product"
	if p != nil {
		alt = p.AltText()
	}
	return Image{Src: PlaceholderImage, Alt: alt}
}

func thumbnailImage(p *Product) (Image, bool) {
	src := strings.TrimSpace(p.Thumbnail)
	if src == "" {
		return Image{}, false
	}
	return Image{Src: src, Alt: p.AltText()}, true
}

func firstMediaImage(p *Product) (Image, bool) {
	var fallback *Media
	for i := range p.Media {
		m := &p.Media[i]
		if strings.TrimSpace(m.Src) == "" {
			continue
		}
		if m.isImage() {
			return mediaImage(p, *m), true
		}
		if fallback == nil {
			fallback = m
		}
	}
	if fallback != nil {
		return mediaImage(p, *fallback), true
	}
	return Image{}, false
}

func firstLegacyImage(p *Product) (Image, bool) {
	return firstURL(p, p.Images)
}

func firstLookbookImage(p *Product) (Image, bool) {
	return firstURL(p, p.Lookbook)
}

func firstURL(p *Product, urls []string) (Image, bool) {
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			return Image{Src: u, Alt: p.AltText()}, true
		}
	}
	return Image{}, false
}

func mediaGallery(p *Product) []Image {
	var out []Image
	for _, m := range p.Media {
		if m.isImage() && strings.TrimSpace(m.Src) != "" {
			out = append(out, mediaImage(p, m))
		}
	}
	return out
}

func legacyImagesGallery(p *Product) []Image {
	return urlGallery(p, p.Images)
}

func lookbookGallery(p *Product) []Image {
	return urlGallery(p, p.Lookbook)
}

func urlGallery(p *Product, urls []string) []Image {
	var out []Image
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, Image{Src: u, Alt: p.AltText()})
		}
	}
	return out
}

func mediaImage(p *Product, m Media) Image {
	alt := strings.TrimSpace(m.Alt)
	if alt == "" {
		alt = p.AltText()
	}
	return Image{
		Src:    strings.TrimSpace(m.Src),
		Alt:    alt,
		Srcset: m.Srcset,
		Sizes:  m.Sizes,
	}
}

// ShiftCarousel moves a carousel index by dir slides, wrapping at both ends.
func ShiftCarousel(idx, dir, slides int) int {
	if slides <= 0 {
		return 0
	}
	next := (idx + dir) % slides
	if next < 0 {
		next += slides
	}
	return next
}
