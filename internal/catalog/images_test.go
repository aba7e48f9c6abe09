package catalog

import (
	"reflect"
	"testing"
)

func TestResolveDisplayImagePlaceholder(t *testing.T) {
	for _, p := range []*Product{
		{Title: "Birth Hoodie"},
		{Title: "Birth Hoodie", Media: []Media{{Kind: "image", Src: "  "}}, Images: []string{""}},
	} {
		img := ResolveDisplayImage(p)
		if img.Src != PlaceholderImage || img.Alt != "Birth Hoodie" {
			t.Fatalf("expected placeholder with title alt, got %+v", img)
		}
	}

	if img := ResolveDisplayImage(&Product{}); img.Alt != "Product" {
		t.Fatalf("expected generic alt, got %q", img.Alt)
	}
	if img := ResolveDisplayImage(nil); img.Src != PlaceholderImage {
		t.Fatalf("nil product should still resolve the placeholder")
	}
}

func TestResolveDisplayImagePriority(t *testing.T) {
	base := Product{
		Title:     "Tee",
		Thumbnail: "/thumb.jpg",
		Media: []Media{
			{Kind: "video", Src: "/clip.mp4"},
			{Kind: "image", Src: "/media.jpg", Alt: "front", Srcset: "/media-2x.jpg 2x", Sizes: "50vw"},
		},
		Images:   []string{"/legacy.jpg"},
		Lookbook: []string{"/look.jpg"},
	}

	steps := []struct {
		mutate func(p *Product)
		want   Image
	}{
		{func(p *Product) {}, Image{Src: "/thumb.jpg", Alt: "Tee"}},
		{func(p *Product) { p.Thumbnail = "" }, Image{Src: "/media.jpg", Alt: "front", Srcset: "/media-2x.jpg 2x", Sizes: "50vw"}},
		{func(p *Product) { p.Media = p.Media[:1] }, Image{Src: "/clip.mp4", Alt: "Tee"}},
		{func(p *Product) { p.Media = nil }, Image{Src: "/legacy.jpg", Alt: "Tee"}},
		{func(p *Product) { p.Images = nil }, Image{Src: "/look.jpg", Alt: "Tee"}},
		{func(p *Product) { p.Lookbook = nil }, Image{Src: PlaceholderImage, Alt: "Tee"}},
	}

	p := base
	for i, step := range steps {
		step.mutate(&p)
		if got := ResolveDisplayImage(&p); got != step.want {
			t.Fatalf("step %d: got %+v want %+v", i, got, step.want)
		}
	}
}

func TestResolveGalleryNeverMixesSources(t *testing.T) {
	p := &Product{
		Title: "Tee",
		Media: []Media{
			{Kind: "image", Src: "/m1.jpg"},
			{Kind: "video", Src: "/v.mp4"},
			{Kind: "Image", Src: "/m2.jpg", Alt: "back"},
		},
		Images:   []string{"/i1.jpg", "/i2.jpg"},
		Lookbook: []string{"/l1.jpg"},
	}

	got := ResolveGallery(p, 0)
	want := []Image{{Src: "/m1.jpg", Alt: "Tee"}, {Src: "/m2.jpg", Alt: "back"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("media gallery: got %+v want %+v", got, want)
	}

	p.Media = []Media{{Kind: "video", Src: "/v.mp4"}}
	got = ResolveGallery(p, 0)
	if len(got) != 2 || got[0].Src != "/i1.jpg" || got[1].Src != "/i2.jpg" {
		t.Fatalf("expected legacy images gallery, got %+v", got)
	}

	p.Images = nil
	got = ResolveGallery(p, 0)
	if len(got) != 1 || got[0].Src != "/l1.jpg" {
		t.Fatalf("expected lookbook gallery, got %+v", got)
	}

	p.Lookbook = nil
	got = ResolveGallery(p, 0)
	if len(got) != 1 || got[0].Src != PlaceholderImage {
		t.Fatalf("expected placeholder gallery, got %+v", got)
	}
}

func TestResolveGalleryLimit(t *testing.T) {
	p := &Product{Title: "Tee", Lookbook: []string{"/1", "/2", "/3", "/4", "/5"}}
	if got := ResolveGallery(p, CardGalleryLimit); len(got) != 3 || got[2].Src != "/3" {
		t.Fatalf("expected three card images, got %+v", got)
	}
	if got := ResolveGallery(p, 0); len(got) != 5 {
		t.Fatalf("expected untruncated detail gallery, got %d", len(got))
	}
}

func TestShiftCarousel(t *testing.T) {
	cases := []struct{ idx, dir, slides, want int }{
		{0, 1, 3, 1},
		{2, 1, 3, 0},
		{0, -1, 3, 2},
		{1, -1, 3, 0},
		{0, -4, 3, 2},
		{0, 1, 0, 0},
		{0, 1, 1, 0},
	}
	for _, tc := range cases {
		if got := ShiftCarousel(tc.idx, tc.dir, tc.slides); got != tc.want {
			t.Fatalf("ShiftCarousel(%d,%d,%d) = %d, want %d", tc.idx, tc.dir, tc.slides, got, tc.want)
		}
	}
}
