package catalog

import (
	"math"
	"testing"
)

func TestEffectivePrice(t *testing.T) {
	p := &Product{Price: Num(20)}
	if got := EffectivePrice(p, nil); got != 20 {
		t.Fatalf("expected base price, got %v", got)
	}
	if got := EffectivePrice(p, &Variant{Price: Num(24.5)}); got != 24.5 {
		t.Fatalf("expected variant override, got %v", got)
	}
	if got := EffectivePrice(p, &Variant{}); got != 20 {
		t.Fatalf("variant without price should fall back, got %v", got)
	}
	if got := EffectivePrice(&Product{}, nil); got != 0 {
		t.Fatalf("missing price propagates as zero, got %v", got)
	}
}

func TestHasSale(t *testing.T) {
	cases := []struct {
		p    Product
		want bool
	}{
		{Product{Price: Num(20), CompareAtPrice: Num(30)}, true},
		{Product{Price: Num(20), CompareAtPrice: Num(20)}, false},
		{Product{Price: Num(20), CompareAtPrice: Num(10)}, false},
		{Product{Price: Num(20)}, false},
	}
	for i, tc := range cases {
		if got := HasSale(&tc.p); got != tc.want {
			t.Fatalf("case %d: got %v want %v", i, got, tc.want)
		}
	}
	if HasSale(nil) {
		t.Fatal("nil product has no sale")
	}
}

func TestFormatPrice(t *testing.T) {
	cases := map[float64]string{
		40:        "40.00",
		19.999:    "20.00",
		0.1 + 0.2: "0.30",
		0:         "0.00",
		1234.5:    "1234.50",
	}
	for in, want := range cases {
		if got := FormatPrice(in); got != want {
			t.Fatalf("FormatPrice(%v) = %q, want %q", in, got, want)
		}
	}
	if got := FormatPrice(math.NaN()); got != "NaN" {
		t.Fatalf("expected NaN passthrough, got %q", got)
	}
}
