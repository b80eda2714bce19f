package rgb565

import (
	"image/color"
	"testing"
)

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		model color.Model
		in    color.Color
		want  Color
	}{
		{"linear red", Model, color.RGBA{R: 255, A: 255}, Red},
		{"linear white", Model, color.White, White},
		{"linear black", Model, color.Black, Black},
		{"srgb blue", SRGBModel, color.NRGBA{B: 255, A: 255}, Blue},
		{"srgb gray", SRGBModel, color.Gray{Y: 128}, FromSRGB888(128, 128, 128)},
		{"passthrough", Model, Green, Green},
		{"srgb passthrough", SRGBModel, Green, Green},
		{"transparent", Model, color.Transparent, Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.model.Convert(tt.in)
			if got != tt.want {
				t.Errorf("Convert(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModelDiffersForMidtones(t *testing.T) {
	gray := color.Gray{Y: 128}
	if Model.Convert(gray) == SRGBModel.Convert(gray) {
		t.Error("linear and sRGB models should disagree on mid-gray")
	}
}

func TestModelRoundTrip(t *testing.T) {
	for v := 0; v <= 0xFFFF; v += 17 {
		c := Color(v)
		r, g, b := c.RGB888()
		in := color.RGBA{R: r, G: g, B: b, A: 255}
		if got := Model.Convert(in); got != c {
			t.Fatalf("Model.Convert(%v) = %v, want %v", in, got, c)
		}
	}
}
