package narrator

import (
	"testing"

	"github.com/sofmeright/shieldsvg/src/badge"
)

func TestBadgeModuleRender(t *testing.T) {
	tests := []struct {
		name string
		mod  BadgeModule
		want string
	}{
		{"image", BadgeModule{Alt: "build", ImgURL: "badges/build.svg"}, "![build](badges/build.svg)"},
		{"linked", BadgeModule{Alt: "build", ImgURL: "badges/build.svg", Link: "https://ci"}, "[![build](badges/build.svg)](https://ci)"},
		{"escaped alt", BadgeModule{Alt: "[x]", ImgURL: "x.svg"}, `![\[x\]](x.svg)`},
		{"no image", BadgeModule{Alt: "build"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mod.Render(); got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	mods := []Module{
		BadgeModule{Alt: "a", ImgURL: "a.svg"},
		BadgeModule{Alt: "b", ImgURL: "b.svg"},
		BreakModule{},
		BreakModule{},
		BadgeModule{Alt: "skipped"},
		BadgeModule{Alt: "c", ImgURL: "c.svg"},
		BreakModule{},
	}
	want := "![a](a.svg) ![b](b.svg)\n![c](c.svg)"
	if got := Compose(mods); got != want {
		t.Errorf("Compose = %q, want %q", got, want)
	}
	if got := Compose(nil); got != "" {
		t.Errorf("Compose(nil) = %q", got)
	}
}

func TestShieldsURL(t *testing.T) {
	tests := []struct {
		name string
		spec badge.Spec
		want string
	}{
		{
			"label and message",
			badge.Spec{Style: badge.Flat, Label: "build", Message: "passing", LabelColor: badge.DefaultLabelColor, MessageColor: "brightgreen"},
			"https://img.shields.io/badge/build-passing-brightgreen",
		},
		{
			"message only with hex",
			badge.Spec{Style: badge.Flat, Message: "ok", MessageColor: "#4c1"},
			"https://img.shields.io/badge/ok-4c1",
		},
		{
			"escapes",
			badge.Spec{Style: badge.Flat, Label: "my-lib_x", Message: "v1 beta", MessageColor: "blue"},
			"https://img.shields.io/badge/my--lib__x-v1_beta-blue",
		},
		{
			"query",
			badge.Spec{
				Style: badge.ForTheBadge, Label: "a", Message: "b", LabelColor: "black", MessageColor: "red",
				Logo: "rust", LogoColor: "whitesmoke", Link: "https://l", ExtraLink: "https://r",
			},
			"https://img.shields.io/badge/a-b-red?labelColor=black&link=https%3A%2F%2Fl&link=https%3A%2F%2Fr&logo=rust&style=for-the-badge",
		},
		{
			"social logo color",
			badge.Spec{Style: badge.Social, Label: "a", Message: "b", MessageColor: "blue", Logo: "rust", LogoColor: "red"},
			"https://img.shields.io/badge/a-b-blue?logo=rust&logoColor=red&style=social",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShieldsURL(tt.spec); got != tt.want {
				t.Errorf("ShieldsURL = %q\n want %q", got, tt.want)
			}
		})
	}
}

func TestShieldModuleRender(t *testing.T) {
	m := ShieldModule{Spec: badge.Spec{Style: badge.Flat, Label: "docs", Message: "latest", MessageColor: "blue", Link: "https://docs"}}
	want := "[![docs: latest](https://img.shields.io/badge/docs-latest-blue?link=https%3A%2F%2Fdocs)](https://docs)"
	if got := m.Render(); got != want {
		t.Errorf("Render = %q\n want %q", got, want)
	}
}
