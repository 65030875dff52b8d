// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"DMG Mori", "dmg-mori"},
		{"Haas VF-2", "haas-vf-2"},
		{"  Mazak  ", "mazak"},
		{"Mori Seiki / NTX", "mori-seiki-ntx"},
		{"CNC Machinery!", "cnc-machinery"},
		{"already-a-slug", "already-a-slug"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"--leading-trailing--", "leading-trailing"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := Generate(tt.input); got != tt.want {
			t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"dmg-mori", "Dmg Mori"},
		{"haas", "Haas"},
		{"mori-seiki", "Mori Seiki"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Humanize(tt.input); got != tt.want {
			t.Errorf("Humanize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGenerateHumanizeRoundTrip(t *testing.T) {
	// Humanize is lossy on casing, but re-slugging its output must return
	// the original slug — brand routes depend on this.
	for _, s := range []string{"dmg-mori", "haas", "okuma-howa"} {
		if got := Generate(Humanize(s)); got != s {
			t.Errorf("Generate(Humanize(%q)) = %q, want %q", s, got, s)
		}
	}
}
