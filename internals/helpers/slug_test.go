package helper

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Trim Me  ", "trim-me"},
		{"Already-Slugged", "already-slugged"},
		{"Weird!!Chars##Here", "weirdcharshere"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"about/our-team", "about/our-team"},
		{"--leading-and-trailing--", "leading-and-trailing"},
		{"UPPER case MIX", "upper-case-mix"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsUUID(t *testing.T) {
	if !IsUUID("a4f7b9c0-1234-4abc-9def-0123456789ab") {
		t.Error("canonical uuid not recognized")
	}
	if IsUUID("not-a-uuid") {
		t.Error("slug misread as uuid")
	}
	if IsUUID("a4f7b9c012344abc9def0123456789ab") {
		t.Error("unhyphenated form must route as slug")
	}
}

func TestParseIDOrSlug(t *testing.T) {
	want := uuid.MustParse("a4f7b9c0-1234-4abc-9def-0123456789ab")
	id, slug := ParseIDOrSlug("a4f7b9c0-1234-4abc-9def-0123456789ab")
	if id != want || slug != "" {
		t.Errorf("uuid input: got (%v, %q)", id, slug)
	}

	id, slug = ParseIDOrSlug("green-valley-high")
	if id != uuid.Nil || slug != "green-valley-high" {
		t.Errorf("slug input: got (%v, %q)", id, slug)
	}

	id, slug = ParseIDOrSlug("  spaced-slug  ")
	if slug != "spaced-slug" {
		t.Errorf("slug not trimmed: %q", slug)
	}
	_ = id
}
