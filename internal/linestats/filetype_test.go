package linestats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path     string
		expected Classification
	}{
		{"src/app.js", Classification{Type: JS}},
		{"vendor/jquery.min.js", Classification{Type: JS}},
		{"SRC/APP.JS", Classification{Type: JS}},
		{"  lib/util.rb \n", Classification{Type: Ruby}},
		{"views/index.html.erb", Classification{Type: Ruby}},
		{"assets/logo.png", Classification{Type: Images}},
		{"public/.htaccess", Classification{Type: Htaccess}},
		{"config/app.yml", Classification{Type: YAML}},
		{"fooajs", Classification{Type: Other}},
		{"README", Classification{Type: Other}},
		{
			"build/out.wasm",
			Classification{Type: Other, Extension: "wasm", HasExtension: true},
		},
		{
			"a.dir/Makefile",
			Classification{Type: Other},
		},
		{
			"archive.tar.GZ",
			Classification{Type: Other, Extension: "GZ", HasExtension: true},
		},
		{
			"notes.",
			Classification{Type: Other, Extension: "", HasExtension: true},
		},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			got := Classify(test.path)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("classification of \"%s\" is wrong:\n%s", test.path, diff)
			}
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	table := []TypeSuffixes{
		{Text, []string{".min.js"}},
		{JS, []string{".js"}},
	}

	got := classifyWith(table, "app.min.js")
	if got.Type != Text {
		t.Errorf("expected type %s but got %s", Text, got.Type)
	}
}

func TestClassifyEmptySuffixMatchesEverything(t *testing.T) {
	table := []TypeSuffixes{
		{Text, []string{""}},
		{JS, []string{".js"}},
	}

	for _, path := range []string{"app.js", "README", "x.wasm"} {
		got := classifyWith(table, path)
		if got.Type != Text {
			t.Errorf(
				"expected \"%s\" to classify as %s but got %s",
				path,
				Text,
				got.Type,
			)
		}
	}
}

func TestSuffixTableHasNoEmptySuffix(t *testing.T) {
	for _, entry := range SuffixTable {
		for _, suffix := range entry.Suffixes {
			if suffix == "" {
				t.Errorf("type %s has an empty suffix", entry.Type)
			}
		}
	}
}
