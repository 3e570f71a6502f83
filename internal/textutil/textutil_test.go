package textutil

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"collapses runs", "a\t b\n\nc", "a b c"},
		{"trims ends", "  hello world  ", "hello world"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"lowercases", "Hello WORLD", []string{"hello", "world"}},
		{"keeps apostrophes and digits", "Don't stop 3 things", []string{"don't", "stop", "3", "things"}},
		{"keeps duplicates in order", "go go GO", []string{"go", "go", "go"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Words(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Words(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"punctuation only", "?!.", nil},
		{"splits and trims", "One. Two!  Three??", []string{"One", "Two", "Three"}},
		{"no terminal punctuation", "tail piece", []string{"tail piece"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sentences(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Sentences(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestAllCapsWords(t *testing.T) {
	t.Parallel()

	got := AllCapsWords("STOP right NOW, ok? A")
	want := []string{"STOP", "NOW"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AllCapsWords = %v, want %v", got, want)
	}
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	if got := Excerpt("hello", 10); got != "hello" {
		t.Fatalf("short input should pass through, got %q", got)
	}
	if got := Excerpt("hello world", 5); got != "hello" {
		t.Fatalf("Excerpt = %q, want %q", got, "hello")
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	in := "# Heading\n\nsome *emphasis* and a [link](https://example.com) here"
	want := "Heading some emphasis and a link here"
	if got := PlainText(in); got != want {
		t.Fatalf("PlainText = %q, want %q", got, want)
	}
}
