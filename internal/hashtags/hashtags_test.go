package hashtags

import (
	"reflect"
	"testing"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      []string
		maxTags int
		want    []string
	}{
		{"nil input", nil, 6, []string{}},
		{"adds hash prefix", []string{"viral"}, 6, []string{"#viral"}},
		{"strips punctuation", []string{"#Test!"}, 6, []string{"#Test"}},
		{"strips internal whitespace", []string{"# my tag"}, 6, []string{"#mytag"}},
		{"collapses extra hashes", []string{"##double"}, 6, []string{"#double"}},
		{"drops empty results", []string{"", "   ", "#", "#!"}, 6, []string{}},
		{"drops single characters", []string{"#a"}, 6, []string{}},
		{"strips emoji", []string{"#fire🔥"}, 6, []string{"#fire"}},
		{"keeps underscores", []string{"#snake_case"}, 6, []string{"#snake_case"}},
		{"dedupes case-insensitively first-seen", []string{"#Test!", "test", "#test"}, 6, []string{"#Test"}},
		{"caps at max", []string{"#t1", "#t2", "#t3", "#t4"}, 2, []string{"#t1", "#t2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.in, tc.maxTags)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Sanitize(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()

	in := []string{"#Shorts", "viral tag", "#fyp!", "#Growth", "growth", "#x"}
	once := Sanitize(in, 6)
	twice := Sanitize(once, 6)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("not idempotent: %v vs %v", once, twice)
	}
}

func TestHeuristic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		topic     string
		sentiment string
		want      []string
	}{
		{"positive with topic", "creator tips", "positive",
			[]string{"#Shorts", "#viral", "#fyp", "#creatortips", "#growth", "#success"}},
		{"negative no topic", "", "negative",
			[]string{"#Shorts", "#viral", "#fyp", "#lessons", "#truth"}},
		{"neutral no topic", "", "neutral",
			[]string{"#Shorts", "#viral", "#fyp", "#learn", "#tips"}},
		{"unknown label treated neutral", "", "mixed",
			[]string{"#Shorts", "#viral", "#fyp", "#learn", "#tips"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Heuristic(tc.topic, tc.sentiment, 6)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Heuristic = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHeuristic_RespectsCap(t *testing.T) {
	t.Parallel()

	got := Heuristic("topic", "positive", 3)
	want := []string{"#Shorts", "#viral", "#fyp"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Heuristic = %v, want %v", got, want)
	}
}
