package matching

import (
	"reflect"
	"testing"
)

func TestWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{name: "simple", title: "apple iphone 12", want: []string{"apple", "iphone", "12"}},
		{name: "runs of spaces", title: "apple   iphone\t12", want: []string{"apple", "iphone", "12"}},
		{name: "leading and trailing", title: "  apple iphone  ", want: []string{"apple", "iphone"}},
		{name: "empty", title: "", want: nil},
		{name: "only spaces", title: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Whitespace(tt.title)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Whitespace(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestTokenOverlapThresholdBoundary(t *testing.T) {
	m := NewTokenOverlap()

	tests := []struct {
		name  string
		left  string
		right string
		want  bool
	}{
		{
			name:  "three shared tokens",
			left:  "apple iphone 12 pro",
			right: "buy apple iphone 12",
			want:  true, // shares {apple, iphone, 12}
		},
		{
			name:  "one shared token",
			left:  "apple iphone 12",
			right: "apple macbook pro",
			want:  false, // shares only {apple}
		},
		{
			name:  "exactly two shared tokens",
			left:  "acme widget red",
			right: "acme widget blue",
			want:  true,
		},
		{
			name:  "no shared tokens",
			left:  "sony camera",
			right: "nikon lens",
			want:  false,
		},
		{
			name:  "identical titles",
			left:  "acme widget 100",
			right: "acme widget 100",
			want:  true,
		},
		{
			name:  "repeated token counts once",
			left:  "acme acme acme",
			right: "acme gizmo acme",
			want:  false, // only one distinct shared token
		},
		{
			name:  "empty titles",
			left:  "",
			right: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(tt.left, tt.right); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestTokenOverlapSymmetric(t *testing.T) {
	m := NewTokenOverlap()
	pairs := [][2]string{
		{"apple iphone 12 pro", "buy apple iphone 12"},
		{"apple iphone 12", "apple macbook pro"},
		{"", "acme widget"},
		{"sony a7 iii body", "sony alpha a7 mark iii"},
	}

	for _, p := range pairs {
		if m.Match(p[0], p[1]) != m.Match(p[1], p[0]) {
			t.Errorf("Match is not symmetric for %q / %q", p[0], p[1])
		}
	}
}

func TestTokenOverlapDeterministic(t *testing.T) {
	m := NewTokenOverlap()
	left, right := "acme widget 100 pro", "acme widget 100 plus"

	first := m.Match(left, right)
	for i := 0; i < 100; i++ {
		if m.Match(left, right) != first {
			t.Fatal("Match verdict changed across invocations")
		}
	}
}

func TestTokenOverlapCustomThreshold(t *testing.T) {
	strict := TokenOverlap{Threshold: 3, Tokenize: Whitespace}

	if strict.Match("acme widget red", "acme widget blue") {
		t.Error("two shared tokens should not satisfy threshold 3")
	}
	if !strict.Match("acme widget 100 red", "acme widget 100 blue") {
		t.Error("three shared tokens should satisfy threshold 3")
	}
}

func TestTokenOverlapZeroValueDefaults(t *testing.T) {
	var m TokenOverlap

	if !m.Match("apple iphone 12 pro", "buy apple iphone 12") {
		t.Error("zero-value matcher should behave like the default matcher")
	}
	if m.Match("apple iphone 12", "apple macbook pro") {
		t.Error("zero-value matcher should require two shared tokens")
	}
}
