package index

import (
	"reflect"
	"strings"
	"testing"
)

func TestInsertAndLookupExact(t *testing.T) {
	idx := New()
	idx.Insert("career", 1)
	idx.Insert("career", 2)
	idx.Insert("careers", 3)

	got := idx.LookupExact("career")
	want := []int64{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LookupExact(career) = %v, want %v", got, want)
	}

	if got := idx.LookupExact("care"); len(got) != 0 {
		t.Errorf("LookupExact(care) = %v, want empty (prefix is not a token)", got)
	}
	if got := idx.LookupExact("missing"); len(got) != 0 {
		t.Errorf("LookupExact(missing) = %v, want empty", got)
	}
}

func TestInsertIsCaseInsensitive(t *testing.T) {
	idx := New()
	idx.Insert("TechCorp", 7)

	for _, query := range []string{"techcorp", "TECHCORP", "TechCorp"} {
		got := idx.LookupExact(query)
		if !reflect.DeepEqual(got, []int64{7}) {
			t.Errorf("LookupExact(%q) = %v, want [7]", query, got)
		}
	}
}

func TestInsertIdempotence(t *testing.T) {
	idx := New()
	idx.Insert("python", 42)
	idx.Insert("python", 42)
	idx.Insert("python", 42)

	got := idx.LookupExact("python")
	if !reflect.DeepEqual(got, []int64{42}) {
		t.Errorf("LookupExact(python) after duplicate inserts = %v, want [42]", got)
	}
	if idx.TokenCount() != 1 {
		t.Errorf("TokenCount() = %d, want 1", idx.TokenCount())
	}
}

func TestLookupPrefixCollectsSubtree(t *testing.T) {
	idx := New()
	idx.Insert("tech", 1)
	idx.Insert("technology", 2)
	idx.Insert("technical", 3)
	idx.Insert("networking", 4)

	tests := []struct {
		name   string
		prefix string
		want   []int64
	}{
		{"shared prefix", "tech", []int64{1, 2, 3}},
		{"deeper prefix", "techno", []int64{2}},
		{"full token", "networking", []int64{4}},
		{"missing path", "xyz", []int64{}},
		{"case folded", "TECH", []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.LookupPrefix(tt.prefix)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LookupPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestLookupPrefixDeduplicatesAcrossTokens(t *testing.T) {
	idx := New()
	// Same record under two tokens sharing a prefix.
	idx.Insert("tech", 1)
	idx.Insert("technology", 1)

	got := idx.LookupPrefix("tec")
	if !reflect.DeepEqual(got, []int64{1}) {
		t.Errorf("LookupPrefix(tec) = %v, want [1]", got)
	}
}

func TestEveryPrefixOfInsertedTokenMatches(t *testing.T) {
	idx := New()
	token := "datascience"
	idx.Insert(token, 9)

	for i := 1; i <= len(token); i++ {
		prefix := token[:i]
		got := idx.LookupPrefix(prefix)
		if !reflect.DeepEqual(got, []int64{9}) {
			t.Errorf("LookupPrefix(%q) = %v, want [9]", prefix, got)
		}
	}
}

func TestEmptyPrefixReturnsEverything(t *testing.T) {
	idx := New()
	idx.Insert("alpha", 1)
	idx.Insert("beta", 2)
	idx.Insert("gamma", 3)

	got := idx.LookupPrefix("")
	want := []int64{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LookupPrefix(\"\") = %v, want %v", got, want)
	}
}

func TestInsertIgnoresBlankTokens(t *testing.T) {
	idx := New()
	idx.Insert("", 1)
	idx.Insert("   ", 2)

	if got := idx.LookupPrefix(""); len(got) != 0 {
		t.Errorf("LookupPrefix(\"\") = %v, want empty after blank inserts", got)
	}
	if idx.TokenCount() != 0 {
		t.Errorf("TokenCount() = %d, want 0", idx.TokenCount())
	}
}

func TestLookupPrefixHandlesLongSharedPrefixes(t *testing.T) {
	// A pathological chain: tokens nested one rune apart. Exercises the
	// iterative subtree collection at depth.
	idx := New()
	base := strings.Repeat("a", 5000)
	idx.Insert(base, 1)
	idx.Insert(base+"b", 2)

	got := idx.LookupPrefix("a")
	want := []int64{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LookupPrefix(a) over deep chain = %v, want %v", got, want)
	}
}

func TestMultiWordTokens(t *testing.T) {
	// Whole-field tags keep interior whitespace.
	idx := New()
	idx.Insert("data science", 5)

	if got := idx.LookupPrefix("data s"); !reflect.DeepEqual(got, []int64{5}) {
		t.Errorf("LookupPrefix(\"data s\") = %v, want [5]", got)
	}
	if got := idx.LookupExact("data science"); !reflect.DeepEqual(got, []int64{5}) {
		t.Errorf("LookupExact(\"data science\") = %v, want [5]", got)
	}
}
