package id

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzParsePrefixedID(f *testing.F) {
	seeds := []string{
		"tk_4fX9bQ2m",
		"tk_abc123",
		"",
		"nounderscore",
		"_leadingunderscore",
		"trailing_",
		"tk_with_more_underscores",
		"*_special",
		"中文_测试",
		strings.Repeat("a", 1000) + "_" + strings.Repeat("b", 1000),
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			return
		}

		prefix, shortID, err := ParsePrefixedID(input)

		if !strings.Contains(input, "_") {
			if err == nil {
				t.Errorf("ParsePrefixedID(%q) should return error for input without underscore", input)
			}
			return
		}

		if err == nil {
			if !strings.HasPrefix(input, prefix+"_") {
				t.Errorf("ParsePrefixedID(%q) returned prefix=%q which doesn't match input", input, prefix)
			}
			parts := strings.SplitN(input, "_", 2)
			if len(parts) == 2 && shortID != parts[1] {
				t.Errorf("ParsePrefixedID(%q) returned shortID=%q, expected %q", input, shortID, parts[1])
			}
		}
	})
}

func FuzzValidatePrefix(f *testing.F) {
	seeds := []struct {
		prefixedID     string
		expectedPrefix string
	}{
		{"tk_4fX9bQ2m", "tk"},
		{"tk_4fX9bQ2m", "ct"},
		{"", "tk"},
		{"nounderscore", "tk"},
		{"tk_", "tk"},
		{"_test", ""},
	}

	for _, seed := range seeds {
		f.Add(seed.prefixedID, seed.expectedPrefix)
	}

	f.Fuzz(func(t *testing.T, prefixedID, expectedPrefix string) {
		if !utf8.ValidString(prefixedID) || !utf8.ValidString(expectedPrefix) {
			return
		}

		err := ValidatePrefix(prefixedID, expectedPrefix)

		if !strings.Contains(prefixedID, "_") {
			if err == nil {
				t.Errorf("ValidatePrefix(%q, %q) should return error for ID without underscore", prefixedID, expectedPrefix)
			}
			return
		}

		if strings.HasPrefix(prefixedID, expectedPrefix+"_") && err != nil {
			t.Errorf("ValidatePrefix(%q, %q) returned unexpected error: %v", prefixedID, expectedPrefix, err)
		}

		if !strings.HasPrefix(prefixedID, expectedPrefix+"_") && err == nil {
			actualPrefix := strings.SplitN(prefixedID, "_", 2)[0]
			if actualPrefix != expectedPrefix {
				t.Errorf("ValidatePrefix(%q, %q) should return error for wrong prefix", prefixedID, expectedPrefix)
			}
		}
	})
}

func FuzzGenerate(f *testing.F) {
	lengths := []int{0, 1, 2, 5, ReferenceLength, DefaultLength, 20, 50, 100}
	for _, l := range lengths {
		f.Add(l)
	}

	f.Fuzz(func(t *testing.T, length int) {
		result, err := Generate(length)
		if err != nil {
			t.Errorf("Generate(%d) returned error: %v", length, err)
			return
		}

		expectedLen := length
		if expectedLen <= 0 {
			expectedLen = DefaultLength
		}

		if len(result) != expectedLen {
			t.Errorf("Generate(%d) returned string of length %d, expected %d", length, len(result), expectedLen)
		}

		for _, c := range result {
			if !strings.ContainsRune(alphabet, c) {
				t.Errorf("Generate(%d) returned invalid character %q", length, c)
			}
		}
	})
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	iterations := 10000

	for i := 0; i < iterations; i++ {
		id, err := Generate(DefaultLength)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if seen[id] {
			t.Errorf("Generate produced duplicate ID: %s", id)
		}
		seen[id] = true
	}
}

func TestNewTicketReference(t *testing.T) {
	ref, err := NewTicketReference()
	if err != nil {
		t.Fatalf("NewTicketReference failed: %v", err)
	}

	if !strings.HasPrefix(ref, PrefixTicket+"_") {
		t.Errorf("reference %q doesn't have expected prefix %q_", ref, PrefixTicket)
	}

	prefix, shortID, err := ParsePrefixedID(ref)
	if err != nil {
		t.Fatalf("failed to parse generated reference %q: %v", ref, err)
	}
	if prefix != PrefixTicket {
		t.Errorf("parsed prefix %q doesn't match %q", prefix, PrefixTicket)
	}
	if len(shortID) != ReferenceLength {
		t.Errorf("short ID length %d doesn't match reference length %d", len(shortID), ReferenceLength)
	}

	if err := ValidateTicketReference(ref); err != nil {
		t.Errorf("ValidateTicketReference(%q) returned unexpected error: %v", ref, err)
	}
	if err := ValidateTicketReference("ct_4fX9bQ2m"); err == nil {
		t.Error("ValidateTicketReference should reject a foreign prefix")
	}
}
