package numfmt

import (
	"strings"
	"testing"
)

func TestGroupThousands(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"0", "0"},
		{"12", "12"},
		{"123", "123"},
		{"1234", "1,234"},
		{"12345", "12,345"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"1000000", "1,000,000"},
		{"123456789012345678901234568", "123,456,789,012,345,678,901,234,568"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Every grouped string of n digits carries exactly (n-1)/3 separators, each
// followed by a block of three digits.
func TestGroupThousandsSeparatorCount(t *testing.T) {
	for n := 1; n <= 30; n++ {
		in := strings.Repeat("9", n)
		out := groupThousands(in)
		if got, want := strings.Count(out, ","), (n-1)/3; got != want {
			t.Errorf("groupThousands(%d digits): %d separators, want %d", n, got, want)
		}
		for _, block := range strings.Split(out, ",")[1:] {
			if len(block) != 3 {
				t.Errorf("groupThousands(%d digits): block %q is not 3 digits in %q", n, block, out)
			}
		}
		if strings.ReplaceAll(out, ",", "") != in {
			t.Errorf("groupThousands(%d digits) altered the digits: %q", n, out)
		}
	}
}
