package numfmt

import "strings"

// groupThousands inserts a comma after every three digits of an unsigned
// integral digit string, counting from the right. The input must carry no
// sign, decimal point, or existing separators; its length is unbounded, so
// magnitudes beyond 64 bits group correctly.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3)
	head := n % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
