package notation

import (
	"strconv"
	"strings"

	"github.com/nickmafra/sym-balls/internal/domain"
)

// Format writes cycles in canonical notation, e.g. "(0,1,2)(3,4)".
func Format(cycles []domain.Cycle) string {
	var b strings.Builder
	for _, c := range cycles {
		b.WriteByte('(')
		for i, p := range c {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(p))
		}
		b.WriteByte(')')
	}
	return b.String()
}
