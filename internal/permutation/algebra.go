package permutation

import "github.com/nickmafra/sym-balls/internal/domain"

// Identity returns the permutation fixing every position.
func Identity(length int) domain.Permutation {
	p := make(domain.Permutation, length)
	for i := range p {
		p[i] = i
	}
	return p
}

// Validate reports whether p is a bijection on [0, length).
func Validate(p domain.Permutation, length int) error {
	if length <= 0 {
		return ErrBadLength
	}
	if len(p) != length {
		return ErrLengthMismatch
	}
	seen := make([]bool, length)
	for _, v := range p {
		if v < 0 || v >= length {
			return ErrOutOfRange
		}
		if seen[v] {
			return ErrNotBijection
		}
		seen[v] = true
	}
	return nil
}

// Inverse returns q with q[p[i]] = i.
func Inverse(p domain.Permutation) domain.Permutation {
	q := make(domain.Permutation, len(p))
	for i, v := range p {
		q[v] = i
	}
	return q
}

// Compose returns the permutation that applies first and then then.
func Compose(first, then domain.Permutation) (domain.Permutation, error) {
	if len(first) != len(then) {
		return nil, ErrLengthMismatch
	}
	out := make(domain.Permutation, len(first))
	for i, v := range first {
		out[i] = then[v]
	}
	return out, nil
}

// Apply moves the content of position i to position p[i]. The input is not
// modified.
func Apply(p domain.Permutation, a domain.Arrangement) (domain.Arrangement, error) {
	if len(p) != len(a) {
		return nil, ErrLengthMismatch
	}
	out := make(domain.Arrangement, len(a))
	for i, v := range p {
		out[v] = a[i]
	}
	return out, nil
}

// Equal reports whether two permutations are the same mapping.
func Equal(a, b domain.Permutation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsIdentity reports whether p fixes every position.
func IsIdentity(p domain.Permutation) bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}
	return true
}

// Cycles decomposes p into its non-trivial disjoint cycles. Scanning positions
// in order makes each cycle start at its smallest position, so
// Build(Cycles(p), len(p)) reproduces p.
func Cycles(p domain.Permutation) []domain.Cycle {
	visited := make([]bool, len(p))
	var out []domain.Cycle
	for start := range p {
		if visited[start] || p[start] == start {
			visited[start] = true
			continue
		}
		c := domain.Cycle{start}
		visited[start] = true
		for next := p[start]; next != start; next = p[next] {
			c = append(c, next)
			visited[next] = true
		}
		out = append(out, c)
	}
	return out
}

// Order returns the smallest k > 0 with p^k = identity.
func Order(p domain.Permutation) int {
	order := 1
	for _, c := range Cycles(p) {
		order = lcm(order, len(c))
	}
	return order
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }
