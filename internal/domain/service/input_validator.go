package service

// InputValidator checks the syntax of caller-supplied registration and
// login input. Implementations are stateless; normalization (trimming,
// lowercasing) is the usecase's job and happens before these checks.
type InputValidator interface {
	// IsEmail reports whether s is a syntactically valid email address.
	IsEmail(s string) bool

	// IsAlphanumeric reports whether s consists solely of letters and digits.
	IsAlphanumeric(s string) bool
}
