package domain

// ValidationError describes a single failed booking rule. A validation pass
// returns every failure at once so users see all problems together.
type ValidationError struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
