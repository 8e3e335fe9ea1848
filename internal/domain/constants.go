package domain

// Supported competition categories
const (
	CategoryF1     = "f1"
	CategoryF2     = "f2"
	CategoryMotoGP = "motogp"
)

// ValidCategories defines the categories predictions can be made for
var ValidCategories = map[string]bool{
	CategoryF1:     true,
	CategoryF2:     true,
	CategoryMotoGP: true,
}
