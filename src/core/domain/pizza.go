package domain

import "slices"

type Pizza struct {
	Ingredients []string
}

// Margherita returns the classic mozzarella and tomato pizza.
func Margherita() Pizza {
	return Pizza{Ingredients: []string{"mozzarella", "tomatoes"}}
}

// IsVegetarian reports whether ingredients contain neither ham nor bacon.
func IsVegetarian(ingredients []string) bool {
	return !slices.Contains(ingredients, "ham") && !slices.Contains(ingredients, "bacon")
}

func (p Pizza) IsVegetarian() bool {
	return IsVegetarian(p.Ingredients)
}
