package domain

import (
	"fmt"
	"strings"
)

// Speaker is the capability every animal variant shares.
type Speaker interface {
	Speak() (string, error)
}

// Variant names a concrete Speaker.
type Variant string

const (
	VariantAnimal          Variant = "animal"
	VariantDog             Variant = "dog"
	VariantCat             Variant = "cat"
	VariantGoldenRetriever Variant = "golden-retriever"
)

// Animal is the base every variant embeds. Its Speak is a placeholder that
// fails with KindNotImplemented, so a variant that forgets to override it
// reports an error instead of a wrong sound.
type Animal struct {
	name string
}

func NewAnimal(name string) Animal {
	return Animal{name: name}
}

// Name is fixed at construction.
func (a Animal) Name() string { return a.name }

func (a Animal) Speak() (string, error) {
	return "", NewNotImplementedError("speak")
}

// Dog barks and has an age that only CelebrateBirthday changes.
type Dog struct {
	Animal
	age int
}

// NewDog returns a dog of the given age.
func NewDog(name string, age int) *Dog {
	return &Dog{Animal: Animal{name: name}, age: age}
}

func (d Dog) Speak() (string, error) {
	return fmt.Sprintf("%s says: Woof!", d.name), nil
}

// Age returns the dog's age in years.
func (d *Dog) Age() int { return d.age }

// CelebrateBirthday increments the dog's age.
func (d *Dog) CelebrateBirthday() string {
	d.age++
	return fmt.Sprintf("Happy %d birthday, %s!", d.age, d.name)
}

type Cat struct {
	Animal
}

func NewCat(name string) *Cat {
	return &Cat{Animal: Animal{name: name}}
}

func (c Cat) Speak() (string, error) {
	return fmt.Sprintf("%s says: Meow!", c.name), nil
}

// GoldenRetriever is a Dog that also fetches its favourite toy. It speaks like a Dog.
type GoldenRetriever struct {
	Dog
	FavoriteToy string
}

func NewGoldenRetriever(name, favoriteToy string) *GoldenRetriever {
	return &GoldenRetriever{Dog: Dog{Animal: Animal{name: name}}, FavoriteToy: favoriteToy}
}

func (g GoldenRetriever) Fetch() string {
	return fmt.Sprintf("%s fetched the %s!", g.name, g.FavoriteToy)
}

// MakeSpeak asks any Speaker to speak without knowing its concrete variant.
// A nil Speaker, or a nil pointer to one of the variants, is a validation error.
func MakeSpeak(s Speaker) (string, error) {
	if isNilSpeaker(s) {
		return "", NewValidationError("animal", "cannot be nil")
	}
	return s.Speak()
}

// NameOf returns the speaker's name, or "" when it has none or is nil.
func NameOf(s Speaker) string {
	if isNilSpeaker(s) {
		return ""
	}
	if named, ok := s.(interface{ Name() string }); ok {
		return named.Name()
	}
	return ""
}

// isNilSpeaker catches typed nil pointers the interface comparison misses;
// the variants' value methods would panic on them.
func isNilSpeaker(s Speaker) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *Animal:
		return v == nil
	case *Dog:
		return v == nil
	case *Cat:
		return v == nil
	case *GoldenRetriever:
		return v == nil
	}
	return false
}

// NewSpeaker builds the variant named by v. favoriteToy is only used by
// golden retrievers and defaults to "ball".
func NewSpeaker(v Variant, name, favoriteToy string) (Speaker, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("name", "cannot be empty")
	}
	switch v {
	case VariantAnimal:
		return NewAnimal(name), nil
	case VariantDog:
		return NewDog(name, 0), nil
	case VariantCat:
		return NewCat(name), nil
	case VariantGoldenRetriever:
		if favoriteToy == "" {
			favoriteToy = "ball"
		}
		return NewGoldenRetriever(name, favoriteToy), nil
	default:
		return nil, NewValidationError("kind", fmt.Sprintf("unknown animal kind %q", v))
	}
}
