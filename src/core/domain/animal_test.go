package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeak(t *testing.T) {
	speakers := []Speaker{
		NewDog("Fido", 3),
		NewCat("Milo"),
		NewGoldenRetriever("Buddy", "frisbee"),
	}
	want := []string{"Fido says: Woof!", "Milo says: Meow!", "Buddy says: Woof!"}

	for i, s := range speakers {
		got, err := MakeSpeak(s)
		require.NoError(t, err)
		assert.Equal(t, want[i], got)
	}
}

func TestBaseAnimalIsNotImplemented(t *testing.T) {
	got, err := MakeSpeak(NewAnimal("Generic"))
	assert.Empty(t, got)
	assert.Equal(t, KindNotImplemented, KindOf(err))

	_, err = MakeSpeak(nil)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestMakeSpeakTypedNil(t *testing.T) {
	for _, s := range []Speaker{(*Dog)(nil), (*Cat)(nil), (*GoldenRetriever)(nil), (*Animal)(nil)} {
		assert.NotPanics(t, func() {
			_, err := MakeSpeak(s)
			assert.Equal(t, KindValidation, KindOf(err), "%T", s)
			assert.Empty(t, NameOf(s))
		})
	}
	assert.Equal(t, "Fido", NameOf(NewDog("Fido", 1)))
}

func TestDogBirthday(t *testing.T) {
	d := NewDog("Fido", 3)
	assert.Equal(t, "Happy 4 birthday, Fido!", d.CelebrateBirthday())
	assert.Equal(t, 4, d.Age())
}

func TestGoldenRetrieverFetch(t *testing.T) {
	g := NewGoldenRetriever("Buddy", "tennis ball")
	assert.Equal(t, "Buddy fetched the tennis ball!", g.Fetch())
	assert.Equal(t, "Buddy", g.Name())
}

func TestNewSpeaker(t *testing.T) {
	s, err := NewSpeaker(VariantGoldenRetriever, "Rex", "")
	require.NoError(t, err)
	g, ok := s.(*GoldenRetriever)
	require.True(t, ok)
	assert.Equal(t, "ball", g.FavoriteToy)

	s, err = NewSpeaker(VariantAnimal, "Generic", "")
	require.NoError(t, err)
	_, err = s.Speak()
	assert.Equal(t, KindNotImplemented, KindOf(err))

	_, err = NewSpeaker("parrot", "Polly", "")
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "kind", FieldOf(err))

	_, err = NewSpeaker(VariantCat, " ", "")
	assert.Equal(t, "name", FieldOf(err))
}
