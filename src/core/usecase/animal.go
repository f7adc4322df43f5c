package usecase

import (
	"log/slog"

	"lessonbox/src/core/domain"
	"lessonbox/src/infra/logger"
)

// AnimalSpec describes one animal to build and ask to speak.
type AnimalSpec struct {
	Variant     domain.Variant
	Name        string
	FavoriteToy string
}

// Utterance is the outcome of asking one animal to speak. Err is set when
// the animal could not be built or its variant has no sound.
type Utterance struct {
	Name  string
	Sound string
	Err   error
}

// AnimalService dispatches the speak capability over heterogeneous variants.
type AnimalService struct {
	log *slog.Logger
}

func NewAnimalService(log *slog.Logger) *AnimalService {
	return &AnimalService{log: log}
}

// Chorus asks every speaker to speak in order. A failing speaker is recorded
// in its Utterance and the rest still speak.
func (s *AnimalService) Chorus(speakers []domain.Speaker) []Utterance {
	out := make([]Utterance, 0, len(speakers))
	for _, sp := range speakers {
		sound, err := domain.MakeSpeak(sp)
		u := Utterance{Name: domain.NameOf(sp), Sound: sound, Err: err}
		if err != nil {
			logger.Debug(s.log, "animal could not speak", "kind", domain.KindOf(err), "error", err)
		}
		out = append(out, u)
	}
	return out
}

// Speak builds each described animal and runs them through Chorus.
func (s *AnimalService) Speak(specs []AnimalSpec) []Utterance {
	out := make([]Utterance, len(specs))
	var speakers []domain.Speaker
	var slots []int
	for i, spec := range specs {
		sp, err := domain.NewSpeaker(spec.Variant, spec.Name, spec.FavoriteToy)
		if err != nil {
			out[i] = Utterance{Name: spec.Name, Err: err}
			continue
		}
		speakers = append(speakers, sp)
		slots = append(slots, i)
	}
	for j, u := range s.Chorus(speakers) {
		out[slots[j]] = u
	}
	return out
}
