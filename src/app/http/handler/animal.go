package handler

import (
	"github.com/gin-gonic/gin"

	"lessonbox/src/app/http/dto"
	"lessonbox/src/app/http/response"
	"lessonbox/src/core/domain"
	"lessonbox/src/core/usecase"
)

// AnimalHandler asks a list of animals to speak.
type AnimalHandler struct {
	animalService *usecase.AnimalService
}

func NewAnimalHandler(animalService *usecase.AnimalService) *AnimalHandler {
	return &AnimalHandler{animalService: animalService}
}

// Speak returns one utterance per requested animal, in order. Animals that
// cannot speak carry an error; the others still answer, so the response is 200.
// POST /v1/animals/speak
func (h *AnimalHandler) Speak(c *gin.Context) {
	var req dto.SpeakRequest
	if !bindJSON(c, &req) {
		return
	}
	utterances := h.animalService.Speak(req.ToSpecs())

	out := make([]dto.UtteranceResponse, len(utterances))
	for i, u := range utterances {
		out[i] = dto.UtteranceResponse{Name: u.Name, Sound: u.Sound}
		if u.Err != nil {
			_ = c.Error(u.Err)
			out[i].Error = &dto.ErrorDetail{
				Kind:    domain.KindOf(u.Err),
				Message: u.Err.Error(),
				Field:   domain.FieldOf(u.Err),
			}
		}
	}
	response.OK(c, gin.H{"utterances": out})
}
