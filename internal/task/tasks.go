package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeOptimisePhoto = "photo:optimise"

type OptimisePhotoPayload struct {
	PhotoID string `json:"photo_id"`
}

// NewOptimisePhotoTask creates an Asynq task for optimising a photo by ID.
func NewOptimisePhotoTask(photoID string) (*asynq.Task, error) {
	p := OptimisePhotoPayload{PhotoID: photoID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal optimise-photo payload: %w", err)
	}
	return asynq.NewTask(TypeOptimisePhoto, data), nil
}

// ParseOptimisePhotoPayload parses the task payload to OptimisePhotoPayload.
func ParseOptimisePhotoPayload(t *asynq.Task) (OptimisePhotoPayload, error) {
	var p OptimisePhotoPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return OptimisePhotoPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
