package worddata

import (
	"fmt"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

const (
	maxWordLen       = 100
	maxBatchWords    = 500
	maxDefinitionLen = 10000
)

// UpdateStatusInput marks one word with a learning status.
type UpdateStatusInput struct {
	Lang   domain.Language
	Word   string
	Status domain.WordStatus
}

// Validate checks the input fields.
func (in UpdateStatusInput) Validate() error {
	var fields []domain.FieldError

	if !in.Lang.IsValid() {
		fields = append(fields, domain.FieldError{Field: "lang", Message: "unsupported language"})
	}
	fields = appendWordErrors(fields, "word", in.Word)
	if !in.Status.IsValid() {
		fields = append(fields, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// BatchUpdateStatusInput marks many words with the same status at once.
type BatchUpdateStatusInput struct {
	Lang   domain.Language
	Words  []string
	Status domain.WordStatus
}

// Validate checks the input fields.
func (in BatchUpdateStatusInput) Validate() error {
	var fields []domain.FieldError

	if !in.Lang.IsValid() {
		fields = append(fields, domain.FieldError{Field: "lang", Message: "unsupported language"})
	}
	switch {
	case len(in.Words) == 0:
		fields = append(fields, domain.FieldError{Field: "words", Message: "is required"})
	case len(in.Words) > maxBatchWords:
		fields = append(fields, domain.FieldError{
			Field:   "words",
			Message: fmt.Sprintf("must not exceed %d words per batch", maxBatchWords),
		})
	default:
		for i, w := range in.Words {
			fields = appendWordErrors(fields, fmt.Sprintf("words[%d]", i), w)
		}
	}
	if !in.Status.IsValid() {
		fields = append(fields, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// UpdateDefinitionInput stores a personal definition for one word.
type UpdateDefinitionInput struct {
	Lang       domain.Language
	Word       string
	Definition string
}

// Validate checks the input fields.
func (in UpdateDefinitionInput) Validate() error {
	var fields []domain.FieldError

	if !in.Lang.IsValid() {
		fields = append(fields, domain.FieldError{Field: "lang", Message: "unsupported language"})
	}
	fields = appendWordErrors(fields, "word", in.Word)
	if len(in.Definition) > maxDefinitionLen {
		fields = append(fields, domain.FieldError{
			Field:   "definition",
			Message: fmt.Sprintf("must not exceed %d characters", maxDefinitionLen),
		})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

func appendWordErrors(fields []domain.FieldError, name, word string) []domain.FieldError {
	switch {
	case word == "":
		fields = append(fields, domain.FieldError{Field: name, Message: "is required"})
	case len(word) > maxWordLen:
		fields = append(fields, domain.FieldError{Field: name, Message: fmt.Sprintf("must not exceed %d characters", maxWordLen)})
	}
	return fields
}
