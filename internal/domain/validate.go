package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrPromptRequired is returned for a missing or empty prompt.
var ErrPromptRequired = errors.New("prompt is required and cannot be empty")

// Validator checks inbound prompts against the configured length limit.
type Validator struct {
	validate        *validator.Validate
	maxPromptLength int
}

// NewValidator creates a prompt validator for the given maximum length.
func NewValidator(maxPromptLength int) *Validator {
	return &Validator{
		validate:        validator.New(),
		maxPromptLength: maxPromptLength,
	}
}

// ValidatePrompt returns nil when the prompt is acceptable. A prompt of
// exactly the maximum length passes; one character more fails.
func (v *Validator) ValidatePrompt(prompt string) error {
	if err := v.validate.Var(prompt, "required"); err != nil {
		return ErrPromptRequired
	}

	if err := v.validate.Var(prompt, fmt.Sprintf("max=%d", v.maxPromptLength)); err != nil {
		return fmt.Errorf("prompt exceeds maximum length of %d characters", v.maxPromptLength)
	}

	return nil
}

// MaxPromptLength returns the configured limit.
func (v *Validator) MaxPromptLength() int {
	return v.maxPromptLength
}
