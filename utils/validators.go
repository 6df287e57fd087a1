package utils

import (
	"errors"

	"stickynotes/dto"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// InitValidator installs the note/user rules on gin's binding engine.
func InitValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return dto.RegisterValidators(v)
}
