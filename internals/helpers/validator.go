package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate menjalankan validasi tag struct DTO. Satu instance untuk seluruh app.
func Validate(s interface{}) error {
	return validate.Struct(s)
}
