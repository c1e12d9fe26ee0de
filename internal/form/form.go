package form

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

const (
	basicEmailTag = "basic_email"
	notBlankTag   = "notblank"
)

var basicEmail = regexp.MustCompile(`\S+@\S+\.\S+`)

// IsBasicEmail reports whether the value has the x@y.z shape
func IsBasicEmail(email string) bool {
	return basicEmail.MatchString(email)
}

// FieldErrors maps a form field to the message shown next to it
type FieldErrors map[string]string

// Valid reports whether no field failed validation
func (fieldErrors FieldErrors) Valid() bool {
	return len(fieldErrors) == 0
}

// LoginForm is the email/password login form
type LoginForm struct {
	Email    string `form:"email" validate:"required,basic_email,max=254"`
	Password string `form:"password" validate:"required,min=6"`
}

// RegistrationForm is the account creation form
type RegistrationForm struct {
	FullName        string `form:"fullName" validate:"required,notblank,max=100"`
	Email           string `form:"email" validate:"required,basic_email,max=254"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

// PasswordResetForm is the forgot password form
type PasswordResetForm struct {
	Email string `form:"email" validate:"required,basic_email,max=254"`
}

// messages are keyed by "<field>.<tag>"
type messages map[string]string

var loginMessages = messages{
	"email.required":    "Please enter your email address",
	"email.basic_email": "Please enter a valid email address",
	"email.max":         "Please enter a valid email address",
	"password.required": "Please enter your password",
	"password.min":      "Password must be at least 6 characters long",
}

var registrationMessages = messages{
	"fullName.required":        "Full name is required",
	"fullName.notblank":        "Full name is required",
	"fullName.max":             "Full name must be at most 100 characters",
	"email.required":           "Email is required",
	"email.basic_email":        "Email is invalid",
	"email.max":                "Email is invalid",
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 6 characters",
	"confirmPassword.required": "Please confirm your password",
	"confirmPassword.eqfield":  "Passwords do not match",
}

var passwordResetMessages = messages{
	"email.required":    "Email is required",
	"email.basic_email": "Email is invalid",
	"email.max":         "Email is invalid",
}

// Validatorer validates the authentication forms
type Validatorer interface {
	ValidateLogin(form LoginForm) FieldErrors
	ValidateRegistration(form RegistrationForm) FieldErrors
	ValidatePasswordReset(form PasswordResetForm) FieldErrors
}

// Validator validates forms with screen specific messages, falling back to
// the validator's English translations
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

var _ Validatorer = &Validator{}

// NewValidator creates a form validator
func NewValidator() (*Validator, error) {
	english := en.New()
	universalTranslator := ut.New(english, english)
	translator, found := universalTranslator.GetTranslator("en")
	if !found {
		return nil, errors.New("english translator not found")
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("form"); name != "" {
			return name
		}
		return field.Name
	})
	if err := validate.RegisterValidation(basicEmailTag, func(fl validator.FieldLevel) bool {
		return IsBasicEmail(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("error registering %s validation: %v", basicEmailTag, err)
	}
	if err := validate.RegisterValidation(notBlankTag, validators.NotBlank); err != nil {
		return nil, fmt.Errorf("error registering %s validation: %v", notBlankTag, err)
	}
	if err := enTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, fmt.Errorf("error registering translations: %v", err)
	}

	return &Validator{
		validate:   validate,
		translator: translator,
	}, nil
}

// ValidateLogin validates the login form
func (v *Validator) ValidateLogin(form LoginForm) FieldErrors {
	return v.validateForm(form, loginMessages)
}

// ValidateRegistration validates the registration form
func (v *Validator) ValidateRegistration(form RegistrationForm) FieldErrors {
	return v.validateForm(form, registrationMessages)
}

// ValidatePasswordReset validates the password reset form
func (v *Validator) ValidatePasswordReset(form PasswordResetForm) FieldErrors {
	return v.validateForm(form, passwordResetMessages)
}

func (v *Validator) validateForm(form interface{}, table messages) FieldErrors {
	fieldErrors := FieldErrors{}
	err := v.validate.Struct(form)
	if err == nil {
		return fieldErrors
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fieldErrors["form"] = err.Error()
		return fieldErrors
	}
	for _, fieldError := range validationErrors {
		field := fieldError.Field()
		if _, exists := fieldErrors[field]; exists {
			continue
		}
		if message, ok := table[field+"."+fieldError.Tag()]; ok {
			fieldErrors[field] = message
			continue
		}
		fieldErrors[field] = fieldError.Translate(v.translator)
	}
	return fieldErrors
}
