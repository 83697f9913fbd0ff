package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Ezio016/MyFridge/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations for domain enums
	_ = v.RegisterValidation("location", validateLocation)
	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("browse_mode", validateBrowseMode)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "location":
			errs[field] = "Must be one of: fridge, freezer, pantry"
		case "category":
			errs[field] = "Unknown category"
		case "browse_mode":
			errs[field] = "Must be one of: lightning, explore"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validCategories mirrors the domain category set
var validCategories = map[domain.Category]bool{
	domain.CategoryDairy:     true,
	domain.CategoryMeat:      true,
	domain.CategorySeafood:   true,
	domain.CategoryVegetable: true,
	domain.CategoryFruit:     true,
	domain.CategoryGrain:     true,
	domain.CategoryBeverage:  true,
	domain.CategoryCondiment: true,
	domain.CategorySnack:     true,
	domain.CategoryLeftover:  true,
	domain.CategoryOther:     true,
}

// Empty values pass; pair with 'required' where the field is mandatory.
func validateLocation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return domain.IsValidLocation(strings.ToLower(value))
}

func validateCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return validCategories[domain.Category(strings.ToLower(value))]
}

func validateBrowseMode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return domain.IsValidBrowseMode(strings.ToLower(value))
}
