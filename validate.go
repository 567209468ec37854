package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"quotesmith.codes/tui/card"
)

// newValidator returns a validator that also understands the card catalogs.
func newValidator() *validator.Validate {
	v := validator.New()
	catalogs := map[string][]string{
		"tone":      card.OptionValues(card.Tones),
		"language":  card.OptionValues(card.Languages),
		"cardfont":  card.FontValues(),
		"alignment": {string(card.AlignLeft), string(card.AlignCenter), string(card.AlignRight)},
	}
	for tag, values := range catalogs {
		// Registration only fails for empty tags or nil funcs.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return slices.Contains(values, fl.Field().String())
		})
	}
	return v
}

// validationError turns validator errors into a flag-oriented message.
func validationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		flag := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("--%s is required", flag))
		case "gt", "gte", "lt", "lte":
			msgs = append(msgs, fmt.Sprintf("--%s: %v is out of range", flag, fe.Value()))
		case "hexcolor":
			msgs = append(msgs, fmt.Sprintf("--%s: %q is not a hex colour", flag, fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("--%s: %q is not a valid %s", flag, fe.Value(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid flags: %s", strings.Join(msgs, "; "))
}
