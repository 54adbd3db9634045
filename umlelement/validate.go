package umlelement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"oss.terrastruct.com/uml/lib/geo"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("umlkind", func(fl validator.FieldLevel) bool {
		return Kind(fl.Field().String()).IsValid()
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		b := sl.Current().Interface().(geo.Bounds)
		if b.Width < 0 {
			sl.ReportError(b.Width, "Width", "width", "gte", "0")
		}
		if b.Height < 0 {
			sl.ReportError(b.Height, "Height", "height", "gte", "0")
		}
	}, geo.Bounds{})
	return v
}

// Validate checks the structure of el: a present ID, a known kind, a non-negative
// size, a relationship payload exactly on relationship kinds and an owner other
// than itself. References to other elements are not resolved.
func Validate(el *Element) error {
	var msgs []string

	err := validate.Struct(el)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, ferr := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %q", ferr.Namespace(), ferr.Tag()))
		}
	} else if err != nil {
		return err
	}

	if el.Kind.IsRelationship() != (el.Relationship != nil) {
		msgs = append(msgs, fmt.Sprintf("relationship payload does not match kind %s", el.Kind))
	}
	if el.Owner != nil && *el.Owner == el.ID {
		msgs = append(msgs, "element owns itself")
	}

	if len(msgs) > 0 {
		return fmt.Errorf("invalid element %q: %s", el.ID, strings.Join(msgs, ", "))
	}
	return nil
}
