// Package validation turns a composed input dictionary into a fully typed
// model, collecting every problem it finds with YAML coordinates so the CLI
// can point the user at the offending line.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/rendercv/internal/composing"
	"github.com/jonathan/rendercv/internal/types"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := field.Tag.Get("yaml")
		if tag == "" || tag == "-" {
			return field.Name
		}
		return strings.SplitN(tag, ",", 2)[0]
	})
	return v
}

// Build decodes and validates the composed input. It returns the model on
// success, a UserError listing every problem found, or an InternalError when
// something went wrong that is not the user's fault.
func Build(composed *composing.Composed, ctx Context) (*types.RootModel, error) {
	b := &builder{composed: composed, ctx: ctx}
	model := b.decode()
	b.runStructValidator(model)
	if len(b.records) > 0 {
		return nil, &UserError{
			Message: "There are some errors in the input file.",
			Records: dedupRecords(b.records),
		}
	}
	return model, nil
}

func (b *builder) runStructValidator(model *types.RootModel) {
	err := structValidator.Struct(model)
	if err == nil {
		return
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		b.records = append(b.records, ValidationRecord{
			SchemaLocation: nil,
			Message:        err.Error(),
		})
		return
	}
	for _, fe := range errs {
		path := namespaceToPath(fe.Namespace())
		b.record(path, tagMessage(fe), fe.Value(), false)
	}
}

var indexPattern = regexp.MustCompile(`\[(\d+)\]`)

// namespaceToPath converts "RootModel.cv.social_networks[1].username" into
// the dotted form used by the coordinate maps.
func namespaceToPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return indexPattern.ReplaceAllString(ns, ".$1")
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "This is not a valid email address!"
	case "url":
		return "This is not a valid URL!"
	case "len":
		return "This field must contain exactly " + fe.Param() + " elements."
	default:
		return "This value failed the " + fe.Tag() + " check."
	}
}
