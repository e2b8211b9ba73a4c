package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	mtrlerrors "github.com/go-mtrl/mtrl/pkg/errors"
	"github.com/go-mtrl/mtrl/pkg/theme"
)

// WidgetTypes lists the widget types accepted in page files.
var WidgetTypes = []string{
	"bottom-app-bar",
	"button",
	"card",
	"checkbox",
	"chip",
	"chip-set",
	"navigation",
	"sheet",
	"switch",
	"tooltip",
	"top-app-bar",
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	elementIDPattern   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	classPrefixPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their page file key.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("widget_type", func(fl validator.FieldLevel) bool {
			return slices.Contains(WidgetTypes, fl.Field().String())
		})

		_ = v.RegisterValidation("element_id", func(fl validator.FieldLevel) bool {
			return elementIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("class_prefix", func(fl validator.FieldLevel) bool {
			return classPrefixPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := theme.ParseHex(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a page file.
func Validate(cfg *Config) error {
	if cfg == nil {
		return invalid("config", "configuration is nil")
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	ids := make(map[string]string)
	declare := func(field, id string) error {
		if id == "" {
			return nil
		}
		if prev, ok := ids[id]; ok {
			return invalid(field, fmt.Sprintf("duplicate id %q (first used by %s)", id, prev))
		}
		ids[id] = field
		return nil
	}

	var walk func(prefix string, widgets []Widget) error
	walk = func(prefix string, widgets []Widget) error {
		for i, w := range widgets {
			field := fmt.Sprintf("%s[%d]", prefix, i)
			if prefix != "widgets" && (w.Type == "tooltip" || w.Type == "sheet") {
				return invalid(field+".type", w.Type+" must be declared at the top level")
			}
			if err := declare(field+".id", w.ID); err != nil {
				return err
			}
			if err := validateWidget(field, w, declare); err != nil {
				return err
			}
			if err := walk(field+".children", w.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk("widgets", cfg.Widgets); err != nil {
		return err
	}

	// Tooltips may describe any element declared in the page.
	var targets func(prefix string, widgets []Widget) error
	targets = func(prefix string, widgets []Widget) error {
		for i, w := range widgets {
			field := fmt.Sprintf("%s[%d]", prefix, i)
			if w.Type == "tooltip" {
				if _, ok := ids[w.Target]; !ok {
					return invalid(field+".target", fmt.Sprintf("references unknown id %q", w.Target))
				}
			}
			if err := targets(field+".children", w.Children); err != nil {
				return err
			}
		}
		return nil
	}
	return targets("widgets", cfg.Widgets)
}

func validateWidget(field string, w Widget, declare func(field, id string) error) error {
	switch w.Type {
	case "chip-set":
		for i, child := range w.Children {
			if child.Type != "chip" {
				return invalid(fmt.Sprintf("%s.children[%d].type", field, i), "chip sets only hold chips")
			}
		}
	case "navigation":
		found := false
		var items func(prefix string, list []NavItem) error
		items = func(prefix string, list []NavItem) error {
			for i, item := range list {
				itemField := fmt.Sprintf("%s[%d]", prefix, i)
				if err := declare(itemField+".id", item.ID); err != nil {
					return err
				}
				found = found || item.ID == w.Active
				if err := items(itemField+".items", item.Items); err != nil {
					return err
				}
			}
			return nil
		}
		if err := items(field+".items", w.Items); err != nil {
			return err
		}
		if w.Active != "" && !found {
			return invalid(field+".active", fmt.Sprintf("references unknown item %q", w.Active))
		}
	case "tooltip":
		if w.ID != "" {
			return invalid(field+".id", "tooltip ids are generated")
		}
		if len(w.Children) > 0 {
			return invalid(field+".children", "tooltips have no children")
		}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("failed validation for tag '%s'", ve.Tag())
		return invalid(field, msg)
	}

	return invalid("config", err.Error())
}

// fieldName drops the root struct name from the namespace.
func fieldName(fe validator.FieldError) string {
	_, rest, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Field()
	}
	return rest
}

// invalid builds a configuration error for field.
func invalid(field, msg string) error {
	return &mtrlerrors.ComponentError{Op: field, Kind: mtrlerrors.KindConfig, Err: errors.New(msg)}
}
