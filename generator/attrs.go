package generator

import (
	"errors"
	"fmt"

	"github.com/ffigen/go-ffigen/internal/attr"
	"github.com/ffigen/go-ffigen/internal/lit"
)

var errEmptyValue = errors.New("value has no field set")

// buildAttr builds the attribute described by s.
func buildAttr(s AttrSpec) (attr.Attribute, error) {
	b := attr.New()
	if s.Inner {
		b = b.Inner()
	}
	if err := checkAttrNames(s); err != nil {
		return attr.Attribute{}, err
	}

	switch {
	case s.Doc != "":
		return b.Doc(s.Doc), nil
	case s.Word != "":
		return b.Word(s.Word), nil
	case s.List != "":
		list, err := fillList(b.List(s.List), s.Items)
		if err != nil {
			return attr.Attribute{}, fmt.Errorf("attribute %s: %w", s.List, err)
		}
		return list.Build(), nil
	case s.Name != "":
		a, err := applyValue(b.NameValue(s.Name), s.Value)
		if err != nil {
			return attr.Attribute{}, fmt.Errorf("attribute %s: %w", s.Name, err)
		}
		return a, nil
	default:
		return attr.Attribute{}, fmt.Errorf("attribute has no word, list, name or doc")
	}
}

// fillList appends the items described by specs to b, nesting lists as
// needed.
func fillList[R any](b attr.ListBuilder[R], specs []AttrSpec) (attr.ListBuilder[R], error) {
	for _, s := range specs {
		if err := checkAttrNames(s); err != nil {
			return b, err
		}
		switch {
		case s.Word != "":
			b = b.Word(s.Word)
		case s.List != "":
			var nestedErr error
			b = b.List(s.List, func(nested attr.ListBuilder[*attr.MetaItem]) *attr.MetaItem {
				nested, nestedErr = fillList(nested, s.Items)
				return nested.Build()
			})
			if nestedErr != nil {
				return b, fmt.Errorf("%s: %w", s.List, nestedErr)
			}
		case s.Name != "":
			next, err := applyValue(b.NameValue(s.Name), s.Value)
			if err != nil {
				return b, fmt.Errorf("%s: %w", s.Name, err)
			}
			b = next
		default:
			return b, fmt.Errorf("list item has no word, list or name")
		}
	}
	return b, nil
}

func checkAttrNames(s AttrSpec) error {
	for _, name := range []string{s.Word, s.List, s.Name} {
		if name == "" {
			continue
		}
		if err := checkName("attribute", name); err != nil {
			return err
		}
	}
	return nil
}

// applyValue finishes a literal builder with the value in v.
func applyValue[R any](b lit.Builder[R], v *ValueSpec) (R, error) {
	var zero R
	switch {
	case v == nil:
		return zero, errEmptyValue
	case v.Str != nil:
		return b.Str(*v.Str), nil
	case v.CString != nil:
		return b.ByteStr([]byte(*v.CString)), nil
	case v.Int != nil:
		return b.Int(*v.Int), nil
	case v.Uint != nil:
		return b.Uint(*v.Uint), nil
	case v.Float != nil:
		return b.Float(*v.Float), nil
	case v.Bool != nil:
		return b.Bool(*v.Bool), nil
	default:
		return zero, errEmptyValue
	}
}

// buildAttrs builds every attribute in specs, joining the errors of the
// ones that fail.
func buildAttrs(specs []AttrSpec) ([]attr.Attribute, error) {
	attrs := make([]attr.Attribute, 0, len(specs))
	var errs []error
	for _, s := range specs {
		a, err := buildAttr(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		attrs = append(attrs, a)
	}
	return attrs, errors.Join(errs...)
}
