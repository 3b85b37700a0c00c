package lexicon

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every problem that would make the lexicon unusable or
// contradictory. The returned error joins all problems found.
func (l *Lexicon) Validate() error {
	if err := validate.Struct(l); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			errs := make([]error, 0, len(verrs))
			for _, fe := range verrs {
				errs = append(errs, fmt.Errorf("%s: failed %q constraint", fe.Namespace(), fe.Tag()))
			}
			return errors.Join(errs...)
		}
		return err
	}

	var errs []error
	errs = append(errs, l.validatePunctuation()...)

	lists := []struct {
		name  string
		items []string
	}{
		{"discourse_markers", l.DiscourseMarkers},
		{"strong_markers", l.StrongMarkers},
		{"weak_connectors", l.WeakConnectors},
		{"subordinators", l.Subordinators},
	}
	for _, list := range lists {
		seen := make(map[string]bool, len(list.items))
		for _, item := range list.items {
			if seen[item] {
				errs = append(errs, fmt.Errorf("%s: duplicate literal %q", list.name, item))
			}
			seen[item] = true
			errs = append(errs, l.validateLiteral(list.name, item)...)
		}
	}

	if l.RunOnMarker != "" {
		errs = append(errs, l.validateLiteral("run_on_marker", l.RunOnMarker)...)
	} else if len(l.Subordinators) > 0 {
		errs = append(errs, errors.New("run_on_marker: required when subordinators are configured"))
	}

	markers := make(map[string]bool, len(l.DiscourseMarkers))
	for _, m := range l.DiscourseMarkers {
		markers[m] = true
	}
	for _, c := range l.WeakConnectors {
		if markers[c] {
			errs = append(errs, fmt.Errorf("weak_connectors: %q is also a discourse marker", c))
		}
	}
	for _, s := range l.StrongMarkers {
		if !markers[s] {
			errs = append(errs, fmt.Errorf("strong_markers: %q is not a discourse marker", s))
		}
	}

	return errors.Join(errs...)
}

func (l *Lexicon) validatePunctuation() []error {
	var errs []error
	seen := make(map[string]bool, len(l.BoundaryPunctuation))
	for _, p := range l.BoundaryPunctuation {
		r, size := utf8.DecodeRuneInString(p)
		if size != len(p) || r == utf8.RuneError {
			errs = append(errs, fmt.Errorf("boundary_punctuation: %q is not a single rune", p))
			continue
		}
		if unicode.IsSpace(r) || unicode.IsLetter(r) || unicode.IsDigit(r) {
			errs = append(errs, fmt.Errorf("boundary_punctuation: %q is not punctuation", p))
		}
		if seen[p] {
			errs = append(errs, fmt.Errorf("boundary_punctuation: duplicate glyph %q", p))
		}
		seen[p] = true
	}
	return errs
}

func (l *Lexicon) validateLiteral(field, s string) []error {
	var errs []error
	if strings.Join(strings.Fields(s), " ") != s {
		errs = append(errs, fmt.Errorf("%s: %q has irregular whitespace", field, s))
	}
	for _, p := range l.BoundaryPunctuation {
		if p != "" && strings.Contains(s, p) {
			errs = append(errs, fmt.Errorf("%s: %q contains boundary punctuation %q", field, s, p))
		}
	}
	return errs
}
