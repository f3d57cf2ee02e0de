// Package table describes the ranged integer types the generator emits.
package table

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("invalid type spec")

// TypeSpec describes one bounded integer type.
type TypeSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Lower       int    `yaml:"lower"`
	Upper       int    `yaml:"upper"`
	Default     int    `yaml:"default"`
}

func (s TypeSpec) InRange(v int) bool {
	return v >= s.Lower && v <= s.Upper
}

// Interval renders the closed range as lower...upper.
func (s TypeSpec) Interval() string {
	return fmt.Sprintf("%d...%d", s.Lower, s.Upper)
}

var builtin = []TypeSpec{
	{"Fine", "Fine tuning", -63, 63, 0},
	{"EffectDepth", "Effect depth", 0, 100, 0},
	{"EffectPath", "Effect path", 1, 4, 1},
	{"Resonance", "Resonance", 0, 31, 0},
	{"Gain", "Gain", 1, 63, 1},
	{"BenderPitch", "Bender pitch", -12, 12, 0},
	{"BenderCutoff", "Bender cutoff", 0, 31, 0},
	{"MIDINote", "MIDI note", 0, 127, 60},
	{"PatchNumber", "Patch number", 0, 127, 0},
	{"Transpose", "Transpose", -24, 24, 0},
}

// Builtin returns a copy of the K5000 parameter table in declaration order.
func Builtin() []TypeSpec {
	specs := make([]TypeSpec, len(builtin))
	copy(specs, builtin)
	return specs
}

// Validate rejects tables the emitter cannot turn into compilable source.
// An out-of-range default is left for the generated guard to catch; see
// DefaultProblems.
func Validate(specs []TypeSpec) error {
	var errs []error
	seen := map[string]bool{}
	for i, s := range specs {
		switch {
		case s.Name == "":
			errs = append(errs, fmt.Errorf("%w: entry %d has no name", ErrInvalidSpec, i))
		case !token.IsIdentifier(s.Name) || !token.IsExported(s.Name):
			errs = append(errs, fmt.Errorf("%w: %q is not an exported Go identifier", ErrInvalidSpec, s.Name))
		case seen[s.Name]:
			errs = append(errs, fmt.Errorf("%w: %q is declared more than once", ErrInvalidSpec, s.Name))
		}
		seen[s.Name] = true
		if s.Lower > s.Upper {
			errs = append(errs, fmt.Errorf("%w: %q has lower bound %d above upper bound %d", ErrInvalidSpec, s.Name, s.Lower, s.Upper))
		}
	}
	return errors.Join(errs...)
}

// DefaultProblems describes every spec whose default lies outside its range.
func DefaultProblems(specs []TypeSpec) []string {
	var problems []string
	for _, s := range specs {
		if !s.InRange(s.Default) {
			problems = append(problems, fmt.Sprintf("%s: default %d is outside %s", s.Name, s.Default, s.Interval()))
		}
	}
	return problems
}

type document struct {
	Types []TypeSpec `yaml:"types"`
}

// Load decodes a YAML table of the form
//
//	types:
//	  - name: Fine
//	    description: Fine tuning
//	    lower: -63
//	    upper: 63
//	    default: 0
//
// and validates it. Entry order is preserved.
func Load(r io.Reader) ([]TypeSpec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty table", ErrInvalidSpec)
		}
		return nil, fmt.Errorf("decoding table: %w", err)
	}
	if err := Validate(doc.Types); err != nil {
		return nil, err
	}
	return doc.Types, nil
}

func LoadFile(path string) ([]TypeSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	specs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}
