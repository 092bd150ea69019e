// Package gen implements the fixedstrgen literal scanner and emitter.
//
// It derives the array length of fixedstr literals from the literal text
// itself, so callers never count bytes by hand. Length annotations written
// next to a literal are verified here, at generation time: a mismatch fails
// the build instead of surfacing at runtime.
package gen

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Directive is the comment prefix recognized by the scanner, e.g.
//
//	//fixedstr:str Greeting = "Hello World!"
//	//fixedstr:str Greeting[12] = "Hello World!"
const Directive = "//fixedstr:str"

var (
	ErrMalformedDirective = errors.New("fixedstrgen: malformed directive")
	ErrBadIdentifier      = errors.New("fixedstrgen: literal name is not a valid identifier")
	ErrDuplicateName      = errors.New("fixedstrgen: duplicate literal name")
	ErrInvalidEncoding    = errors.New("fixedstrgen: literal is not valid UTF-8")
)

// MismatchError reports an explicit length annotation that disagrees with the
// literal's actual byte count.
type MismatchError struct {
	Name      string
	Annotated int
	Actual    int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("fixedstrgen: %s: annotated length %d but literal is %d bytes",
		e.Name, e.Annotated, e.Actual)
}

// Literal is one fixed-string declaration to generate.
type Literal struct {
	Name  string
	Value string
	// Annotated is the explicit length annotation, or -1 when the length is
	// inferred from Value alone.
	Annotated int
}

// Len returns the byte count the generated array type will carry.
func (l Literal) Len() int { return len(l.Value) }

// Check validates name, encoding, and any length annotation.
func (l Literal) Check() error {
	if !token.IsIdentifier(l.Name) {
		return fmt.Errorf("%w: %q", ErrBadIdentifier, l.Name)
	}
	if !utf8.ValidString(l.Value) {
		return fmt.Errorf("%w: %s", ErrInvalidEncoding, l.Name)
	}
	if l.Annotated >= 0 && l.Annotated != len(l.Value) {
		return &MismatchError{Name: l.Name, Annotated: l.Annotated, Actual: len(l.Value)}
	}
	return nil
}

// ParseDirective parses a single comment line. ok is false when the line is
// not a fixedstr directive at all.
func ParseDirective(text string) (lit Literal, ok bool, err error) {
	if !strings.HasPrefix(text, Directive) {
		return Literal{}, false, nil
	}
	rest := text[len(Directive):]
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return Literal{}, false, nil
	}
	lhs, rhs, found := strings.Cut(rest, "=")
	if !found {
		return Literal{}, true, fmt.Errorf("%w: missing '=': %s", ErrMalformedDirective, text)
	}
	name := strings.TrimSpace(lhs)
	lit.Annotated = -1
	if i := strings.IndexByte(name, '['); i >= 0 {
		if !strings.HasSuffix(name, "]") {
			return Literal{}, true, fmt.Errorf("%w: unclosed length annotation: %s", ErrMalformedDirective, text)
		}
		n, aerr := strconv.Atoi(name[i+1 : len(name)-1])
		if aerr != nil || n < 0 {
			return Literal{}, true, fmt.Errorf("%w: bad length annotation: %s", ErrMalformedDirective, text)
		}
		lit.Annotated = n
		name = name[:i]
	}
	lit.Name = name
	quoted := strings.TrimSpace(rhs)
	value, uerr := strconv.Unquote(quoted)
	if uerr != nil {
		return Literal{}, true, fmt.Errorf("%w: bad string literal %s: %v", ErrMalformedDirective, quoted, uerr)
	}
	lit.Value = value
	if cerr := lit.Check(); cerr != nil {
		return Literal{}, true, cerr
	}
	return lit, true, nil
}

// ScanDir collects directives from every .go file directly under dir.
func ScanDir(dir string) ([]Literal, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fixedstrgen: read dir: %w", err)
	}
	fset := token.NewFileSet()
	var lits []Literal
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".go") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("fixedstrgen: parse %s: %w", path, err)
		}
		for _, cg := range f.Comments {
			for _, c := range cg.List {
				lit, ok, err := ParseDirective(c.Text)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", path, err)
				}
				if !ok {
					continue
				}
				if seen[lit.Name] {
					return nil, fmt.Errorf("%w: %s", ErrDuplicateName, lit.Name)
				}
				seen[lit.Name] = true
				lits = append(lits, lit)
			}
		}
	}
	return lits, nil
}

// Manifest is the YAML alternative to in-source directives.
type Manifest struct {
	Package  string          `yaml:"package"`
	Import   string          `yaml:"import"`
	Literals []ManifestEntry `yaml:"literals"`
}

// ManifestEntry mirrors one directive. Len is the optional annotation.
type ManifestEntry struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
	Len   *int   `yaml:"len"`
}

// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (*Manifest, []Literal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("fixedstrgen: read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, nil, fmt.Errorf("fixedstrgen: parse manifest: %w", err)
	}
	lits := make([]Literal, 0, len(m.Literals))
	seen := make(map[string]bool)
	for _, e := range m.Literals {
		lit := Literal{Name: e.Name, Value: e.Value, Annotated: -1}
		if e.Len != nil {
			lit.Annotated = *e.Len
		}
		if err := lit.Check(); err != nil {
			return nil, nil, err
		}
		if seen[lit.Name] {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateName, lit.Name)
		}
		seen[lit.Name] = true
		lits = append(lits, lit)
	}
	return &m, lits, nil
}
