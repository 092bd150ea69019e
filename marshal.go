package fixedstr

import (
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler. Through it, encoding/json
// renders a String as an ordinary JSON string.
func (s String[A]) MarshalText() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It runs the fallible
// construction path, so a length or encoding failure leaves *s untouched.
func (s *String[A]) UnmarshalText(text []byte) error {
	v, err := FromBytes[A](text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s String[A]) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same failure contract as
// UnmarshalText.
func (s *String[A]) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	v, err := FromString[A](raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
