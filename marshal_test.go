package fixedstr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type tagged struct {
	Tag  String[[4]byte] `json:"tag" yaml:"tag"`
	Note string          `json:"note" yaml:"note"`
}

func TestJSONRoundTrip(t *testing.T) {
	in := tagged{Tag: Must[[4]byte]("ABCD"), Note: "x"}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tag":"ABCD","note":"x"}`, string(data))

	var out tagged
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSONLengthMismatch(t *testing.T) {
	var out tagged
	err := json.Unmarshal([]byte(`{"tag":"ABCDE"}`), &out)
	require.ErrorIs(t, err, ErrLengthMismatch)
	// nothing was written on the failure path
	assert.Equal(t, String[[4]byte]{}, out.Tag)
}

func TestTextRoundTrip(t *testing.T) {
	s := Must[[5]byte]("hello")
	text, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), text)

	var back String[[5]byte]
	require.NoError(t, back.UnmarshalText(text))
	assert.True(t, s.Equal(back))

	require.ErrorIs(t, back.UnmarshalText([]byte("toolongvalue")), ErrLengthMismatch)
	require.ErrorIs(t, back.UnmarshalText([]byte{0xff, 1, 2, 3, 4}), ErrInvalidEncoding)
	// failed unmarshal keeps the previous content
	assert.Equal(t, "hello", back.View())
}

func TestYAMLRoundTrip(t *testing.T) {
	in := tagged{Tag: Must[[4]byte]("ABCD"), Note: "x"}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out tagged
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestYAMLLengthMismatch(t *testing.T) {
	var out tagged
	err := yaml.Unmarshal([]byte("tag: ABC\n"), &out)
	require.Error(t, err)
	assert.Equal(t, String[[4]byte]{}, out.Tag)
}
