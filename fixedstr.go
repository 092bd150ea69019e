// Package fixedstr provides a fixed-length, inline UTF-8 string value type.
//
// The byte length of a String is part of its type: fixedstr.String[[12]byte]
// always holds exactly 12 bytes of valid UTF-8. Values are plain data with no
// pointer inside, so they copy by value, live on the stack, and work as map
// keys. Literal declarations can be generated with the fixedstrgen tool so
// callers never count lengths by hand.
//
// The ByteArray constraint covers lengths 0 through 99, the widest union the
// compiler accepts in a single constraint.
package fixedstr

//go:generate go run ./main -sizes 99 -pkg fixedstr -o sizes.go

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrLengthMismatch  = errors.New("fixedstr: length mismatch")
	ErrInvalidEncoding = errors.New("fixedstr: invalid UTF-8 content")
)

// LengthMismatchError reports a fallible construction whose input length did
// not match the target array length. It matches ErrLengthMismatch under
// errors.Is.
type LengthMismatchError struct {
	Expected int // array length of the target type
	Actual   int // byte length of the input
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("fixedstr: length mismatch: want %d bytes, have %d", e.Expected, e.Actual)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

// String is a fixed-length UTF-8 string backed by the byte array A.
// The zero value is len(A) NUL bytes, which is valid UTF-8.
// Content is immutable after construction.
type String[A ByteArray] struct {
	arr A
}

// FromString builds a String from s. It fails with a LengthMismatchError if
// len(s) differs from the array length of A, and with ErrInvalidEncoding if s
// is not valid UTF-8. s is copied, never aliased.
func FromString[A ByteArray](s string) (String[A], error) {
	var out String[A]
	dst := arrayBytes(&out.arr)
	if len(s) != len(dst) {
		return String[A]{}, &LengthMismatchError{Expected: len(dst), Actual: len(s)}
	}
	if !utf8.ValidString(s) {
		return String[A]{}, ErrInvalidEncoding
	}
	copy(dst, s)
	return out, nil
}

// FromBytes builds a String from b with the same checks as FromString.
// b is copied and is not mutated on either path.
func FromBytes[A ByteArray](b []byte) (String[A], error) {
	var out String[A]
	dst := arrayBytes(&out.arr)
	if len(b) != len(dst) {
		return String[A]{}, &LengthMismatchError{Expected: len(dst), Actual: len(b)}
	}
	if !utf8.Valid(b) {
		return String[A]{}, ErrInvalidEncoding
	}
	copy(dst, b)
	return out, nil
}

// FromArray builds a String directly from a backing array. The length is
// correct by construction; only UTF-8 well-formedness is checked.
func FromArray[A ByteArray](arr A) (String[A], error) {
	out := String[A]{arr: arr}
	if !utf8.Valid(arrayBytes(&out.arr)) {
		return String[A]{}, ErrInvalidEncoding
	}
	return out, nil
}

// Must is FromString that panics on error. Generated literal declarations use
// it with a length derived from the literal itself, so that path cannot fail.
func Must[A ByteArray](s string) String[A] {
	v, err := FromString[A](s)
	if err != nil {
		panic(err)
	}
	return v
}

// Size reports the byte length of the instantiation without building a value.
func Size[A ByteArray]() int {
	var a A
	return len(a)
}

// Len reports the byte length of s, always equal to the array length of A.
func (s String[A]) Len() int { return len(s.arr) }

// View returns a zero-copy string aliasing the backing array. It never
// allocates; the result is valid for the lifetime of *s. Use String for a
// copy that outlives the value.
func (s *String[A]) View() string {
	return aliasString(arrayBytes(&s.arr))
}

// String returns a copied string of the content. Implements fmt.Stringer.
func (s String[A]) String() string {
	return string(arrayBytes(&s.arr))
}

// Bytes returns a copy of the content.
func (s String[A]) Bytes() []byte {
	b := make([]byte, len(s.arr))
	copy(b, arrayBytes(&s.arr))
	return b
}

// Array returns the backing array by value.
func (s String[A]) Array() A { return s.arr }

// Equal reports whether s and o hold identical bytes. Equivalent to ==.
func (s String[A]) Equal(o String[A]) bool { return s.arr == o.arr }

// EqualString compares s against a plain string of any length. A length
// difference means unequal, never an error.
func (s *String[A]) EqualString(v string) bool { return s.View() == v }

// Equal compares two fixed strings of possibly different lengths.
// Different lengths compare unequal.
func Equal[A, B ByteArray](a String[A], b String[B]) bool {
	return a.View() == b.View()
}

// Compare orders two fixed strings of possibly different lengths bytewise,
// returning -1, 0, or +1 as strings.Compare does.
func Compare[A, B ByteArray](a String[A], b String[B]) int {
	return strings.Compare(a.View(), b.View())
}
