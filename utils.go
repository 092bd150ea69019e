package fixedstr

import "unsafe"

// arrayBytes aliases the backing array as a []byte without copying.
// Callers must not let the slice outlive *arr.
func arrayBytes[A ByteArray](arr *A) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(arr)), len(*arr))
}

// aliasString converts b to a string sharing the same memory.
// b must not be mutated while the string is in use.
func aliasString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
