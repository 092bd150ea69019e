package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"path"
	"sort"
	"strconv"
)

const header = "// Code generated by fixedstrgen. DO NOT EDIT.\n\n"

// MaxSize is the largest array length EmitSizes can cover: the gc compiler
// rejects unions with more than 100 terms, and lengths 0..99 fill all 100.
const MaxSize = 99

// Emit writes the generated literal declarations for pkg. importPath is the
// fixedstr module path to import; empty means the output lives in the
// fixedstr package itself and needs no qualifier. Output is name-sorted so
// regeneration is deterministic.
func Emit(w io.Writer, pkg, importPath string, lits []Literal) error {
	sorted := make([]Literal, len(lits))
	copy(sorted, lits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	qual := ""
	if importPath != "" {
		fmt.Fprintf(&buf, "import %q\n\n", importPath)
		qual = path.Base(importPath) + "."
	}
	for _, lit := range sorted {
		if err := lit.Check(); err != nil {
			return err
		}
		fmt.Fprintf(&buf, "// %s holds the literal %s.\n", lit.Name, strconv.Quote(lit.Value))
		fmt.Fprintf(&buf, "var %s = %sMust[[%d]byte](%s)\n\n",
			lit.Name, qual, lit.Len(), strconv.Quote(lit.Value))
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("fixedstrgen: format output: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// EmitSizes writes the ByteArray constraint covering lengths 0 through max.
func EmitSizes(w io.Writer, pkg string, max int) error {
	if max < 0 {
		return fmt.Errorf("fixedstrgen: negative size bound %d", max)
	}
	if max > MaxSize {
		return fmt.Errorf("fixedstrgen: size bound %d exceeds the %d-term union limit (max %d)", max, MaxSize+1, MaxSize)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by fixedstrgen -sizes %d. DO NOT EDIT.\n\n", max)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("// ByteArray is the set of byte array types usable as String backing storage.\n")
	fmt.Fprintf(&buf, "// Lengths 0 through %d are supported.\n", max)
	buf.WriteString("type ByteArray interface {\n")
	for i := 0; i <= max; i++ {
		if i < max {
			fmt.Fprintf(&buf, "\t~[%d]byte |\n", i)
		} else {
			fmt.Fprintf(&buf, "\t~[%d]byte\n", i)
		}
	}
	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}
