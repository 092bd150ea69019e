// Command fixedstrgen generates fixedstr literal declarations and the
// ByteArray size constraint.
//
// Usage:
//
//	fixedstrgen -dir . -pkg mypkg -o literals_gen.go
//	fixedstrgen -config literals.yaml -o literals_gen.go
//	fixedstrgen -sizes 99 -pkg fixedstr -o sizes.go
package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"github.com/rawbytedev/fixedstr/gen"
)

const fixedstrPath = "github.com/rawbytedev/fixedstr"

func main() {
	var (
		dir        = flag.String("dir", ".", "directory to scan for //fixedstr:str directives")
		config     = flag.String("config", "", "YAML manifest instead of directive scanning")
		sizes      = flag.Int("sizes", -1, "emit the ByteArray constraint for lengths 0..N")
		out        = flag.String("o", "", "output file (default stdout)")
		pkg        = flag.String("pkg", "", "package name for the generated file")
		importPath = flag.String("import", fixedstrPath, "fixedstr import path; empty for in-package output")
	)
	flag.Parse()

	var buf bytes.Buffer
	switch {
	case *sizes >= 0:
		if *pkg == "" {
			log.Fatal("fixedstrgen: -sizes requires -pkg")
		}
		if err := gen.EmitSizes(&buf, *pkg, *sizes); err != nil {
			log.Fatal(err)
		}
	case *config != "":
		m, lits, err := gen.LoadManifest(*config)
		if err != nil {
			log.Fatal(err)
		}
		name := m.Package
		if *pkg != "" {
			name = *pkg
		}
		if name == "" {
			log.Fatal("fixedstrgen: manifest has no package and -pkg not set")
		}
		ip := *importPath
		if m.Import != "" {
			ip = m.Import
		}
		if err := gen.Emit(&buf, name, ip, lits); err != nil {
			log.Fatal(err)
		}
	default:
		if *pkg == "" {
			log.Fatal("fixedstrgen: -dir mode requires -pkg")
		}
		if *pkg == "fixedstr" {
			// in-package output needs no self import
			*importPath = ""
		}
		lits, err := gen.ScanDir(*dir)
		if err != nil {
			log.Fatal(err)
		}
		if len(lits) == 0 {
			log.Fatalf("fixedstrgen: no directives found in %s", *dir)
		}
		if err := gen.Emit(&buf, *pkg, *importPath, lits); err != nil {
			log.Fatal(err)
		}
	}

	if *out == "" {
		os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
}
