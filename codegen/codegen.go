// Package codegen renders a compiled set of property tables to Go source.
//
// The emitter is a pure function of the generation result: given the same
// result twice it produces byte-identical output, and nothing is written
// anywhere but the returned buffer.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"unicode"

	"github.com/unitab/unitab/table"
)

// Generate renders res to gofmt'ed Go source.
func Generate(res *table.GenerationResult) ([]byte, error) {
	data, err := build(res)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	err = fileTmpl.Execute(&b, data)
	if err != nil {
		return nil, fmt.Errorf("cannot render the table source: %w", err)
	}
	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("cannot format the generated source: %w", err)
	}
	return src, nil
}

type fileData struct {
	Package  string
	Sources  []string
	Families []familyData
}

type familyData struct {
	Boolean   bool
	RawName   string // family name as written in the UCD, e.g. Core_Property
	TypeName  string // emitted enum type, e.g. CoreProperty
	VarPrefix string // prefix of the table/name variables, e.g. coreProperty
	Consts    []string
	Names     []string // raw enum member names, in constant order

	// Boolean families: one table per property.
	Props []propData

	// Valued families: one shared table, values parallel to rows.
	Rows []rowData
}

type propData struct {
	Name  string // raw property name
	Const string
	Var   string
	Rows  []rowData
}

type rowData struct {
	Lo      string // preformatted hex literal
	Hi      string
	Value   string // constant identifier, valued families only
	Comment string
}

func build(res *table.GenerationResult) (*fileData, error) {
	if res.Package == "" {
		return nil, fmt.Errorf("the generation result names no target package")
	}
	data := &fileData{
		Package: res.Package,
		Sources: res.Sources,
	}
	for i := range res.Families {
		fam := &res.Families[i]
		typeName := goIdent(fam.Name)
		if typeName == "" {
			return nil, fmt.Errorf("family name %q yields no Go identifier", fam.Name)
		}
		fd := familyData{
			Boolean:   fam.Kind == table.Boolean,
			RawName:   fam.Name,
			TypeName:  typeName,
			VarPrefix: lowerFirst(typeName),
		}
		if fam.Kind == table.Boolean {
			for _, p := range fam.Properties {
				ident := goIdent(p.Name)
				if ident == "" {
					return nil, fmt.Errorf("property name %q of %v yields no Go identifier", p.Name, fam.Name)
				}
				pd := propData{
					Name:  p.Name,
					Const: typeName + ident,
					Var:   lowerFirst(typeName) + ident,
				}
				for _, e := range p.Entries {
					pd.Rows = append(pd.Rows, row(e.Range, "", e.Comment))
				}
				fd.Consts = append(fd.Consts, pd.Const)
				fd.Names = append(fd.Names, p.Name)
				fd.Props = append(fd.Props, pd)
			}
		} else {
			consts := map[string]string{}
			for _, v := range fam.Values {
				ident := goIdent(v)
				if ident == "" {
					return nil, fmt.Errorf("value tag %q of %v yields no Go identifier", v, fam.Name)
				}
				consts[v] = typeName + ident
				fd.Consts = append(fd.Consts, typeName+ident)
				fd.Names = append(fd.Names, v)
			}
			for _, e := range fam.Entries {
				c, ok := consts[e.Value]
				if !ok {
					// Cannot happen when the value set was derived from
					// the entries themselves.
					return nil, fmt.Errorf("value tag %q of %v is not enumerated", e.Value, fam.Name)
				}
				fd.Rows = append(fd.Rows, row(e.Range, c, e.Comment))
			}
		}
		data.Families = append(data.Families, fd)
	}
	return data, nil
}

func row(iv table.Interval, value, comment string) rowData {
	return rowData{
		Lo:      fmt.Sprintf("0x%04X", iv.Lo),
		Hi:      fmt.Sprintf("0x%04X", iv.Hi),
		Value:   value,
		Comment: strings.TrimSpace(comment),
	}
}

// goIdent converts a UCD symbolic name to an exported Go identifier:
// `_`, `-` and spaces are dropped and the following letter upper-cased,
// everything that is not a letter or digit is dropped.
func goIdent(s string) string {
	var b strings.Builder
	up := true
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ':
			up = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if up {
				r = unicode.ToUpper(r)
				up = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return ""
	}
	rs := []rune(s)
	rs[0] = unicode.ToLower(rs[0])
	return string(rs)
}
