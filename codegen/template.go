package codegen

import "text/template"

var fileTmpl = template.Must(template.New("tables").Parse(
	`// Code generated by unitab. DO NOT EDIT.
//
// Sources:
{{- range .Sources}}
//	{{.}}
{{- end}}

package {{.Package}}

// interval is an inclusive range of code points.
type interval struct {
	lo rune
	hi rune
}

// search returns the index of the interval in tab that contains r, or -1.
// tab must be sorted ascending by lo and pairwise disjoint.
func search(tab []interval, r rune) int {
	if len(tab) == 0 {
		return -1
	}
	lo, hi := 0, len(tab)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case tab[mid].hi < r:
			lo = mid + 1
		case tab[mid].lo > r:
			hi = mid - 1
		default:
			return mid
		}
	}
	if lo == hi && tab[lo].lo <= r && r <= tab[lo].hi {
		return lo
	}
	return -1
}
{{range .Families}}{{$f := .}}{{if .Boolean}}
// {{$f.TypeName}} enumerates the properties of {{$f.RawName}}.
type {{$f.TypeName}} int

const (
{{- range $i, $c := $f.Consts}}
	{{$c}}{{if eq $i 0}} {{$f.TypeName}} = iota{{end}}
{{- end}}
)

var {{$f.VarPrefix}}Names = [...]string{
{{- range $f.Names}}
	"{{.}}",
{{- end}}
}

// String returns the UCD name of the property.
func (p {{$f.TypeName}}) String() string {
	if p < 0 || int(p) >= len({{$f.VarPrefix}}Names) {
		return "{{$f.TypeName}}(invalid)"
	}
	return {{$f.VarPrefix}}Names[p]
}

// Contains reports whether r has the property p.
func (p {{$f.TypeName}}) Contains(r rune) bool {
	switch p {
{{- range $f.Props}}
	case {{.Const}}:
		return search({{.Var}}, r) >= 0
{{- end}}
	}
	return false
}
{{- range $f.Props}}

// {{.Name}}
var {{.Var}} = []interval{
{{- range .Rows}}
	{{"{"}}{{.Lo}}, {{.Hi}}{{"}"}},{{if .Comment}} // {{.Comment}}{{end}}
{{- end}}
}
{{- end}}
{{else}}
// {{$f.TypeName}} enumerates the values of {{$f.RawName}}.
type {{$f.TypeName}} int

const (
{{- range $i, $c := $f.Consts}}
	{{$c}}{{if eq $i 0}} {{$f.TypeName}} = iota{{end}}
{{- end}}
)

var {{$f.VarPrefix}}Names = [...]string{
{{- range $f.Names}}
	"{{.}}",
{{- end}}
}

// String returns the UCD name of the value.
func (v {{$f.TypeName}}) String() string {
	if v < 0 || int(v) >= len({{$f.VarPrefix}}Names) {
		return "{{$f.TypeName}}(invalid)"
	}
	return {{$f.VarPrefix}}Names[v]
}

var {{$f.VarPrefix}}Ranges = []interval{
{{- range $f.Rows}}
	{{"{"}}{{.Lo}}, {{.Hi}}{{"}"}},{{if .Comment}} // {{.Comment}}{{end}}
{{- end}}
}

var {{$f.VarPrefix}}Values = []{{$f.TypeName}}{
{{- range $f.Rows}}
	{{.Value}},
{{- end}}
}

// Lookup{{$f.TypeName}} returns the {{$f.RawName}} value of r. The second
// result is false when r is not listed in the table.
func Lookup{{$f.TypeName}}(r rune) ({{$f.TypeName}}, bool) {
	i := search({{$f.VarPrefix}}Ranges, r)
	if i < 0 {
		return 0, false
	}
	return {{$f.VarPrefix}}Values[i], true
}
{{end}}{{end}}`))
