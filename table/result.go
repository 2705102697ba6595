package table

// Kind distinguishes the two accessor shapes a property family can have.
type Kind int

const (
	// Boolean families answer "does r have this property?" per named
	// property (e.g. the derived core properties).
	Boolean Kind = iota
	// Valued families classify every listed code point into one of a set
	// of value tags sharing one table (e.g. a width category).
	Valued
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Valued:
		return "valued"
	}
	return "unknown"
}

// Property is one named membership table of a boolean family.
type Property struct {
	Name    string
	Entries []Entry[struct{}]
}

// Family groups the tables compiled from one source grouping under the
// name its enumeration is emitted with.
type Family struct {
	Name string
	Kind Kind

	// Source is the path of the data file the family was compiled from.
	Source string

	// Properties holds one membership table per property of a boolean
	// family, in lexicographic name order.
	Properties []Property

	// Values and Entries belong to valued families: the de-duplicated
	// value tags in lexicographic order, and the single (range, value)
	// table all of them share.
	Values  []string
	Entries []Entry[string]
}

// Contains reports whether r has the named property of a boolean family.
// Unknown property names and valued families always miss.
func (f *Family) Contains(property string, r rune) bool {
	for i := range f.Properties {
		if f.Properties[i].Name == property {
			return Contains(f.Properties[i].Entries, r)
		}
	}
	return false
}

// Lookup classifies r against a valued family's table.
func (f *Family) Lookup(r rune) (string, bool) {
	return Search(f.Entries, r)
}

// GenerationResult is the complete, immutable output of one compiler run
// and the only input the emitter consumes. Families are ordered
// lexicographically by name so that emission is deterministic.
type GenerationResult struct {
	Package  string
	Sources  []string
	Families []Family
}

// Family returns the named family, or nil.
func (g *GenerationResult) Family(name string) *Family {
	for i := range g.Families {
		if g.Families[i].Name == name {
			return &g.Families[i]
		}
	}
	return nil
}
