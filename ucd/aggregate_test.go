package ucd

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func TestAggregate_Boolean(t *testing.T) {
	src := `# Derived Property: Uppercase
#  Generated from: Lu + Other_Uppercase

0041..005A    ; Uppercase # L&  [26] LATIN CAPITAL LETTER A..LATIN CAPITAL LETTER Z
00C0..00D6    ; Uppercase # L&  [23] LATIN CAPITAL LETTER A WITH GRAVE..LATIN CAPITAL LETTER O WITH DIAERESIS

# Derived Property: Lowercase

0061..007A    ; Lowercase # L&  [26] LATIN SMALL LETTER A..LATIN SMALL LETTER Z
00AA          ; Lowercase # Lo       FEMININE ORDINAL INDICATOR
`
	agg, err := Aggregate(strings.NewReader(src), SourceSpec{
		Path:   "DerivedCoreProperties.txt",
		Kind:   KindBoolean,
		Family: "Core_Property",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(agg.Names, []string{"Uppercase", "Lowercase"}) {
		t.Fatalf("unexpected group names; got: %v", agg.Names)
	}
	want := map[string][]Record{
		"Uppercase": {
			{Lo: 0x0041, Hi: 0x005A, Token: "Uppercase", Comment: "L&  [26] LATIN CAPITAL LETTER A..LATIN CAPITAL LETTER Z", Line: 4},
			{Lo: 0x00C0, Hi: 0x00D6, Token: "Uppercase", Comment: "L&  [23] LATIN CAPITAL LETTER A WITH GRAVE..LATIN CAPITAL LETTER O WITH DIAERESIS", Line: 5},
		},
		"Lowercase": {
			{Lo: 0x0061, Hi: 0x007A, Token: "Lowercase", Comment: "L&  [26] LATIN SMALL LETTER A..LATIN SMALL LETTER Z", Line: 9},
			{Lo: 0x00AA, Hi: 0x00AA, Token: "Lowercase", Comment: "Lo       FEMININE ORDINAL INDICATOR", Line: 10},
		},
	}
	if !reflect.DeepEqual(agg.Groups, want) {
		t.Fatalf("unexpected groups; want: %#v, got: %#v", want, agg.Groups)
	}
	if agg.Skipped != 0 {
		t.Fatalf("unexpected skipped count; got: %v", agg.Skipped)
	}
}

func TestAggregate_GroupedByMarker(t *testing.T) {
	src := `# General_Category=Lu
0041..005A    ; Lu # ignored
00C0..00D6    ; Lu

# General_Category=Ll
0061..007A    ; Ll
`
	agg, err := Aggregate(strings.NewReader(src), SourceSpec{
		Path:   "DerivedGeneralCategory.txt",
		Kind:   KindBoolean,
		Family: "General_Category",
		Marker: regexp.MustCompile(`^#\s*General_Category=(\w+)\s*$`),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(agg.Names, []string{"Lu", "Ll"}) {
		t.Fatalf("unexpected group names; got: %v", agg.Names)
	}
	if len(agg.Groups["Lu"]) != 2 || len(agg.Groups["Ll"]) != 1 {
		t.Fatalf("unexpected group sizes; got: %v", agg.Groups)
	}
}

func TestAggregate_RecordsBeforeTheFirstMarkerGroupByToken(t *testing.T) {
	src := `0041..005A    ; Lu
# General_Category=Ll
0061..007A    ; anything
`
	agg, err := Aggregate(strings.NewReader(src), SourceSpec{
		Kind:   KindBoolean,
		Family: "General_Category",
		Marker: regexp.MustCompile(`^#\s*General_Category=(\w+)\s*$`),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(agg.Names, []string{"Lu", "Ll"}) {
		t.Fatalf("unexpected group names; got: %v", agg.Names)
	}
}

func TestAggregate_Valued(t *testing.T) {
	src := `# EastAsianWidth extract

0020..007E    ; Na # ASCII
1100..115F    ; W  # HANGUL CHOSEONG KIYEOK..HANGUL CHOSEONG FILLER
20A9          ; H  # WON SIGN
`
	agg, err := Aggregate(strings.NewReader(src), SourceSpec{
		Path:   "EastAsianWidth.txt",
		Kind:   KindValued,
		Family: "East_Asian_Width",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(agg.Names, []string{"East_Asian_Width"}) {
		t.Fatalf("unexpected group names; got: %v", agg.Names)
	}
	recs := agg.Groups["East_Asian_Width"]
	if len(recs) != 3 {
		t.Fatalf("unexpected record count; got: %v", len(recs))
	}
	tokens := []string{recs[0].Token, recs[1].Token, recs[2].Token}
	if !reflect.DeepEqual(tokens, []string{"Na", "W", "H"}) {
		t.Fatalf("unexpected value tokens; got: %v", tokens)
	}
}

func TestAggregate_SkippedLinesAreCounted(t *testing.T) {
	src := `All code points not explicitly listed default to Neutral.
0041 ; Foo
this is prose, not data
`
	agg, err := Aggregate(strings.NewReader(src), SourceSpec{
		Kind:   KindBoolean,
		Family: "Test",
	})
	if err != nil {
		t.Fatal(err)
	}
	if agg.Skipped != 2 {
		t.Fatalf("unexpected skipped count; want: 2, got: %v", agg.Skipped)
	}
	if len(agg.Groups["Foo"]) != 1 {
		t.Fatalf("the data line between prose lines was lost; got: %v", agg.Groups)
	}
}
