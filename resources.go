package uroman

import (
	_ "embed"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/dbryar/uroman-go/internal/pinyin"
)

//go:embed data/romanization-auto-table.txt
var romanizationAutoTable string

//go:embed data/UnicodeDataOverwrite.txt
var unicodeDataOverwrite string

//go:embed data/romanization-table.txt
var romanizationTable string

//go:embed data/Chinese_to_Pinyin.txt
var chineseToPinyin string

//go:embed data/Scripts.txt
var scriptsTable string

//go:embed data/UnicodeDataProps.txt
var unicodeDataProps string

//go:embed data/NumProps.jsonl
var numPropsJSONL string

// loadResources parses every embedded table into rs/props, replaying the
// original's `load_resource_files` order exactly: auto-table (ud) before
// the hand-overwrite table (ow) before the manual table (man), so the
// RuleStore's load-time replacement invariant (spec.md §3/§9) sees them in
// the order that makes "man" entries win. Malformed embedded data is a
// build-time asset contract violation, so parse failures panic rather than
// propagating an error (mirrors `include_str!` + `.expect(...)` upstream).
//
// Grounded on original_source/src/lib.rs `load_resource_files` and its
// file-specific loader methods.
func loadResources(rs *RuleStore, props *UnicodeProps) {
	loadRomFile(rs, props, romanizationAutoTable, "ud")
	loadRomFile(rs, props, unicodeDataOverwrite, "ow")
	loadRomFile(rs, props, romanizationTable, "man")
	loadChinesePinyin(rs, chineseToPinyin)
	loadScriptFile(props, scriptsTable)
	loadUnicodeDataProps(props, unicodeDataProps)
	loadNumProps(props, numPropsJSONL)
}

// loadRomFile parses one romanization table: lines of
// "s<TAB>t[<TAB>flags...]", where flags is a space-separated set of
// "::name value" directives (context predicates, lcode restriction, or
// the minus/plus-sign and fraction-connector markers).
func loadRomFile(rs *RuleStore, props *UnicodeProps, file string, provenance string) {
	for _, line := range strings.Split(file, "\n") {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 2 {
			continue
		}
		s, t := fields[0], fields[1]
		rule := &Rule{S: s, T: t, Prov: provenance}
		if len(fields) == 3 {
			applyRuleFlags(rule, fields[2])
		}
		if rule.IsMinusSign {
			props.minusSigns[s] = true
		}
		if rule.IsPlusSign {
			props.plusSigns[s] = true
		}
		if rule.FractionConnector {
			props.fractionConn[s] = true
		}
		rs.AddRule(rule)
	}
}

// applyRuleFlags decodes the "::slot value" directives trailing a
// romanization-table line.
func applyRuleFlags(r *Rule, flags string) {
	if v, ok := slotValueInDoubleColonDelList(flags, "lcode"); ok {
		r.Lcodes = make(map[string]bool)
		for _, lc := range strings.FieldsFunc(v, func(c rune) bool { return c == ',' || c == ' ' }) {
			r.Lcodes[lc] = true
		}
	}
	if v, ok := slotValueInDoubleColonDelList(flags, "left"); ok {
		r.LeftContexts = append(r.LeftContexts, ContextPredicate{Kind: PredRegexLeft, Pattern: regexp.MustCompile(v + "$")})
	}
	if v, ok := slotValueInDoubleColonDelList(flags, "right"); ok {
		r.RightContexts = append(r.RightContexts, ContextPredicate{Kind: PredRegexRight, Pattern: regexp.MustCompile("^" + v)})
	}
	if _, ok := slotValueInDoubleColonDelList(flags, "start-of-string"); ok {
		r.LeftContexts = append(r.LeftContexts, ContextPredicate{Kind: PredStartOfString})
	}
	if _, ok := slotValueInDoubleColonDelList(flags, "end-of-string"); ok {
		r.RightContexts = append(r.RightContexts, ContextPredicate{Kind: PredEndOfString})
	}
	if _, ok := slotValueInDoubleColonDelList(flags, "minus-sign"); ok {
		r.IsMinusSign = true
	}
	if _, ok := slotValueInDoubleColonDelList(flags, "plus-sign"); ok {
		r.IsPlusSign = true
	}
	if _, ok := slotValueInDoubleColonDelList(flags, "fraction-connector"); ok {
		r.FractionConnector = true
	}
	if _, ok := slotValueInDoubleColonDelList(flags, "large-power"); ok {
		r.IsLargePower = true
	}
}

// loadChinesePinyin parses "hanzi<whitespace>pinyin" lines, de-accenting
// the Pinyin syllable via internal/pinyin before registering it as a
// "rom pinyin"-provenance rule, per original_source/src/lib.rs
// `load_chinese_pinyin_file`.
func loadChinesePinyin(rs *RuleStore, file string) {
	for _, line := range strings.Split(file, "\n") {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		hanzi, accented := fields[0], fields[1]
		rom := pinyin.Deaccent(accented)
		rs.AddRule(NewSimpleRule(hanzi, rom, "rom pinyin"))
	}
}

// loadScriptFile parses Scripts.txt's "::script-name X ::direction Y
// ::abugida-default-vowel a,b ::alt-script-name c,d ::language e,f" lines,
// per original_source/src/lib.rs `load_script_file`.
func loadScriptFile(props *UnicodeProps, file string) {
	for _, line := range strings.Split(file, "\n") {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		name, ok := slotValueInDoubleColonDelList(line, "script-name")
		if !ok {
			continue
		}
		lcName := strings.ToLower(name)
		if _, exists := props.scripts[lcName]; exists {
			continue
		}
		direction, _ := slotValueInDoubleColonDelList(line, "direction")
		vowels := splitCommaList(firstOf(slotValueInDoubleColonDelList(line, "abugida-default-vowel")))
		altNames := splitCommaList(firstOf(slotValueInDoubleColonDelList(line, "alt-script-name")))
		languages := splitCommaList(firstOf(slotValueInDoubleColonDelList(line, "language")))

		sc := &Script{
			Name:                 name,
			Direction:            direction,
			AbugidaDefaultVowels: vowels,
			AltNames:             altNames,
			Languages:            languages,
		}
		props.scripts[lcName] = sc
		for _, alt := range altNames {
			props.scripts[strings.ToLower(alt)] = sc
		}
	}
}

func firstOf(s string, _ bool) string { return s }

func splitCommaList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.FieldsFunc(s, func(c rune) bool { return c == ',' || c == ';' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// loadUnicodeDataProps parses "::char XYZ ::script-name N [::vowel-sign V]
// [::medial-consonant-sign M] [::sign-virama R]" lines, per
// original_source/src/lib.rs `load_unicode_data_props`.
func loadUnicodeDataProps(props *UnicodeProps, file string) {
	for _, line := range strings.Split(file, "\n") {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		scriptName, ok := slotValueInDoubleColonDelList(line, "script-name")
		if !ok {
			continue
		}
		if chars, ok := slotValueInDoubleColonDelList(line, "char"); ok {
			for _, c := range chars {
				props.scriptOf[c] = scriptName
			}
		}
		if vowels, ok := slotValueInDoubleColonDelList(line, "vowel-sign"); ok {
			for _, c := range vowels {
				props.isVowelSign[c] = true
			}
		}
		if medials, ok := slotValueInDoubleColonDelList(line, "medial-consonant-sign"); ok {
			for _, c := range medials {
				props.isMedialSign[c] = true
			}
		}
		if viramas, ok := slotValueInDoubleColonDelList(line, "sign-virama"); ok {
			for _, c := range viramas {
				props.isVirama[c] = true
			}
		}
		if name, ok := slotValueInDoubleColonDelList(line, "name"); ok {
			if chars, ok := slotValueInDoubleColonDelList(line, "char"); ok && len([]rune(chars)) == 1 {
				props.nameOverride[[]rune(chars)[0]] = name
			}
		}
	}
}

// numPropsLine mirrors the JSONL object shape NumProps.jsonl uses: one
// character's numeric metadata per line.
type numPropsLine struct {
	Txt          string   `json:"txt"`
	Value        *float64 `json:"value"`
	Fraction     string   `json:"fraction"`
	Base         *int64   `json:"base"`
	Mult         *float64 `json:"mult"`
	Script       string   `json:"script"`
	IsLargePower bool     `json:"is_large_power"`
	IsMinusSign  bool     `json:"is_minus_sign"`
	IsPlusSign   bool     `json:"is_plus_sign"`
	IsPercent    bool     `json:"is_percent"`
}

// loadNumProps parses NumProps.jsonl, one JSON object per line, per
// original_source/src/lib.rs `load_num_props`.
func loadNumProps(props *UnicodeProps, file string) {
	for _, line := range strings.Split(file, "\n") {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		var npl numPropsLine
		if err := json.Unmarshal([]byte(line), &npl); err != nil {
			panic("uroman: invalid NumProps.jsonl line: " + err.Error())
		}
		runes := []rune(npl.Txt)
		if len(runes) == 0 {
			continue
		}
		c := runes[0]

		np := NumProps{
			Value:        npl.Value,
			Script:       npl.Script,
			Base:         npl.Base,
			Mult:         npl.Mult,
			IsLargePower: npl.IsLargePower,
		}
		if npl.Fraction != "" {
			np.FractionNum, np.FractionDen, _ = parseFraction(npl.Fraction)
		}
		props.numProps[c] = np

		if npl.IsMinusSign {
			props.minusSigns[npl.Txt] = true
		}
		if npl.IsPlusSign {
			props.plusSigns[npl.Txt] = true
		}
		if npl.IsPercent {
			props.percentMarkers[npl.Txt] = true
		}
	}
}
