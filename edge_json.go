package uroman

import (
	"bytes"
	"encoding/json"
)

// jsonObject renders an Edge (and, for Numeric edges, its payload) into
// the field set spec.md §6 requires: "start, end, txt, type and, when
// numeric, its payload (orig_txt, value, fraction (as "n/d"), num_base,
// base_multiplier, script, is_large_power, active, value_s, n_decimals)".
func (e *Edge) jsonObject() map[string]any {
	m := map[string]any{
		"start": e.Start,
		"end":   e.End,
		"txt":   e.Txt,
		"type":  string(e.Type),
	}
	if n := e.Num; n != nil {
		m["orig_txt"] = n.OrigTxt
		if n.Value != nil {
			m["value"] = *n.Value
		}
		if n.HasFraction() {
			m["fraction"] = formatFraction(*n.FractionNum, *n.FractionDen)
		}
		if n.NumBase != nil {
			m["num_base"] = *n.NumBase
		}
		if n.BaseMultiplier != nil {
			m["base_multiplier"] = *n.BaseMultiplier
		}
		if n.Script != "" {
			m["script"] = n.Script
		}
		m["is_large_power"] = n.IsLargePower
		m["active"] = n.Active
		if n.ValueS != nil {
			m["value_s"] = *n.ValueS
		}
		if n.NDecimals != nil {
			m["n_decimals"] = *n.NDecimals
		}
	}
	return m
}

func formatFraction(num, den int64) string {
	return jsonItoa(num) + "/" + jsonItoa(den)
}

func jsonItoa(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// MarshalJSON makes Edge itself usable directly in json.Marshal calls for
// the Edges output format.
func (e *Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.jsonObject())
}

// edgeWithAlts is the per-edge shape for the ALTS and Lattice formats: the
// chosen (or lattice) edge, plus every other edge sharing its (start,end)
// span, sorted by cost (spec.md §4.8 "ALTS: chosen path plus, per edge,
// the set of alternative edges with the same (start,end) ... Lattice: all
// edges in [lo,hi) plus alternatives").
type edgeWithAlts struct {
	edge *Edge
	alts []*Edge
}

func (ea edgeWithAlts) MarshalJSON() ([]byte, error) {
	m := ea.edge.jsonObject()
	if len(ea.alts) > 0 {
		altObjs := make([]map[string]any, len(ea.alts))
		for i, a := range ea.alts {
			altObjs[i] = a.jsonObject()
		}
		m["alts"] = altObjs
	}
	return json.Marshal(m)
}

// marshalEdgesPretty renders a slice of JSON marshalers as a pretty-printed
// JSON array, matching the original's `serde_json::to_string_pretty`.
func marshalEdgesPretty(items []json.Marshaler) (string, error) {
	raws := make([]json.RawMessage, len(items))
	for i, it := range items {
		b, err := it.MarshalJSON()
		if err != nil {
			return "", err
		}
		raws[i] = b
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raws); err != nil {
		return "", err
	}
	out := buf.String()
	for len(out) > 0 && (out[len(out)-1] == '\n') {
		out = out[:len(out)-1]
	}
	return out, nil
}
