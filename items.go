package intake

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Item is one labeled amount within a multi-item financial field, such as
// a single commitment line.
type Item struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// ItemList is an ordered list of items. Order is the input order: for JSON
// object input the key order of the source text, otherwise the token order.
type ItemList []Item

// Total sums the item amounts in list order. It is always recomputed from
// the items, never stored.
func (l ItemList) Total() float64 {
	var total float64
	for _, it := range l {
		total += it.Amount
	}
	return total
}

// MarshalJSON encodes an empty list as [], never null.
func (l ItemList) MarshalJSON() ([]byte, error) {
	if l == nil {
		l = ItemList{}
	}
	return json.Marshal([]Item(l))
}

// ListOptions control per-field parsing policy.
type ListOptions struct {
	// NonNegative rejects any item with a negative amount.
	NonNegative bool
	// RejectEmpty treats blank input as an error instead of an empty list.
	RejectEmpty bool
	// Symbols overrides the currency-symbol allow-list. Nil means
	// DefaultSymbols.
	Symbols Symbols
}

// itemSepRE splits key:value and bare-amount input into parts.
var itemSepRE = regexp.MustCompile(`[,\n;]+`)

// ParseItems parses a multi-item financial string into an ItemList.
//
// Three shapes are recognized, tried in this order, first match wins:
//
//  1. a JSON object: {"rent": 15000, "groceries": 8000}
//  2. key:value pairs: rent:15000, groceries:8000
//  3. bare amounts: 15000, 8000, 2000 (labeled item_0, item_1, ...)
//
// A string starting with "{" must be a valid JSON object; it never falls
// through to the other shapes. Pairs and amounts may be separated by
// commas, semicolons or newlines. Every value goes through amount parsing,
// so "rent:15k" works. The first offending token fails the whole field.
//
// Blank input is a valid empty list with total 0 unless
// ListOptions.RejectEmpty is set.
func ParseItems(input string, opts ListOptions) (ItemList, error) {
	sy := opts.Symbols
	if sy == nil {
		sy = DefaultSymbols
	}

	raw := strings.TrimSpace(input)
	if raw == "" {
		if opts.RejectEmpty {
			return nil, fmt.Errorf("no items provided")
		}
		return ItemList{}, nil
	}

	if strings.HasPrefix(raw, "{") {
		return parseItemsObject(raw, opts, sy)
	}

	var parts []string
	for _, p := range itemSepRE.Split(raw, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("no items provided")
	}

	items := make(ItemList, 0, len(parts))
	for _, part := range parts {
		label, amtRaw := "", part
		if before, after, found := strings.Cut(part, ":"); found {
			label, amtRaw = strings.TrimSpace(before), after
		}

		amt, err := sy.ParseAmount(amtRaw)
		if err != nil {
			name := label
			if name == "" {
				name = part
			}
			return nil, fmt.Errorf("invalid value for %q: %w", name, err)
		}

		if label == "" {
			label = fmt.Sprintf("item_%d", len(items))
		}
		if opts.NonNegative && amt < 0 {
			return nil, fmt.Errorf("value for %q must be non-negative", label)
		}
		items = append(items, Item{Type: label, Amount: round2(amt)})
	}
	return items, nil
}

// parseItemsObject parses the JSON object shape. It walks the token stream
// instead of unmarshaling into a map so that items keep the key order of
// the source text. A duplicate key keeps its first position but the last
// value, like a conventional object decode; overwritten values are never
// parsed as amounts.
func parseItemsObject(raw string, opts ListOptions, sy Symbols) (ItemList, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON format: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("JSON must be a key-value object")
	}

	type rawItem struct {
		key, amt string
	}
	var raws []rawItem
	index := map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON format: %w", err)
		}
		key := keyTok.(string) // inside an object, keys are always strings

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON format: %w", err)
		}
		var amtRaw string
		switch v := valTok.(type) {
		case json.Number:
			amtRaw = v.String()
		case string:
			amtRaw = v
		default:
			return nil, fmt.Errorf("invalid amount for %q: expected a number or string, got %v", key, valTok)
		}

		if i, ok := index[key]; ok {
			raws[i].amt = amtRaw
			continue
		}
		index[key] = len(raws)
		raws = append(raws, rawItem{key, amtRaw})
	}

	if _, err := dec.Token(); err != nil { // closing brace
		return nil, fmt.Errorf("invalid JSON format: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("invalid JSON format: unexpected trailing data")
	}

	items := make(ItemList, 0, len(raws))
	for _, r := range raws {
		amt, err := sy.ParseAmount(r.amt)
		if err != nil {
			return nil, fmt.Errorf("invalid amount for %q: %w", r.key, err)
		}
		if opts.NonNegative && amt < 0 {
			return nil, fmt.Errorf("value for %q must be non-negative", r.key)
		}
		items = append(items, Item{Type: r.key, Amount: round2(amt)})
	}
	return items, nil
}
