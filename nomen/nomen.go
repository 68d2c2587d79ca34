// Package nomen classifies log mnemonics into canonical log types using an
// alias table.
//
// The alias table is explicit configuration: it is loaded from YAML (or
// built in code) and handed to New, never read from package-level state.
// Classification uses longest-prefix matching, so "GR_EDTC" resolves to the
// gamma-ray type through the "GR" alias while "GRD" can still bind to a
// more specific alias.
package nomen

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrBadAliasFile reports malformed alias configuration.
var ErrBadAliasFile = errors.New("nomen: malformed alias file")

// AliasMap maps a canonical log type (e.g. "GAMMA_RAY") to the mnemonic
// prefixes that identify it.
type AliasMap map[string][]string

// aliasFile mirrors the YAML layout of the alias configuration.
type aliasFile struct {
	Aliases map[string][]string `yaml:"log_mnemonic_aliases"`
}

// LoadAliases reads an alias map from YAML of the form:
//
//	log_mnemonic_aliases:
//	  GAMMA_RAY: [GR, SGR, CGR]
//	  BULK_DENSITY: [RHOB, RHOZ, DEN]
func LoadAliases(r io.Reader) (AliasMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("nomen: read alias file: %w", err)
	}

	var f aliasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAliasFile, err)
	}
	if len(f.Aliases) == 0 {
		return nil, fmt.Errorf("%w: no log_mnemonic_aliases section", ErrBadAliasFile)
	}

	out := make(AliasMap, len(f.Aliases))
	for canonical, aliases := range f.Aliases {
		cleaned := make([]string, 0, len(aliases))
		for _, a := range aliases {
			if a = strings.ToUpper(strings.TrimSpace(a)); a != "" {
				cleaned = append(cleaned, a)
			}
		}
		out[strings.ToUpper(canonical)] = cleaned
	}
	return out, nil
}

// Nomenclature resolves mnemonics to canonical log types.
type Nomenclature struct {
	aliases AliasMap
}

// New builds a classifier from an explicit alias map. The map is copied.
func New(aliases AliasMap) *Nomenclature {
	n := &Nomenclature{aliases: make(AliasMap, len(aliases))}
	for canonical, list := range aliases {
		cp := make([]string, len(list))
		for i, a := range list {
			cp[i] = strings.ToUpper(a)
		}
		n.aliases[strings.ToUpper(canonical)] = cp
	}
	return n
}

// SetLogType registers an extra mnemonic alias for a canonical type.
func (n *Nomenclature) SetLogType(mnemonic, canonical string) {
	mnemonic = strings.ToUpper(strings.TrimSpace(mnemonic))
	canonical = strings.ToUpper(strings.TrimSpace(canonical))

	for _, a := range n.aliases[canonical] {
		if a == mnemonic {
			return
		}
	}
	n.aliases[canonical] = append(n.aliases[canonical], mnemonic)
}

// LogType returns the canonical type whose longest alias prefixes the
// mnemonic. Equal-length matches across types resolve to the canonical
// name that sorts first. Unmatched mnemonics classify as themselves,
// uppercased.
func (n *Nomenclature) LogType(mnemonic string) string {
	upper := strings.ToUpper(strings.TrimSpace(mnemonic))

	best := ""
	bestLen := 0
	for _, canonical := range n.Canonicals() {
		for _, alias := range n.aliases[canonical] {
			if strings.HasPrefix(upper, alias) && len(alias) > bestLen {
				best = canonical
				bestLen = len(alias)
			}
		}
	}

	if best == "" {
		return upper
	}
	return best
}

// LogTypeMap classifies every mnemonic, preserving input association.
func (n *Nomenclature) LogTypeMap(mnemonics []string) map[string]string {
	out := make(map[string]string, len(mnemonics))
	for _, m := range mnemonics {
		out[m] = n.LogType(m)
	}
	return out
}

// Canonicals returns the sorted canonical type names in the table.
func (n *Nomenclature) Canonicals() []string {
	out := make([]string, 0, len(n.aliases))
	for canonical := range n.aliases {
		out = append(out, canonical)
	}
	sort.Strings(out)
	return out
}
