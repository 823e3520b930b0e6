package almox

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jportela/almoxarifado-api/internal/domain/entity"
)

// normalizeText minúsculas, sem acentos, sem espaços nas pontas — base da
// busca insensível a acentuação.
func normalizeText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.TrimSpace(strings.ToLower(folded))
}

// SearchByDescription busca com ranking:
//  1. descrição que começa com o termo vem primeiro
//  2. depois, quem contém o termo mais cedo
//  3. empate em ordem alfabética
//
// Termo vazio devolve tudo em ordem alfabética.
func SearchByDescription(items []entity.Item, rawTerm string) []entity.Item {
	term := normalizeText(rawTerm)

	type scored struct {
		item     entity.Item
		normDesc string
		index    int
	}

	prepared := make([]scored, 0, len(items))
	for _, it := range items {
		prepared = append(prepared, scored{item: it, normDesc: normalizeText(it.Description)})
	}

	if term == "" {
		sort.SliceStable(prepared, func(i, j int) bool { return prepared[i].normDesc < prepared[j].normDesc })
		out := make([]entity.Item, len(prepared))
		for i, p := range prepared {
			out[i] = p.item
		}
		return out
	}

	var filtered []scored
	for _, p := range prepared {
		if idx := strings.Index(p.normDesc, term); idx >= 0 {
			p.index = idx
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		aPrefix, bPrefix := a.index == 0, b.index == 0
		if aPrefix != bPrefix {
			return aPrefix
		}
		if a.index != b.index {
			return a.index < b.index
		}
		return a.normDesc < b.normDesc
	})

	out := make([]entity.Item, len(filtered))
	for i, p := range filtered {
		out[i] = p.item
	}
	return out
}
