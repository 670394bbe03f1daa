package suggest

import (
	"strings"

	"xmasGiftAI/domain"
)

// LexiconEntry grants per-category bonuses when Keyword occurs in a recipient description.
type LexiconEntry struct {
	Keyword string
	Weights map[domain.DealCategory]int
}

// Lexicon is an immutable keyword table. Keywords match as case-insensitive
// substrings of the description, so "gamer" also matches "gamers".
type Lexicon struct {
	entries []LexiconEntry
}

func NewLexicon(entries []LexiconEntry) *Lexicon {
	out := make([]LexiconEntry, 0, len(entries))
	for _, e := range entries {
		weights := make(map[domain.DealCategory]int, len(e.Weights))
		for c, w := range e.Weights {
			weights[c] = w
		}
		out = append(out, LexiconEntry{Keyword: strings.ToLower(e.Keyword), Weights: weights})
	}
	return &Lexicon{entries: out}
}

// CategoryBonus sums the weights of every matching keyword for one category.
// description must already be lowercase.
func (l *Lexicon) CategoryBonus(description string, category domain.DealCategory) int {
	bonus := 0
	for _, e := range l.entries {
		if strings.Contains(description, e.Keyword) {
			bonus += e.Weights[category]
		}
	}
	return bonus
}

// Matches lists the keywords found in a lowercase description, in table order.
func (l *Lexicon) Matches(description string) []string {
	var matched []string
	for _, e := range l.entries {
		if strings.Contains(description, e.Keyword) {
			matched = append(matched, e.Keyword)
		}
	}
	return matched
}

func (l *Lexicon) Len() int {
	return len(l.entries)
}

var defaultLexicon = NewLexicon(giftKeywords)

// DefaultLexicon returns the shared gift lexicon. It is never mutated.
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

const (
	electronics = domain.CategoryElectronics
	beauty      = domain.CategoryBeauty
	home        = domain.CategoryHome
	toys        = domain.CategoryToys
	fashion     = domain.CategoryFashion
)

type weights = map[domain.DealCategory]int

var giftKeywords = []LexiconEntry{
	// toys
	{"dinosauri", weights{toys: 10}},
	{"gioco", weights{toys: 9}},
	{"giocattolo", weights{toys: 10}},
	{"puzzle", weights{toys: 9}},
	{"costruzioni", weights{toys: 10}},
	{"robot", weights{toys: 9, electronics: 4}},
	{"giochi", weights{toys: 10}},
	{"bambino", weights{toys: 9, fashion: 2}},
	{"bambini", weights{toys: 9, fashion: 2}},
	{"creativo", weights{toys: 8}},
	{"educativo", weights{toys: 8}},
	{"pattini", weights{toys: 9}},
	{"disegno", weights{toys: 8}},
	{"arte", weights{toys: 7}},
	{"scienza", weights{toys: 8}},
	{"laboratorio", weights{toys: 9}},

	// tech, gaming
	{"tech", weights{electronics: 10}},
	{"tecnologia", weights{electronics: 10}},
	{"computer", weights{electronics: 9}},
	{"gaming", weights{electronics: 10}},
	{"gamer", weights{electronics: 10}},
	{"cuffie", weights{electronics: 10}},
	{"gadget", weights{electronics: 10}},
	{"smartwatch", weights{electronics: 9}},
	{"proiettore", weights{electronics: 9}},
	{"speaker", weights{electronics: 8}},
	{"tastiera", weights{electronics: 9}},
	{"mouse", weights{electronics: 8}},
	{"docking", weights{electronics: 8}},
	{"sviluppatore", weights{electronics: 9}},
	{"programmatore", weights{electronics: 9}},

	// fashion, sport
	{"moda", weights{fashion: 10}},
	{"abbigliamento", weights{fashion: 10}},
	{"vestiti", weights{fashion: 10}},
	{"abiti", weights{fashion: 10}},
	{"outfit", weights{fashion: 9}},
	{"look", weights{fashion: 8}},
	{"stile", weights{fashion: 8}},
	{"camicia", weights{fashion: 9}},
	{"pantaloni", weights{fashion: 9}},
	{"gonna", weights{fashion: 9}},
	{"maglione", weights{fashion: 9}},
	{"sneakers", weights{fashion: 10}},
	{"scarpe", weights{fashion: 10}},
	{"giacca", weights{fashion: 10}},
	{"cappotto", weights{fashion: 10}},
	{"accessori", weights{fashion: 9}},
	{"borsa", weights{fashion: 9}},
	{"cintura", weights{fashion: 8}},
	{"zaino", weights{fashion: 9}},
	{"beanie", weights{fashion: 8}},
	{"sciarpa", weights{fashion: 8}},
	{"sport", weights{fashion: 9, toys: 5}},
	{"corsa", weights{fashion: 9}},
	{"runner", weights{fashion: 9}},

	// beauty
	{"bellezza", weights{beauty: 10}},
	{"skincare", weights{beauty: 10}},
	{"crema", weights{beauty: 10}},
	{"creme", weights{beauty: 10}},
	{"cosmetici", weights{beauty: 10}},
	{"cosmetica", weights{beauty: 10}},
	{"trucco", weights{beauty: 10}},
	{"trucchi", weights{beauty: 10}},
	{"makeup", weights{beauty: 10}},
	{"rossetto", weights{beauty: 9}},
	{"ombretto", weights{beauty: 9}},
	{"mascara", weights{beauty: 9}},
	{"siero", weights{beauty: 9}},
	{"viso", weights{beauty: 9}},
	{"pelle", weights{beauty: 10}},
	{"corpo", weights{beauty: 9}},
	{"profumo", weights{beauty: 8}},
	{"donna", weights{beauty: 8, fashion: 5}},
	{"ragazza", weights{beauty: 8, fashion: 5}},
	{"benessere", weights{beauty: 7}},

	// home
	{"casa", weights{home: 10}},
	{"arredo", weights{home: 10}},
	{"salotto", weights{home: 9}},
	{"soggiorno", weights{home: 9}},
	{"cucina", weights{home: 8}},
	{"bagno", weights{home: 8}},
	{"camera", weights{home: 8}},
	{"smart home", weights{home: 10}},
	{"lampada", weights{home: 8, electronics: 3}},
	{"aspira", weights{home: 10}},
	{"robot pulizia", weights{home: 9}},
	{"termostato", weights{home: 9}},
	{"diffusore", weights{home: 8}},
	{"coperte", weights{home: 8}},
}
