package bagua

// RelationKind classifies an edge between two trigrams.
type RelationKind uint8

const (
	Generating  RelationKind = iota // 相生: source element feeds target element
	Controlling                     // 相克: source element restrains target element
	Polar                           // 阴阳: yang source, yin target
)

// String returns the relation name.
func (k RelationKind) String() string {
	switch k {
	case Generating:
		return "generating"
	case Controlling:
		return "controlling"
	case Polar:
		return "yin-yang"
	default:
		return "unknown"
	}
}

// Relation is a directed edge between two trigrams.
type Relation struct {
	Source Trigram
	Target Trigram
	Kind   RelationKind
}

// Relations returns every edge of the trigram graph over the default
// table: element edges for each ordered pair of distinct trigrams, then a
// polar edge from every yang trigram to every yin trigram.
func Relations() []Relation {
	return relationsOf(defaultTable, func(Relation) bool { return true })
}

// RelationsOf returns the edges that start or end at g.
func RelationsOf(g Trigram) []Relation {
	return relationsOf(defaultTable, func(r Relation) bool {
		return r.Source == g || r.Target == g
	})
}

func relationsOf(t *Table, keep func(Relation) bool) []Relation {
	var out []Relation
	add := func(r Relation) {
		if keep(r) {
			out = append(out, r)
		}
	}
	for _, src := range displayOrder {
		se := t.entries[src].Descriptor.Element
		for _, dst := range displayOrder {
			if src == dst {
				continue
			}
			de := t.entries[dst].Descriptor.Element
			if se.Generates() == de {
				add(Relation{Source: src, Target: dst, Kind: Generating})
			}
			if se.Controls() == de {
				add(Relation{Source: src, Target: dst, Kind: Controlling})
			}
		}
	}
	for _, src := range displayOrder {
		if t.entries[src].Descriptor.Polarity != Yang {
			continue
		}
		for _, dst := range displayOrder {
			if t.entries[dst].Descriptor.Polarity == Yin {
				add(Relation{Source: src, Target: dst, Kind: Polar})
			}
		}
	}
	return out
}
