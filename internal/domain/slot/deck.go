package slot

// Deck is an ordered multiset of symbol ids.
type Deck []string

func (d Deck) Clone() Deck {
	return append(Deck(nil), d...)
}

// Sample draws up to count ids without replacement. The receiver is not mutated.
func (d Deck) Sample(count int, src RandomSource) []string {
	if count <= 0 || len(d) == 0 {
		return []string{}
	}
	shuffled := d.Clone()
	Shuffle(src, len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return []string(shuffled[:count])
}

func (d *Deck) Append(id string) {
	*d = append(*d, id)
}

// RemoveFirst drops one copy of id and reports whether one was found.
func (d *Deck) RemoveFirst(id string) bool {
	for i, v := range *d {
		if v == id {
			*d = append((*d)[:i:i], (*d)[i+1:]...)
			return true
		}
	}
	return false
}

func (d Deck) Count(id string) int {
	n := 0
	for _, v := range d {
		if v == id {
			n++
		}
	}
	return n
}
