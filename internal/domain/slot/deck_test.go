package slot

import (
	"testing"

	"pgregory.net/rapid"
)

func TestDeckSampleRespectsBoundAndDoesNotMutate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		deck := Deck(rapid.SliceOfN(rapid.SampledFrom([]string{"coin", "cherry", "flower", "mouse", "cat"}), 0, 40).Draw(t, "deck"))
		count := rapid.IntRange(0, 30).Draw(t, "count")
		seed := rapid.Uint64().Draw(t, "seed")
		before := deck.Clone()

		got := deck.Sample(count, NewSeededSource(seed))

		want := count
		if len(deck) < want {
			want = len(deck)
		}
		if len(got) != want {
			t.Fatalf("sample size mismatch: got=%d want=%d", len(got), want)
		}
		remaining := map[string]int{}
		for _, id := range deck {
			remaining[id]++
		}
		for _, id := range got {
			remaining[id]--
			if remaining[id] < 0 {
				t.Fatalf("sampled %s more often than the deck holds it", id)
			}
		}
		if len(before) != len(deck) {
			t.Fatalf("deck length changed: got=%d want=%d", len(deck), len(before))
		}
		for i := range before {
			if before[i] != deck[i] {
				t.Fatalf("deck mutated at %d: got=%s want=%s", i, deck[i], before[i])
			}
		}
	})
}

func TestDeckRemoveFirst(t *testing.T) {
	d := Deck{"coin", "cherry", "coin"}
	if !d.RemoveFirst("coin") {
		t.Fatalf("expected coin to be removed")
	}
	if got, want := len(d), 2; got != want {
		t.Fatalf("deck length mismatch: got=%d want=%d", got, want)
	}
	if d[0] != "cherry" || d[1] != "coin" {
		t.Fatalf("unexpected deck order: %v", d)
	}
	if d.RemoveFirst("cat") {
		t.Fatalf("expected cat removal to report false")
	}
	if got := d.Count("coin"); got != 1 {
		t.Fatalf("coin count mismatch: got=%d want=1", got)
	}
}

func TestDeckAppendKeepsClonesIndependent(t *testing.T) {
	d := Deck{"coin"}
	cp := d.Clone()
	d.Append("cat")
	if len(cp) != 1 {
		t.Fatalf("clone should not see appended ids: %v", cp)
	}
}
