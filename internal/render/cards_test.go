package render

import (
	"testing"
)

func TestParseCardGroups(t *testing.T) {
	content := `{"Docs": [{"title":"A","url":"/a","content":"c","footnote":"f"}]}`

	groups, err := ParseCardGroups(content)
	if err != nil {
		t.Fatalf("ParseCardGroups returned error: %v", err)
	}
	if groups.Len() != 1 {
		t.Fatalf("got %d groups, want 1", groups.Len())
	}

	cards, ok := groups.Get("Docs")
	if !ok {
		t.Fatal("group Docs not found")
	}
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}

	card := cards[0]
	if card.Title != "A" || card.URL != "/a" || card.Content != "c" || card.Footnote != "f" {
		t.Errorf("card fields did not round-trip: %+v", card)
	}
}

func TestParseCardGroupsPreservesOrder(t *testing.T) {
	content := `{
		"Zebra": [],
		"Alpha": [{"title":"x","url":"/x","content":"","footnote":""}],
		"Middle": []
	}`

	groups, err := ParseCardGroups(content)
	if err != nil {
		t.Fatalf("ParseCardGroups returned error: %v", err)
	}

	var order []string
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		order = append(order, pair.Key)
	}

	want := []string{"Zebra", "Alpha", "Middle"}
	if len(order) != len(want) {
		t.Fatalf("got groups %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("group order[%d] = %q, want %q (groups iterate in parse order)", i, order[i], want[i])
		}
	}
}

func TestParseCardGroupsCardOrder(t *testing.T) {
	content := `{"G": [
		{"title":"first","url":"","content":"","footnote":""},
		{"title":"second","url":"","content":"","footnote":""}
	]}`

	groups, err := ParseCardGroups(content)
	if err != nil {
		t.Fatalf("ParseCardGroups returned error: %v", err)
	}
	cards, _ := groups.Get("G")
	if len(cards) != 2 || cards[0].Title != "first" || cards[1].Title != "second" {
		t.Errorf("card order not preserved: %+v", cards)
	}
}

func TestParseCardGroupsMalformed(t *testing.T) {
	_, err := ParseCardGroups(`{"Docs": [`)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if err.Error() == "" {
		t.Error("parse error must carry a non-empty message")
	}
}
