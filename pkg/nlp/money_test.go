package nlp

import "testing"

func TestParseAmountShorthand(t *testing.T) {
	cases := []struct {
		fragment string
		want     int64
	}{
		{"15jt", 15_000_000},
		{"2 juta", 2_000_000},
		{"7.5jt", 7_500_000},
		{"7,5 juta", 7_500_000},
		{"500rb", 500_000},
		{"500 ribu", 500_000},
		{"50k", 50_000},
		{"3m", 3_000_000},
		{"1 million", 1_000_000},
		{"150000", 150_000},
	}

	for _, tc := range cases {
		got, ok := ParseAmount(tc.fragment)
		if !ok {
			t.Fatalf("ParseAmount(%q) did not match", tc.fragment)
		}
		if got != tc.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tc.fragment, got, tc.want)
		}
	}
}

func TestParseAmountNoMatch(t *testing.T) {
	for _, fragment := range []string{"", "laptop", "seratus", "1234"} {
		if got, ok := ParseAmount(fragment); ok {
			t.Errorf("ParseAmount(%q) = %d, want no match", fragment, got)
		}
	}
}

func TestExtractMoneyMentionsPositions(t *testing.T) {
	mentions := ExtractMoneyMentions("beli laptop 7jt dan hp 4jt")
	if len(mentions) != 2 {
		t.Fatalf("expected 2 mentions, got %d", len(mentions))
	}

	if mentions[0].Value != 7_000_000 || mentions[1].Value != 4_000_000 {
		t.Errorf("unexpected values: %d, %d", mentions[0].Value, mentions[1].Value)
	}

	if mentions[0].Position >= mentions[1].Position {
		t.Errorf("mentions out of order: %d, %d", mentions[0].Position, mentions[1].Position)
	}
}
