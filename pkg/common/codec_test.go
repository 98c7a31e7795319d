package common

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNodeUnmarshal_KeepsUnknownAttributesInOrder(t *testing.T) {
	in := `{"id":"org_001","type":"company","name":"Acme","industry":"Energie","score":80,"zeta":1,"alpha":{"x":true},"tags":["a","b"]}`

	var n Node
	if err := json.Unmarshal([]byte(in), &n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n.ID != "org_001" || n.Type != "company" || n.Name != "Acme" || n.Industry != "Energie" {
		t.Fatalf("unexpected typed fields: %+v", n)
	}
	if n.Score == nil || *n.Score != 80 {
		t.Fatalf("expected score 80, got %v", n.Score)
	}
	if n.Extra == nil || n.Extra.Len() != 3 {
		t.Fatalf("expected 3 extra attributes, got %v", n.Extra)
	}

	var keys []string
	for pair := n.Extra.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	if got, want := len(keys), 3; got != want || keys[0] != "zeta" || keys[1] != "alpha" || keys[2] != "tags" {
		t.Fatalf("unexpected key order %v", keys)
	}

	raw, ok := n.Attr("alpha")
	if !ok || string(raw) != `{"x":true}` {
		t.Fatalf("got %q, want %q", raw, `{"x":true}`)
	}
	if _, ok := n.Attr("industry"); ok {
		t.Fatal("typed attribute must not be duplicated in Extra")
	}

	out, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != in {
		t.Fatalf("got %s, want %s", out, in)
	}
}

func TestNodeUnmarshal_CoercesScalarsToText(t *testing.T) {
	in := `{"id":17,"type":"association","name":"Verband","founded":1949,"members":120000}`

	var n Node
	if err := json.Unmarshal([]byte(in), &n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.ID != "17" || n.Founded != "1949" || n.Members != "120000" {
		t.Fatalf("unexpected fields: %+v", n)
	}
}

func TestNodeUnmarshal_MissingID(t *testing.T) {
	var n Node
	err := json.Unmarshal([]byte(`{"type":"company","name":"Nameless"}`), &n)
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestNodeUnmarshal_InvalidScore(t *testing.T) {
	var n Node
	if err := json.Unmarshal([]byte(`{"id":"a","score":"hoch"}`), &n); err == nil {
		t.Fatal("expected error for non-numeric score")
	}
}

func TestLinkUnmarshal_Endpoints(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantSource string
		wantTarget string
	}{
		{
			name:       "identifiers",
			in:         `{"source":"a","target":"b","type":"employment"}`,
			wantSource: "a",
			wantTarget: "b",
		},
		{
			name:       "resolved node objects",
			in:         `{"source":{"id":"a","name":"A","x":1},"target":{"id":"b"},"type":"employment"}`,
			wantSource: "a",
			wantTarget: "b",
		},
		{
			name:       "numeric identifiers",
			in:         `{"source":1,"target":{"id":2},"type":"employment"}`,
			wantSource: "1",
			wantTarget: "2",
		},
		{
			name:       "missing endpoint",
			in:         `{"source":"a","target":null,"type":"employment"}`,
			wantSource: "a",
			wantTarget: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var l Link
			if err := json.Unmarshal([]byte(tc.in), &l); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.Source != tc.wantSource || l.Target != tc.wantTarget {
				t.Fatalf("got %q-%q, want %q-%q", l.Source, l.Target, tc.wantSource, tc.wantTarget)
			}
		})
	}
}

func TestLinkUnmarshal_RejectsInvalidEndpoint(t *testing.T) {
	for _, in := range []string{
		`{"source":["a"],"target":"b","type":"x"}`,
		`{"source":{"name":"A"},"target":"b","type":"x"}`,
	} {
		var l Link
		if err := json.Unmarshal([]byte(in), &l); err == nil {
			t.Fatalf("expected error for %s", in)
		}
	}
}

func TestLinkRoundTrip(t *testing.T) {
	in := `{"source":"person_001","target":"org_001","type":"donation","since":"2019","amount":"50000","note":"Rechenschaftsbericht"}`

	var l Link
	if err := json.Unmarshal([]byte(in), &l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != in {
		t.Fatalf("got %s, want %s", out, in)
	}
}

func TestNetworkMarshal_EmptyCollections(t *testing.T) {
	out, err := json.Marshal(Network{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `{"nodes":[],"links":[]}` {
		t.Fatalf("got %s", out)
	}
}

func TestNilNodeMarshalsAsNull(t *testing.T) {
	out, err := json.Marshal([]*Node{nil, {ID: "a", Type: "company", Name: "A"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `[null,{"id":"a","type":"company","name":"A"}]` {
		t.Fatalf("got %s", out)
	}
}

func TestLinkHelpers(t *testing.T) {
	l := Link{Source: "a", Target: "b"}
	if !l.Touches("a") || !l.Touches("b") || l.Touches("c") {
		t.Fatal("Touches mismatch")
	}
	if l.Other("a") != "b" || l.Other("b") != "a" {
		t.Fatal("Other mismatch")
	}
	if !l.Joins("a", "b") || !l.Joins("b", "a") || l.Joins("a", "c") {
		t.Fatal("Joins mismatch")
	}
	loop := Link{Source: "a", Target: "a"}
	if loop.Other("a") != "a" {
		t.Fatal("self-loop Other mismatch")
	}
}
