package nbt

import (
	"testing"

	"github.com/Lemiort/mclib/databuffer"
)

func TestCompoundRoundTrip(t *testing.T) {
	var n NBT
	n.SetRoot(Compound{
		"Count":  &Byte{Value: 5},
		"Damage": &Short{Value: 0},
		"id":     &Short{Value: 42},
		"tag": Compound{
			"display": Compound{
				"Name": &String{Value: "Sword of Testing"},
			},
		},
	})

	buf := databuffer.New()
	n.WriteTo(buf)

	reader := databuffer.Wrap(buf.Bytes())
	var out NBT
	if err := out.ReadFrom(reader); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	if !out.HasData() {
		t.Fatal("expected root data")
	}
	count, ok := out.Root()["Count"].(*Byte)
	if !ok || count.Value != 5 {
		t.Fatalf("Count mismatch: %#v", out.Root()["Count"])
	}
	id, ok := out.Root()["id"].(*Short)
	if !ok || id.Value != 42 {
		t.Fatalf("id mismatch: %#v", out.Root()["id"])
	}
}

func TestEmptyNBTWritesEndTag(t *testing.T) {
	var n NBT
	buf := databuffer.New()
	n.WriteTo(buf)

	if got := buf.Bytes(); len(got) != 1 || got[0] != byte(TagEnd) {
		t.Fatalf("expected single TagEnd byte, got %v", got)
	}

	reader := databuffer.Wrap(buf.Bytes())
	var out NBT
	if err := out.ReadFrom(reader); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if out.HasData() {
		t.Fatal("expected no data")
	}
}

func TestListRoundTrip(t *testing.T) {
	list := &List{
		ElemType: TagInt,
		Items:    []Tag{&Int{Value: 1}, &Int{Value: 2}, &Int{Value: 3}},
	}

	buf := databuffer.New()
	list.writePayload(buf)

	reader := databuffer.Wrap(buf.Bytes())
	var out List
	if err := out.readPayload(reader); err != nil {
		t.Fatalf("readPayload: %v", err)
	}
	if len(out.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(out.Items))
	}
	for i, item := range out.Items {
		v := item.(*Int).Value
		if v != int32(i+1) {
			t.Fatalf("item %d: got %d", i, v)
		}
	}
}

func TestModifiedUTF8RoundTrip(t *testing.T) {
	cases := []string{"", "hello", "héllo wörld", "emoji: \U0001F600"}
	for _, s := range cases {
		buf := databuffer.New()
		writeModifiedUTF8(buf, s)

		reader := databuffer.Wrap(buf.Bytes())
		got, err := readModifiedUTF8(reader)
		if err != nil {
			t.Fatalf("readModifiedUTF8(%q): %v", s, err)
		}
		if got != s {
			t.Fatalf("round trip mismatch: want %q got %q", s, got)
		}
	}
}
