package xml

import "testing"

func TestNodeParentLinks(t *testing.T) {
	doc := NewDoc()
	a := NewElement("a", doc)
	b := NewElement("b", a)

	if a.Parent() != doc || b.Parent() != a {
		t.Error("parent links wrong")
	}
	if doc.Parent() != nil {
		t.Error("a document has no parent")
	}

	b.Detach()
	if b.Parent() != nil || a.NumChildren() != 0 {
		t.Error("detach should clear both sides")
	}
}

func TestNodeChildRules(t *testing.T) {
	doc := NewDoc()
	a := NewElement("a", doc)
	txt := NewText("x", nil)

	if err := txt.AppendChild(NewElement("c", nil)); err == nil {
		t.Error("text nodes cannot carry children")
	}
	if err := a.AppendChild(NewDoc()); err == nil {
		t.Error("a document cannot become a child")
	}
	if err := a.AppendChild(txt); err != nil {
		t.Error("unexpected error:", err)
	}
	if err := doc.AppendChild(txt); err == nil {
		t.Error("a parented node cannot be appended twice")
	}
}

func TestNodeInsertChildAt(t *testing.T) {
	doc := NewDoc()
	a := NewElement("a", doc)
	c1 := NewElement("c1", a)
	c3 := NewElement("c3", a)
	c2 := NewElement("c2", nil)

	if err := a.InsertChildAt(c2, 1); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if a.Child(0) != c1 || a.Child(1) != c2 || a.Child(2) != c3 {
		t.Error("insert order wrong")
	}

	if c2.Sibling(false) != c1 || c2.Sibling(true) != c3 {
		t.Error("sibling navigation wrong")
	}
}

func TestNodeAttributes(t *testing.T) {
	a := NewElement("a", nil)

	if err := a.InsertAttribute("Key", "1", false); err != nil {
		t.Fatal("unexpected error:", err)
	}
	// duplicate under case insensitive comparison
	if err := a.InsertAttribute("key", "2", false); err == nil {
		t.Error("duplicate attribute should be rejected")
	}
	if err := a.InsertAttribute("key", "2", true); err != nil {
		t.Error("overwrite should be allowed:", err)
	}
	if v := a.AttributeValue("KEY"); v != "2" {
		t.Error("lookup should be case insensitive, got:", v)
	}

	a.InsertAttribute("zed", "3", false)
	var keys []string
	a.EachAttribute(func(key, val string) { keys = append(keys, key) })
	if len(keys) != 2 || keys[0] != "Key" || keys[1] != "zed" {
		t.Error("insertion order lost:", keys)
	}

	a.RemoveAttribute("key")
	if a.NumAttributes() != 1 {
		t.Error("remove failed")
	}
}
