package mime

import (
	"fmt"
	"testing"
)

func collectAddresses(val string) ([]string, Error) {
	var got []string
	res := processAddress(val, func(group, name, address string) Error {
		got = append(got, fmt.Sprintf("%s|%s|%s", group, name, address))
		return ErrorSuccess
	})
	return got, res
}

func TestProcessAddressSingle(t *testing.T) {
	got, res := collectAddresses("a@b")
	if res != ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}
	if len(got) != 1 || got[0] != "||a@b" {
		t.Error("got:", got)
	}
}

func TestProcessAddressNameForm(t *testing.T) {
	got, res := collectAddresses(`"Gogh Fir" <gf@example.com>`)
	if res != ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}
	if len(got) != 1 || got[0] != "|Gogh Fir|gf@example.com" {
		t.Error("got:", got)
	}

	got, res = collectAddresses("Unquoted Name <un@example.com>")
	if res != ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}
	if len(got) != 1 || got[0] != "|Unquoted Name|un@example.com" {
		t.Error("got:", got)
	}
}

func TestProcessAddressList(t *testing.T) {
	got, res := collectAddresses("a@example.com, B <b@example.com>,c@example.com")
	if res != ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}
	want := []string{"||a@example.com", "|B|b@example.com", "||c@example.com"}
	if len(got) != len(want) {
		t.Fatal("got:", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestProcessAddressGroups(t *testing.T) {
	got, res := collectAddresses("team: a@example.com, b@example.com; solo@example.com")
	if res != ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}
	want := []string{"team||a@example.com", "team||b@example.com", "||solo@example.com"}
	if len(got) != len(want) {
		t.Fatal("got:", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestProcessAddressEmptyGroup(t *testing.T) {
	got, res := collectAddresses("undisclosed-recipients:;")
	if res != ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}
	if len(got) != 1 || got[0] != "undisclosed-recipients||" {
		t.Error("got:", got)
	}
}

func TestProcessAddressQuotedSeparators(t *testing.T) {
	// separators inside quotes don't split
	got, res := collectAddresses(`"Last, First" <lf@example.com>`)
	if res != ErrorSuccess {
		t.Fatal("unexpected result:", res)
	}
	if len(got) != 1 || got[0] != "|Last, First|lf@example.com" {
		t.Error("got:", got)
	}
}

func TestProcessAddressInvalid(t *testing.T) {
	if _, res := collectAddresses("not an address"); res != ErrorAddress {
		t.Error("expected ErrorAddress, got:", res)
	}
}

func TestSplitQuoted(t *testing.T) {
	parts := splitQuoted(`a,"b,c",d`, ',', 0)
	if len(parts) != 3 || parts[0] != "a" || parts[1] != `"b,c"` || parts[2] != "d" {
		t.Error("got:", parts)
	}

	parts = splitQuoted("a:b:c", ':', 2)
	if len(parts) != 2 || parts[0] != "a" || parts[1] != "b:c" {
		t.Error("got:", parts)
	}

	if parts = splitQuoted("", ',', 0); parts != nil {
		t.Error("empty input should yield nil, got:", parts)
	}
}

func TestUnquote(t *testing.T) {
	if got := unquote(`"a b"`); got != "a b" {
		t.Error("got:", got)
	}
	if got := unquote(`"a \"b\""`); got != `a "b"` {
		t.Error("got:", got)
	}
	if got := unquote("plain"); got != "plain" {
		t.Error("got:", got)
	}
}
