package rfc5321

import "testing"

func TestParseMailbox(t *testing.T) {
	var s Parser

	err := s.Mailbox([]byte("test@example.com"))
	if err != nil {
		t.Error("error not expected ", err)
	}
	if s.LocalPart != "test" {
		t.Error("s.LocalPart should be: test, got:", s.LocalPart)
	}
	if s.Domain != "example.com" {
		t.Error("s.Domain should be: example.com, got:", s.Domain)
	}

	err = s.Mailbox([]byte("test@example.com.au"))
	if err != nil {
		t.Error("error not expected ", err)
	}

	err = s.Mailbox([]byte("test.test@example.com"))
	if err != nil {
		t.Error("error not expected ", err)
	}
	if s.LocalPart != "test.test" {
		t.Error("s.LocalPart should be: test.test")
	}

	err = s.Mailbox([]byte(`"test@test"@example.com`))
	if err != nil {
		t.Error("error not expected ", err)
	}
}

func TestParseMailboxFail(t *testing.T) {
	var s Parser

	cases := []string{
		"",
		"no-at-sign",
		"@example.com",
		"test@",
		"test@@example.com",
		"test@-example.com",
		"test@example-.com",
		"test@example..com",
		"test@example.com extra",
		`"unclosed@example.com`,
	}
	for _, in := range cases {
		if err := s.Mailbox([]byte(in)); err == nil {
			t.Errorf("error expected for %q", in)
		}
	}
}

func TestParseMailboxAddressLiteral(t *testing.T) {
	var s Parser

	if err := s.Mailbox([]byte("test@[192.168.1.1]")); err != nil {
		t.Error("error not expected ", err)
	}

	if err := s.Mailbox([]byte("test@[IPv6:2001:db8::1]")); err != nil {
		t.Error("error not expected ", err)
	}

	if err := s.Mailbox([]byte("test@[999.1.1.1]")); err == nil {
		t.Error("error expected for bad ipv4")
	}
}

func TestValid(t *testing.T) {
	if !Valid("a@b") {
		t.Error("a@b should be valid")
	}
	if Valid("not an address") {
		t.Error("'not an address' should not be valid")
	}
}
