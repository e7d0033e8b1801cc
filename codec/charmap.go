package codec

import "sync"

// cpReplace is the replacement character emitted when encoding toward a
// single byte character set with EhandlerReplace.
const cpReplace = '?'

// cpMapEntry is one row of a code page table: the code page byte, the
// unicode codepoint it maps to, and the character description. Both the
// byte and codepoint are unique within a table.
type cpMapEntry struct {
	cp    byte
	ucode rune
	descr string
}

// cpTable holds a code page's entries plus lazily built lookups. The
// tables are immutable globals, the lookups are built once and shared
// across calls rather than rebuilt per conversion.
type cpTable struct {
	entries []cpMapEntry

	once    sync.Once
	forward map[rune]byte // ucode -> cp
	reverse map[byte]rune // cp -> ucode
}

func (t *cpTable) maps() (map[rune]byte, map[byte]rune) {
	t.once.Do(func() {
		t.forward = make(map[rune]byte, len(t.entries))
		t.reverse = make(map[byte]rune, len(t.entries))
		for _, e := range t.entries {
			t.forward[e.ucode] = e.cp
			t.reverse[e.cp] = e.ucode
		}
	})
	return t.forward, t.reverse
}

var cpTables = map[Codec]*cpTable{
	ASCII:      &asciiTable,
	CP037:      &cp037Table,
	CP500:      &cp500Table,
	CP874:      &cp874Table,
	CP1250:     &cp1250Table,
	CP1251:     &cp1251Table,
	CP1252:     &cp1252Table,
	CP1253:     &cp1253Table,
	CP1254:     &cp1254Table,
	CP1255:     &cp1255Table,
	CP1256:     &cp1256Table,
	CP1257:     &cp1257Table,
	CP1258:     &cp1258Table,
	ISO8859_1:  &iso8859_1Table,
	ISO8859_2:  &iso8859_2Table,
	ISO8859_3:  &iso8859_3Table,
	ISO8859_4:  &iso8859_4Table,
	ISO8859_5:  &iso8859_5Table,
	ISO8859_6:  &iso8859_6Table,
	ISO8859_7:  &iso8859_7Table,
	ISO8859_8:  &iso8859_8Table,
	ISO8859_9:  &iso8859_9Table,
	ISO8859_10: &iso8859_10Table,
	ISO8859_11: &iso8859_11Table,
	ISO8859_13: &iso8859_13Table,
	ISO8859_14: &iso8859_14Table,
	ISO8859_15: &iso8859_15Table,
	ISO8859_16: &iso8859_16Table,
}

func tableFor(c Codec) *cpTable {
	return cpTables[c]
}

// encodeCPMap converts utf-8 to the single byte code page described by t.
// Input is walked one scalar at a time. Invalid utf-8 is replaced per
// scalar, not per byte.
func encodeCPMap(sink Sink, in string, eh Ehandler, t *cpTable) Error {
	forward, _ := t.maps()
	res := ErrorSuccess

	i := 0
	for i < len(in) && !res.IsError() {
		ucode, size, ok := decodeCP(in, i)
		if ok {
			i += size
		} else {
			i = nextChr(in, i)
		}

		if ok {
			if cp, have := forward[ucode]; have {
				sink.AddByte(cp)
				continue
			}
		}

		// invalid utf-8 sequence or not in the map
		switch eh {
		case EhandlerFail:
			res = ErrorFail
		case EhandlerReplace:
			sink.AddByte(cpReplace)
			res = ErrorSuccessEhandler
		case EhandlerIgnore:
			res = ErrorSuccessEhandler
		}
	}

	return res
}

// decodeCPMap converts single byte code page data to utf-8.
func decodeCPMap(sink Sink, in string, eh Ehandler, t *cpTable) Error {
	_, reverse := t.maps()
	res := ErrorSuccess

	var tmp []byte
	for i := 0; i < len(in); i++ {
		ucode, have := reverse[in[i]]
		if have {
			var ok bool
			tmp, ok = encodeCP(tmp[:0], ucode)
			if ok {
				sink.AddBytes(tmp)
				continue
			}
		}

		switch eh {
		case EhandlerFail:
			res = ErrorFail
		case EhandlerReplace:
			sink.AddStr(utf8Replace)
			res = ErrorSuccessEhandler
		case EhandlerIgnore:
			res = ErrorSuccessEhandler
		}

		if res.IsError() {
			break
		}
	}

	return res
}
