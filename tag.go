package svg

// parseTag parses the interior of a tag (the text between '<' and '>') into
// a tag event. offset is the byte offset of the interior in the original
// input, used to position errors.
//
// A leading '/' makes an End tag; only the name is read and anything after
// it is ignored, so End events never carry attributes. A trailing '/' makes
// an Empty tag. When the same attribute name appears twice, the last
// occurrence wins.
func parseTag(interior string, offset int) (Event, error) {
	i := skipSpace(interior, 0)

	if i < len(interior) && interior[i] == '/' {
		name := readName(interior, i+1)
		if name == "" {
			return Event{}, parseErrorf(offset+i, "missing tag name")
		}
		return NewTag(name, End, nil), nil
	}

	kind := Start
	end := len(interior)
	for end > i && isSpace(interior[end-1]) {
		end--
	}
	if end > i && interior[end-1] == '/' {
		kind = Empty
		end--
	}
	interior = interior[:end]

	name := readName(interior, i)
	if name == "" {
		return Event{}, parseErrorf(offset+i, "missing tag name")
	}
	i += len(name)

	attributes := make(Attributes)
	for {
		i = skipSpace(interior, i)
		if i >= len(interior) {
			break
		}

		attr := readName(interior, i)
		if attr == "" {
			return Event{}, parseErrorf(offset+i, "malformed attribute")
		}
		i += len(attr)

		i = skipSpace(interior, i)
		if i >= len(interior) || interior[i] != '=' {
			return Event{}, parseErrorf(offset+i, "expected '=' after attribute name %q", attr)
		}
		i++

		i = skipSpace(interior, i)
		if i >= len(interior) || (interior[i] != '"' && interior[i] != '\'') {
			return Event{}, parseErrorf(offset+i, "expected quoted value for attribute %q", attr)
		}
		quote := interior[i]
		i++

		start := i
		for i < len(interior) && interior[i] != quote {
			i++
		}
		if i >= len(interior) {
			return Event{}, parseErrorf(offset+start-1, "unterminated value for attribute %q", attr)
		}
		attributes[attr] = Value(interior[start:i])
		i++
	}

	return NewTag(name, kind, attributes), nil
}

// readName returns the run of name characters starting at i.
func readName(s string, i int) string {
	start := i
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	return s[start:i]
}

func isNameByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-', b == '_', b == ':', b == '.':
		return true
	case b >= 0x80: // multibyte rune, accepted verbatim
		return true
	}
	return false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}
