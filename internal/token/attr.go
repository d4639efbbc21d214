package token

// Attr is a single key="value" pair from a start tag's attribute
// region. Value is the raw span between the quotes, without any
// entity processing.
type Attr struct {
	Key   string
	Value string
}

// ScanAttrs scans the raw attribute region of a START or EMPTY token
// in source order. Scanning is best-effort: a malformed tail (a key
// with no '=', an unquoted or unterminated value) ends the scan, and
// whatever was read up to that point is returned. Duplicate keys are
// returned as-is; collapsing them is the caller's concern.
func ScanAttrs(region string) []Attr {
	var attrs []Attr

	i := 0
	for {
		for i < len(region) && isSpace(region[i]) {
			i++
		}
		if i >= len(region) {
			return attrs
		}

		keyStart := i
		for i < len(region) && region[i] != '=' && !isSpace(region[i]) {
			i++
		}
		key := region[keyStart:i]
		if key == "" {
			return attrs
		}

		for i < len(region) && isSpace(region[i]) {
			i++
		}
		if i >= len(region) || region[i] != '=' {
			return attrs
		}
		i++
		for i < len(region) && isSpace(region[i]) {
			i++
		}
		if i >= len(region) || (region[i] != '"' && region[i] != '\'') {
			return attrs
		}

		quote := region[i]
		i++
		valStart := i
		for i < len(region) && region[i] != quote {
			i++
		}
		if i >= len(region) {
			return attrs
		}
		attrs = append(attrs, Attr{Key: key, Value: region[valStart:i]})
		i++
	}
}
