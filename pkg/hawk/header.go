package hawk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const scheme = "Hawk"

var (
	ErrMissingCredentials = errors.New("missing hawk credentials")
	ErrInvalidHeader      = errors.New("invalid hawk header")
)

// Artifacts are the attributes of a Hawk authorization header.
type Artifacts struct {
	ID        string
	Timestamp int64
	Nonce     string
	Hash      string
	Ext       string
	MAC       string
}

var requiredAttributes = []string{"id", "ts", "nonce", "mac"}

// ParseHeader parses `Hawk id="…", ts="…", nonce="…", mac="…"[, hash="…"][, ext="…"]`.
func ParseHeader(header string) (Artifacts, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Artifacts{}, ErrMissingCredentials
	}

	schemeName, rest, _ := strings.Cut(header, " ")
	if !strings.EqualFold(schemeName, scheme) {
		return Artifacts{}, ErrMissingCredentials
	}

	attributes, err := parseAttributes(rest)
	if err != nil {
		return Artifacts{}, err
	}

	for _, name := range requiredAttributes {
		if attributes[name] == "" {
			return Artifacts{}, fmt.Errorf("%w: missing attribute %s", ErrInvalidHeader, name)
		}
	}

	ts, err := strconv.ParseInt(attributes["ts"], 10, 64)
	if err != nil {
		return Artifacts{}, fmt.Errorf("%w: invalid timestamp", ErrInvalidHeader)
	}

	return Artifacts{
		ID:        attributes["id"],
		Timestamp: ts,
		Nonce:     attributes["nonce"],
		Hash:      attributes["hash"],
		Ext:       attributes["ext"],
		MAC:       attributes["mac"],
	}, nil
}

func (a Artifacts) header() string {
	var sb strings.Builder
	sb.WriteString(scheme)
	writeAttribute(&sb, "id", a.ID, true)
	writeAttribute(&sb, "ts", strconv.FormatInt(a.Timestamp, 10), false)
	writeAttribute(&sb, "nonce", a.Nonce, false)
	if a.Hash != "" {
		writeAttribute(&sb, "hash", a.Hash, false)
	}
	if a.Ext != "" {
		writeAttribute(&sb, "ext", a.Ext, false)
	}
	writeAttribute(&sb, "mac", a.MAC, false)
	return sb.String()
}

func writeAttribute(sb *strings.Builder, name, value string, first bool) {
	if first {
		sb.WriteByte(' ')
	} else {
		sb.WriteString(", ")
	}
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(escapeAttribute(value))
	sb.WriteByte('"')
}

func parseAttributes(s string) (map[string]string, error) {
	result := make(map[string]string, len(requiredAttributes)+2)
	for {
		s = strings.TrimLeft(s, " ,")
		if s == "" {
			return result, nil
		}

		name, rest, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: bad attribute syntax", ErrInvalidHeader)
		}

		rest = strings.TrimLeft(rest, " ")
		if !strings.HasPrefix(rest, `"`) {
			return nil, fmt.Errorf("%w: unquoted attribute %s", ErrInvalidHeader, name)
		}

		value, tail, err := readQuoted(rest[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: attribute %s: %w", ErrInvalidHeader, name, err)
		}
		if _, exists := result[name]; exists {
			return nil, fmt.Errorf("%w: duplicate attribute %s", ErrInvalidHeader, name)
		}

		result[name] = value
		s = tail
	}
}

func readQuoted(s string) (value, tail string, err error) {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 == len(s) {
				return "", "", errors.New("unterminated escape")
			}
			i++
			sb.WriteByte(s[i])
		case '"':
			return sb.String(), s[i+1:], nil
		default:
			sb.WriteByte(s[i])
		}
	}

	return "", "", errors.New("unterminated quoted value")
}

func escapeAttribute(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
