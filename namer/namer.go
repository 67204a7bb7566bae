// Package namer defines how variables and profile sections are laid out in
// the key-value storage.
//
// Layout under a prefix P:
//
//	P/var/<GUID>/<Name>      persisted variable
//	P/section/<GUID>         profile section blob
//	P/hash/<alg>/<GUID>      section digest
//	P/sig/<alg>/<GUID>       section signature
package namer

import (
	"strings"

	"github.com/tarantool/go-knobs/guid"
)

// KeyType represents key types.
type KeyType int

const (
	// KeyTypeVariable is a persisted variable.
	KeyTypeVariable KeyType = iota + 1
	// KeyTypeValue is a profile section blob.
	KeyTypeValue
	// KeyTypeHash is the digest of a section blob.
	KeyTypeHash
	// KeyTypeSignature is the signature of a section digest.
	KeyTypeSignature
)

func (t KeyType) String() string {
	switch t {
	case KeyTypeVariable:
		return "variable"
	case KeyTypeValue:
		return "section"
	case KeyTypeHash:
		return "hash"
	case KeyTypeSignature:
		return "signature"
	default:
		return "unknown"
	}
}

const (
	varName     = "var"
	sectionName = "section"
	hashName    = "hash"
	sigName     = "sig"
)

// Key is a parsed storage key.
type Key struct {
	Type     KeyType
	GUID     guid.GUID
	Name     string // Variable name, empty for section keys.
	Property string // Algorithm for hash and signature keys.
	Raw      []byte
}

// Namer represents keys naming strategy.
type Namer interface {
	VariableKey(name string, g guid.GUID) []byte
	VariablePrefix() []byte
	SectionKeys(g guid.GUID, hashAlg, sigAlg string) []Key
	SectionPrefix() []byte
	ParseKey(raw []byte) (Key, error)
}

// DefaultNamer represents default namer.
type DefaultNamer struct {
	prefix string
}

var _ Namer = &DefaultNamer{} //nolint:exhaustruct

// NewDefaultNamer returns new DefaultNamer object.
// The prefix is normalized to start with "/" and carry no trailing "/".
func NewDefaultNamer(prefix string) *DefaultNamer {
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		prefix = ""
	}

	return &DefaultNamer{prefix: prefix}
}

func (n *DefaultNamer) join(parts ...string) string {
	return n.prefix + "/" + strings.Join(parts, "/")
}

// VariableKey returns the key of the variable (name, g).
func (n *DefaultNamer) VariableKey(name string, g guid.GUID) []byte {
	return []byte(n.join(varName, g.String(), name))
}

// VariablePrefix returns the prefix covering every persisted variable.
func (n *DefaultNamer) VariablePrefix() []byte {
	return []byte(n.join(varName, ""))
}

// SectionPrefix returns the prefix covering every section blob.
func (n *DefaultNamer) SectionPrefix() []byte {
	return []byte(n.join(sectionName, ""))
}

// SectionKeys returns the value, hash and signature keys of section g.
func (n *DefaultNamer) SectionKeys(g guid.GUID, hashAlg, sigAlg string) []Key {
	id := g.String()

	return []Key{
		{Type: KeyTypeValue, GUID: g, Raw: []byte(n.join(sectionName, id))},
		{Type: KeyTypeHash, GUID: g, Property: hashAlg, Raw: []byte(n.join(hashName, hashAlg, id))},
		{Type: KeyTypeSignature, GUID: g, Property: sigAlg, Raw: []byte(n.join(sigName, sigAlg, id))},
	}
}

// ParseKey splits a raw key produced by this namer back into its parts.
func (n *DefaultNamer) ParseKey(raw []byte) (Key, error) {
	str := string(raw)

	rest, ok := strings.CutPrefix(str, n.prefix+"/")
	if !ok {
		return Key{}, errInvalidKey(str, "prefix mismatch")
	}

	kind, rest, _ := strings.Cut(rest, "/")

	switch kind {
	case varName:
		id, name, found := strings.Cut(rest, "/")
		if !found || name == "" {
			return Key{}, errInvalidKey(str, "variable name is missing")
		}

		g, err := guid.Parse(id)
		if err != nil {
			return Key{}, errInvalidKey(str, err.Error())
		}

		return Key{Type: KeyTypeVariable, GUID: g, Name: name, Raw: raw}, nil
	case sectionName:
		g, err := guid.Parse(rest)
		if err != nil {
			return Key{}, errInvalidKey(str, err.Error())
		}

		return Key{Type: KeyTypeValue, GUID: g, Raw: raw}, nil
	case hashName, sigName:
		alg, id, found := strings.Cut(rest, "/")
		if !found || alg == "" {
			return Key{}, errInvalidKey(str, "algorithm is missing")
		}

		g, err := guid.Parse(id)
		if err != nil {
			return Key{}, errInvalidKey(str, err.Error())
		}

		keyType := KeyTypeHash
		if kind == sigName {
			keyType = KeyTypeSignature
		}

		return Key{Type: keyType, GUID: g, Property: alg, Raw: raw}, nil
	default:
		return Key{}, errInvalidKey(str, "unknown key kind "+kind)
	}
}
