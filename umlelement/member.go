package umlelement

import (
	"regexp"
	"strings"
)

type Visibility string

const (
	Public            Visibility = "public"
	Private           Visibility = "private"
	Protected         Visibility = "protected"
	PackageVisibility Visibility = "package"
)

var visibilitySymbols = map[Visibility]string{
	Public:            "+",
	Private:           "-",
	Protected:         "#",
	PackageVisibility: "~",
}

// Symbol returns the UML notation of v. Unknown visibilities render as public.
func (v Visibility) Symbol() string {
	if s, ok := visibilitySymbols[v]; ok {
		return s
	}
	return "+"
}

func VisibilityFromSymbol(s string) (Visibility, bool) {
	for v, sym := range visibilitySymbols {
		if sym == s {
			return v, true
		}
	}
	return "", false
}

type ImplementationType string

const (
	ImplementationNone           ImplementationType = "none"
	ImplementationCode           ImplementationType = "code"
	ImplementationStateMachine   ImplementationType = "state_machine"
	ImplementationQuantumCircuit ImplementationType = "quantum_circuit"
)

// typeAliases maps the spellings found in imports onto the canonical type names.
var typeAliases = map[string]string{
	"string": "str", "String": "str", "STRING": "str",

	"integer": "int", "Integer": "int", "INTEGER": "int", "long": "int", "Long": "int",

	"double": "float", "Double": "float", "DOUBLE": "float", "Float": "float", "FLOAT": "float",
	"number": "float", "Number": "float", "decimal": "float", "Decimal": "float",

	"boolean": "bool", "Boolean": "bool", "BOOLEAN": "bool",

	"Date": "date", "DATE": "date",

	"DateTime": "datetime", "DATETIME": "datetime", "Timestamp": "datetime", "timestamp": "datetime",

	"Time": "time", "TIME": "time",

	"object": "any", "Object": "any", "void": "any", "Void": "any",
}

// NormalizeType returns the canonical spelling of t. Empty types default to str.
func NormalizeType(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return "str"
	}
	if alias, ok := typeAliases[t]; ok {
		return alias
	}
	return t
}

var (
	visibilityPrefixRegex = regexp.MustCompile(`^([+\-#~])\s*`)
	typedNameRegex        = regexp.MustCompile(`^([^:]+):\s*(.+)$`)
	legacyDisplayRegex    = regexp.MustCompile(`^[+\-#~]\s`)
)

type ParsedName struct {
	Visibility    Visibility
	Name          string
	AttributeType string
}

// ParseNameFormat splits a member name written as "<symbol> name: type".
// Both the symbol and the type are optional.
func ParseNameFormat(name string) ParsedName {
	parsed := ParsedName{
		Visibility:    Public,
		AttributeType: "str",
	}

	rest := strings.TrimSpace(name)
	if m := visibilityPrefixRegex.FindStringSubmatch(rest); m != nil {
		if v, ok := VisibilityFromSymbol(m[1]); ok {
			parsed.Visibility = v
		}
		rest = rest[len(m[0]):]
	}

	if m := typedNameRegex.FindStringSubmatch(rest); m != nil {
		parsed.Name = strings.TrimSpace(m[1])
		parsed.AttributeType = NormalizeType(m[2])
	} else {
		parsed.Name = strings.TrimSpace(rest)
	}
	return parsed
}

// DisplayName is the label el is drawn with. Members read "+ name: type", everything
// else its plain name.
func (el *Element) DisplayName() string {
	m := el.Member
	if m == nil || el.Name == "" || m.AttributeType == "" {
		return el.Name
	}
	if legacyDisplayRegex.MatchString(el.Name) {
		return el.Name
	}
	return m.Visibility.Symbol() + " " + el.Name + ": " + m.AttributeType
}
