package declinfo

import (
	"regexp"
	"strings"
)

// DeclInfo stores a C declarator split into its type and name.
type DeclInfo struct {
	Name string
	Type string
}

var declaratorRegex = regexp.MustCompile(`^(.*?)\s*([A-Za-z_]\w*)((?:\s*\[[^\]]*\])*)$`)

const variadic = "..."

// Get returns the information for the declarator, e.g. a function parameter
// or a struct member.
// The name is the trailing identifier, everything before it forms the type.
// Array dimensions are moved to the type:
//
//	Get("int xs[10]") == DeclInfo{Name: "xs", Type: "int[10]"}
//
// A declarator made of a single identifier has no type.
// If no trailing identifier can be found (e.g. function pointers),
// the whole declarator is returned as the name.
func Get(decl string) DeclInfo {
	decl = strings.TrimSpace(decl)
	if decl == "" {
		return DeclInfo{}
	}
	if decl == variadic {
		return DeclInfo{Name: variadic}
	}
	matches := declaratorRegex.FindStringSubmatch(decl)
	if matches == nil {
		return DeclInfo{Name: decl}
	}
	typ, name, dims := strings.TrimSpace(matches[1]), matches[2], removeSpaces(matches[3])
	if typ == "" {
		return DeclInfo{Name: name}
	}
	return DeclInfo{Name: name, Type: typ + dims}
}

// String formats the declarator back into C notation.
func (d DeclInfo) String() string {
	if d.Type == "" {
		return d.Name
	}
	typ, dims := splitDimensions(d.Type)
	if strings.HasSuffix(typ, "*") {
		return typ + d.Name + dims
	}
	return typ + " " + d.Name + dims
}

func splitDimensions(typ string) (base, dims string) {
	idx := strings.Index(typ, "[")
	if idx == -1 {
		return typ, ""
	}
	return strings.TrimSpace(typ[:idx]), typ[idx:]
}

func removeSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
