package docbuildr

// ModuleDoc is the structured documentation of a [Module].
type ModuleDoc struct {
	Name     string       `json:"name"`
	Sections []SectionDoc `json:"sections"`
}

// SectionDoc describes a single documented declaration.
type SectionDoc struct {
	// Kind is one of "Function", "Struct" or "Enum".
	Kind       string     `json:"kind"`
	Name       string     `json:"name"`
	Doc        string     `json:"doc,omitempty"`
	Deprecated string     `json:"deprecated,omitempty"`
	Signature  string     `json:"signature,omitempty"`
	Alias      string     `json:"alias,omitempty"`
	Params     []ParamDoc `json:"params,omitempty"`
	Returns    *ReturnDoc `json:"returns,omitempty"`
	Members    []string   `json:"members,omitempty"`
	Variants   []string   `json:"variants,omitempty"`
}

type ParamDoc struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

type ReturnDoc struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Doc returns the structured documentation of the module.
func (m Module) Doc() ModuleDoc {
	mapper := newSectionMapper()
	for node := range m.Tree.Nodes() {
		mapper.Map(node)
	}
	doc := ModuleDoc{Name: m.Name, Sections: mapper.Sections}
	return postProcessSections(doc, removeTrailingWhitespace)
}
