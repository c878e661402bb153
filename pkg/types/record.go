package types

// ErrorRecord is one diagnostic produced by the analyzer: a range-descriptor
// string in the query grammar plus the message text.
type ErrorRecord struct {
	Range   string `yaml:"range" json:"range"`
	Message string `yaml:"message" json:"message"`
}

// BindingRecord is one variable-binding trace entry. Key, Binding and Result
// are displayed as separate columns but concatenated for substring matching.
type BindingRecord struct {
	Range   string `yaml:"range" json:"range"`
	Key     string `yaml:"key" json:"key"`
	Binding string `yaml:"binding" json:"binding"`
	Result  string `yaml:"result" json:"result"`
}

// SearchText is the concatenated payload the text-match step runs against.
func (b BindingRecord) SearchText() string {
	return b.Key + " " + b.Binding + " " + b.Result
}

// Module groups the two record lists for one analyzed module.
// Order within each list is the analyzer's and is preserved end to end.
type Module struct {
	Name     string          `yaml:"name" json:"name"`
	Errors   []ErrorRecord   `yaml:"errors" json:"errors"`
	Bindings []BindingRecord `yaml:"bindings" json:"bindings"`
}

// Dataset is the full diagnostic dump, keyed by module in file order.
type Dataset struct {
	Modules []Module `yaml:"modules" json:"modules"`
}

// Module returns the named module, or nil if absent.
func (d *Dataset) Module(name string) *Module {
	for i := range d.Modules {
		if d.Modules[i].Name == name {
			return &d.Modules[i]
		}
	}
	return nil
}

// ModuleNames returns module names in dataset order.
func (d *Dataset) ModuleNames() []string {
	names := make([]string, 0, len(d.Modules))
	for _, m := range d.Modules {
		names = append(names, m.Name)
	}
	return names
}
