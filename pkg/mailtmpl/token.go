package mailtmpl

// Token describes a named placeholder that is replaced when rendering
// template content. Example is used as the substitution value for previews
// and for validating authored content at write time.
type Token struct {
	Name        string
	Description string
	Example     string
}

// Definition holds the registered metadata for one template identifier.
// Token order is preserved for display purposes; it has no effect on
// substitution.
type Definition struct {
	Identifier  string
	Description string
	Tokens      []Token
	Tag         string
}

// ExampleValues maps each declared token name to its example value.
func (d Definition) ExampleValues() map[string]string {
	values := make(map[string]string, len(d.Tokens))
	for _, t := range d.Tokens {
		values[t.Name] = t.Example
	}
	return values
}
