package common

import (
	yaml "gopkg.in/yaml.v3"
)

// YAML adapters for generated enums, so documents and configuration can use
// readable names instead of numeric values.

func (x TemplateKind) MarshalYAML() (any, error) {
	return x.String(), nil
}

func (x *TemplateKind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	v, err := ParseTemplateKind(name)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x FontFamily) MarshalYAML() (any, error) {
	return x.String(), nil
}

func (x *FontFamily) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	v, err := ParseFontFamily(name)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x SectionKind) MarshalYAML() (any, error) {
	return string(x), nil
}

func (x *SectionKind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	v, err := ParseSectionKind(name)
	if err != nil {
		return err
	}
	*x = v
	return nil
}
