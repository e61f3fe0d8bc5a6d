package compiler

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/steamkit/enums/internal/exc"
	"github.com/steamkit/enums/internal/idl"
)

const definitionSchemaURL = "https://steamkit.dev/schemas/enum-definitions.json"

//go:embed definitions.schema.json
var definitionSchemaJSON []byte

var definitionSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(definitionSchemaURL, bytes.NewReader(definitionSchemaJSON)); err != nil {
		return nil, err
	}
	return c.Compile(definitionSchemaURL)
})

// SubCompilerYAML reads the definition table format:
//
//	package: steam
//	families:
//	  - name: EResult
//	    kind: enum
//	    members:
//	      - {name: OK, value: 1}
type SubCompilerYAML struct{}

func (self *SubCompilerYAML) CompileFile(ctx context.Context, r exc.Reporter, file idl.File) (*idl.Module, error) {
	uri := file.Path(ctx)
	raw, err := readContent(ctx, r, file)
	if err != nil {
		return nil, err
	}

	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, r.Report(exc.Wrap(exc.Location{URI: uri}, exc.CodeYAMLParseError, err))
	}
	if err := validateDefinitions(generic); err != nil {
		return nil, r.Report(exc.Wrap(exc.Location{URI: uri}, exc.CodeSchemaViolation, err))
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, r.Report(exc.Wrap(exc.Location{URI: uri}, exc.CodeYAMLParseError, err))
	}
	module := &idl.Module{
		URI:      uri,
		Package:  doc.Package,
		Families: make([]*idl.Family, 0, len(doc.Families)),
	}
	for _, f := range doc.Families {
		family := &idl.Family{
			Name:     f.Name,
			Kind:     idl.FamilyKindEnum,
			Doc:      f.Doc,
			Members:  make([]*idl.Member, 0, len(f.Members)),
			URI:      uri,
			Location: f.location,
		}
		if f.Kind == "flags" {
			family.Kind = idl.FamilyKindFlags
		}
		for _, m := range f.Members {
			family.Members = append(family.Members, &idl.Member{
				Name:     m.Name,
				Value:    m.Value,
				Doc:      m.Doc,
				Location: m.location,
			})
		}
		module.Families = append(module.Families, family)
	}
	return module, nil
}

// validateDefinitions checks a decoded YAML document against the embedded
// schema. The document goes through JSON first so the validator sees the same
// types it would for a JSON document.
func validateDefinitions(v any) error {
	schema, err := definitionSchema()
	if err != nil {
		return fmt.Errorf("definition schema: %w", err)
	}
	j, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(j))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}

type yamlDocument struct {
	Package  string       `yaml:"package"`
	Families []yamlFamily `yaml:"families"`
}

type yamlFamily struct {
	Name     string       `yaml:"name"`
	Kind     string       `yaml:"kind"`
	Doc      string       `yaml:"doc"`
	Members  []yamlMember `yaml:"members"`
	location idl.Location
}

func (f *yamlFamily) UnmarshalYAML(value *yaml.Node) error {
	type plain yamlFamily
	if err := value.Decode((*plain)(f)); err != nil {
		return err
	}
	f.location = idl.Location{Line: int32(value.Line), Column: int32(value.Column)}
	return nil
}

type yamlMember struct {
	Name     string `yaml:"name"`
	Value    int64  `yaml:"value"`
	Doc      string `yaml:"doc"`
	location idl.Location
}

func (m *yamlMember) UnmarshalYAML(value *yaml.Node) error {
	type plain yamlMember
	if err := value.Decode((*plain)(m)); err != nil {
		return err
	}
	m.location = idl.Location{Line: int32(value.Line), Column: int32(value.Column)}
	return nil
}
