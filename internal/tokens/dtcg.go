package tokens

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	asimonimParser "bennypowers.dev/asimonim/parser"
	asimonimSchema "bennypowers.dev/asimonim/schema"
	"gopkg.in/yaml.v3"
)

// aliasRegexp matches a whole-value DTCG alias: {color.primary.400}
var aliasRegexp = regexp.MustCompile(`^\{([^{}]+)\}$`)

// ParseDTCG parses a DTCG token document. YAML documents are converted to
// JSON first. Alias values become var() references to the aliased custom
// property, so the cascade resolves them at render time.
func ParseDTCG(data []byte, yamlInput bool, prefix string) ([]Definition, error) {
	if yamlInput {
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML tokens: %w", err)
		}
		data = converted
	}

	opts := asimonimParser.Options{
		Prefix:        prefix,
		SchemaVersion: detectVersion(data),
	}
	parsed, err := asimonimParser.NewJSONParser().Parse(data, opts)
	if err != nil {
		return nil, err
	}

	defs := make([]Definition, 0, len(parsed))
	for _, tok := range parsed {
		d := Definition{
			Name:  tok.CSSVariableName(),
			Value: aliasToVar(tok.Value, prefix),
			Type:  strings.ToLower(tok.Type),
			Kind:  FromDTCG,
		}
		if hex, ok := NormalizeColor(d.Value); ok {
			d.Hex = hex
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// aliasToVar rewrites {a.b.c} as var(--prefix-a-b-c); other values pass
// through
func aliasToVar(value, prefix string) string {
	m := aliasRegexp.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return value
	}
	name := strings.ReplaceAll(m[1], ".", "-")
	if prefix != "" {
		name = prefix + "-" + name
	}
	return "var(--" + name + ")"
}

// detectVersion honors a root $schema URL and otherwise assumes the draft
// format
func detectVersion(data []byte) asimonimSchema.Version {
	var root struct {
		Schema string `json:"$schema"`
	}
	if err := json.Unmarshal(data, &root); err != nil || root.Schema == "" {
		return asimonimSchema.Draft
	}
	version, err := asimonimSchema.FromURL(root.Schema)
	if err != nil {
		return asimonimSchema.Draft
	}
	return version
}
