// SPDX-License-Identifier: MIT
package loader

import (
	"encoding/json"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one record of the decomposition file: a character and the
// components it is built from.
type Entry struct {
	Literal    string   `json:"literal" yaml:"literal"`
	Components []string `json:"components" yaml:"components"`
}

// Format of a decomposition source.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ReadDecomposition parses a decomposition list and returns
// literal → components. Repeated literals merge their components; the
// builder deduplicates them later.
func ReadDecomposition(source string, r io.Reader, format Format) (map[string][]string, error) {
	var entries []Entry
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		if err := dec.Decode(&entries); err != nil {
			return nil, malformed(source, "decoding JSON: %v", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
			return nil, malformed(source, "decoding YAML: %v", err)
		}
	default:
		return nil, malformed(source, "unsupported decomposition format %q", format)
	}

	out := make(map[string][]string, len(entries))
	for i, e := range entries {
		lit := strings.TrimSpace(e.Literal)
		if lit == "" {
			return nil, malformed(source, "entry %d: empty literal", i)
		}
		for _, c := range e.Components {
			if c = strings.TrimSpace(c); c != "" {
				out[lit] = append(out[lit], c)
			}
		}
		if _, ok := out[lit]; !ok {
			out[lit] = []string{}
		}
	}

	return out, nil
}
