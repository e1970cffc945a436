package taxconfig

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	domaincars "carrental/internal/domain/cars"
)

type document struct {
	Rules []domaincars.TaxRule `yaml:"rules"`
}

// Load reads age brackets from a YAML file. An empty path yields the default table.
func Load(path string) (*domaincars.TaxTable, error) {
	if strings.TrimSpace(path) == "" {
		return domaincars.DefaultTaxTable(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxconfig: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes the YAML document and validates the resulting table.
func Parse(raw []byte) (*domaincars.TaxTable, error) {
	var doc document
	dec := yaml.NewDecoder(strings.NewReader(string(raw)))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("taxconfig: decode: %w", err)
	}
	table, err := domaincars.NewTaxTable(doc.Rules)
	if err != nil {
		return nil, fmt.Errorf("taxconfig: %w", err)
	}
	return table, nil
}
