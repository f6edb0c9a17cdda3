package template

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
)

// DescriptorFile is the name of the descriptor at a template's root.
const DescriptorFile = "template.toml"

// Config is the parsed template descriptor.
type Config struct {
	Template  Info                `toml:"template"`
	Renames   []RenameRule        `toml:"renames"`
	Variables map[string]Variable `toml:"variables"`
	Process   ProcessConfig       `toml:"process"`
}

// Info names and describes a template.
type Info struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// RenameRule moves From (relative to the project root) to To, a path
// pattern that may contain placeholders.
type RenameRule struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Variable declares a template variable.
type Variable struct {
	Required    bool   `toml:"required"`
	Description string `toml:"description"`
}

// ProcessConfig selects the files eligible for substitution.
type ProcessConfig struct {
	// FileExtensions lists extensions without the leading dot, e.g. "json".
	FileExtensions []string `toml:"file_extensions"`
}

// LoadConfig reads DescriptorFile from templateDir.
func LoadConfig(templateDir string) (*Config, error) {
	path := filepath.Join(templateDir, DescriptorFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewConfigError("template descriptor is missing", path, err)
		}
		return nil, oerrors.NewConfigError("reading template descriptor", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, oerrors.NewConfigError("malformed template descriptor", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a descriptor and checks the fields every template
// must declare.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Template.Name == "" {
		return nil, fmt.Errorf("template.name is required")
	}
	for i, r := range cfg.Renames {
		if r.From == "" || r.To == "" {
			return nil, fmt.Errorf("renames[%d]: from and to are required", i)
		}
	}
	if cfg.Variables == nil {
		cfg.Variables = map[string]Variable{}
	}
	return &cfg, nil
}

// RequiredVariables returns the names of required variables in sorted order.
func (c *Config) RequiredVariables() []string {
	var names []string
	for name, v := range c.Variables {
		if v.Required {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
