package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults read from a YAML file. Flags given on the command
// line take precedence over every field.
type Config struct {
	Pretty   *bool  `yaml:"pretty"`
	Indices  *bool  `yaml:"indices"`
	Flavor   string `yaml:"flavor"`
	Item     string `yaml:"item"`
	Format   string `yaml:"format"`
	Indent   string `yaml:"indent"`
	Kind     string `yaml:"kind"`
	Truncate int    `yaml:"truncate"`
}

// LoadConfig reads a Config from path. Unknown keys are rejected so typos
// do not go unnoticed. An empty file yields the zero Config.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return decodeConfig(f)
}

func decodeConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
