package recovery

import (
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// decimal keeps the literal text of a YAML scalar, quoted or not, so that
// large moduli are not squeezed through an int64.
type decimal string

func (d *decimal) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return xerrors.Errorf("expected a number, line %d", value.Line)
	}
	*d = decimal(value.Value)
	return nil
}

// FileConfig is the content of a YAML configuration file.
type FileConfig struct {
	Method        string  `yaml:"method"`
	Modulus       decimal `yaml:"modulus"`
	AllowRounding bool    `yaml:"allow_rounding"`
	LogLevel      string  `yaml:"log_level"`
}

// ConfigFromYAML reads a configuration file.
func ConfigFromYAML(path string) (*FileConfig, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("failed to read config: %v", err)
	}

	fc := FileConfig{}
	err = yaml.Unmarshal(yamlFile, &fc)
	if err != nil {
		return nil, xerrors.Errorf("failed to parse config %s: %v", path, err)
	}

	return &fc, nil
}

// Apply copies the file settings into conf.
func (fc *FileConfig) Apply(conf *Configuration) error {
	method, err := ParseMethod(fc.Method)
	if err != nil {
		return err
	}
	conf.Method = method

	modulus, err := ParseModulus(string(fc.Modulus))
	if err != nil {
		return err
	}
	conf.Modulus = modulus
	conf.AllowRounding = fc.AllowRounding

	return nil
}

// Level returns the configured log level, error if none is set.
func (fc *FileConfig) Level() (zerolog.Level, error) {
	if fc.LogLevel == "" {
		return zerolog.ErrorLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(fc.LogLevel))
	if err != nil {
		return zerolog.NoLevel, xerrors.Errorf("invalid log level %q: %v", fc.LogLevel, err)
	}
	return level, nil
}

// ParseModulus parses a decimal modulus. The empty string means no modulus.
// Primality is checked when a solver is created.
func ParseModulus(text string) (*big.Int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	modulus, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, xerrors.Errorf("invalid modulus %q", text)
	}
	return modulus, nil
}
