package cmd

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"go.dedis.ch/sssrecover/recovery"
)

// Options are the command line settings shared by every command. Empty
// values leave the configuration file, or the defaults, untouched.
type Options struct {
	ConfigPath string
	Method     string
	Modulus    string
	Round      bool
	Verbose    bool
	JSON       bool

	// LogOutput receives uncolored logs. Colored logs go to stderr if nil.
	LogOutput io.Writer
}

// Configuration builds the solver configuration: defaults, then the YAML
// file if any, then the flags.
func (o Options) Configuration() (recovery.Configuration, error) {
	conf := recovery.DefaultConfiguration()
	level := zerolog.ErrorLevel

	if o.ConfigPath != "" {
		fc, err := recovery.ConfigFromYAML(o.ConfigPath)
		if err != nil {
			return conf, err
		}
		err = fc.Apply(&conf)
		if err != nil {
			return conf, xerrors.Errorf("invalid config %s: %v", o.ConfigPath, err)
		}
		level, err = fc.Level()
		if err != nil {
			return conf, err
		}
	}

	if o.Method != "" {
		method, err := recovery.ParseMethod(o.Method)
		if err != nil {
			return conf, err
		}
		conf.Method = method
	}

	if o.Modulus != "" {
		modulus, err := recovery.ParseModulus(o.Modulus)
		if err != nil {
			return conf, err
		}
		conf.Modulus = modulus
	}

	if o.Round {
		conf.AllowRounding = true
	}

	if o.Verbose {
		level = zerolog.DebugLevel
	}

	out := o.LogOutput
	if out == nil {
		out = os.Stderr
	}
	conf.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: o.LogOutput != nil}).
		Level(level).With().Timestamp().Logger()

	return conf, nil
}
