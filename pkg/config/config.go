// Package config holds the converter settings that can be set from a TOML
// file.
package config

import (
	"bufio"
	"fmt"
	"os"
	"reflect"
	"strings"
	"unicode"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zerfoo/ztflite/pkg/converter"
)

// DefaultLogFile is where the CLI appends its log unless told otherwise.
const DefaultLogFile = "ztflite-converter.log"

// TOML keys use the same names as the Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if name := rt.Name(); name != "" && unicode.IsUpper(rune(name[0])) {
			link = fmt.Sprintf(", see https://pkg.go.dev/%s#%s for available fields", rt.PkgPath(), name)
		}
		return errors.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// Config is the top-level configuration file.
type Config struct {
	Converter Converter
	Log       Log
}

// Converter configures the conversion driver.
type Converter struct {
	// Policy is "collect" or "failfast".
	Policy          string
	Workers         int
	SkipUnsupported bool
}

// Log configures logging.
type Log struct {
	// Level is a logrus level name.
	Level string
	// File receives the log, appended to. "-" means stderr.
	File string
	// JSON selects the JSON formatter instead of text.
	JSON bool
}

// DefaultConfig contains the default settings.
var DefaultConfig = Config{
	Converter: Converter{
		Policy:  converter.CollectErrors.String(),
		Workers: 1,
	},
	Log: Log{
		Level: logrus.InfoLevel.String(),
		File:  DefaultLogFile,
	},
}

// Load decodes file over cfg. Keys that match no field are an error.
func Load(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// Marshal encodes cfg as TOML.
func Marshal(cfg *Config) ([]byte, error) {
	return tomlSettings.Marshal(cfg)
}

// Options converts the settings into converter options.
func (c Converter) Options() ([]converter.Option, error) {
	policy, err := converter.ParsePolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	if c.Workers < 0 {
		return nil, errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return []converter.Option{
		converter.WithPolicy(policy),
		converter.WithWorkers(c.Workers),
		converter.WithSkipUnsupported(c.SkipUnsupported),
	}, nil
}

// NewLogger builds the logger described by l. The returned function
// closes the log file, if one was opened.
func (l Log) NewLogger() (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(strings.TrimSpace(l.Level))
	if err != nil {
		return nil, nil, errors.Wrap(err, "log level")
	}
	logger.SetLevel(level)
	if l.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	closer := func() error { return nil }
	switch l.File {
	case "", "-":
		logger.SetOutput(os.Stderr)
	default:
		f, err := os.OpenFile(l.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to open log file")
		}
		logger.SetOutput(f)
		closer = f.Close
	}
	return logger, closer, nil
}
