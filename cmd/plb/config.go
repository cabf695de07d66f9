package main

import (
	stderrors "errors"
	"io/fs"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/plbin/assembly"
	"github.com/wippyai/plbin/binfile"
	"github.com/wippyai/plbin/errors"
)

const defaultConfigPath = "plb.toml"

// Config is the plb.toml file. Command-line flags override it.
type Config struct {
	Log    LogConfig    `toml:"log"`
	File   FileConfig   `toml:"file"`
	Dump   DumpConfig   `toml:"dump"`
	Export ExportConfig `toml:"export"`
	Verify VerifyConfig `toml:"verify"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// FileConfig describes the envelope. An empty Magic means no header.
type FileConfig struct {
	Magic string `toml:"magic"`
}

type DumpConfig struct {
	Color string `toml:"color"` // auto, on or off
}

type ExportConfig struct {
	Format string `toml:"format"`
}

type VerifyConfig struct {
	Jobs int `toml:"jobs"`
}

func defaultConfig() Config {
	return Config{
		Log:    LogConfig{Level: "warn"},
		File:   FileConfig{Magic: string(assembly.Magic[:])},
		Dump:   DumpConfig{Color: "auto"},
		Export: ExportConfig{Format: "cbor"},
		Verify: VerifyConfig{Jobs: runtime.NumCPU()},
	}
}

// loadConfig reads path over the defaults. A missing file is only an error
// when the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return Config{}, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Cause(err).
			Detail("config %s", path).
			Build()
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Detail("config %s: unknown keys %s", path, strings.Join(keys, ", ")).
			Build()
	}
	if cfg.Verify.Jobs < 1 {
		cfg.Verify.Jobs = 1
	}
	return cfg, nil
}

func (c FileConfig) options() ([]binfile.Option, error) {
	switch len(c.Magic) {
	case 0:
		return nil, nil
	case 2:
		return []binfile.Option{binfile.WithMagic([2]byte{c.Magic[0], c.Magic[1]})}, nil
	}
	return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
		Value(c.Magic).
		Detail("magic must be exactly two bytes, got %q", c.Magic).
		Build()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
			Cause(err).
			Detail("log level %q", level).
			Build()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}
