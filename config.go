package kord

import (
	"io"

	"gopkg.in/yaml.v3"
)

// AnalyzerConfig holds the tunable thresholds of the AudioAnalyzer pipeline.
type AnalyzerConfig struct {
	MinBinHz           int     `yaml:"min_bin_hz"`
	MaxBinHz           int     `yaml:"max_bin_hz"`
	PeakWindowDivisor  float64 `yaml:"peak_window_divisor"`
	DerivativeWindow   int     `yaml:"derivative_window"`
	NoiseGateRatio     float64 `yaml:"noise_gate_ratio"`
	MagnitudeFloor     float64 `yaml:"magnitude_floor"`
	NoteCount          int     `yaml:"note_count"`
	HarmonicFloorRatio float64 `yaml:"harmonic_floor_ratio"`
}

// DefaultConfig returns the thresholds the core pipeline uses.
func DefaultConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MinBinHz:           50,
		MaxBinHz:           8000,
		PeakWindowDivisor:  50,
		DerivativeWindow:   3,
		NoiseGateRatio:     0.1,
		MagnitudeFloor:     0.1,
		NoteCount:          12,
		HarmonicFloorRatio: 10,
	}
}

// LoadConfig reads an AnalyzerConfig as YAML from r, filling any field it
// doesn't mention from DefaultConfig.
func LoadConfig(r io.Reader) (AnalyzerConfig, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return AnalyzerConfig{}, err
	}
	return cfg, nil
}
