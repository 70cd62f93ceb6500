package hummbl

import "github.com/hummbl-dev/hummbl-prototype/score"

// Config holds all configuration for the decomposition operator.
type Config struct {
	// TokenGapThreshold is the number of tokens between two signals in the
	// same text segment above which the segment is split into separate
	// components.
	TokenGapThreshold int `json:"token_gap_threshold" yaml:"token_gap_threshold"`

	// LowConfidenceThreshold is the confidence below which the reporter
	// attaches a low-confidence warning to the result.
	LowConfidenceThreshold float64 `json:"low_confidence_threshold" yaml:"low_confidence_threshold"`

	// MaxInputBytes bounds the statement length. Inputs above this limit
	// are rejected with ErrInvalidInput before any stage runs.
	MaxInputBytes int `json:"max_input_bytes" yaml:"max_input_bytes"`

	// Confidence controls the relative weight of the confidence factors.
	Confidence score.ConfidenceWeights `json:"confidence" yaml:"confidence"`

	// Complexity controls the relative weight of the complexity factors.
	Complexity score.ComplexityWeights `json:"complexity" yaml:"complexity"`
}

// DefaultConfig returns a Config with the tuned default heuristics.
func DefaultConfig() Config {
	return Config{
		TokenGapThreshold:      3,
		LowConfidenceThreshold: 0.5,
		MaxInputBytes:          64 * 1024,
		Confidence:             score.DefaultConfidenceWeights(),
		Complexity:             score.DefaultComplexityWeights(),
	}
}

// normalized fills zero-value fields with defaults so a partially
// populated Config behaves sensibly.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.TokenGapThreshold == 0 {
		c.TokenGapThreshold = def.TokenGapThreshold
	}
	if c.LowConfidenceThreshold == 0 {
		c.LowConfidenceThreshold = def.LowConfidenceThreshold
	}
	if c.MaxInputBytes == 0 {
		c.MaxInputBytes = def.MaxInputBytes
	}
	if c.Confidence == (score.ConfidenceWeights{}) {
		c.Confidence = def.Confidence
	}
	if c.Complexity == (score.ComplexityWeights{}) {
		c.Complexity = def.Complexity
	}
	return c
}
