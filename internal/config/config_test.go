package config

import "testing"

func TestPipelineConfigValidate(t *testing.T) {
	t.Parallel()

	valid := PipelineConfig{
		DaysBack:            7,
		SimilarityThreshold: 0.78,
		MinClusterSize:      2,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*PipelineConfig)
	}{
		{"threshold at zero", func(c *PipelineConfig) { c.SimilarityThreshold = 0 }},
		{"threshold at one", func(c *PipelineConfig) { c.SimilarityThreshold = 1 }},
		{"threshold negative", func(c *PipelineConfig) { c.SimilarityThreshold = -0.5 }},
		{"min cluster size zero", func(c *PipelineConfig) { c.MinClusterSize = 0 }},
		{"days back zero", func(c *PipelineConfig) { c.DaysBack = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestMergeConfigOverrides(t *testing.T) {
	t.Parallel()

	base := defaultConfig()
	override := Config{
		Logging:  LoggingConfig{Level: "error"},
		Database: DatabaseConfig{DSN: "postgres://override"},
		Pipeline: PipelineConfig{SimilarityThreshold: 0.9, UseModels: true},
	}

	merged := mergeConfig(base, override)

	if merged.Logging.Level != "error" {
		t.Fatalf("logging level not overridden: %s", merged.Logging.Level)
	}
	if merged.Database.DSN != "postgres://override" {
		t.Fatalf("dsn not overridden: %s", merged.Database.DSN)
	}
	if merged.Pipeline.SimilarityThreshold != 0.9 {
		t.Fatalf("threshold not overridden: %v", merged.Pipeline.SimilarityThreshold)
	}
	// Fields absent from the override keep their defaults.
	if merged.Pipeline.DaysBack != base.Pipeline.DaysBack {
		t.Fatalf("daysBack lost its default: %d", merged.Pipeline.DaysBack)
	}
	if merged.Gemini.EmbedModel != base.Gemini.EmbedModel {
		t.Fatalf("embed model lost its default: %s", merged.Gemini.EmbedModel)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	if err := defaultConfig().Pipeline.Validate(); err != nil {
		t.Fatalf("default pipeline config invalid: %v", err)
	}
	if len(defaultConfig().Sites) == 0 {
		t.Fatal("default config has no sites")
	}
}
