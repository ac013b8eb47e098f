package budget_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/budgetkit/budget"
	"github.com/randalmurphal/budgetkit/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := budget.DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, tokens.StrategyCharacter, cfg.CountingStrategy)
	assert.Equal(t, budget.StrategyBalanced, cfg.AllocationStrategy)
	assert.Equal(t, budget.OverflowCompress, cfg.OverflowStrategy)
	assert.Positive(t, cfg.Available())
}

func TestValidate_RejectsUnknownStrategies(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*budget.Config)
		target error
	}{
		{
			name:   "counting strategy",
			mutate: func(c *budget.Config) { c.CountingStrategy = "subword" },
			target: tokens.ErrUnknownStrategy,
		},
		{
			name:   "allocation strategy",
			mutate: func(c *budget.Config) { c.AllocationStrategy = "fastest" },
			target: budget.ErrUnknownAllocationStrategy,
		},
		{
			name:   "overflow strategy",
			mutate: func(c *budget.Config) { c.OverflowStrategy = "drop" },
			target: budget.ErrUnknownOverflowStrategy,
		},
		{
			name: "fallback strategy",
			mutate: func(c *budget.Config) {
				c.FallbackStrategies = []budget.OverflowStrategy{"summarize"}
			},
			target: budget.ErrUnknownOverflowStrategy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := budget.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target))
			assert.True(t, budget.IsConfigError(err))

			// New must reject the config too, not fall back silently.
			_, err = budget.New(cfg)
			assert.Error(t, err)
		})
	}
}

func TestValidate_DegenerateBudgetIsData(t *testing.T) {
	cfg := budget.DefaultConfig()
	cfg.TotalBudget = 0
	assert.NoError(t, cfg.Validate(), "an exhausted budget is not a config error")
	assert.Negative(t, cfg.Available())
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
total_budget: 50000
buffer_tokens: 1000
min_response_tokens: 2000
counting_strategy: heuristic
allocation_strategy: quality
overflow_strategy: truncate_end
fallback_strategies: [degrade]
quality_threshold: 0.5
`)

	cfg, err := budget.ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, 50000, cfg.TotalBudget)
	assert.Equal(t, 47000, cfg.Available())
	assert.Equal(t, tokens.StrategyHeuristic, cfg.CountingStrategy)
	assert.Equal(t, budget.StrategyQuality, cfg.AllocationStrategy)
	assert.Equal(t, budget.OverflowTruncateEnd, cfg.OverflowStrategy)
	assert.Equal(t, []budget.OverflowStrategy{budget.OverflowDegrade}, cfg.FallbackStrategies)
	assert.Equal(t, 0.5, cfg.QualityThreshold)
	// Unspecified fields keep their defaults.
	assert.True(t, cfg.CacheTokenCounts)
}

func TestParseYAML_InvalidStrategyFailsFast(t *testing.T) {
	_, err := budget.ParseYAML([]byte("allocation_strategy: fastest\n"))
	require.Error(t, err)
	assert.True(t, budget.IsConfigError(err))
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
total_budget = 80000
allocation_strategy = "speed"
counting_strategy = "word"
overflow_strategy = "compress"
fallback_strategies = ["truncate_middle", "degrade"]
`)

	cfg, err := budget.ParseTOML(data)
	require.NoError(t, err)

	assert.Equal(t, 80000, cfg.TotalBudget)
	assert.Equal(t, budget.StrategySpeed, cfg.AllocationStrategy)
	assert.Equal(t, tokens.StrategyWord, cfg.CountingStrategy)
	assert.Equal(t,
		[]budget.OverflowStrategy{budget.OverflowTruncateMiddle, budget.OverflowDegrade},
		cfg.FallbackStrategies)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "budget.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("total_budget: 12345\n"), 0o644))

	cfg, err := budget.LoadConfig(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 12345, cfg.TotalBudget)

	tomlPath := filepath.Join(dir, "budget.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("total_budget = 54321\n"), 0o644))

	cfg, err = budget.LoadConfig(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 54321, cfg.TotalBudget)
}

func TestLoadConfig_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "budget.ini")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := budget.LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := budget.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfigSchema(t *testing.T) {
	schema := budget.ConfigSchema()
	require.NotNil(t, schema)

	_, ok := schema.Properties.Get("total_budget")
	assert.True(t, ok, "schema should expose the total_budget property")
	_, ok = schema.Properties.Get("allocation_strategy")
	assert.True(t, ok)
}

func TestParsePriority(t *testing.T) {
	p, err := budget.ParsePriority("critical")
	require.NoError(t, err)
	assert.Equal(t, budget.PriorityCritical, p)
	assert.Equal(t, "critical", p.String())

	_, err = budget.ParsePriority("urgent")
	assert.Error(t, err)
}
