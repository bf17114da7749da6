package forecast

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeConfig(t *testing.T) {
	want := Config{
		InitialInvestment:    10000,
		ExpectedYearlyReturn: 0.1,
		MonthlyContributions: 300,
		Volatility:           0.1,
		Years:                5,
		Goal:                 35000,
		NumSimulations:       10000,
		Currency:             "EUR",
	}
	testCases := []struct {
		name string
		doc  string
	}{
		{
			name: "yaml",
			doc: `initial_investment: 10000
expected_yearly_return: 0.10
monthly_contributions: 300
volatility: 0.10
years: 5
goal: 35000
num_simulations: 10000
currency: EUR
`,
		},
		{
			name: "json",
			doc: `{"initial_investment": 10000, "expected_yearly_return": 0.10, "monthly_contributions": 300,
"volatility": 0.10, "years": 5, "goal": 35000, "num_simulations": 10000, "currency": "EUR"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeConfig(strings.NewReader(tc.doc))
			if err != nil {
				t.Fatalf("DecodeConfig() unexpected error: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("DecodeConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeConfig_Errors(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown field": "initial_investment: 10\nyaers: 3\n",
		"wrong type":    "years: three\n",
		"empty":         "",
	} {
		if _, err := DecodeConfig(strings.NewReader(doc)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: DecodeConfig() error = %v, want ErrInvalidConfig", name, err)
		}
	}
}

func TestEncodeConfig_RoundTrip(t *testing.T) {
	want := DefaultConfig()
	want.Currency = "USD"
	var buf bytes.Buffer
	if err := EncodeConfig(&buf, want); err != nil {
		t.Fatalf("EncodeConfig() unexpected error: %v", err)
	}
	got, err := DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("DecodeConfig() unexpected error: %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	if err := os.WriteFile(path, []byte("initial_investment: 1000\nyears: 2\nnum_simulations: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if c.InitialInvestment != 1000 || c.Years != 2 || c.NumSimulations != 10 {
		t.Errorf("LoadConfig() = %+v", c)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadConfig() of a missing file error = %v, want fs.ErrNotExist", err)
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv("FCS_YEARS", "30")
	t.Setenv("FCS_VOLATILITY", "0.25")
	t.Setenv("FCS_CURRENCY", "GBP")

	c := DefaultConfig()
	if err := c.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() unexpected error: %v", err)
	}
	want := DefaultConfig()
	want.Years, want.Volatility, want.Currency = 30, 0.25, "GBP"
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("ApplyEnv() mismatch (-want +got):\n%s", diff)
	}

	t.Setenv("FCS_NUM_SIMULATIONS", "many")
	if err := c.ApplyEnv(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ApplyEnv() error = %v, want ErrInvalidConfig", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() unexpected error: %v", err)
	}

	testCases := []struct {
		name    string
		edit    func(*Config)
		want    error
		message string
	}{
		{"zero years is valid", func(c *Config) { c.Years = 0 }, nil, ""},
		{"withdrawals are valid", func(c *Config) { c.MonthlyContributions = -100 }, nil, ""},
		{"no trial", func(c *Config) { c.NumSimulations = 0 }, ErrInvalidConfig, "num_simulations must be greater than 0"},
		{"negative principal", func(c *Config) { c.InitialInvestment = -5 }, ErrInvalidConfig, "initial_investment"},
		{"negative years", func(c *Config) { c.Years = -2 }, ErrInvalidConfig, "years must be at least 0"},
		{"unknown currency", func(c *Config) { c.Currency = "EURO" }, ErrInvalidConfig, "ISO 4217"},
		{"negative volatility", func(c *Config) { c.Volatility = -0.01 }, ErrInvalidParameter, "volatility"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.edit(&c)
			err := c.Validate()
			if tc.want == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() error = %v, want %v", err, tc.want)
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tc.message)
			}
		})
	}
}
