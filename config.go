package forecast

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config describes the portfolio to project and how many trials to run.
//
// Field names in files follow the yaml tags. Every field can also be set from
// the environment with the env tag.
type Config struct {
	InitialInvestment    float64 `yaml:"initial_investment" env:"FCS_INITIAL_INVESTMENT" validate:"gt=0"`
	ExpectedYearlyReturn float64 `yaml:"expected_yearly_return" env:"FCS_EXPECTED_YEARLY_RETURN"`
	MonthlyContributions float64 `yaml:"monthly_contributions" env:"FCS_MONTHLY_CONTRIBUTIONS"`
	Volatility           float64 `yaml:"volatility" env:"FCS_VOLATILITY"`
	Years                int     `yaml:"years" env:"FCS_YEARS" validate:"gte=0"`
	Goal                 float64 `yaml:"goal" env:"FCS_GOAL"`
	NumSimulations       int     `yaml:"num_simulations" env:"FCS_NUM_SIMULATIONS" validate:"gt=0"`

	// Currency is only used to format reports. Empty means plain numbers.
	Currency string `yaml:"currency,omitempty" env:"FCS_CURRENCY" validate:"omitempty,iso4217"`
}

// DefaultConfig returns the example portfolio used when no configuration file is given.
func DefaultConfig() Config {
	return Config{
		InitialInvestment:    3340,
		ExpectedYearlyReturn: 0.10,
		MonthlyContributions: 50,
		Volatility:           0.10,
		Years:                3,
		Goal:                 5800,
		NumSimulations:       1_000_000,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields with the names users write in their files.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	return v
}

// Validate checks that c can be simulated.
//
// A negative volatility is an ErrInvalidParameter, every other failure is an
// ErrInvalidConfig.
func (c Config) Validate() error {
	if !(c.Volatility >= 0) {
		return fmt.Errorf("%w: volatility must be non-negative, got %v", ErrInvalidParameter, c.Volatility)
	}
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s, got %v", fe.Field(), fe.Param(), fe.Value()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value()))
		case "iso4217":
			msgs = append(msgs, fmt.Sprintf("%s %q is not an ISO 4217 currency code", fe.Field(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// DecodeConfig reads a Config from a YAML or JSON document.
//
// Unknown fields are rejected, missing ones are left to their zero value. The
// result is not validated.
func DecodeConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return c, fmt.Errorf("%w: empty configuration", ErrInvalidConfig)
		}
		return c, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c, nil
}

// LoadConfig reads a Config from the file at path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	c, err := DecodeConfig(f)
	if err != nil {
		return c, fmt.Errorf("reading config %q: %w", path, err)
	}
	return c, nil
}

// EncodeConfig writes c as YAML, in a form DecodeConfig reads back.
func EncodeConfig(w io.Writer, c Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// ApplyEnv overrides the fields of c that have an environment variable set.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("%w: parse env: %v", ErrInvalidConfig, err)
	}
	return nil
}
