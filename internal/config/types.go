package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderGoogle ProviderType = "google"
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
)

// Casing controls how the formatter treats letter case in suggested titles.
type Casing string

const (
	// CasingLower forces the whole title to lower case.
	CasingLower Casing = "lower"
	// CasingPreserve keeps whatever case the model returned.
	CasingPreserve Casing = "preserve"
)

// Config is the effective parselmouth configuration, corresponding to
// parselmouth.yaml. All fields can also be set via PARSELMOUTH_* environment
// variables and CLI flags; flags win over env, env wins over the file.
type Config struct {
	Provider    ProviderType `yaml:"provider" koanf:"provider"`
	APIKey      string       `yaml:"api-key,omitempty" koanf:"api-key"`
	Model       string       `yaml:"model" koanf:"model"`
	IncludeDate bool         `yaml:"include-date" koanf:"include-date"`
	DateFormat  string       `yaml:"date-format" koanf:"date-format"`
	Separator   string       `yaml:"separator" koanf:"separator"`
	Casing      Casing       `yaml:"casing" koanf:"casing"`
}

// Overrides carries explicit CLI flag values. Nil fields mean "not set on the
// command line" and leave the lower layers untouched.
type Overrides struct {
	Provider    *string
	APIKey      *string
	Model       *string
	IncludeDate *bool
	DateFormat  *string
	Separator   *string
	Casing      *string
}
