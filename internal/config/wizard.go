package config

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
)

// defaultModels maps each provider to the model offered as the wizard default.
var defaultModels = map[ProviderType]string{
	ProviderGoogle: DefaultModel,
	ProviderOpenAI: "gpt-4o-mini",
	ProviderOllama: "llama3",
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to parselmouth.yaml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to parselmouth! Let's configure document titling.")
	fmt.Println()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"google", "openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	provider := ProviderType(providerStr)

	// 2. Model.
	modelPrompt := promptui.Prompt{
		Label:   "Model",
		Default: defaultModels[provider],
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	// 3. Word separator.
	separatorPrompt := promptui.Prompt{
		Label:   "Separator between title words",
		Default: "_",
	}
	separator, err := separatorPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("separator: %w", err)
	}

	// 4. Date prefix.
	includeDate := true
	datePrompt := promptui.Prompt{
		Label:     "Prefix titles with the document date",
		IsConfirm: true,
		Default:   "y",
	}
	if _, err := datePrompt.Run(); err != nil {
		// promptui reports a declined confirm as ErrAbort.
		if err != promptui.ErrAbort {
			return nil, fmt.Errorf("include date: %w", err)
		}
		includeDate = false
	}

	dateFormat := "YYYY-MM-DD"
	if includeDate {
		formatPrompt := promptui.Prompt{
			Label:   "Date format",
			Default: dateFormat,
		}
		dateFormat, err = formatPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("date format: %w", err)
		}
	}

	// 5. Casing policy.
	casingPrompt := promptui.Select{
		Label: "Title casing",
		Items: []string{
			"lower (force lower case, recommended)",
			"preserve (keep the model's casing)",
		},
	}
	casingIdx, _, err := casingPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("casing selection: %w", err)
	}
	casings := []Casing{CasingLower, CasingPreserve}

	cfg := &Config{
		Provider:    provider,
		Model:       model,
		IncludeDate: includeDate,
		DateFormat:  dateFormat,
		Separator:   separator,
		Casing:      casings[casingIdx],
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Point out the missing key, but don't block on it here.
	if provider != ProviderOllama && os.Getenv("PARSELMOUTH_API_KEY") == "" {
		fmt.Println("\nNote: Set PARSELMOUTH_API_KEY in your environment (or api-key in the config) before running suggest or rename.")
	}

	configPath := "parselmouth.yaml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
