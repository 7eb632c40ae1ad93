package settings

import (
	"fmt"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
	"os"
	"time"
)

const ApiKeyEnv = "NEWS_AGENT_API_KEY"

type Feed struct {
	Category string `yaml:"category"`
	Url      string `yaml:"url"`
}

type Journal struct {
	Name  string `yaml:"name"`
	Home  string `yaml:"home"`
	Feeds []Feed `yaml:"feeds"`
}

type ConfigurationFile struct {
	Fetcher struct {
		UserAgent  string `yaml:"user-agent"`
		TimeOut    int    `yaml:"time-out"` // seconds, 0 - http client default
		PageFormat string `yaml:"page-format"`
	} `yaml:"fetcher"`
	Compute struct {
		Endpoint    string  `yaml:"endpoint"`
		Model       string  `yaml:"model"`
		ApiKey      string  `yaml:"api-key"`
		Temperature float32 `yaml:"temperature"`
		MaxTokens   int     `yaml:"max-tokens"`
	} `yaml:"compute"`
	Agent struct {
		MaxSteps             int      `yaml:"max-steps"`
		MaxObservationTokens int      `yaml:"max-observation-tokens"`
		Prompt               string   `yaml:"prompt"`
		ExcludeTools         []string `yaml:"exclude-tools"`
	} `yaml:"agent"`
	Journals []Journal `yaml:"journals"`
}

func DefaultConfiguration() *ConfigurationFile {
	config := &ConfigurationFile{}
	config.applyDefaults()

	return config
}

// ProcessConfigurationFile reads YAML configuration, anything missing from
// the file gets a default value. An empty path means defaults only.
func ProcessConfigurationFile(path string) (*ConfigurationFile, error) {
	config := &ConfigurationFile{}

	if path != "" {
		yamlText, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error loading configuration file %s: %v", path, err)
		}

		err = yaml.Unmarshal(yamlText, config)
		if err != nil {
			return nil, fmt.Errorf("error parsing configuration file %s: %v", path, err)
		}
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("error in configuration file %s: %v", path, err)
	}

	return config, nil
}

// LoadApiKey takes the key from the environment or from one of the
// dotenv files when the configuration has none. The process environment
// is never modified.
func (config *ConfigurationFile) LoadApiKey(dotEnvFiles ...string) {
	if config.Compute.ApiKey != "" {
		return
	}

	if key := os.Getenv(ApiKeyEnv); key != "" {
		config.Compute.ApiKey = key
		return
	}

	env, err := godotenv.Read(dotEnvFiles...)
	if err == nil {
		config.Compute.ApiKey = env[ApiKeyEnv]
	}
}

func (config *ConfigurationFile) FetcherTimeOut() time.Duration {
	return time.Duration(config.Fetcher.TimeOut) * time.Second
}

func (config *ConfigurationFile) Validate() error {
	switch config.Fetcher.PageFormat {
	case "text", "markdown", "readable":
	default:
		return fmt.Errorf("unknown page-format %q, expected text, markdown or readable", config.Fetcher.PageFormat)
	}

	if config.Agent.MaxSteps < 1 {
		return fmt.Errorf("max-steps should be positive, got %d", config.Agent.MaxSteps)
	}

	for _, journal := range config.Journals {
		if journal.Name == "" {
			return fmt.Errorf("journal without a name")
		}
	}

	return nil
}

func (config *ConfigurationFile) applyDefaults() {
	if config.Fetcher.UserAgent == "" {
		config.Fetcher.UserAgent = "Mozilla/5.0"
	}
	if config.Fetcher.PageFormat == "" {
		config.Fetcher.PageFormat = "text"
	}
	if config.Compute.Endpoint == "" {
		config.Compute.Endpoint = "https://generativelanguage.googleapis.com/v1beta/openai"
	}
	if config.Compute.Model == "" {
		config.Compute.Model = "gemini-2.0-flash-exp"
		config.Compute.Temperature = 1
	}
	if config.Agent.MaxSteps == 0 {
		config.Agent.MaxSteps = 15
	}
	if config.Agent.MaxObservationTokens == 0 {
		config.Agent.MaxObservationTokens = 4096
	}
	if len(config.Journals) == 0 {
		config.Journals = DefaultJournals()
	}
}
