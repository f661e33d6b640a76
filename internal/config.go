package internal

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/scottidler/obsidian-bookmark/internal/apperr"
	"github.com/scottidler/obsidian-bookmark/internal/classify"
	"github.com/scottidler/obsidian-bookmark/internal/note"
)

// Config represents the application configuration. It is loaded once at
// startup and shared read-only across requests.
type Config struct {
	App         ApplicationConfig `yaml:"app"`
	Vault       VaultConfig       `yaml:"vault"`
	Providers   ProvidersConfig   `yaml:"providers"`
	Frontmatter note.Frontmatter  `yaml:"frontmatter"`
	Links       []LinkConfig      `yaml:"links"`

	rules []classify.Rule
}

// Validate validates the configuration and compiles the link rules. A pattern
// that fails to compile is a startup-fatal error, not a per-request one.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Vault.Validate(); err != nil {
		return err
	}
	if err := c.Providers.Validate(); err != nil {
		return err
	}
	if len(c.Links) == 0 {
		return fmt.Errorf("links: at least one rule is required")
	}

	rules := make([]classify.Rule, 0, len(c.Links))
	for _, link := range c.Links {
		if err := link.Validate(); err != nil {
			return fmt.Errorf("link %q: %w", link.Name, err)
		}
		re, err := regexp.Compile(link.Regex)
		if err != nil {
			return fmt.Errorf("%w: link %q: %v", apperr.ErrRegexCompile, link.Name, err)
		}
		rules = append(rules, classify.Rule{
			Name:       link.Name,
			Pattern:    re,
			Resolution: link.Resolution,
			Folder:     link.Folder,
		})
	}
	c.rules = rules
	return nil
}

// Rules returns the compiled link rules in configured order. Valid only after
// a successful Validate.
func (c *Config) Rules() []classify.Rule {
	return c.rules
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	Timezone string     `yaml:"timezone"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Timezone, validation.Required),
	); err != nil {
		return err
	}
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// VaultConfig holds the path to the Markdown vault directory.
type VaultConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the vault configuration.
func (c *VaultConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// ProvidersConfig holds credentials and endpoints for the metadata providers.
type ProvidersConfig struct {
	YouTube YouTubeConfig `yaml:"youtube"`
	OpenAI  OpenAIConfig  `yaml:"openai"`
}

// Validate validates the provider configuration.
func (c *ProvidersConfig) Validate() error {
	if err := c.YouTube.Validate(); err != nil {
		return err
	}
	return c.OpenAI.Validate()
}

// YouTubeConfig holds the YouTube Data API credentials.
type YouTubeConfig struct {
	APIKey string `yaml:"api_key"`
}

// Validate validates the YouTube configuration.
func (c *YouTubeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.APIKey, validation.Required),
	)
}

// OpenAIConfig holds the summarizer credentials and endpoint.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// Validate validates the OpenAI configuration.
func (c *OpenAIConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.APIKey, validation.Required),
	)
}

// LinkConfig is one classification rule as it appears in the config file.
// Order in the list is significant for matching.
type LinkConfig struct {
	Name       string `yaml:"name"`
	Regex      string `yaml:"regex"`
	Resolution string `yaml:"resolution"`
	Folder     string `yaml:"folder"`
}

// Validate validates a link rule entry.
func (c *LinkConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Regex, validation.Required),
		validation.Field(&c.Resolution, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values. Provider
// keys default to the environment so a config file only needs to override them.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			Timezone: "America/Los_Angeles",
			HTTP: HTTPConfig{
				Port: 65000,
			},
		},
		Vault: VaultConfig{
			Path: "~/obsidian",
		},
		Providers: ProvidersConfig{
			YouTube: YouTubeConfig{
				APIKey: os.Getenv("YOUTUBE_API_KEY"),
			},
			OpenAI: OpenAIConfig{
				APIKey: os.Getenv("CHATGPT_API_KEY"),
				Model:  "gpt-3.5-turbo",
			},
		},
		Links: []LinkConfig{
			{Name: "shorts", Regex: `youtube\.com/shorts/`, Resolution: "720p", Folder: "shorts"},
			{Name: "youtube", Regex: `(youtube\.com/watch\?|youtu\.be/)`, Resolution: "SD", Folder: "youtube"},
			{Name: "default", Regex: `^https?://`, Resolution: "SD", Folder: "links"},
		},
	}
}
