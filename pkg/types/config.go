package types

import "time"

// HTTPConfig holds shared HTTP settings used when talking to the wolai API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "wolai2md/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// APIConfig holds settings for the block-tree fetch.
type APIConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the wolai open API root (default https://openapi.wolai.com).
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// MaxRetries is the number of retries on HTTP 429. Zero means a single
	// attempt.
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// OutputConfig holds settings for the written artifacts.
type OutputConfig struct {
	// Filename is the Markdown file written under the output directory
	// (default index.md).
	Filename string `json:"filename" yaml:"filename" mapstructure:"filename"`

	// Frontmatter prepends a YAML header describing the conversion run.
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter" mapstructure:"frontmatter"`

	// HTML additionally writes an HTML preview next to the Markdown file.
	HTML bool `json:"html" yaml:"html" mapstructure:"html"`
}

// Config groups all settings of a conversion run.
type Config struct {
	// Token is the wolai app token sent verbatim as the Authorization header.
	Token string `json:"token,omitempty" yaml:"token,omitempty" mapstructure:"token"`

	API    APIConfig    `json:"api" yaml:"api" mapstructure:"api"`
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`

	// LogLevel is a logrus level name (default "info").
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}
