package config

// ProviderType identifies a text-generation provider. Empty disables
// generation; the assistant then uses its canned responses only.
type ProviderType string

const (
	ProviderNone   ProviderType = ""
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level smartshop configuration, corresponding to
// .smartshop.yml.
type Config struct {
	Port    int    `yaml:"port" koanf:"port"`
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	RequestsPerMinute int          `yaml:"requests_per_minute" koanf:"requests_per_minute"`

	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
