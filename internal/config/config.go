// Package config provides hierarchical configuration management for relkit
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.relkit/config.yml) > user config (~/.config/relkit/config.yml)
// > defaults. A .env file in the project root is loaded first so webhook URLs
// and tokens can stay out of committed config files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration is the explicit configuration struct handed to whichever
// component needs it. No component reads process environment directly.
type Configuration struct {
	// Manifest is the project descriptor file holding the version line.
	Manifest string `koanf:"manifest"`
	// Changelog is the developer-facing changelog document.
	Changelog string `koanf:"changelog"`
	// ProdChangelog is the production-facing changelog document.
	ProdChangelog string `koanf:"prod_changelog"`
	// Remote is the git remote releases are pushed to.
	Remote string `koanf:"remote"`
	// TagPrefix is prepended to the version when tagging (e.g. "v").
	TagPrefix string `koanf:"tag_prefix"`
	// Scope narrows commit classification to one app in a multi-app repo.
	Scope string `koanf:"scope"`

	Slack      SlackConfig      `koanf:"slack"`
	Jira       JiraConfig       `koanf:"jira"`
	CloudFront CloudFrontConfig `koanf:"cloudfront"`
}

// SlackConfig holds per-app incoming webhook URLs.
type SlackConfig struct {
	Webhooks map[string]string `koanf:"webhooks"`
}

// JiraConfig holds the issue-tracker webhook endpoint and its token.
type JiraConfig struct {
	URL   string `koanf:"url"`
	Token string `koanf:"token"`
}

// CloudFrontConfig holds per-app distribution IDs for cache invalidation.
type CloudFrontConfig struct {
	Distributions map[string]string `koanf:"distributions"`
}

// Load loads configuration from defaults, user config, project config, .env,
// and environment variables, in increasing priority. projectConfigPath
// overrides the default project config location (used by tests).
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range Defaults() {
		k.Set(key, value)
	}
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"manifest":       "pubspec.yaml",
		"changelog":      "CHANGELOG.md",
		"prod_changelog": "CHANGELOG_PROD.md",
		"remote":         "origin",
		"tag_prefix":     "",
		"scope":          "",
	}
}

// loadUserConfig loads the user-level YAML config when present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}
	return loadConfigFile(k, path, "user")
}

// loadProjectConfig loads the project-level config. YAML is preferred; a
// JSON config at the same location is also accepted.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	if customPath != "" {
		return loadConfigFile(k, customPath, "project")
	}

	yamlPath := ProjectConfigPath()
	if fileExists(yamlPath) {
		return loadConfigFile(k, yamlPath, "project")
	}

	jsonPath := ProjectConfigJSONPath()
	if fileExists(jsonPath) {
		return loadConfigFile(k, jsonPath, "project")
	}

	return nil
}

// loadConfigFile validates and loads a single YAML or JSON config file.
func loadConfigFile(k *koanf.Koanf, path, configType string) error {
	if strings.HasSuffix(path, ".json") {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
		}
		return nil
	}

	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads .env (when present) and RELKIT_ environment
// variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	// godotenv never overrides variables already set in the environment.
	_ = godotenv.Load()

	if err := k.Load(env.Provider("RELKIT_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: RELKIT_TAG_PREFIX -> tag_prefix, RELKIT_JIRA__TOKEN -> jira.token.
// A double underscore separates nesting levels so single underscores stay
// part of the key.
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "RELKIT_"))
	return strings.ReplaceAll(key, "__", ".")
}

// fileExists checks whether a path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
