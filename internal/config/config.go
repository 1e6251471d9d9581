package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable ghlabels reads.
const EnvPrefix = "GHLABELS"

// Setting keys shared by flags, environment variables and the config file.
const (
	KeyToken       = "token"
	KeyEndpoint    = "endpoint"
	KeyFile        = "file"
	KeyOwner       = "owner"
	KeyOwners      = "owners"
	KeyRepo        = "repo"
	KeyDryRun      = "dry-run"
	KeyNoCreate    = "no-create"
	KeyNoDelete    = "no-delete"
	KeyYes         = "yes"
	KeyOutput      = "output"
	KeyMetricsFile = "metrics-file"
	KeyVerbose     = "verbose"
	KeyTimeout     = "timeout"
	KeyS3Endpoint  = "s3-endpoint"
	KeyS3Region    = "s3-region"
	KeyS3AccessKey = "s3-access-key"
	KeyS3SecretKey = "s3-secret-key"
)

// keys lists every setting key. Each is bound to its environment variable so
// that it reaches the decoded settings even when no flag or default registers it.
var keys = []string{
	KeyEndpoint, KeyFile, KeyOwner, KeyOwners, KeyRepo,
	KeyDryRun, KeyNoCreate, KeyNoDelete, KeyYes,
	KeyOutput, KeyMetricsFile, KeyVerbose, KeyTimeout,
	KeyS3Endpoint, KeyS3Region, KeyS3AccessKey, KeyS3SecretKey,
}

// Defaults.
const (
	DefaultEndpoint = "https://api.github.com"
	DefaultFile     = "labels.yml"
	DefaultOutput   = OutputText
	DefaultTimeout  = 30 * time.Second
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// OutputFormats lists the supported report formats.
var OutputFormats = []string{OutputText, OutputJSON, OutputYAML}

// ErrMissingToken is returned when no token was provided by any source.
var ErrMissingToken = errors.New("a GitHub token is required (--token, GHLABELS_TOKEN or GITHUB_TOKEN)")

// Settings is the resolved configuration of one invocation.
type Settings struct {
	Token    string `mapstructure:"token"`
	Endpoint string `mapstructure:"endpoint"`
	File     string `mapstructure:"file"`

	Owner  string   `mapstructure:"owner"`
	Owners []string `mapstructure:"owners"`
	Repo   string   `mapstructure:"repo"`

	DryRun   bool `mapstructure:"dry-run"`
	NoCreate bool `mapstructure:"no-create"`
	NoDelete bool `mapstructure:"no-delete"`
	Yes      bool `mapstructure:"yes"`

	Output      string        `mapstructure:"output"`
	MetricsFile string        `mapstructure:"metrics-file"`
	Verbose     bool          `mapstructure:"verbose"`
	Timeout     time.Duration `mapstructure:"timeout"`

	S3 S3Settings `mapstructure:",squash"`
}

// S3Settings configures object storage access for s3:// templates.
// Empty keys select the default AWS credential chain.
type S3Settings struct {
	Endpoint  string `mapstructure:"s3-endpoint"`
	Region    string `mapstructure:"s3-region"`
	AccessKey string `mapstructure:"s3-access-key"`
	SecretKey string `mapstructure:"s3-secret-key"`
}

// New returns a viper instance with defaults and environment bindings.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyEndpoint, DefaultEndpoint)
	v.SetDefault(KeyFile, DefaultFile)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyTimeout, DefaultTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// BindEnv only fails without a key.
	_ = v.BindEnv(KeyToken, EnvVar(KeyToken), "GITHUB_TOKEN")
	for _, key := range keys {
		_ = v.BindEnv(key, EnvVar(key))
	}

	return v
}

// EnvVar returns the environment variable that sets key.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// ReadFile loads the config file at path, or the default location when path
// is empty. A missing default file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		v.AddConfigPath(filepath.Join(home, ".config", "ghlabels"))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ghlabels", "config.yaml")
}

// Load decodes the layered settings.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		Result:           &s,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create config decoder: %w", err)
	}

	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	s.normalize()
	return &s, nil
}

func (s *Settings) normalize() {
	s.Token = strings.TrimSpace(s.Token)
	s.Endpoint = strings.TrimSpace(s.Endpoint)
	s.Output = strings.ToLower(strings.TrimSpace(s.Output))

	owners := s.Owners[:0]
	for _, o := range s.Owners {
		if o = strings.TrimSpace(o); o != "" {
			owners = append(owners, o)
		}
	}
	s.Owners = owners
}

// Validate checks the settings an apply run depends on.
func (s *Settings) Validate() error {
	if s.Token == "" {
		return ErrMissingToken
	}

	u, err := url.Parse(s.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: must be an absolute URL", s.Endpoint)
	}

	if !slices.Contains(OutputFormats, s.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %s", s.Output, strings.Join(OutputFormats, ", "))
	}

	if s.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", s.Timeout)
	}

	return nil
}
