package configmanager

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mri-tools/geprotocol/pkg/apis/protocol/v1alpha1"
	"github.com/mri-tools/geprotocol/pkg/envvar"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment variables overriding settings.
	EnvPrefix = "GEPROTOCOL"
	// ConfigName is the base name of the config file searched for by default.
	ConfigName = ".geprotocol"
	// ConfigType is the format of the config file.
	ConfigType = "yaml"
)

// Setting keys, shared by the config file, environment variables and flags.
const (
	KeyElement      = "element"
	KeyHeaderLength = "header-length"
	KeyEncoding     = "encoding"
	KeyDiffStyle    = "diff-style"
	KeyJSONIndent   = "json-indent"
	KeyLogLevel     = "log-level"
)

// Keys returns every setting key.
func Keys() []string {
	return []string{KeyElement, KeyHeaderLength, KeyEncoding, KeyDiffStyle, KeyJSONIndent, KeyLogLevel}
}

// ConfigManager loads and caches a v1alpha1.Config.
type ConfigManager struct {
	Viper  *viper.Viper
	Config *v1alpha1.Config

	configFile  string
	searchPaths []string
	loaded      bool
}

// NewConfigManager creates a manager reading configFile from fs, or when it
// is empty, the first .geprotocol.yaml found in searchPaths (default: the
// working directory and $HOME). A nil fs reads the OS filesystem.
func NewConfigManager(fs afero.Fs, configFile string, searchPaths ...string) *ConfigManager {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	if len(searchPaths) == 0 {
		searchPaths = []string{".", "$HOME"}
	}

	viperInstance := InitializeViper()
	viperInstance.SetFs(fs)

	return &ConfigManager{
		Viper:       viperInstance,
		Config:      v1alpha1.NewConfig(),
		configFile:  configFile,
		searchPaths: searchPaths,
	}
}

// InitializeViper creates a viper instance with defaults and environment
// handling configured.
func InitializeViper() *viper.Viper {
	viperInstance := viper.New()

	defaults := v1alpha1.NewConfig()
	viperInstance.SetDefault(KeyElement, defaults.Element.String())
	viperInstance.SetDefault(KeyHeaderLength, defaults.HeaderLength)
	viperInstance.SetDefault(KeyEncoding, defaults.Encoding)
	viperInstance.SetDefault(KeyDiffStyle, string(defaults.DiffStyle))
	viperInstance.SetDefault(KeyJSONIndent, defaults.JSONIndent)
	viperInstance.SetDefault(KeyLogLevel, defaults.LogLevel)

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viperInstance.AutomaticEnv()

	return viperInstance
}

// BindFlags binds every flag in flags that is named after a setting key.
func (m *ConfigManager) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range Keys() {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}

		err := m.Viper.BindPFlag(key, flag)
		if err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}

	return nil
}

// LoadConfig resolves and validates the configuration. The result is cached.
// Priority: defaults < config file < environment variables < flags.
func (m *ConfigManager) LoadConfig() (*v1alpha1.Config, error) {
	if m.loaded {
		return m.Config, nil
	}

	err := m.readConfig()
	if err != nil {
		return nil, err
	}

	config := v1alpha1.NewConfig()

	err = m.Viper.Unmarshal(config, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			envvar.DecodeHook(),
			mapstructure.TextUnmarshallerHookFunc(),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	m.Config = config
	m.loaded = true

	return m.Config, nil
}

// ConfigFileUsed returns the config file that was read, if any.
func (m *ConfigManager) ConfigFileUsed() string {
	return m.Viper.ConfigFileUsed()
}

func (m *ConfigManager) readConfig() error {
	m.Viper.SetConfigType(ConfigType)

	if m.configFile != "" {
		m.Viper.SetConfigFile(m.configFile)
	} else {
		m.Viper.SetConfigName(ConfigName)

		for _, path := range m.searchPaths {
			m.Viper.AddConfigPath(path)
		}
	}

	err := m.Viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if m.configFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}
