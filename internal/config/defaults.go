package config

import (
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ReceiptDefaults seed fresh drafts and new line items. They come from an
// optional rasid.yml file and can change at runtime without a restart.
type ReceiptDefaults struct {
	IGSTPercent float64 `mapstructure:"igstPercent"`
	Country     string  `mapstructure:"country"`
}

func DefaultReceiptDefaults() ReceiptDefaults {
	return ReceiptDefaults{
		IGSTPercent: 18,
		Country:     "India",
	}
}

// DefaultsHolder keeps the current ReceiptDefaults and swaps them when the
// config file changes on disk.
type DefaultsHolder struct {
	current atomic.Value // holds ReceiptDefaults
}

func NewDefaultsHolder() (*DefaultsHolder, error) {
	v := viper.New()

	v.SetConfigName("rasid")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/rasid")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RASID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fileFound := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		fileFound = false
	}

	holder := &DefaultsHolder{}
	holder.current.Store(readDefaults(v))

	if fileFound {
		v.OnConfigChange(func(e fsnotify.Event) {
			holder.current.Store(readDefaults(v))
			log.Printf("reloaded receipt defaults from %s", e.Name)
		})
		v.WatchConfig()
	}

	return holder, nil
}

// Receipt returns the current defaults.
func (h *DefaultsHolder) Receipt() ReceiptDefaults {
	return h.current.Load().(ReceiptDefaults)
}

func readDefaults(v *viper.Viper) ReceiptDefaults {
	cfg := DefaultReceiptDefaults()
	if err := v.UnmarshalKey("defaults", &cfg); err != nil {
		log.Printf("invalid defaults in config file, using built-ins: %v", err)
		return DefaultReceiptDefaults()
	}
	if cfg.IGSTPercent < 0 || cfg.IGSTPercent > 100 {
		cfg.IGSTPercent = DefaultReceiptDefaults().IGSTPercent
	}
	if strings.TrimSpace(cfg.Country) == "" {
		cfg.Country = DefaultReceiptDefaults().Country
	}
	return cfg
}
