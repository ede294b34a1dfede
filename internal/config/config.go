package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App   AppConfig   `yaml:"app"`
	Alarm AlarmConfig `yaml:"alarm"`
}

type AppConfig struct {
	Name          string        `yaml:"name"`
	WindowWidth   int           `yaml:"window_width"`
	WindowHeight  int           `yaml:"window_height"`
	FrameInterval time.Duration `yaml:"frame_interval"`
}

type AlarmConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// 默认配置
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:          "Timer with Sound",
			WindowWidth:   320,
			WindowHeight:  200,
			FrameInterval: 16 * time.Millisecond,
		},
		Alarm: AlarmConfig{
			Enabled: true,
			Volume:  0,
		},
	}
}

// Manager 只读取配置文件，从不写回
type Manager struct {
	config     *Config
	configPath string
}

func NewManager() *Manager {
	configPath := ""
	if configDir, err := getConfigDir(); err == nil {
		configPath = filepath.Join(configDir, "config.yaml")
	}
	return NewManagerWithPath(configPath)
}

func NewManagerWithPath(configPath string) *Manager {
	manager := &Manager{
		configPath: configPath,
	}

	if err := manager.loadConfig(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("config: %v, using defaults", err)
		}
		manager.config = DefaultConfig()
	}

	return manager
}

func (m *Manager) loadConfig() error {
	if m.configPath == "" {
		return os.ErrNotExist
	}
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	// 未出现或类型错误的字段保留默认值，例如 frame_interval 必须带单位 (16ms)
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			return err
		}
		for _, msg := range typeErr.Errors {
			log.Printf("config: %s, keeping default", msg)
		}
	}
	config.normalize()

	m.config = config
	return nil
}

func (c *Config) normalize() {
	defaults := DefaultConfig()
	if c.App.Name == "" {
		c.App.Name = defaults.App.Name
	}
	if c.App.WindowWidth <= 0 {
		c.App.WindowWidth = defaults.App.WindowWidth
	}
	if c.App.WindowHeight <= 0 {
		c.App.WindowHeight = defaults.App.WindowHeight
	}
	if c.App.FrameInterval <= 0 {
		c.App.FrameInterval = defaults.App.FrameInterval
	}
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

// 获取配置文件目录
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".fixed-timer"), nil
}
