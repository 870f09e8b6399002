package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"regexp"

	"github.com/adrg/xdg"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile  = "xiangqi/config.json"
	saveDir  = "xiangqi/saves"
	slotName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

type InvalidConfigError struct {
	err string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type Config struct {
	ListenAddr  string `json:"listen_addr"`
	WebDir      string `json:"web_dir"`
	SaveDir     string `json:"save_dir"`
	LogLevel    string `json:"log_level"`
	Development bool   `json:"development"`
	OpenBrowser bool   `json:"open_browser"`
}

// InitConfig 读取 $XDG_CONFIG_HOME/xiangqi/config.json（不存在就用默认值）
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		cfg := DefaultConfig
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return Load(absPath)
}

// Load overlays the JSON file at path on DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig
	if err := readCfgFile(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
		return &InvalidConfigError{fmt.Sprintf("listen_addr %q: %v", c.ListenAddr, err)}
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfigError{fmt.Sprintf("log_level %q is not a zap level", c.LogLevel)}
	}
	return nil
}

// SavePath maps a slot name to a save file. Slot names are limited to
// letters, digits, '_' and '-' so they can never leave the save dir.
func (c *Config) SavePath(slot string) (string, error) {
	if !slotName.MatchString(slot) {
		return "", &InvalidConfigError{fmt.Sprintf("bad save slot %q", slot)}
	}
	name := slot + ".txt"
	if c.SaveDir == "" {
		// xdg.DataFile 会顺带创建父目录
		return xdg.DataFile(filepath.Join(saveDir, name))
	}
	if err := os.MkdirAll(c.SaveDir, 0o755); err != nil {
		return "", fmt.Errorf("create save dir: %w", err)
	}
	return filepath.Join(c.SaveDir, name), nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0o664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfigError{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
