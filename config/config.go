package config

import (
	"encoding/json"
	"os"
	"sync"
)

type Config struct {
	CompanyName       string  `json:"companyName"`
	CompanyAddress    string  `json:"companyAddress"`
	CompanyPhone      string  `json:"companyPhone"`
	CompanyFax        string  `json:"companyFax"`
	BankAccount       string  `json:"bankAccount"`
	TaxRate           float64 `json:"taxRate"`
	DefaultLaborPrice float64 `json:"defaultLaborPrice"`
	BackupFolderPath  string  `json:"backupFolderPath"`
	BackupSchedule    string  `json:"backupSchedule"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./krs_config.json"

func applyDefaults(c *Config) {
	if c.TaxRate == 0 {
		c.TaxRate = 0.10
	}
	if c.BackupSchedule == "" {
		c.BackupSchedule = "0 3 * * *"
	}
}

func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := Config{}
			applyDefaults(&defaultCfg)
			cfg = defaultCfg
			return defaultCfg, nil
		}
		return Config{}, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&tempCfg)
	cfg = tempCfg

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	applyDefaults(&newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}
