package config

import (
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"
)

type Config struct {
	// Port Settings
	Host        string `json:"host"`        // The domain name of the server.
	ServerAddr  string `json:"serverAddr"`  // The address the server endpoint binds to.
	MetricsAddr string `json:"metricsAddr"` // The address the metric endpoint binds to.

	Auth struct {
		AccessTokenSecret      string `json:"accessTokenSecret"`
		RefreshTokenSecret     string `json:"refreshTokenSecret"`
		AccessTokenExpiryHour  int    `json:"accessTokenExpiryHour"`
		RefreshTokenExpiryHour int    `json:"refreshTokenExpiryHour"`
	} `json:"auth"`

	Postgres struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		DBName   string `json:"dbname"`
		User     string `json:"user"`
		Password string `json:"password"`
		SSLMode  string `json:"sslmode"`
		TimeZone string `json:"TimeZone"`
		// ReplicaDSN, when set, routes reads to a replica via dbresolver.
		ReplicaDSN string `json:"replicaDSN"`
	} `json:"postgres"`

	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		User     string `json:"user"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`

	ObjectStore struct {
		Endpoint  string `json:"endpoint"`
		AccessKey string `json:"accessKey"`
		SecretKey string `json:"secretKey"`
		Bucket    string `json:"bucket"`
		UseSSL    bool   `json:"useSSL"`
	} `json:"objectStore"`

	Consistency struct {
		// EquityScanSpec is the cron spec for the equity-allocation scan.
		EquityScanSpec string `json:"equityScanSpec"`
	} `json:"consistency"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

func IsDebugMode() bool {
	return gin.Mode() == gin.DebugMode
}

// initConfig reads the configuration file. In debug mode it reads
// ./etc/debug-config.yaml (overridable via MOSALA_DEBUG_CONFIG_PATH);
// otherwise it reads the config mounted at /etc/config/config.yaml.
func initConfig() *Config {
	config := &Config{}
	var configPath string
	if IsDebugMode() {
		if os.Getenv("MOSALA_DEBUG_CONFIG_PATH") != "" {
			configPath = os.Getenv("MOSALA_DEBUG_CONFIG_PATH")
		} else {
			configPath = "./etc/debug-config.yaml"
		}
	} else {
		configPath = "/etc/config/config.yaml"
	}

	configFile, err := os.ReadFile(configPath)
	if err != nil {
		klog.Fatalf("read config file %s: %v", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		klog.Fatalf("unmarshal config file %s: %v", configPath, err)
	}

	applyDefaults(config)
	return config
}

func applyDefaults(c *Config) {
	if c.ServerAddr == "" {
		c.ServerAddr = ":8088"
	}
	if c.Auth.AccessTokenExpiryHour == 0 {
		c.Auth.AccessTokenExpiryHour = 2
	}
	if c.Auth.RefreshTokenExpiryHour == 0 {
		c.Auth.RefreshTokenExpiryHour = 168
	}
	if c.Consistency.EquityScanSpec == "" {
		c.Consistency.EquityScanSpec = "0 * * * *"
	}
}
