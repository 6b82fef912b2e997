package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	DownloadDir string
	OutputDir   string
	// DatasetURLs lets .env point a dataset at a mirror or a local
	// fixture instead of the statcan.gc.ca dump. Key is the dataset name.
	DatasetURLs map[string]string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration loaded from .env.
// A missing .env file is fine, defaults apply.
func GetConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file, using defaults")
		}

		config = &Config{
			DownloadDir: getenv("DOWNLOAD_DIR", "downloads"),
			OutputDir:   getenv("OUTPUT_DIR", "output"),
			DatasetURLs: map[string]string{},
		}
		for name, env := range map[string]string{
			"grain_exports":        "GRAIN_EXPORTS_URL",
			"soft_drinks":          "SOFT_DRINKS_URL",
			"soft_drinks_historic": "SOFT_DRINKS_HISTORIC_URL",
			"flowers":              "FLOWERS_URL",
		} {
			if v := os.Getenv(env); v != "" {
				config.DatasetURLs[name] = v
			}
		}
	})
	return config
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
