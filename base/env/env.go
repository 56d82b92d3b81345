package env

import (
	"os"
)

// PodName example: k8ssta-ensapi-main-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// ConfigFile overrides the config path when the --config flag is absent.
func ConfigFile() string {
	if f := os.Getenv("ENSAPI_CONFIG"); f != "" {
		return f
	}
	return "infra/configs/config.yaml"
}
