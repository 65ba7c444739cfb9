package repository

import (
	"github.com/cloudsizing/aws-inventory-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
}
