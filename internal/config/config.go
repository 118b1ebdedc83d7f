package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// EventTemplate declares a recurring event expanded by the seed-events command
type EventTemplate struct {
	Name            string `yaml:"name" validate:"required"`
	CategoryCode    string `yaml:"categoryCode" validate:"required"`
	RRule           string `yaml:"rrule" validate:"required"`
	DeclaredHours   int    `yaml:"declaredHours" validate:"required,min=1,max=240"`
	MaxParticipants int    `yaml:"maxParticipants,omitempty" validate:"omitempty,min=1"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL         string          `yaml:"databaseURL" validate:"required"`
	ReportName          string          `yaml:"reportName" validate:"required"`
	ReportSheetID       string          `yaml:"reportSheetID,omitempty"`
	RosterSheetID       string          `yaml:"rosterSheetID,omitempty"`
	RosterTab           string          `yaml:"rosterTab,omitempty"`
	DefaultSessionHours float64         `yaml:"defaultSessionHours" validate:"required,gt=0,lte=24"`
	TopEventsLimit      int             `yaml:"topEventsLimit,omitempty" validate:"omitempty,min=1"`
	GmailUserID         string          `yaml:"gmailUserID,omitempty"`
	GmailSender         string          `yaml:"gmailSender,omitempty"`
	ApprovalRecipient   string          `yaml:"approvalRecipient,omitempty" validate:"omitempty,email"`
	EventTemplates      []EventTemplate `yaml:"eventTemplates,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from volunteer_hours_config.yaml.
// The current directory is checked first, then the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, template := range cfg.EventTemplates {
		if _, err := rrule.StrToRRule(template.RRule); err != nil {
			return fmt.Errorf("invalid rrule in eventTemplates[%d]: %w", i, err)
		}
	}

	if cfg.TopEventsLimit == 0 {
		cfg.TopEventsLimit = 10
	}

	return nil
}

// findConfigFile searches for volunteer_hours_config.yaml in the current
// directory and the home directory
func findConfigFile() (string, error) {
	configFileName := "volunteer_hours_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
