package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .bulletin.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to bulletin! Let's configure your instance.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port to listen on",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("must be a port number")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (database and uploads)",
		Default: cfg.DataDir,
	}
	if cfg.DataDir, err = dataPrompt.Run(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Export directory.
	exportPrompt := promptui.Prompt{
		Label:   "Export directory for print bundles",
		Default: cfg.ExportDir,
	}
	if cfg.ExportDir, err = exportPrompt.Run(); err != nil {
		return nil, fmt.Errorf("export dir: %w", err)
	}

	// 4. CORS mode.
	corsPrompt := promptui.Select{
		Label: "Allow all CORS origins (dev mode)?",
		Items: []string{"no", "yes"},
	}
	corsIdx, _, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors: %w", err)
	}
	cfg.AllowAllOrigins = corsIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	configPath := ".bulletin.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
