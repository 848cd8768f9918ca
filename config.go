package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ExportDirectory  string
	ShowInstructions bool
	Confirmations    bool
	LogFile          string
	LogLevel         string
	CellWidth        float64
	CellHeight       float64
	SlotHitRadius    float64
	SpawnX           float64
}

func defaultConfig() *Config {
	return &Config{
		ExportDirectory:  "",
		ShowInstructions: true,
		Confirmations:    true,
		LogLevel:         "info",
		CellWidth:        defaultCellWidth,
		CellHeight:       defaultCellHeight,
		SlotHitRadius:    12,
		SpawnX:           800,
	}
}

// loadConfig reads ~/.covalentrc. A missing or unreadable file yields the
// defaults.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFile(filepath.Join(homeDir, ".covalentrc"), homeDir)
}

func loadConfigFile(path, homeDir string) *Config {
	config := defaultConfig()

	values, err := godotenv.Read(path)
	if err != nil {
		return config
	}

	for key, value := range values {
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "export_directory", "exportdir", "savedirectory", "savedir":
			config.ExportDirectory = expandPath(value, homeDir)
		case "instructions", "show_instructions":
			config.ShowInstructions = strings.ToLower(value) == "true"
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "log_file", "logfile":
			config.LogFile = expandPath(value, homeDir)
		case "log_level", "loglevel":
			config.LogLevel = value
		case "cell_width":
			setPositive(&config.CellWidth, value)
		case "cell_height":
			setPositive(&config.CellHeight, value)
		case "slot_hit_radius", "hit_radius":
			setPositive(&config.SlotHitRadius, value)
		case "spawn_x":
			setPositive(&config.SpawnX, value)
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func setPositive(dst *float64, value string) {
	if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
		*dst = f
	}
}

// ExportPath places filename in the export directory, creating it if needed.
func (c *Config) ExportPath(filename string) string {
	if c.ExportDirectory == "" {
		return filename
	}
	os.MkdirAll(c.ExportDirectory, 0755)
	return filepath.Join(c.ExportDirectory, filename)
}
