package config

// DefaultConfig returns a Config with sensible defaults. Exclusion
// patterns are opt-in: every listed page loads unless the user says
// otherwise.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteInfo{
			Name: "Karaty",
		},
		DataSource: DataSource{
			Mode: ModeSubPath,
			Data: "docs",
		},
		OutputDir:      "dist",
		MaxConcurrency: 4,
	}
}
