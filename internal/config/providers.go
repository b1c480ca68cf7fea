package config

// MLBConfig controls how we talk to the MLB stats API.
type MLBConfig struct {
	BaseURL string
}

// BalldontlieConfig controls how we talk to the balldontlie API.
type BalldontlieConfig struct {
	BaseURL string
	APIKey  string
}

func loadMLB(src source) MLBConfig {
	return MLBConfig{
		BaseURL: src.str(envMLBBaseURL, defaultMLBBaseURL),
	}
}

func loadBalldontlie(src source) BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL: src.str(envBdlBaseURL, defaultBdlBaseURL),
		APIKey:  src.str(envBdlAPIKey, ""),
	}
}
