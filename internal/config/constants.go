package config

// Default configuration values
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultDBName      = "myfridge"
	DefaultConfigDir   = "configs"

	DefaultChefBaseURL = "https://api.groq.com/openai/v1"
	DefaultChefModel   = "llama-3.3-70b-versatile"

	DefaultExpiringSoonDays = 3
)

// Config file names resolved relative to ConfigDir
const (
	RecipesFileName = "recipes.json"
	StaplesFileName = "staples.json"
)
