package config

// ProjectConfigPath returns the path to the project-level config file.
// This is always .changelog.yml relative to the current directory.
func ProjectConfigPath() string {
	return ".changelog.yml"
}

// EnvFilePath is the optional dotenv file loaded before configuration.
func EnvFilePath() string {
	return ".env"
}
