package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yigit/coursemap/internal/pkg/helpers"
)

// Catalog sources
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// DefaultConfigPath is where the commands look for the configuration file
const DefaultConfigPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string   `yaml:"port" env:"SERVER_PORT"`
		Mode           string   `yaml:"mode" env:"SERVER_MODE"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Catalog struct {
		Source string `yaml:"source" env:"CATALOG_SOURCE"`
		Path   string `yaml:"path" env:"CATALOG_PATH"`
	} `yaml:"catalog"`

	Pipeline struct {
		Inputs          []string `yaml:"inputs" env:"PIPELINE_INPUTS"`
		Output          string   `yaml:"output" env:"PIPELINE_OUTPUT"`
		CodeWidth       int      `yaml:"code_width" env:"PIPELINE_CODE_WIDTH"`
		Indent          int      `yaml:"indent" env:"PIPELINE_INDENT"`
		MergeDuplicates bool     `yaml:"merge_duplicates" env:"PIPELINE_MERGE_DUPLICATES"`
	} `yaml:"pipeline"`

	Grades struct {
		APIBaseURL  string `yaml:"api_base_url" env:"GRADES_API_BASE_URL"`
		RawBaseURL  string `yaml:"raw_base_url" env:"GRADES_RAW_BASE_URL"`
		Owner       string `yaml:"owner" env:"GRADES_OWNER"`
		Repo        string `yaml:"repo" env:"GRADES_REPO"`
		Branch      string `yaml:"branch" env:"GRADES_BRANCH"`
		Token       string `yaml:"token" env:"GITHUB_TOKEN"`
		Exam        string `yaml:"exam" env:"GRADES_EXAM"`
		Timeout     string `yaml:"timeout" env:"GRADES_TIMEOUT"`
		Concurrency int    `yaml:"concurrency" env:"GRADES_CONCURRENCY"`
	} `yaml:"grades"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error, defaults and the environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.AllowedOrigins = []string{"*"}

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "coursemap"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.Catalog.Source = SourceFile
	config.Catalog.Path = "Courses.json"

	config.Pipeline.Inputs = []string{
		"courses_from_rishum.json",
		"courses_from_rishum2.json",
		"courses_from_rishum3.json",
	}
	config.Pipeline.Output = "Courses.json"
	config.Pipeline.CodeWidth = 8
	config.Pipeline.Indent = 4
	config.Pipeline.MergeDuplicates = true

	config.Grades.APIBaseURL = "https://api.github.com"
	config.Grades.RawBaseURL = "https://raw.githubusercontent.com"
	config.Grades.Owner = "michael-maltsev"
	config.Grades.Repo = "technion-histograms"
	config.Grades.Branch = "main"
	config.Grades.Exam = "Final_A"
	config.Grades.Timeout = "5s"
	config.Grades.Concurrency = 8

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// Validate ensures that the configuration is usable
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog path is required for the file source")
		}
	case SourcePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required for the postgres source")
		}
		if _, err := time.ParseDuration(c.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid database connection lifetime: %w", err)
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}

	if c.Pipeline.CodeWidth <= 0 {
		return fmt.Errorf("pipeline code width must be positive")
	}
	if c.Pipeline.Indent < 0 {
		return fmt.Errorf("pipeline indent cannot be negative")
	}

	if _, err := time.ParseDuration(c.Grades.Timeout); err != nil {
		return fmt.Errorf("invalid grades timeout format: %w", err)
	}
	if c.Grades.Concurrency <= 0 {
		return fmt.Errorf("grades concurrency must be positive")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GradesTimeout returns the per-call timeout of the histogram client
func (c *Config) GradesTimeout() time.Duration {
	return helpers.ParseDuration(c.Grades.Timeout, 5*time.Second)
}

// IsProduction reports whether the server runs in release mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}
