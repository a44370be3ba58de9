package configuration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-sql-driver/mysql"
	"github.com/iota-uz/utils/fs"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jacksonlee411/ojs-migrate/pkg/logging"
)

const Production = "production"

const (
	SourceDriverMySQL    = "mysql"
	SourceDriverPostgres = "postgres"
)

var singleton = sync.OnceValue(func() *Configuration {
	c, err := Load([]string{".env", ".env.local"})
	if err != nil {
		panic(err)
	}
	return c
})

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if fs.FileExists(file) {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

// DatabaseOptions describe the destination PostgreSQL database.
type DatabaseOptions struct {
	Opts     string `env:"-"`
	Name     string `env:"DB_NAME" envDefault:"ojs"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
}

func (d *DatabaseOptions) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Name, d.Password,
	)
}

// SourceOptions describe the legacy PKP/OJS database the journals are read from.
type SourceOptions struct {
	Driver   string `env:"SOURCE_DB_DRIVER" envDefault:"mysql"`
	Name     string `env:"SOURCE_DB_NAME" envDefault:"ojs2"`
	Host     string `env:"SOURCE_DB_HOST" envDefault:"localhost"`
	Port     string `env:"SOURCE_DB_PORT"`
	User     string `env:"SOURCE_DB_USER" envDefault:"root"`
	Password string `env:"SOURCE_DB_PASSWORD"`
}

func (s *SourceOptions) port() string {
	if s.Port != "" {
		return s.Port
	}
	if s.Driver == SourceDriverPostgres {
		return "5432"
	}
	return "3306"
}

// DSN returns the connection string understood by the configured driver.
func (s *SourceOptions) DSN() string {
	if s.Driver == SourceDriverPostgres {
		return fmt.Sprintf(
			"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
			s.Host, s.port(), s.User, s.Name, s.Password,
		)
	}
	cfg := mysql.NewConfig()
	cfg.User = s.User
	cfg.Passwd = s.Password
	cfg.Net = "tcp"
	cfg.Addr = s.Host + ":" + s.port()
	cfg.DBName = s.Name
	cfg.ParseTime = true
	cfg.Params = map[string]string{"charset": "utf8"}
	return cfg.FormatDSN()
}

func (s *SourceOptions) Validate() error {
	switch s.Driver {
	case SourceDriverMySQL, SourceDriverPostgres:
		return nil
	default:
		return fmt.Errorf("invalid SOURCE_DB_DRIVER=%q (expected mysql|postgres)", s.Driver)
	}
}

type Configuration struct {
	Database DatabaseOptions
	Source   SourceOptions

	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath          string `env:"LOG_PATH"`
	DefaultsFile     string `env:"IMPORT_DEFAULTS_FILE"`
	MetricsTextfile  string `env:"METRICS_TEXTFILE"`
	MigrationsTable  string `env:"MIGRATIONS_TABLE" envDefault:"ojs_import_migrations"`
	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`

	logFile *os.File
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func Use() *Configuration {
	return singleton()
}

// Load reads env files and the process environment into a new Configuration.
func Load(envFiles []string) (*Configuration, error) {
	c := &Configuration{}
	if err := c.load(envFiles); err != nil {
		c.Unload()
		return nil, err
	}
	return c, nil
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}

	c.Source.Driver = strings.ToLower(strings.TrimSpace(c.Source.Driver))
	if err := c.Source.Validate(); err != nil {
		return err
	}

	if c.LogPath == "" {
		c.logger = logging.ConsoleLogger(c.LogrusLogLevel())
	} else {
		f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
		if err != nil {
			return err
		}
		c.logFile = f
		c.logger = logger
	}

	c.Database.Opts = c.Database.ConnectionString()
	return nil
}

// Unload handles a graceful shutdown.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
		c.logFile = nil
	}
}
