package cmd

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/campaign"
	"github.com/spigell/hiring-desk/internal/client"
	"github.com/spigell/hiring-desk/internal/logger"
	"github.com/spigell/hiring-desk/internal/seed"
	"github.com/spigell/hiring-desk/internal/store"
)

const (
	app       = "hiring-desk"
	envPrefix = "HIRING_DESK"
)

type Config struct {
	Server   *ServerConfig `mapstructure:"server"`
	Client   *ClientConfig `mapstructure:"client"`
	Calls    *CallsConfig  `mapstructure:"calls"`
	Seed     *SeedConfig   `mapstructure:"seed"`
	Language string        `mapstructure:"language"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read-timeout"`
	WriteTimeout    time.Duration `mapstructure:"write-timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`
	Token           string        `mapstructure:"token"`
	TokenFile       string        `mapstructure:"token-file"`
}

type ClientConfig struct {
	Server    string `mapstructure:"server"`
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"token-file"`
}

type CallsConfig struct {
	Delay   time.Duration `mapstructure:"delay"`
	Stagger time.Duration `mapstructure:"stagger"`
}

type SeedConfig struct {
	File       string `mapstructure:"file"`
	Candidates int    `mapstructure:"candidates"`
	RandomSeed uint64 `mapstructure:"random-seed"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hiring-desk is a recruitment desk for schools: job pipelines, CV scoring and simulated AI screening calls",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hiring-desk.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("server", client.DefaultServer, "hiring desk server used by the client commands")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("client.server", rootCmd.PersistentFlags().Lookup("server"))

	setDefaults()
}

func setDefaults() {
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.read-timeout", 15*time.Second)
	viper.SetDefault("server.write-timeout", 15*time.Second)
	viper.SetDefault("server.shutdown-timeout", 30*time.Second)
	viper.SetDefault("server.token", "")
	viper.SetDefault("server.token-file", "")
	viper.SetDefault("client.token", "")
	viper.SetDefault("client.token-file", "")
	viper.SetDefault("calls.delay", store.DefaultCallDelay)
	viper.SetDefault("calls.stagger", campaign.DefaultStagger)
	viper.SetDefault("seed.file", "")
	viper.SetDefault("seed.candidates", seed.DefaultCandidates)
	viper.SetDefault("seed.random-seed", 0)
	viper.SetDefault("language", string(store.LanguageEnglish))
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// Without an explicit --config a missing file is fine: defaults, flags and env apply.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// setup builds the logger and reads the config. Both failures are fatal.
func setup() (*zap.Logger, *Config) {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	return l, config
}
