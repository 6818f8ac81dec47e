package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	SourceFixture = "fixture"
	SourceSqlite  = "sqlite"
)

type TgBot struct {
	Enabled          bool   `toml:"enabled"`
	TelegramApiToken string `toml:"token"`
}

type Server struct {
	Host  string `toml:"host"`
	Port  int    `toml:"port"`
	Debug bool   `toml:"debug_mode"`
}

type Data struct {
	// Source is "fixture" or "sqlite".
	Source     string `toml:"source"`
	SqliteFile string `toml:"sqlite_file"`
	// Seed fills an empty sqlite database with the built-in tournament.
	Seed bool `toml:"seed"`
}

type Config struct {
	Server Server `toml:"server"`
	Data   Data   `toml:"data"`
	TgBot  TgBot  `toml:"tg_bot"`
}

func defaults() Config {
	return Config{
		Server: Server{
			Host: "0.0.0.0",
			Port: 3000,
		},
		Data: Data{
			Source:     SourceFixture,
			SqliteFile: "hostelcup.sqlite",
			Seed:       true,
		},
	}
}

func New(path string) (Config, error) {
	cfg := defaults()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	token := os.Getenv("TELEGRAM_APITOKEN")
	if token != "" {
		cfg.TgBot.TelegramApiToken = token
	}
	source := os.Getenv("HOSTELCUP_DATA_SOURCE")
	if source != "" {
		cfg.Data.Source = source
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var err error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		err = errors.Join(err, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	switch c.Data.Source {
	case SourceFixture:
	case SourceSqlite:
		if c.Data.SqliteFile == "" {
			err = errors.Join(err, errors.New("data.sqlite_file must be set for the sqlite source"))
		}
	default:
		err = errors.Join(err, fmt.Errorf("unknown data.source %q", c.Data.Source))
	}
	if c.TgBot.Enabled && c.TgBot.TelegramApiToken == "" {
		err = errors.Join(err, errors.New("tg_bot.token or TELEGRAM_APITOKEN must be set when the bot is enabled"))
	}
	return err
}
