package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	SurveyFile   string
	GeminiAPIKey string
	GeminiModel  string
	Debug        bool
}

func ParseFlags() (cfg Config, err error) {
	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", 5000, "listen port number (default 5000)")
	flag.StringVar(&cfg.SurveyFile, "file", "survey_responses.xlsx", "path to survey responses XLSX file (default survey_responses.xlsx)")
	flag.StringVar(&cfg.GeminiModel, "gemini-model", "gemini-2.0-flash", "Gemini model used for voice extraction (default gemini-2.0-flash)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))

	// a .env file is optional, the key can come from the process environment
	if err = godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return
	}
	err = nil

	cfg.GeminiAPIKey = os.Getenv("GOOGLE_API_KEY")

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
