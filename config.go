package siteqa

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
)

// Configuration defaults.
const (
	DefaultPort         = 8000
	DefaultExtractor    = ExtractorHeuristic
	DefaultModel        = "gemini-2.5-flash"
	DefaultFetchTimeout = 10 * time.Second
)

// Names accepted by the EXTRACTOR configuration key.
const (
	ExtractorHeuristic   = "heuristic"
	ExtractorTrafilatura = "trafilatura"
	ExtractorReadability = "readability"
)

// Config holds service settings read from a key=value file.
type Config struct {
	Port         int
	Extractor    string
	Model        string
	FetchTimeout time.Duration

	// RateLimit is the allowed requests per second per client. Zero disables limiting.
	RateLimit float64

	// Values holds every key from the file, including unrecognized ones.
	Values map[string]string
}

// DefaultConfig returns a Config with every setting at its default.
func DefaultConfig() *Config {
	return &Config{
		Port:         DefaultPort,
		Extractor:    DefaultExtractor,
		Model:        DefaultModel,
		FetchTimeout: DefaultFetchTimeout,
		Values:       make(map[string]string),
	}
}

// ParseConfig reads key=value lines. Blank lines and lines starting with '#'
// are skipped, the first '=' separates key from value, both sides are
// trimmed and later keys override earlier ones.
func ParseConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, Errorf(EINVALID, "config line %d: expected key=value", lineNo)
		}
		cfg.Values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := cfg.apply(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply copies recognized keys from Values onto the typed fields.
func (c *Config) apply() error {
	if v, ok := c.Values["PORT"]; ok {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return Errorf(EINVALID, "config PORT: invalid port %q", v)
		}
		c.Port = port
	}

	if v, ok := c.Values["EXTRACTOR"]; ok {
		switch v {
		case ExtractorHeuristic, ExtractorTrafilatura, ExtractorReadability:
			c.Extractor = v
		default:
			return Errorf(EINVALID, "config EXTRACTOR: unknown extractor %q", v)
		}
	}

	if v, ok := c.Values["GEMINI_MODEL"]; ok && v != "" {
		c.Model = v
	}

	if v, ok := c.Values["FETCH_TIMEOUT"]; ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Errorf(EINVALID, "config FETCH_TIMEOUT: invalid duration %q", v)
		}
		c.FetchTimeout = d
	}

	if v, ok := c.Values["RATE_LIMIT"]; ok {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps < 0 {
			return Errorf(EINVALID, "config RATE_LIMIT: invalid rate %q", v)
		}
		c.RateLimit = rps
	}

	return nil
}
