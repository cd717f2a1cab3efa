package config

import (
	"errors"
	"fmt"

	log "github.com/golang/glog"
	"github.com/magiconair/properties"
	"github.com/unixpickle/essentials"
)

// DefaultFile is read from the working directory.
const DefaultFile = "config.properties"

var ErrInvalid = errors.New("config: invalid value")

// Config holds the settings of a tagging run.
type Config struct {
	Alpha      float64 `properties:"alpha"`
	Beta       float64 `properties:"beta"`
	Iterations int     `properties:"iterations"`
	Decrease   int     `properties:"decrease"`
	Rate       float64 `properties:"rate"`
	Max        float64 `properties:"max"`
	Min        float64 `properties:"min"`
	Debug      int     `properties:"dbg,default=0"`
	Seed       int64   `properties:"seed,default=0"`

	Corpus  string `properties:"corpus"`
	Lexicon string `properties:"lexicon"`
	Gold    string `properties:"gold,default="`
	Out     string `properties:"out"`
	Log     string `properties:"log,default="`
	Counts  string `properties:"counts,default="`
}

// Load reads and validates a properties file.
func Load(fn string) (cfg *Config, err error) {
	defer essentials.AddCtxTo("load config "+fn, &err)

	p, err := properties.LoadFile(fn, properties.UTF8)
	if err != nil {
		return nil, err
	}
	cfg = &Config{}
	if err := p.Decode(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.V(1).Infof("alpha %f, beta %f, iterations %d", cfg.Alpha, cfg.Beta, cfg.Iterations)
	log.V(1).Infof("corpus %s, lexicon %s, gold %s", cfg.Corpus, cfg.Lexicon, cfg.Gold)
	return cfg, nil
}

// Validate checks value ranges the properties decoder cannot express.
func (c *Config) Validate() error {
	switch {
	case !(c.Alpha > 0) || !(c.Beta > 0):
		return fmt.Errorf("%w: alpha and beta must be positive", ErrInvalid)
	case c.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive", ErrInvalid)
	case c.Decrease <= 0:
		return fmt.Errorf("%w: decrease must be positive", ErrInvalid)
	case !(c.Rate > 0):
		return fmt.Errorf("%w: rate must be positive", ErrInvalid)
	case !(c.Min > 0) || c.Max < c.Min:
		return fmt.Errorf("%w: need max >= min > 0", ErrInvalid)
	case c.Debug < 0:
		return fmt.Errorf("%w: dbg must not be negative", ErrInvalid)
	case c.Corpus == "" || c.Lexicon == "" || c.Out == "":
		return fmt.Errorf("%w: corpus, lexicon and out are required", ErrInvalid)
	}
	return nil
}
