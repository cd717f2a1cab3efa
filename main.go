package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/unixpickle/essentials"

	"github.com/bobonovski/bhmm/config"
	"github.com/bobonovski/bhmm/corpus"
	"github.com/bobonovski/bhmm/model"
	"github.com/bobonovski/bhmm/trace"
)

// level is a glog verbosity plus the lowest severity written to stderr.
type level struct {
	v         string
	threshold string
}

// log levels of the original tool. Above INFO, info lines only go to
// glog's log files.
var levels = map[string]level{
	"OFF":     {"0", "FATAL"},
	"SEVERE":  {"0", "ERROR"},
	"WARNING": {"0", "WARNING"},
	"CONFIG":  {"0", "INFO"},
	"INFO":    {"0", "INFO"},
	"FINE":    {"0", "INFO"},
	"FINER":   {"1", "INFO"},
	"DEBUG":   {"1", "INFO"},
	"FINEST":  {"2", "INFO"},
	"VERBOSE": {"2", "INFO"},
	"ALL":     {"2", "INFO"},
}

func main() {
	flag.Set("logtostderr", "true")

	cmd := &cobra.Command{
		Use:           "bhmm [OFF|SEVERE|WARNING|INFO|CONFIG|FINE|FINER|FINEST|ALL]",
		Short:         "Part-of-speech disambiguation with a Bayesian HMM",
		Long:          "Tags the corpus named in " + config.DefaultFile + " by Gibbs sampling with simulated annealing.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog's flags are registered on the go flag set
			return flag.CommandLine.Parse(nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				l, err := verbosity(args[0])
				if err != nil {
					return err
				}
				l.apply()
			}
			defer log.Flush()
			return run(config.DefaultFile)
		},
	}
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	cmd.AddCommand(&cobra.Command{
		Use:   "counts [word...]",
		Short: "Summarize the count tables saved by a training run",
		Long:  "Reads the tables written under the counts prefix of " + config.DefaultFile + " and prints per-tag totals, followed by the tag counts of each given word.",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer log.Flush()
			return summarize(cmd.OutOrStdout(), config.DefaultFile, args)
		},
	})

	if err := cmd.Execute(); err != nil {
		essentials.Die(err)
	}
}

// verbosity maps a level name or number to glog settings.
func verbosity(name string) (level, error) {
	if l, ok := levels[strings.ToUpper(name)]; ok {
		return l, nil
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 {
		return level{name, "INFO"}, nil
	}
	return level{}, fmt.Errorf("unknown log level %q", name)
}

func (l level) apply() {
	flag.Set("v", l.v)
	if l.threshold != "INFO" {
		flag.Set("logtostderr", "false")
		flag.Set("stderrthreshold", l.threshold)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	log.Infof("reading corpus %s, lexicon %s", cfg.Corpus, cfg.Lexicon)
	dat, err := corpus.Load(cfg.Corpus, cfg.Lexicon, cfg.Gold)
	if err != nil {
		return err
	}

	opts := model.Options{
		Alpha:    cfg.Alpha,
		Beta:     cfg.Beta,
		MaxTemp:  cfg.Max,
		MinTemp:  cfg.Min,
		Rate:     cfg.Rate,
		Decrease: cfg.Decrease,
		Debug:    cfg.Debug,
		Seed:     cfg.Seed,
	}
	var tw *trace.Writer
	if cfg.Log != "" {
		if tw, err = trace.Create(cfg.Log); err != nil {
			return err
		}
		opts.OnProgress = tw.Record
	}

	log.Infof("initializing tag sequence")
	m, err := model.NewBHMM(dat, opts)
	if err != nil {
		if tw != nil {
			tw.Close()
		}
		return err
	}

	log.Infof("gibbs sampling with annealing, %d iterations", cfg.Iterations)
	m.Train(cfg.Iterations)
	if tw != nil {
		if err := tw.Close(); err != nil {
			return err
		}
	}

	log.Infof("writing tagged corpus to %s", cfg.Out)
	if err := dat.WriteTagged(cfg.Out, m.Tags()); err != nil {
		return err
	}

	if cfg.Counts != "" {
		log.Infof("writing count tables and estimates to %s.*", cfg.Counts)
		if err := m.SaveCounts(cfg.Counts); err != nil {
			return err
		}
		if err := m.SaveEstimates(cfg.Counts); err != nil {
			return err
		}
	}
	return nil
}
