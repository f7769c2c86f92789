// Command thermof drives a conductivity analysis over one or more
// trial directories, each holding run subdirectories with the flux
// autocorrelation files of a simulation. It is the thin collaborator
// around the analysis packages: it resolves directories to files,
// skips runs that fail, dumps a YAML report and optionally archives
// the estimates.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gkubo/thermof"
	"github.com/gkubo/thermof/pkg/logutil"
	"github.com/gkubo/thermof/results"
	"github.com/gkubo/thermof/runinfo"
)

// config is the YAML analysis configuration. Zero fields fall back to
// the library defaults.
type config struct {
	KB         float64 `yaml:"kb"`
	Conv       float64 `yaml:"conv"`
	Dt         float64 `yaml:"dt"`
	Volume     float64 `yaml:"volume"`
	Temp       float64 `yaml:"temp"`
	Skip       *int    `yaml:"skip"`
	FluxColumn int     `yaml:"j_index"`
	Prefix     string  `yaml:"prefix"`
	Isotropic  *bool   `yaml:"isotropic"`
	Average    *bool   `yaml:"average"`
	ReadInfo   bool    `yaml:"read_info"`
	ReadThermo bool    `yaml:"read_thermo"`
	T0         float64 `yaml:"t0"`
	T1         float64 `yaml:"t1"`
	Out        string  `yaml:"out"`
	StoreDir   string  `yaml:"store"`
}

func (c *config) params() *thermof.Params {
	par := thermof.DefaultParams()
	if c.KB > 0 {
		par.KB = c.KB
	}
	if c.Conv > 0 {
		par.Conv = c.Conv
	}
	if c.Dt > 0 {
		par.Dt = c.Dt
	}
	if c.Volume > 0 {
		par.Volume = c.Volume
	}
	if c.Temp > 0 {
		par.Temp = c.Temp
	}
	if c.Skip != nil {
		par.Skip = *c.Skip
	}
	if c.FluxColumn > 0 {
		par.FluxColumn = c.FluxColumn
	}
	if c.Prefix != "" {
		par.Prefix = c.Prefix
	}
	if c.Isotropic != nil {
		par.Isotropic = *c.Isotropic
	}
	if c.Average != nil {
		par.Average = *c.Average
	}
	return par
}

func loadConfig(path string) (*config, error) {
	cfg := &config{T0: 5, T1: 10}
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	cfgPath := flag.String("config", "", "YAML analysis configuration")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: thermof [-config file] trialdir [trialdir...]")
		os.Exit(2)
	}

	logutil.InitLogger()
	logger := logutil.GetLogger()
	defer logger.Sync()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		logger.Fatal("cannot read configuration", zap.Error(err))
	}
	par := cfg.params()
	if err := par.Validate(); err != nil {
		logger.Fatal("bad parameters", zap.Error(err))
	}

	var store *results.Store
	if cfg.StoreDir != "" {
		store, err = results.Open(cfg.StoreDir)
		if err != nil {
			logger.Fatal("cannot open estimate store", zap.Error(err))
		}
		defer store.Close()
	}

	report := make(map[string]any, flag.NArg())
	for _, trialDir := range flag.Args() {
		trial, err := readTrial(trialDir, par, cfg, logger)
		if err != nil {
			logger.Error("trial failed", zap.String("trial", trialDir), zap.Error(err))
			continue
		}
		report[trial.Name] = trial.Export()
		if store != nil {
			if err := store.PutTrial(trial); err != nil {
				logger.Error("cannot archive trial", zap.String("trial", trial.Name), zap.Error(err))
			}
		}
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		logger.Fatal("cannot serialize report", zap.Error(err))
	}
	if cfg.Out == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(cfg.Out, out, 0o644); err != nil {
		logger.Fatal("cannot write report", zap.String("path", cfg.Out), zap.Error(err))
	}
	logger.Info("report written", zap.String("path", cfg.Out))
}

// readTrial analyzes every run subdirectory of trialDir. A run that
// fails is logged and skipped; consistency violations inside the
// aggregation itself still fail the whole trial.
func readTrial(trialDir string, par *thermof.Params, cfg *config, logger *zap.Logger) (*thermof.Trial, error) {
	entries, err := os.ReadDir(trialDir)
	if err != nil {
		return nil, err
	}
	var runs []*thermof.Run
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		runDir := filepath.Join(trialDir, e.Name())
		run, err := readRun(runDir, par, cfg)
		if err != nil {
			logger.Warn("run skipped", zap.String("run", runDir), zap.Error(err))
			continue
		}
		fields := []zap.Field{zap.String("run", run.Name)}
		for _, d := range run.Directions {
			fields = append(fields, zap.Float64("k_"+d, run.KEst[d].K))
		}
		if est, ok := run.KEst[thermof.Iso]; ok {
			fields = append(fields, zap.Float64("k_iso", est.K))
		}
		logger.Info("run analyzed", fields...)
		runs = append(runs, run)
	}
	return thermof.NewTrial(filepath.Base(trialDir), runs, par)
}

func readRun(runDir string, par *thermof.Params, cfg *config) (*thermof.Run, error) {
	sources, err := thermof.ReadFluxDir(runDir, par)
	if err != nil {
		return nil, err
	}
	run, err := thermof.NewRun(filepath.Base(runDir), sources, par, cfg.T0, cfg.T1)
	if err != nil {
		return nil, err
	}
	if cfg.ReadInfo {
		info, err := runinfo.Read(filepath.Join(runDir, "run_info.yaml"))
		if err != nil {
			return nil, err
		}
		run.Info = info
	}
	if cfg.ReadThermo {
		thermo, err := thermof.ReadThermo(filepath.Join(runDir, "log.lammps"), "")
		if err != nil {
			return nil, err
		}
		run.Thermo = thermo
	}
	return run, nil
}
