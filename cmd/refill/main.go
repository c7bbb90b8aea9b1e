package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/wdm0006/refill/pkg/dispatch"
	"github.com/wdm0006/refill/pkg/fill"
	"github.com/wdm0006/refill/pkg/guard"
	csvio "github.com/wdm0006/refill/pkg/io/csvio"
	parquetio "github.com/wdm0006/refill/pkg/io/parquetio"
	"github.com/wdm0006/refill/pkg/refill"
)

var version = "0.1.0-dev"

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	configPath := flag.String("config", "", "Path to imputation config (JSON/YAML/TOML)")
	flag.Parse()

	if *showVersion {
		fmt.Println("refill", version)
		return
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "no config provided; nothing to do. try --config <file> or --version")
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal(err)
	}

	table, err := readInput(cfg.Input)
	if err != nil {
		fatal(err)
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		fatal(err)
	}
	out, err := p.Run(context.Background(), table)
	if err != nil {
		fatal(err)
	}

	if err := writeOutput(cfg.Output, out); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func readInput(in IOConfig) (*refill.Table, error) {
	switch in.Type {
	case "", "csv":
		delim := ','
		if in.Delimiter != "" {
			delim = rune(in.Delimiter[0])
		}
		rdr, f, err := csvio.Open(in.Path, csvio.ReaderOptions{HasHeader: in.HasHeader, Delimiter: delim, SampleRows: 100})
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		schema, err := rdr.InferSchema()
		if err != nil {
			return nil, err
		}
		return rdr.ReadAll(schema)
	case "parquet":
		r, err := parquetio.OpenReader(in.Path, 100)
		if err != nil {
			return nil, err
		}
		defer func() { _ = r.Close() }()
		return r.ReadAll()
	default:
		return nil, fmt.Errorf("unsupported input type %q", in.Type)
	}
}

func writeOutput(out IOConfig, t *refill.Table) error {
	switch out.Type {
	case "", "csv":
		opt := csvio.WriterOptions{}
		if out.Delimiter != "" {
			opt.Delimiter = rune(out.Delimiter[0])
		}
		return csvio.WriteAll(out.Path, t, opt)
	case "parquet":
		return parquetio.WriteAll(out.Path, t)
	default:
		return fmt.Errorf("unsupported output type %q", out.Type)
	}
}

func buildPipeline(cfg Config) (*refill.Pipeline, error) {
	var g *guard.Guard
	if cfg.Guard != nil {
		g = &guard.Guard{MaxCount: cfg.Guard.MaxCount, MaxFraction: cfg.Guard.MaxFraction}
	}

	p := refill.NewPipeline()
	for _, sc := range cfg.Steps {
		rounding, ok := refill.ParseRounding(sc.Rounding)
		if !ok {
			return nil, fmt.Errorf("unknown rounding mode %q", sc.Rounding)
		}
		opt := dispatch.Options{Guard: g, Workers: cfg.Workers, Rounding: rounding}

		if sc.Strategy == "drop_rows" {
			max := 0
			if sc.MaxMissing != nil {
				max = *sc.MaxMissing
			}
			p.Add(&dispatch.DropStep{MaxMissing: max})
			continue
		}

		params := fill.Params{
			Limit:    sc.Limit,
			Rounding: rounding,
			Seed:     sc.Seed,
			K:        sc.K,
			Rank:     sc.Rank,
			MaxIter:  sc.MaxIter,
			Tol:      sc.Tol,
		}
		if sc.Value != nil {
			params.Value = *sc.Value
		}

		if fill.IsMatrixStrategy(sc.Strategy) {
			ms, err := fill.NewMatrix(sc.Strategy, params)
			if err != nil {
				return nil, err
			}
			p.Add(&dispatch.MatrixTableStep{Strategy: ms, Options: opt})
			continue
		}
		s, err := fill.New(sc.Strategy, params)
		if err != nil {
			return nil, err
		}
		p.Add(&dispatch.TableStep{Strategy: s, Columns: sc.Columns, Options: opt})
	}
	return p, nil
}
