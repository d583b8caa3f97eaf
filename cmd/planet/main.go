package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"planetgen/internal/core"
	"planetgen/internal/habitability"
	"planetgen/internal/monitoring"
	"planetgen/internal/planet"
	"planetgen/internal/render"
	"planetgen/internal/report"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// overrides turns the collected key=value pairs into a map; later pairs win.
func (l kvList) overrides() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

type options struct {
	cfg     planet.Config
	config  string
	reuse   string
	out     string
	layers  string
	charts  bool
	bins    int
	verbose bool
	sets    kvList
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func parse(args []string) (*options, error) {
	opts := &options{cfg: planet.DefaultConfig()}
	fs := flag.NewFlagSet("planet", flag.ContinueOnError)
	opts.cfg.Bind(fs)
	fs.StringVar(&opts.config, "config", "", "JSON config file; flags set explicitly override it")
	fs.StringVar(&opts.reuse, "reuse", "", "manifest.json of an earlier run whose rate is reused")
	fs.StringVar(&opts.out, "out", "out", "output directory")
	fs.StringVar(&opts.layers, "layers", strings.Join(core.LayerNames(), ","), "comma separated layers to write as PNG")
	fs.BoolVar(&opts.charts, "charts", true, "write calibration and temperature charts")
	fs.IntVar(&opts.bins, "bins", 64, "temperature histogram bins")
	fs.BoolVar(&opts.verbose, "v", true, "log stage progress")
	fs.Var(&opts.sets, "set", "config override in key=value form using the JSON field names (repeatable)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.config != "" {
		loaded, err := planet.LoadConfigWithFlags(opts.config, fs)
		if err != nil {
			return nil, err
		}
		opts.cfg = loaded
	}
	if len(opts.sets) > 0 {
		opts.cfg = opts.cfg.WithOverrides(opts.sets.overrides())
	}
	if opts.reuse != "" && opts.cfg.Rate == nil {
		m, err := planet.ReadManifest(opts.reuse)
		if err != nil {
			return nil, err
		}
		rate := m.Rate
		opts.cfg.Rate = &rate
	}
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parse(args)
	if err != nil {
		return err
	}
	if !opts.verbose {
		monitoring.SetLogger(nil)
	}
	layers, err := selectLayers(opts.layers)
	if err != nil {
		return err
	}

	p, err := planet.Generate(opts.cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	size := p.Size()
	for _, name := range layers {
		path := filepath.Join(opts.out, name+".png")
		if err := render.WritePNG(path, core.Layers()[name](p), size.W, size.H); err != nil {
			return fmt.Errorf("layer %s: %w", name, err)
		}
	}

	if opts.charts {
		if err := writeCharts(p, opts.out, opts.bins); err != nil {
			return err
		}
	}

	if err := p.WriteManifest(filepath.Join(opts.out, "manifest.json")); err != nil {
		return err
	}
	printSummary(stdout, p)
	return nil
}

func selectLayers(list string) ([]string, error) {
	var out []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := core.Layers()[name]; !ok {
			return nil, fmt.Errorf("unknown layer %q (have %s)", name, strings.Join(core.LayerNames(), ", "))
		}
		out = append(out, name)
	}
	return out, nil
}

func writeCharts(p *planet.Planet, dir string, bins int) error {
	if res, ok := p.Calibration(); ok {
		plt, err := report.CalibrationPlot(res)
		if err != nil {
			return err
		}
		if err := report.SavePNG(plt, filepath.Join(dir, "calibration.png")); err != nil {
			return err
		}
		if err := report.WriteCalibrationHTML(filepath.Join(dir, "calibration.html"), p.Name(), res); err != nil {
			return err
		}
	}
	hist, err := report.HeatHistogram(p.Temperatures(), bins)
	if errors.Is(err, report.ErrNoData) {
		return nil
	}
	if err != nil {
		return err
	}
	return report.SavePNG(hist, filepath.Join(dir, "temperature.png"))
}

func printSummary(w io.Writer, p *planet.Planet) {
	counts := p.Counts()
	total := float64(p.Size().W * p.Size().H)
	fmt.Fprintf(w, "%s  rate %.3f", p.Name(), p.Rate())
	if res, ok := p.Calibration(); ok {
		fmt.Fprintf(w, "  band fitness %.3f", res.Fitness)
	}
	fmt.Fprintln(w)
	for _, class := range habitability.Classes {
		fmt.Fprintf(w, "  %-14s %6.2f%%\n", class, 100*float64(counts[class])/total)
	}
	for _, st := range p.Stages() {
		fmt.Fprintf(w, "  %-14s %s\n", st.Name, st.Duration)
	}
	fmt.Fprintf(w, "  %-14s %s\n", "total", p.Elapsed())
}
