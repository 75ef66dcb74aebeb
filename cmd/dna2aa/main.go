package main

/*
DNA 序列翻译为氨基酸序列
*/

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"

	"github.com/liserjrqlxue/dna2aa/internal/config"
	"github.com/liserjrqlxue/dna2aa/internal/logging"
	"github.com/liserjrqlxue/dna2aa/pkg/codon"
	"github.com/liserjrqlxue/dna2aa/pkg/report"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input, one DNA sequence:\n\tempty\tinteractive prompt\n\t-\tone line from stdin\n\tpath\tsequence file, lines joined, '>' header lines skipped",
	)
	output = flag.String(
		"o",
		"-",
		"output, - for stdout",
	)
	format = flag.String(
		"f",
		"",
		"output format, one of "+strings.Join(report.Formats(), ", ")+" (default from config: flat)",
	)
	separator = flag.String(
		"sep",
		"",
		"amino acid separator for flat format",
	)
	plotPath = flag.String(
		"plot",
		"",
		"write amino acid composition bar chart, format from extension: svg, png, pdf",
	)
	configFile = flag.String(
		"c",
		"",
		"YAML config file, default $"+config.EnvConfig,
	)
	cpuProfile = flag.String(
		"cpu",
		"",
		"write cpu profile to file",
	)
)

const (
	prompt         = "Enter a DNA sequence:"
	header         = "Amino Acid sequence:"
	invalidMessage = "Error: Input contains invalid DNA bases (must be A, T, C, or G)."
)

func main() {
	t0 := time.Now()
	flag.Parse()

	cfg, err := loadConfig(*configFile, config.OutputConfig{
		Format:    *format,
		Separator: *separator,
		Plot:      *plotPath,
	})
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.Setup(cfg.Log, os.Stderr)

	var interactive = *input == ""

	// read input
	var raw string
	switch *input {
	case "", "-":
		if interactive {
			fmt.Println(prompt)
		}
		raw = simpleUtil.HandleError(readLine(os.Stdin))
	default:
		raw = loadInputSeq(*input)
	}

	records, err := translateInput(raw)
	if err != nil {
		slog.Error("Invalid sequence", "err", err)
		fmtUtil.Fprintln(os.Stderr, invalidMessage)
		os.Exit(1)
	}

	if *cpuProfile != "" {
		var LogCPUProfile = osUtil.Create(*cpuProfile)
		defer simpleUtil.DeferClose(LogCPUProfile)
		simpleUtil.CheckErr(pprof.StartCPUProfile(LogCPUProfile))
		defer pprof.StopCPUProfile()
	}

	// open output
	var outF = os.Stdout
	if *output != "-" && *output != "" {
		outF = osUtil.Create(*output)
		defer simpleUtil.DeferClose(outF)
	}
	var w = bufio.NewWriter(outF)

	if interactive && cfg.Output.Format != "json" {
		fmt.Fprintln(w, header)
	}
	simpleUtil.CheckErr(render(w, records, cfg.Output))
	simpleUtil.CheckErr(w.Flush())

	slog.Info("Done", "codons", len(records), "elapsed", time.Since(t0))
}

// loadConfig layers the non-empty fields of flags over the loaded config, then validates
func loadConfig(path string, flags config.OutputConfig) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, flags)
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, flags config.OutputConfig) {
	if flags.Format != "" {
		cfg.Output.Format = flags.Format
	}
	if flags.Separator != "" {
		cfg.Output.Separator = flags.Separator
	}
	if flags.Plot != "" {
		cfg.Output.Plot = flags.Plot
	}
}

// readLine reads the first line of r without its line terminator
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// loadInputSeq joins the lines of a sequence file, skipping '>' headers
func loadInputSeq(path string) string {
	var sb strings.Builder
	for _, line := range textUtil.File2Array(path) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ">") {
			continue
		}
		sb.WriteString(line)
	}
	return sb.String()
}

// translateInput validates raw, then translates it uppercased in frame 0
func translateInput(raw string) ([]codon.Record, error) {
	raw = strings.TrimSpace(raw)
	if err := codon.Validate(raw); err != nil {
		return nil, err
	}
	var seq = codon.Normalize(raw)
	var records = codon.Translate(seq, codon.Standard())
	slog.Debug("Translate", "length", len(seq), "codons", len(records), "dropped", codon.Dropped(seq))
	return records, nil
}

// render writes records in cfg.Format and saves the composition plot if asked
func render(w io.Writer, records []codon.Record, cfg config.OutputConfig) error {
	err := report.Write(cfg.Format, w, records, report.Options{Separator: cfg.Separator})
	if err != nil {
		return err
	}
	if cfg.Plot == "" {
		return nil
	}
	err = report.SaveCompositionPlot(cfg.Plot, records)
	if errors.Is(err, report.ErrNoRecords) {
		slog.Warn("Skip composition plot", "plot", cfg.Plot, "reason", err)
		return nil
	}
	return err
}
