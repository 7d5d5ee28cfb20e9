package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/joho/godotenv"
	"github.com/neurotab/neurotab/service"

	_ "github.com/viant/afsc/gs"
	_ "github.com/viant/afsc/s3"
)

func main() {
	startGops()
	_ = godotenv.Load()
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "report":
		reportCmd(os.Args[2:])
	case "prices", "clinical", "industrial":
		breakdownCmd(os.Args[1], os.Args[2:])
	case "extract":
		extractCmd(os.Args[2:])
	case "article", "reviews":
		splitCmd(os.Args[1], os.Args[2:])
	case "figures":
		figuresCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: neurotab <command> [options]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  report      Generate the full device table report")
	fmt.Fprintln(os.Stderr, "  prices      Consumer price breakdown")
	fmt.Fprintln(os.Stderr, "  clinical    Clinical certification breakdown")
	fmt.Fprintln(os.Stderr, "  industrial  Industrial and workplace usage breakdown")
	fmt.Fprintln(os.Stderr, "  extract     Convert manuscript PDFs into JSON companions")
	fmt.Fprintln(os.Stderr, "  article     Split the revised article into section files")
	fmt.Fprintln(os.Stderr, "  reviews     Split the decision letter into comment files")
	fmt.Fprintln(os.Stderr, "  figures     Render the timeline and trend figures")
}

func reportCmd(args []string) {
	flags := flag.NewFlagSet("report", flag.ExitOnError)
	configPath := flags.String("config", "", "config yaml (optional, defaults to $NEUROTAB_CONFIG)")
	catalogURL := flags.String("catalog", "", "catalog file or URL (overrides config)")
	output := flags.String("output", "", "report destination (overrides config)")
	year := flags.Int("year", 0, "current year for the article rate metrics")
	flags.Parse(args)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := loadConfig(*configPath)
	currentYear := *year
	if currentYear == 0 {
		currentYear = cfg.CurrentYear
	}
	if _, err := newService().Analyze(ctx, &service.AnalyzeRequest{
		CatalogURL:  resolveLocation(*catalogURL, cfg.Catalog),
		ReportURL:   resolveLocation(*output, cfg.Report),
		CurrentYear: currentYear,
		Logf:        logf,
	}); err != nil {
		log.Fatalf("report: %v", err)
	}
}

func breakdownCmd(name string, args []string) {
	flags := flag.NewFlagSet(name, flag.ExitOnError)
	configPath := flags.String("config", "", "config yaml (optional)")
	catalogURL := flags.String("catalog", "", "catalog file or URL (overrides config)")
	flags.Parse(args)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := loadConfig(*configPath)
	svc := newService()
	req := &service.BreakdownRequest{
		CatalogURL: resolveLocation(*catalogURL, cfg.Catalog),
		Logf:       logf,
	}
	var err error
	switch name {
	case "prices":
		_, err = svc.Prices(ctx, req)
	case "clinical":
		_, err = svc.Clinical(ctx, req)
	case "industrial":
		_, err = svc.Industrial(ctx, req)
	}
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
}

func extractCmd(args []string) {
	flags := flag.NewFlagSet("extract", flag.ExitOnError)
	configPath := flags.String("config", "", "config yaml (optional)")
	source := flags.String("source", "", "folder with PDFs (overrides config)")
	dest := flags.String("dest", "", "output folder for the JSON files (overrides config)")
	include := flags.String("include", "", "comma-separated include patterns")
	exclude := flags.String("exclude", "", "comma-separated exclude patterns")
	maxSize := flags.Int64("max-size", 0, "max file size in bytes")
	workers := flags.Int("workers", 0, "concurrent conversions")
	flags.Parse(args)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := loadConfig(*configPath)
	req := &service.ExtractRequest{
		SourceURL:    resolveLocation(*source, cfg.Extraction.Source),
		DestURL:      resolveLocation(*dest, cfg.Extraction.Dest),
		Include:      cfg.Extraction.Include,
		Exclude:      cfg.Extraction.Exclude,
		MaxSizeBytes: cfg.Extraction.MaxSizeBytes,
		Workers:      cfg.Extraction.Workers,
		Logf:         logf,
	}
	if patterns := parseCSV(*include); len(patterns) > 0 {
		req.Include = patterns
	}
	if patterns := parseCSV(*exclude); len(patterns) > 0 {
		req.Exclude = patterns
	}
	if *maxSize > 0 {
		req.MaxSizeBytes = *maxSize
	}
	if *workers > 0 {
		req.Workers = *workers
	}
	if _, err := newService().Extract(ctx, req); err != nil {
		log.Fatalf("extract: %v", err)
	}
}

func splitCmd(name string, args []string) {
	flags := flag.NewFlagSet(name, flag.ExitOnError)
	configPath := flags.String("config", "", "config yaml (optional)")
	source := flags.String("source", "", "extracted JSON document (overrides config)")
	dest := flags.String("dest", "", "output folder (overrides config)")
	flags.Parse(args)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := loadConfig(*configPath)
	split := cfg.Article
	if name == "reviews" {
		split = cfg.Reviews
	}
	svc := newService()
	req := &service.SplitRequest{
		SourceURL: resolveLocation(*source, split.Source),
		DestURL:   resolveLocation(*dest, split.Dest),
		Logf:      logf,
	}
	var err error
	if name == "reviews" {
		_, err = svc.Reviews(ctx, req)
	} else {
		_, err = svc.Article(ctx, req)
	}
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
}

func figuresCmd(args []string) {
	flags := flag.NewFlagSet("figures", flag.ExitOnError)
	configPath := flags.String("config", "", "config yaml (optional)")
	catalogURL := flags.String("catalog", "", "catalog file or URL (overrides config)")
	dest := flags.String("dest", "", "output folder for the PNG files (overrides config)")
	flags.Parse(args)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := loadConfig(*configPath)
	if _, err := newService().Figures(ctx, &service.FiguresRequest{
		CatalogURL: resolveLocation(*catalogURL, cfg.Catalog),
		DestURL:    resolveLocation(*dest, cfg.Figures),
		Logf:       logf,
	}); err != nil {
		log.Fatalf("figures: %v", err)
	}
}

func loadConfig(path string) *service.Config {
	cfg, err := service.LoadConfig(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func newService() *service.Service {
	svc, err := service.NewService()
	if err != nil {
		log.Fatalf("service init: %v", err)
	}
	return svc
}

func resolveLocation(override, configured string) string {
	if override != "" {
		return override
	}
	return configured
}

func parseCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func logf(format string, args ...any) {
	fmt.Printf(format, args...)
}

func startGops() {
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		log.Printf("gops: %v", err)
	}
}
