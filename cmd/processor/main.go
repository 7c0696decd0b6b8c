package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"vendascli/internal/config"
	"vendascli/internal/exporter"
	"vendascli/internal/infrastructure"
	"vendascli/internal/services"
	"vendascli/pkg/contracts/domain"
)

func main() {
	var (
		salesPath  = flag.String("sales", "", "path to the sales workbook (.xlsx)")
		cutsPath   = flag.String("cuts", "", "path to the cut/production workbook (.xlsx, optional)")
		outDir     = flag.String("out", "reports", "output directory for generated reports")
		format     = flag.String("format", "csv", "output format: csv or json")
		groupField = flag.String("by", "store", "grouping field for the groups report")
		metric     = flag.String("metric", "total_value", "summed metric: total_value or quantity")
		store      = flag.String("store", "", "filter: exact store name")
		category   = flag.String("category", "", "filter: exact category")
		collection = flag.String("collection", "", "filter: exact collection")
		startMonth = flag.String("start", "", "filter: first month, YYYY-MM")
		endMonth   = flag.String("end", "", "filter: last month, YYYY-MM")
		code       = flag.String("code", "", "filter: item code substring")
	)
	flag.Parse()

	if err := run(*salesPath, *cutsPath, *outDir, *format, *groupField, *metric, domain.Filter{
		Store:      *store,
		Category:   *category,
		Collection: *collection,
		StartMonth: *startMonth,
		EndMonth:   *endMonth,
		CodeQuery:  *code,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "processor: %v\n", err)
		os.Exit(1)
	}
}

func run(salesPath, cutsPath, outDir, format, groupField, metric string, filter domain.Filter) error {
	if salesPath == "" {
		return fmt.Errorf("missing required -sales flag")
	}
	if format != "csv" && format != "json" {
		return fmt.Errorf("unknown format %q: use csv or json", format)
	}

	field := domain.GroupField(groupField)
	if !field.Valid() {
		return fmt.Errorf("unknown grouping field %q", groupField)
	}
	metricField := domain.MetricField(metric)
	if !metricField.Valid() {
		return fmt.Errorf("unknown metric %q", metric)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	ctx := context.Background()
	svc := services.NewAnalyticsService(cfg.Ingest.HeaderSearchWindow, nil, logger)

	// Ingest both workbooks concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := os.ReadFile(salesPath)
		if err != nil {
			return fmt.Errorf("read sales workbook: %w", err)
		}
		_, err = svc.LoadSales(gctx, filepath.Base(salesPath), data)
		return err
	})
	if cutsPath != "" {
		g.Go(func() error {
			data, err := os.ReadFile(cutsPath)
			if err != nil {
				return fmt.Errorf("read cuts workbook: %w", err)
			}
			_, err = svc.LoadCuts(gctx, filepath.Base(cutsPath), data)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	summary, err := svc.Summary(ctx, filter)
	if err != nil {
		return err
	}
	buckets, err := svc.Groups(ctx, field, metricField, filter)
	if err != nil {
		return err
	}
	detail, err := svc.Detail(ctx, filter)
	if err != nil {
		return err
	}

	exp := exporter.NewReportExporter(outDir, logger)
	groupsName := "grupos_" + strings.ToLower(groupField)

	if format == "json" {
		if err := exp.ExportJSON("resumo.json", summary); err != nil {
			return err
		}
		if err := exp.ExportJSON(groupsName+".json", buckets); err != nil {
			return err
		}
		if err := exp.ExportJSON("detalhe.json", detail); err != nil {
			return err
		}
	} else {
		if err := exp.ExportMetricsCSV("resumo.csv", summary); err != nil {
			return err
		}
		if err := exp.ExportBucketsCSV(groupsName+".csv", buckets); err != nil {
			return err
		}
		if err := exp.ExportDetailCSV("detalhe.csv", detail); err != nil {
			return err
		}
	}

	logger.Info("reports written",
		slog.String("out_dir", outDir),
		slog.String("format", format),
		slog.Int("detail_rows", len(detail)),
		slog.Int("group_buckets", len(buckets)))

	return nil
}
