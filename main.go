package main

import (
	"os"

	"github.com/Koliatoday/goit-algo-hw-04/internal/bench"
	"github.com/Koliatoday/goit-algo-hw-04/internal/config"
	"github.com/Koliatoday/goit-algo-hw-04/internal/history"
	"github.com/Koliatoday/goit-algo-hw-04/internal/logger"
	"github.com/Koliatoday/goit-algo-hw-04/internal/plot"
	"github.com/Koliatoday/goit-algo-hw-04/internal/report"
	"github.com/Koliatoday/goit-algo-hw-04/internal/snapshot"
	"github.com/Koliatoday/goit-algo-hw-04/server"
)

func main() {
	log := logger.NewLogger(map[string]string{"app": "sortbench"}, os.Stderr)

	sizes := []int{10, 100, 1_000, 5_000, 10_000}
	results := bench.Compare(log, sizes, bench.DefaultRepeats, bench.DefaultSeed, bench.DefaultLow, bench.DefaultHigh)

	report.WriteSystemInfo(os.Stdout)
	report.Write(os.Stdout, results)

	if config.Spec.HistoryPath != "" {
		store, err := history.Open(config.Spec.HistoryPath)
		if err != nil {
			log.Error("unable to open history store", "path", config.Spec.HistoryPath, "error", err)
			os.Exit(1)
		}
		runID, err := store.SaveRun(results)
		if err != nil {
			log.Error("unable to save run", "error", err)
			os.Exit(1)
		}
		store.Close()
		log.Info("run saved", "run_id", runID, "path", config.Spec.HistoryPath)
	}

	if config.Spec.SnapshotPath != "" {
		if err := snapshot.Save(config.Spec.SnapshotPath, results); err != nil {
			log.Error("unable to save snapshot", "error", err)
			os.Exit(1)
		}
		log.Info("snapshot saved", "path", config.Spec.SnapshotPath)
	}

	if !config.Spec.ServeChart {
		f, err := os.Create(config.Spec.ChartPath)
		if err != nil {
			log.Error("unable to create chart file", "error", err)
			os.Exit(1)
		}
		if err := plot.Render(f, results); err != nil {
			log.Error("unable to render chart", "error", err)
			os.Exit(1)
		}
		f.Close()
		log.Info("chart written", "path", config.Spec.ChartPath)
		return
	}

	if err := server.Serve(config.Spec.ListenAddress, results); err != nil {
		log.Error("problem running server", "error", err)
		os.Exit(1)
	}
}
