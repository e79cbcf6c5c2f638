package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

// Specification holds the ambient settings of a run. The comparison itself
// (sizes, repeats, seed, value range) is fixed and not configurable here.
type Specification struct {
	LogLevel      string `default:"info" envconfig:"log_level"`
	ListenAddress string `default:":3000" envconfig:"listen_address"`
	HistoryPath   string `default:"sortbench.db" envconfig:"history_path"`
	SnapshotPath  string `default:"results.msgpack" envconfig:"snapshot_path"`
	ServeChart    bool   `default:"true" envconfig:"serve_chart"`
	ChartPath     string `default:"chart.html" envconfig:"chart_path"`
}

var Spec Specification

func init() {
	err := envconfig.Process("sortbench", &Spec)
	if err != nil {
		log.Fatal(err.Error())
	}
}
