package infrastructure_test

import (
	"testing"

	"github.com/camco-mfg/gauge/internal/config"
	"github.com/camco-mfg/gauge/internal/infrastructure"
	"github.com/camco-mfg/gauge/pkg/database"
)

func validConfig() *config.Config {
	return &config.Config{
		Database: database.Config{
			Host:            "localhost",
			Port:            5432,
			Name:            "gauge",
			User:            "gauge",
			Password:        "gauge",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: "15m",
			ConnTimeout:     "10s",
		},
	}
}

func TestNew(t *testing.T) {
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if infra.Lifecycle == nil {
		t.Error("lifecycle is nil")
	}
	if infra.Logger == nil {
		t.Error("logger is nil")
	}
	if infra.Database == nil {
		t.Error("database is nil")
	}
	if infra.Tolerances == nil {
		t.Error("tolerance store is nil")
	}
}

func TestToleranceStoreNotReadyBeforeLoad(t *testing.T) {
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatal(err)
	}

	if infra.Tolerances.Ready() {
		t.Error("store should not be ready before the startup hook runs")
	}
	if _, err := infra.Tolerances.Table(); err == nil {
		t.Error("expected an error before the table loads")
	}
}
