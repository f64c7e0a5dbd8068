package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"k8s.io/klog/v2"

	"github.com/mosala-labs/mosala-backend/dao/query"
	"github.com/mosala-labs/mosala-backend/internal"
	"github.com/mosala-labs/mosala-backend/internal/handler"
	"github.com/mosala-labs/mosala-backend/pkg/alert"
	"github.com/mosala-labs/mosala-backend/pkg/config"
	"github.com/mosala-labs/mosala-backend/pkg/consistency"
	"github.com/mosala-labs/mosala-backend/pkg/objectstore"
)

// @title Mosala API
// @version 0.1.0
// @description API server for Mosala, a marketplace connecting Congolese project owners with financial, skill, material and partnership contributors.
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Log in via /v1/auth/login, then provide 'Bearer ${TOKEN}' to access protected endpoints
func main() {
	// set global timezone
	time.Local = time.UTC

	backendConfig := config.GetConfig()

	// variable changes in local development
	if gin.Mode() == gin.DebugMode {
		if err := godotenv.Load(".debug.env"); err == nil {
			if be := os.Getenv("MOSALA_BE_PORT"); be != "" {
				backendConfig.ServerAddr = ":" + be
			}
			if ms := os.Getenv("MOSALA_MS_PORT"); ms != "" {
				backendConfig.MetricsAddr = ":" + ms
			}
		}
	}

	// 1. database and schema
	db := query.GetDB()
	if err := query.Migrate(db); err != nil {
		klog.Fatalf("failed to run migrations: %v", err)
	}

	// 2. periodic equity-allocation scan
	scanner := consistency.NewScanner()
	if err := scanner.Start(backendConfig.Consistency.EquityScanSpec); err != nil {
		klog.Fatalf("failed to start equity scanner: %v", err)
	}
	defer scanner.Stop()

	// 3. standalone metrics listener, when configured
	if backendConfig.MetricsAddr != "" {
		go func() {
			klog.Infof("metrics listening on %s", backendConfig.MetricsAddr)
			if err := http.ListenAndServe(backendConfig.MetricsAddr, promhttp.Handler()); err != nil {
				klog.Errorf("metrics server stopped: %v", err)
			}
		}()
	}

	// 4. http backend
	backend := internal.Register(&handler.RegisterConfig{
		Alert:       alert.GetAlertMgr(),
		ObjectStore: objectstore.GetStore(),
	})
	klog.Infof("server listening on %s", backendConfig.ServerAddr)
	if err := backend.R.Run(backendConfig.ServerAddr); err != nil {
		klog.Fatalf("server stopped: %v", err)
	}
}
