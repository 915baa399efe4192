// @title         PostPulse API
// @version       0.1.0
// @description   Post scoring and engagement prediction endpoints

package main

import (
	"context"

	"github.com/joho/godotenv"

	"postpulse/internal/core/analyze"
	"postpulse/internal/platform/config"
	"postpulse/internal/platform/logger"
	phttp "postpulse/internal/platform/net/http"

	"postpulse/internal/services/api"
)

func main() {
	// local development convenience; the file is absent in production
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// compile the embedded lexicons once; a broken pack is a build defect
	engine, err := analyze.New()
	if err != nil {
		l.Panic().Err(err).Msg("scoring engine init failed")
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Engine:         engine,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
