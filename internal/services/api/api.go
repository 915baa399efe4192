// Package api provides the HTTP API for the application
package api

import (
	"postpulse/internal/core/analyze"
	"postpulse/internal/platform/config"
	"postpulse/internal/platform/logger"
	phttp "postpulse/internal/platform/net/http"

	"postpulse/internal/modkit"
	"postpulse/internal/modkit/httpkit"
	"postpulse/internal/modkit/module"
	"postpulse/internal/modkit/swaggerkit"

	analysismod "postpulse/internal/services/analysis/module"
	metamod "postpulse/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Engine         *analyze.Engine
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	engine := opt.Engine
	if engine == nil {
		engine = analyze.MustNew()
	}

	mods := []module.Module{
		metamod.New(deps, engine),
		analysismod.New(deps, engine),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
