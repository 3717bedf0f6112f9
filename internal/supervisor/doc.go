// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

/*
Package supervisor provides process supervision for Campwise using suture v4.

# Overview

The tree separates housekeeping from request serving:

	RootSupervisor ("campwise")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheJanitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A janitor that keeps failing backs off inside its own layer while the API
keeps serving.

# Usage Example

	logger := logging.NewSlogLogger("supervisor")
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMaintenanceService(janitor)
	tree.AddAPIService(httpSvc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

Supervisor events (start, failure, backoff, restart) are logged through
sutureslog into the zerolog pipeline.

# Restart Policy

FailureThreshold failures within the FailureDecay window put a supervisor
into FailureBackoff. ShutdownTimeout bounds how long each service gets to
return after cancellation; UnstoppedServiceReport lists stragglers.
*/
package supervisor
