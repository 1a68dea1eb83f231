package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/expohub/expohub/internal/infrastructure/scheduler"
	"github.com/expohub/expohub/internal/interfaces/cli/bootstrap"
	"github.com/expohub/expohub/internal/shared/constants"
)

// worker runs the background jobs without serving HTTP. Start API replicas
// with --no-scheduler when a worker is deployed.
func main() {
	env := constants.EnvDevelopment
	if len(os.Args) > 1 {
		env = os.Args[1]
	}

	e, err := bootstrap.Load(env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer e.Close()

	log := e.Log
	log.Infow("starting job worker", "environment", e.Name)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := e.Container(ctx)
	if err != nil {
		log.Errorw("failed to build container", "error", err)
		return
	}
	defer func() {
		if err := c.Shutdown(); err != nil {
			log.Errorw("failed to stop worker cleanly", "error", err)
		}
	}()

	// Counters may have drifted while no worker was running.
	if n, err := c.Scheduler().RunNow(ctx, scheduler.JobRepairCounters); err != nil {
		log.Errorw("initial counter repair failed", "error", err)
	} else {
		log.Infow("initial counter repair finished", "scanned", n)
	}

	c.Scheduler().Start()
	log.Infow("job worker started", "jobs", c.Scheduler().JobNames())

	<-ctx.Done()
	log.Infow("received signal, shutting down")
}
