// dy is a command-line client for the DynamoDB control plane.
//
// # Installation
//
//	go install github.com/acksell/dynein/dynamodb/cmd/dy@latest
//
// # Commands
//
//	dy list [--all-regions]                      List tables
//	dy desc [TABLE] [--all-tables]               Describe tables as YAML
//	dy create table NAME --keys pk[,T] [sk[,T]]  Create an on-demand table
//	dy create index NAME --keys pk[,T] [sk[,T]]  Add a global secondary index
//	dy delete table NAME [--yes]                 Delete a table
//	dy backup [--list] [--all-tables]            Take or list backups
//	dy restore [--backup NAME] [--restore-name NAME]
//	dy use [TABLE]                               Remember a table
//
// # Configuration
//
// dy reads dy.yaml from the current directory or any parent, falling back to
// ~/.dy/config.yaml:
//
//	using:
//	  region: us-west-2
//	  table: Music
//	cacheDir: ~/.dy/cache
//	concurrency: 8
//	logFile: /tmp/dy.log
//
// Logs go to stderr. Set DY_LOG_LEVEL=debug (or pass --verbose) for debug
// output and DY_LOG_FORMAT=json for JSON lines.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/acksell/dynein/dynamodb/ddberr"
	"go.uber.org/zap"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	stop()
	a.close()

	if err != nil {
		if a.log != nil {
			a.log.Debug("command failed", zap.Stringer("kind", ddberr.KindOf(err)), zap.String("code", ddberr.APICode(err)))
		}
		fmt.Fprintf(os.Stderr, "dy: %v\n", err)
		os.Exit(ddberr.ExitCode(err))
	}
}
