package di

import (
	syncService "innkeep/internal/domains/sync/service"
	"innkeep/transport/http"
)

// App bundles the long-running pieces main has to start: the HTTP server
// and the periodic sync runner.
type App struct {
	HTTP       *http.HTTP
	SyncRunner *syncService.Runner
}
