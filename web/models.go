/* models.go
 * Contains the configuration and state of the health and metrics server
 * Authors: Zachary Bower
 */

package web

import (
	"time"

	"previsioni-bot/api/api"
	"previsioni-bot/api/metrics"
)

// Config holds the configuration for the web server
type Config struct {
	Addr    string
	API     *api.API
	Metrics *metrics.Metrics
}

// Server is the HTTP server exposing health and metrics endpoints
type Server struct {
	api     *api.API
	metrics *metrics.Metrics
	started time.Time
}

// readyTimeout bounds the store ping done by /readyz
const readyTimeout = 2 * time.Second

// HealthResponse is the body of /healthz and /readyz
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}
