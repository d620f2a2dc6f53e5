package http

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mvc"
	"github.com/riverdex/sor/log"
)

type SystemHandler struct {
	logger    log.Logger
	CIUsecase mvc.ChainInfoUsecase
	config    domain.Config
}

// HealthStatus is the response of the healthcheck.
type HealthStatus struct {
	Status string `json:"status"`
	// LatestHeights is keyed by chain ID.
	LatestHeights map[string]uint64 `json:"latest_heights,omitempty"`
}

const (
	versionPlaceholder    = "version="
	whiteSpacePlaceholder = " "

	statusRunning = "running"
)

// NewSystemHandler will initialize the system and /debug/pprof resources endpoints.
// ciUsecase may be nil when chain heights are not tracked.
func NewSystemHandler(e *echo.Echo, config domain.Config, logger log.Logger, ciUsecase mvc.ChainInfoUsecase) {
	handler := &SystemHandler{
		logger:    logger,
		CIUsecase: ciUsecase,
		config:    config,
	}

	// if debug mod, enable additional profiles that are too intensive
	// for production.
	if !config.LoggerIsProduction {
		runtime.SetMutexProfileFraction(2)
		runtime.SetBlockProfileRate(2)
	}

	e.GET("/debug/pprof/*", echo.WrapHandler(http.DefaultServeMux))
	e.GET("/debug/pprof/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	e.GET("/debug/pprof/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	e.GET("/debug/pprof/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	e.GET("/debug/pprof/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))

	e.GET("/healthcheck", handler.GetHealthStatus)
	e.GET("/config", handler.GetConfig)
	e.GET("/version", handler.GetVersion)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// GetConfig returns the config of the router server
func (h *SystemHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, h.config)
}

func (h *SystemHandler) GetVersion(c echo.Context) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read build info")
	}

	for _, setting := range buildInfo.Settings {
		if setting.Key == "-ldflags" {
			version, err := extractVersion(setting.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to extract version information: %v", err))
			}

			return c.JSON(http.StatusOK, version)
		}
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "failed to find version information")
}

// extractVersion extracts the version string from the ldflags
func extractVersion(ldFlagsValueStr string) (string, error) {
	index := strings.Index(ldFlagsValueStr, versionPlaceholder)
	if index == -1 {
		return "", fmt.Errorf("no version string found")
	}

	substring := ldFlagsValueStr[index+len(versionPlaceholder):]

	// The version may be the last flag
	index = strings.Index(substring, whiteSpacePlaceholder)
	if index == -1 {
		return substring, nil
	}

	return substring[:index], nil
}

// GetHealthStatus reports unhealthy if the height of any configured chain is stale.
// Chains whose height was never fetched are reported unhealthy as well.
func (h *SystemHandler) GetHealthStatus(c echo.Context) error {
	ctx := c.Request().Context()

	status := HealthStatus{Status: statusRunning}

	if h.CIUsecase == nil {
		return c.JSON(http.StatusOK, status)
	}

	status.LatestHeights = make(map[string]uint64, len(h.config.Chains))
	for _, chain := range h.config.Chains {
		height, err := h.CIUsecase.GetLatestHeight(ctx, chain.ChainID)
		if err != nil {
			h.logger.Error("healthcheck failed", zap.Stringer("chain_id", chain.ChainID), zap.Error(err))
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}

		status.LatestHeights[chain.ChainID.String()] = height
	}

	return c.JSON(http.StatusOK, status)
}
