package handlers

import (
	"github.com/development-sample/eceta.com/internal/config"
	"github.com/development-sample/eceta.com/internal/views"
)

// AnalyticsFromConfig maps the analytics configuration onto the layout's instrumentation tags.
func AnalyticsFromConfig(cfg config.AnalyticsConfig) views.Analytics {
	return views.Analytics{
		GA4MeasurementID: cfg.GA4MeasurementID,
		GTMContainerID:   cfg.GTMContainerID,
		Debug:            cfg.Debug,
	}
}
