package showcase

import "github.com/spacemonkeygo/monkit/v3"

var (
	mon = monkit.Package()
)

// Metric names. Dashboards key on these, so keep them stable.
const (
	metricWrap               = "wrap_total"
	metricSelectionChanged   = "selection_changed"
	metricTransitionFallback = "transition_fallback"
	metricTextureMissing     = "texture_missing"
	metricPreloadBytes       = "preload_bytes"
	metricPreloadAssets      = "preload_assets"
	metricNavigation         = "navigation"
)
