package extract

import (
	"sync"

	"github.com/specwise/spec-analyzer/internal/models"
	"github.com/specwise/spec-analyzer/pkg/logger"
)

var (
	probeOnce sync.Once
	probed    models.CapabilitySet
)

// Probe detects which optional extraction backends are usable in this
// process. It runs the detection once; later calls return the same set.
// A missing or broken backend turns its flag off and never aborts.
func Probe(log logger.Logger) models.CapabilitySet {
	probeOnce.Do(func() {
		probed = detect(log)
	})
	return probed
}

func detect(log logger.Logger) models.CapabilitySet {
	checks := []struct {
		cap   models.Capability
		check func() error
	}{
		{models.CapLayerText, checkLayerText},
		{models.CapLayout, checkLayout},
		{models.CapRasterizer, checkRasterizer},
		{models.CapOCR, checkOCR},
		{models.CapDocx, checkDocx},
	}

	caps := make(models.CapabilitySet, len(checks))
	for _, c := range checks {
		err := c.check()
		caps[c.cap] = err == nil
		if err != nil {
			log.Warn("extraction capability unavailable",
				logger.String("capability", string(c.cap)),
				logger.Error(err),
			)
		} else {
			log.Debug("extraction capability available",
				logger.String("capability", string(c.cap)),
			)
		}
	}

	return caps
}
