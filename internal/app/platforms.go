package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// ListPlatforms reports the detected host platform next to the supported table.
// An unsupported host is not an error here.
func (s Service) ListPlatforms(ctx context.Context) PlatformsResult {
	probe := s.Host.Classifier()
	result := PlatformsResult{
		HostClassifier: probe,
		Platforms:      s.Platforms.Platforms(),
	}
	platform, err := s.Platforms.Detect(probe)
	if err != nil {
		result.DetectError = err.Error()
		log.Ctx(ctx).Debug().Err(err).Msg("host platform not supported")
		return result
	}
	result.Detected = &platform
	return result
}
