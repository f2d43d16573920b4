package service

import (
	"context"
	"errors"
	"strings"

	"github.com/commercegrid/mediabridge/biz/model/media"
	"github.com/commercegrid/mediabridge/pkg/constants"
)

// ErrCloudCredentialsMissing is surfaced when an operation resolves to the
// cloud platform but no blob storage credentials are configured. It is
// never downgraded to a silent local fallback.
var ErrCloudCredentialsMissing = errors.New("cloud storage credentials are not configured")

// ResolverInput is everything the platform decision consumes. Keeping the
// inputs explicit makes the resolver a pure function.
type ResolverInput struct {
	// CloudRuntime reflects process-level cloud runtime markers.
	CloudRuntime bool
	// Setting is the persisted platform choice, empty when absent.
	Setting string
	// SettingErr is a non-nil read error from the settings store. Absence
	// of the setting is not an error.
	SettingErr error
	// DeployTarget is the deployment heuristic fallback signal.
	DeployTarget string
}

// ResolvePlatform decides which storage platform is authoritative.
// First match wins:
//  1. cloud runtime markers present => cloud
//  2. persisted setting => honored
//  3. deployment heuristic => mapped platform
//
// A settings read error repeats the environment check and defaults local.
func ResolvePlatform(in ResolverInput) media.Platform {
	if in.CloudRuntime {
		return media.PlatformS3
	}

	if in.SettingErr != nil {
		return media.PlatformLocal
	}

	if p, ok := media.ParsePlatform(strings.TrimSpace(in.Setting)); ok && p != "" {
		return p
	}

	return platformForDeployTarget(in.DeployTarget)
}

func platformForDeployTarget(target string) media.Platform {
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "serverless", "edge", "cloud":
		return media.PlatformS3
	default:
		return media.PlatformLocal
	}
}

// CurrentPlatform resolves the authoritative platform for this request.
// override short-circuits resolution when non-empty.
func (s *Service) CurrentPlatform(ctx context.Context, override media.Platform) media.Platform {
	if override != "" {
		return override
	}

	in := ResolverInput{
		CloudRuntime: s.resolver.CloudRuntime,
		DeployTarget: s.resolver.DeployTarget,
	}

	value, err := s.logic.GetRawSettingValue(ctx, constants.SettingGroupGeneral, constants.SettingStoragePlatform)
	switch {
	case err == nil:
		in.Setting = value
	case errors.Is(err, ErrSettingNotFound):
		// absent, fall through to the heuristic
	default:
		in.SettingErr = err
	}

	return ResolvePlatform(in)
}
