package service

import (
	"strings"

	"gorm.io/gorm"

	"github.com/commercegrid/mediabridge/biz/model/media"
	"github.com/commercegrid/mediabridge/pkg/storage"
	"github.com/commercegrid/mediabridge/pkg/validator"
)

// ResolverConfig carries the environment signals the platform resolver
// consumes. It is populated once at startup so the resolver stays a pure
// function of its inputs.
type ResolverConfig struct {
	// CloudRuntime is true when cloud runtime markers are present in the
	// process environment. It short-circuits every other signal.
	CloudRuntime bool
	// DeployTarget is the deployment heuristic fallback signal
	// ("serverless", "container", "bare").
	DeployTarget string
}

// Deps bundles the collaborators a Service needs.
type Deps struct {
	// Local is the local filesystem platform. Always present.
	Local storage.Storage
	// Cloud is the blob storage platform, nil when credentials are not
	// configured. Operations that resolve to the cloud platform then fail
	// with an explicit configuration error.
	Cloud storage.Storage
	// LocalPrefix is the URL prefix local files are served under.
	LocalPrefix string
	// CloudBaseURL is the absolute URL prefix of cloud objects, used to
	// recognise cloud URLs during delete and migrate.
	CloudBaseURL string
	Resolver     ResolverConfig
	Upload       *validator.UploadConfig
}

// Service orchestrates the asset pipelines and the settings store.
type Service struct {
	logic        *Logic
	local        storage.Storage
	cloud        storage.Storage
	localPrefix  string
	cloudBaseURL string
	resolver     ResolverConfig
	upload       *validator.UploadConfig
}

func NewService(db *gorm.DB, deps Deps) *Service {
	upload := deps.Upload
	if upload == nil {
		upload = validator.DefaultUploadConfig()
	}
	localPrefix := deps.LocalPrefix
	if localPrefix == "" {
		localPrefix = "/media"
	}
	return &Service{
		logic:        NewLogic(db),
		local:        deps.Local,
		cloud:        deps.Cloud,
		localPrefix:  strings.TrimSuffix(localPrefix, "/"),
		cloudBaseURL: strings.TrimSuffix(deps.CloudBaseURL, "/"),
		resolver:     deps.Resolver,
		upload:       upload,
	}
}

// storeFor returns the storage backend serving the given platform.
func (s *Service) storeFor(platform media.Platform) (storage.Storage, error) {
	switch platform {
	case media.PlatformS3:
		if s.cloud == nil {
			return nil, ErrCloudCredentialsMissing
		}
		return s.cloud, nil
	default:
		return s.local, nil
	}
}

// platformFromURL infers the owning platform from the shape of a public
// URL: absolute URLs pointing at the cloud host belong to the cloud
// platform, everything else is local.
func (s *Service) platformFromURL(url string) media.Platform {
	if s.cloudBaseURL != "" && strings.HasPrefix(url, s.cloudBaseURL+"/") {
		return media.PlatformS3
	}
	if strings.HasPrefix(url, "https://") || strings.HasPrefix(url, "http://") {
		return media.PlatformS3
	}
	return media.PlatformLocal
}

// keyFromURL strips the platform URL prefix, leaving the object key.
func (s *Service) keyFromURL(url string, platform media.Platform) string {
	switch platform {
	case media.PlatformS3:
		if s.cloudBaseURL != "" {
			return strings.TrimPrefix(strings.TrimPrefix(url, s.cloudBaseURL), "/")
		}
		// Unknown cloud base: take the URL path after the host.
		trimmed := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
		if idx := strings.Index(trimmed, "/"); idx >= 0 {
			return trimmed[idx+1:]
		}
		return trimmed
	default:
		return strings.TrimPrefix(strings.TrimPrefix(url, s.localPrefix), "/")
	}
}
