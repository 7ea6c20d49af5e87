package service

//go:generate mockgen -destination=../mock/password_service_mock.go -package=mock github.com/MKhiriev/go-master-password/internal/service PasswordService,AppInfoService,SiteService

import (
	"context"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/secret"
	"github.com/MKhiriev/go-master-password/models"
)

// PasswordService runs the Master Password pipeline end to end.
//
// Secret arguments are borrowed: the caller keeps ownership and must
// Destroy them. Every returned secret is owned by the caller. The context
// carries the logger and job ID; derivations are not interrupted by
// cancellation once started.
type PasswordService interface {
	// Identicon returns the visual fingerprint of password and userName.
	// Cheap; suitable for calling on every keystroke.
	Identicon(ctx context.Context, password *secret.Bytes, userName string) (models.Identicon, error)

	// MasterKey runs the memory-hard key derivation. This is the only slow
	// call; interactive callers should run it on a worker.
	MasterKey(ctx context.Context, password *secret.Bytes, userName string) (*crypto.MasterKey, error)

	// SitePassword derives the site seed for site and renders it with the
	// site's template tier. The intermediate seed is destroyed before
	// returning. Returns an error wrapping models.ErrInvalidArgument for an
	// unknown tier.
	SitePassword(ctx context.Context, key *crypto.MasterKey, site models.Site) (*secret.Bytes, error)

	// Generate is MasterKey followed by SitePassword; the master key is
	// destroyed before returning.
	Generate(ctx context.Context, password *secret.Bytes, userName string, site models.Site) (*secret.Bytes, error)
}

// PasswordServiceWrapper defines middleware composition for PasswordService.
// Implementations wrap an existing PasswordService to add behavior such as
// logging.
type PasswordServiceWrapper interface {
	Wrap(PasswordService) PasswordService // returns a decorated PasswordService applying additional behavior
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// SiteService remembers the counter and template last used for each site,
// so that generating the same password again only needs the site name.
// Profiles hold no secret material.
type SiteService interface {
	// Remember stores site as the latest profile of userName. The template
	// is stored under its canonical tier name.
	Remember(ctx context.Context, userName string, site models.Site) error

	// Recall returns the stored site; ok is false when there is none.
	Recall(ctx context.Context, userName, siteName string) (site models.Site, ok bool, err error)

	// Recent lists up to limit profiles of userName, most recent first. A
	// limit of 0 lists all of them.
	Recent(ctx context.Context, userName string, limit int) ([]models.SiteProfile, error)

	// Forget deletes the stored profile. It returns ErrSiteNotFound when
	// there was none.
	Forget(ctx context.Context, userName, siteName string) error
}
