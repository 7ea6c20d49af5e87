package service

import (
	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/internal/store"
	"github.com/MKhiriev/go-master-password/models"
)

type Services struct {
	PasswordService PasswordService
	SiteService     SiteService
	AppInfoService  AppInfoService
}

// NewServices wires the client services. storages may be nil or empty, in
// which case site profiles are disabled.
func NewServices(buildInfo models.AppBuildInfo, storages *store.ClientStorages, logger *logger.Logger) *Services {
	passwordSvc := NewPasswordLoggingService(logger).
		Wrap(NewPasswordService(crypto.NewKeyChainService()))

	var sites store.SiteProfileRepository
	if storages != nil {
		sites = storages.SiteProfileRepository
	}

	return &Services{
		PasswordService: passwordSvc,
		SiteService:     NewSiteService(sites, logger),
		AppInfoService:  NewAppInfoService(buildInfo, logger),
	}
}
