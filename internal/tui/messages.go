package tui

import (
	"github.com/MKhiriev/go-master-password/internal/secret"
	"github.com/MKhiriev/go-master-password/internal/workers"
	"github.com/MKhiriev/go-master-password/models"
)

type keyDerivedMsg struct {
	res workers.KeyResult
}

type passwordMsg struct {
	password *secret.Bytes
	err      error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}

type recentSitesMsg struct {
	sites []models.SiteProfile
}

// recalledSiteMsg carries the stored profile of name, if any.
type recalledSiteMsg struct {
	name string
	site models.Site
	ok   bool
}

type forgottenMsg struct {
	name string
	err  error
}
