package service

import (
	"errors"

	"github.com/MKhiriev/go-master-password/internal/store"
	"github.com/MKhiriev/go-master-password/models"
)

var (
	ErrInvalidArgument = models.ErrInvalidArgument
	ErrCrypto          = models.ErrCrypto

	ErrEmptySiteName = errors.New("site name is empty")
	ErrEmptyUserName = errors.New("user name is empty")

	ErrSiteNotFound = store.ErrSiteNotFound
)
