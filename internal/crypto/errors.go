package crypto

import "github.com/MKhiriev/go-master-password/models"

var (
	// ErrCrypto is returned when scrypt rejects its parameters.
	ErrCrypto = models.ErrCrypto

	// ErrInvalidArgument is returned for names that are not valid UTF-8 and
	// for nil or destroyed secret arguments.
	ErrInvalidArgument = models.ErrInvalidArgument
)
