package handle

import (
	"errors"

	"github.com/MKhiriev/go-master-password/models"
)

var (
	ErrUnknownHandle   = errors.New("unknown handle")
	ErrInvalidArgument = models.ErrInvalidArgument
)
