package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

import (
	"github.com/MKhiriev/go-master-password/internal/secret"
	"github.com/MKhiriev/go-master-password/models"
)

// KeyChainService derives every secret of the Master Password scheme.
// It keeps no state between calls and is safe for concurrent use.
//
// Pipeline:
//
//	MasterKey = scrypt(password, prefix ‖ len(name) ‖ name)          (step 1)
//	SiteSeed  = HMAC-SHA256(MasterKey, prefix ‖ len(site) ‖ site ‖ counter) (step 2)
//	Identicon = glyphs(HMAC-SHA256(password, name))                 (side branch)
//
// None of the methods take ownership of their secret arguments: the caller
// still has to Destroy them. Returned secrets belong to the caller.
type KeyChainService interface {
	// MasterKey stretches password with a salt built from userName using the
	// fixed scrypt policy (N=32768, r=8, p=2) and returns a 64-byte key.
	// This is the slow step: expect tens to hundreds of milliseconds.
	// Step 1.
	MasterKey(password *secret.Bytes, userName string) (*MasterKey, error)

	// MasterKeyCustom is the low-level scrypt entry point with caller-chosen
	// salt, cost parameters and output length. Keys produced with anything
	// other than the fixed policy are not compatible with MasterKey.
	MasterKeyCustom(password, salt *secret.Bytes, n, r, p, keyLen int) (*secret.Bytes, error)

	// SiteSeed computes the 32-byte seed for siteName at the given counter.
	// Step 2.
	SiteSeed(masterKey *MasterKey, siteName string, counter uint32) (*SiteSeed, error)

	// Identicon derives the visual fingerprint of password and displayName.
	// It skips key stretching so it can be shown while the user types.
	Identicon(password *secret.Bytes, displayName string) (models.Identicon, error)
}
