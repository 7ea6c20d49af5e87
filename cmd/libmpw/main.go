// Command libmpw builds the C ABI of the generator:
//
//	go build -buildmode=c-shared -o librusterpassword_capi.so ./cmd/libmpw
//
// Master keys and site seeds are returned as opaque non-zero handles; zero
// signals failure. Site passwords and identicons are NUL-terminated strings
// in C memory. Every artifact must be released with its matching free
// function exactly once.
package main

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

#define TEMPLATES_PIN     10
#define TEMPLATES_BASIC   20
#define TEMPLATES_SHORT   30
#define TEMPLATES_MEDIUM  40
#define TEMPLATES_LONG    50
#define TEMPLATES_MAXIMUM 60
*/
import "C"

import (
	"unsafe"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/handle"
	"github.com/MKhiriev/go-master-password/internal/secret"
	"github.com/MKhiriev/go-master-password/internal/template"
)

var (
	keyChain = crypto.NewKeyChainService()
	handles  = handle.NewTable(keyChain)
)

//export rusterpassword_gen_master_key
func rusterpassword_gen_master_key(password, userName *C.char) C.uint64_t {
	if password == nil || userName == nil {
		return 0
	}

	pw := secret.New(goBytes(password))
	defer pw.Destroy()

	h, err := handles.NewMasterKey(pw, C.GoString(userName))
	if err != nil {
		return 0
	}
	return C.uint64_t(h)
}

//export rusterpassword_gen_site_seed
func rusterpassword_gen_site_seed(masterKey C.uint64_t, siteName *C.char, counter C.uint32_t) C.uint64_t {
	if siteName == nil {
		return 0
	}

	h, err := handles.NewSiteSeed(handle.Handle(masterKey), C.GoString(siteName), uint32(counter))
	if err != nil {
		return 0
	}
	return C.uint64_t(h)
}

// rusterpassword_gen_site_password returns NULL for an unknown tier id.
//
//export rusterpassword_gen_site_password
func rusterpassword_gen_site_password(siteSeed C.uint64_t, tier C.uint32_t) *C.char {
	pw, err := handles.SitePassword(handle.Handle(siteSeed), template.Tier(tier))
	if err != nil {
		return nil
	}
	defer pw.Destroy()

	return cString(pw.Expose())
}

// rusterpassword_gen_identicon writes the color code (1..7, ANSI order) to
// color when it is not NULL.
//
//export rusterpassword_gen_identicon
func rusterpassword_gen_identicon(password, userName *C.char, color *C.uint8_t) *C.char {
	if password == nil || userName == nil {
		return nil
	}

	pw := secret.New(goBytes(password))
	defer pw.Destroy()

	icon, err := keyChain.Identicon(pw, C.GoString(userName))
	if err != nil {
		return nil
	}
	if color != nil {
		*color = C.uint8_t(icon.Color)
	}
	return C.CString(icon.String())
}

//export rusterpassword_free_master_key
func rusterpassword_free_master_key(masterKey C.uint64_t) {
	_ = handles.FreeMasterKey(handle.Handle(masterKey))
}

//export rusterpassword_free_site_seed
func rusterpassword_free_site_seed(siteSeed C.uint64_t) {
	_ = handles.FreeSiteSeed(handle.Handle(siteSeed))
}

//export rusterpassword_free_site_password
func rusterpassword_free_site_password(password *C.char) {
	if password == nil {
		return
	}
	n := int(C.strlen(password))
	secret.Wipe(unsafe.Slice((*byte)(unsafe.Pointer(password)), n))
	C.free(unsafe.Pointer(password))
}

//export rusterpassword_free_identicon
func rusterpassword_free_identicon(identicon *C.char) {
	if identicon == nil {
		return
	}
	C.free(unsafe.Pointer(identicon))
}

// goBytes copies a C string into a fresh Go slice without the terminator.
func goBytes(s *C.char) []byte {
	return C.GoBytes(unsafe.Pointer(s), C.int(C.strlen(s)))
}

// cString copies b into NUL-terminated C memory.
func cString(b []byte) *C.char {
	out := C.malloc(C.size_t(len(b) + 1))
	dst := unsafe.Slice((*byte)(out), len(b)+1)
	copy(dst, b)
	dst[len(b)] = 0
	return (*C.char)(out)
}

func main() {}
