// Package handle hands out opaque integer handles for derived secrets so
// that callers outside Go (see cmd/libmpw) can hold master keys and site
// seeds without ever seeing their bytes.
//
// Every artifact has one constructor and one destructor. A destructor takes
// the handle back; using a handle after its destructor is reported as
// [ErrUnknownHandle] rather than touching freed memory.
package handle
