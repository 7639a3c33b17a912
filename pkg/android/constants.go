// constants.go
package android

const (
	// DefaultNDKVersion is the NDK used when NDK_VER is not set
	DefaultNDKVersion = "23.1.7779620"

	// RootHeader is the GLES 3.1 header, relative to the include directory
	RootHeader = "GLES3/gl31.h"
)

// Libraries every android artifact links against
var Libraries = []string{"GLESv3", "log", "android"}
