// constants.go
package ios

const (
	// DefaultHeadersDir is the OpenGLES framework header directory of the
	// iPhoneOS SDK bundled with the default Xcode install
	DefaultHeadersDir = "/Applications/Xcode.app/Contents/Developer/Platforms/iPhoneOS.platform/" +
		"Developer/SDKs/iPhoneOS.sdk/System/Library/Frameworks/OpenGLES.framework/Headers"

	// FrameworkName is the framework the bindings link against
	FrameworkName = "OpenGLES"

	// LinkName is the link created inside the work directory so that
	// <OpenGLES/...> includes resolve without framework search
	LinkName = "OpenGLES"

	// RootHeader is the ES3 header, relative to the header directory
	RootHeader = "ES3/gl.h"
)
