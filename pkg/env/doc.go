// pkg/env/doc.go
package env

/*
Package env describes the build environment a platform resolver computes.

It handles:
  - The Resolution handed from a resolver to the emission driver
  - Native libraries and how the linker should find them
  - Generating compiler and linker flags for the cgo preamble

Basic Usage:

    res := &env.Resolution{
        RootHeader:  "/opt/ndk/sysroot/usr/include/GLES3/gl31.h",
        IncludeDirs: []string{"/opt/ndk/sysroot/usr/include"},
        Libraries:   []env.Library{{Name: "GLESv3", Kind: env.KindDylib}},
    }

    flags := res.Flags()
    fmt.Println(flags.CFlags())  // -I/opt/ndk/sysroot/usr/include
    fmt.Println(flags.LDFlags()) // -lGLESv3
*/
