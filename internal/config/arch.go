package config

import (
	"runtime"

	"golang.org/x/sys/unix"
)

var goarchToVoid = map[string]string{
	"amd64": "x86_64",
	"386":   "i686",
	"arm64": "aarch64",
	"arm":   "armv7l",
}

// DetectArch returns the machine name as `uname -m` reports it.
var DetectArch = func() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err == nil {
		if m := unix.ByteSliceToString(u.Machine[:]); m != "" {
			return m
		}
	}
	if arch, ok := goarchToVoid[runtime.GOARCH]; ok {
		return arch
	}
	return runtime.GOARCH
}
