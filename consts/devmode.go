package consts

import "strings"

// set with -ldflags "-X bitbucket.org/kleinnic74/glplayground/consts.devmode=true"
var devmode string = "false"

func IsDevMode() bool {
	return strings.ToLower(devmode) == "true"
}
