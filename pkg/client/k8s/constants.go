package k8s

import (
	"github.com/sierrasoftworks/humane-errors-go"
)

// Defaults are used when no configuration is provided via ClientOptions.
const (
	DefaultFieldOwner = "nba"
)

var ErrNoObjects = humane.New("Nothing to apply", "Synthesize the manifest before applying it")
