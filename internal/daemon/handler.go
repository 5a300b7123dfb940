package daemon

import (
	"strings"

	"github.com/frogworks/frogworks/internal/logging"
	"github.com/frogworks/frogworks/internal/version"
)

// ArgsHandler interprets the argument sequences relayed from secondary
// invocations. It is the collaborator behind the relay server's dispatch:
// the relay guarantees delivery intact and in order, this decides what
// the arguments mean.
type ArgsHandler struct {
	logger *logging.Logger

	// OpenURI is invoked for each frogworks:// URI found in a relayed
	// invocation. Defaults to logging the request.
	OpenURI func(uri string)
}

// NewArgsHandler creates the default args handler.
func NewArgsHandler(logger *logging.Logger) *ArgsHandler {
	h := &ArgsHandler{logger: logger}
	h.OpenURI = func(uri string) {
		h.logger.Info().Str("uri", uri).Msg("Open request received")
	}
	return h
}

// HandleArgs processes one relayed invocation. URIs arrive either bare
// (the registry handler passes "%1") or behind an --open flag.
func (h *ArgsHandler) HandleArgs(args []string) {
	h.logger.Info().Strs("args", args).Msg("Relayed invocation received")

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case strings.HasPrefix(arg, version.URIScheme+":"):
			h.OpenURI(arg)
		case arg == "--open" && i+1 < len(args):
			i++
			h.OpenURI(args[i])
		}
	}
}
