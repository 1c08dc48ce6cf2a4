package mesh

// Observer receives progress messages from loading, repair and smoothing.
// *log.Logger satisfies it.
type Observer interface {
	Printf(format string, args ...any)
}

// Discard is an Observer that drops all messages.
var Discard Observer = discard{}

type discard struct{}

func (discard) Printf(string, ...any) {}
