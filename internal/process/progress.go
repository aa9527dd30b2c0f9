package process

// Sink receives purely observational progress notifications: the identifiers
// of in-flight items. Implementations must not influence processing.
type Sink interface {
	Begin(label string, total int)
	Item(id string)
	End()
}

// NopSink discards all progress notifications.
type NopSink struct{}

func (NopSink) Begin(string, int) {}
func (NopSink) Item(string)       {}
func (NopSink) End()              {}
