package specrend

// Sink receives display colors, one per sample, in the order they were
// requested. How a sink shows a color (an ANSI escape sequence, a pixel
// write) is up to the sink.
type Sink interface {
	WriteRGB(c DisplayRGB) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(c DisplayRGB) error

// WriteRGB calls f(c).
func (f SinkFunc) WriteRGB(c DisplayRGB) error {
	return f(c)
}

// Collector is a Sink that keeps every color it receives.
type Collector struct {
	Colors []DisplayRGB
}

// WriteRGB appends c.
func (s *Collector) WriteRGB(c DisplayRGB) error {
	s.Colors = append(s.Colors, c)
	return nil
}
