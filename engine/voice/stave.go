package voice

// Staff is a simple Stave: a horizontal span with room for clefs and key
// signatures at its start.
type Staff struct {
	X          float64
	Width      float64
	StartInset float64 // space taken by clef, key and time signature
	EndInset   float64 // space taken by the end bar line
}

var _ Stave = (*Staff)(nil)

// NewStaff creates a staff at x with the given width.
func NewStaff(x, width float64) *Staff {
	return &Staff{X: x, Width: width}
}

// NoteStartX is the x position where notes may start.
func (s *Staff) NoteStartX() float64 {
	return s.X + s.StartInset
}

// NoteEndX is the x position where notes must end.
func (s *Staff) NoteEndX() float64 {
	return s.X + s.Width - s.EndInset
}
