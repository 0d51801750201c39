package core

// Options are the per-session editor settings. They are passed explicitly to
// the session and the renderers instead of living in package state.
type Options struct {
	HistoryCap      int  // Snapshots kept for undo
	TabWidth        int  // Spaces inserted for Tab and shown for '\t'
	ScrollOff       int  // Lines kept visible around the cursor
	FontSize        int  // Pixel size used by the HTML renderer
	Fullscreen      bool // Hide the status bar
	ShowLineNumbers bool
}

// DefaultOptions returns the settings of a fresh session.
func DefaultOptions() Options {
	return Options{
		HistoryCap:      50,
		TabWidth:        4,
		ScrollOff:       3,
		FontSize:        14,
		ShowLineNumbers: true,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.HistoryCap <= 0 {
		o.HistoryCap = d.HistoryCap
	}
	if o.TabWidth <= 0 {
		o.TabWidth = d.TabWidth
	}
	if o.ScrollOff < 0 {
		o.ScrollOff = 0
	}
	if o.FontSize <= 0 {
		o.FontSize = d.FontSize
	}
	return o
}
