package ui

// animTickMsg advances the icon animation. Ticks from an older loop carry a
// stale gen and are dropped.
type animTickMsg struct {
	gen int
}

// startupQueryMsg submits the city given on the command line
type startupQueryMsg struct {
	city string
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals that an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the terminal is back
type resumeRenderingMsg struct{}
