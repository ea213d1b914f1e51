package question

// advanceMsg is sent when the pause after confirming an option ends. It
// carries the question index the option was chosen for.
type advanceMsg struct {
	index int
}
