package ui

// keysPagerMsg contains the result of showing the key reference
type keysPagerMsg struct {
	err error
}
