package game

// Director plays a session by producing commands, piece by piece
type Director interface {
	/**
	 * Initialize the director
	 */
	Init(*Session)

	/**
	 * Send the commands for the current piece, then close the channel
	 */
	Act(commands chan<- Command)

	/**
	 * Stop acting
	 */
	End()
}
