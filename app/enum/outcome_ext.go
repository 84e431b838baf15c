package enum

// Failed reports whether the outcome is a terminal failure for the submission.
func (o Outcome) Failed() bool {
	return o != OutcomeDelivered
}
