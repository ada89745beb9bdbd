package wordaction

// totalCalls counts every API invocation, for zero-network-call guards.
func (mock *actionAPIMock) totalCalls() int {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return len(mock.calls.SetStatus) +
		len(mock.calls.CreateQuick) +
		len(mock.calls.Delete) +
		len(mock.calls.IncrementStatus) +
		len(mock.calls.CreateMultiWord) +
		len(mock.calls.UpdateMultiWord)
}

var _ notifier = &notifierRec{}

// notifierRec records everything the service announces.
type notifierRec struct {
	messages []string
	errors   []string
	sounds   []Sound
	popups   int
	counters []int
}

func (n *notifierRec) ShowMessage(message string) { n.messages = append(n.messages, message) }
func (n *notifierRec) ShowError(message string)   { n.errors = append(n.errors, message) }
func (n *notifierRec) PlaySound(sound Sound)      { n.sounds = append(n.sounds, sound) }
func (n *notifierRec) ClosePopup()                { n.popups++ }
func (n *notifierRec) UpdateCounter(delta int)    { n.counters = append(n.counters, delta) }
