package ports

type SessionMetrics interface {
	RecordRunStarted()
	RecordRunEnded(status RunStatus)
	RecordTurnResolved()
	RecordCommandError()
}
