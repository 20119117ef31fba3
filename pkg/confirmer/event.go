package confirmer

const (
	QuitSignal EventType = iota
	TransactionConfirmed
	TransactionFailed
)

type EventType int

func (et EventType) String() string {
	switch et {
	case QuitSignal:
		return "QuitSignal"
	case TransactionConfirmed:
		return "TransactionConfirmed"
	case TransactionFailed:
		return "TransactionFailed"
	default:
		return "Unknown"
	}
}

type QuitEvent struct{}

func (q QuitEvent) Type() EventType {
	return QuitSignal
}

// TransactionEvent is emitted once, when the observed transaction is found
// mined. A reverted transaction yields TransactionFailed.
type TransactionEvent struct {
	TxHash      string
	EventType   EventType
	BlockNumber uint64
	GasUsed     uint64
}

func (t TransactionEvent) Type() EventType {
	return t.EventType
}
