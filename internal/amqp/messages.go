package amqp

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	OperationAdd    = "add"
	OperationRemove = "remove"
)

// LedgerEvent announces that the ledger changed. It carries only the id and
// the affected year; consumers reload the ledger for everything else.
type LedgerEvent struct {
	Operation     string    `json:"operation"`
	TransactionID string    `json:"transaction_id"`
	Year          int       `json:"year"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewLedgerEvent(operation, transactionID string, year int) *LedgerEvent {
	return &LedgerEvent{
		Operation:     operation,
		TransactionID: transactionID,
		Year:          year,
		Timestamp:     time.Now().UTC(),
	}
}

func (e *LedgerEvent) Validate() error {
	switch e.Operation {
	case OperationAdd, OperationRemove:
	default:
		return fmt.Errorf("unknown operation %q", e.Operation)
	}
	if e.TransactionID == "" {
		return fmt.Errorf("missing transaction_id")
	}
	return nil
}

func (e *LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// LedgerEventFromJSON decodes and validates a message body.
func LedgerEventFromJSON(data []byte) (*LedgerEvent, error) {
	var e LedgerEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}
