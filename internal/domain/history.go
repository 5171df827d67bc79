package domain

import "time"

// InterpretationRecord is one utterance handled during a session.
type InterpretationRecord struct {
	ID          int64
	RawText     string
	Intent      Intent
	Feedback    string
	ListSize    int
	Interpreted time.Time
}

type InterpretationStats struct {
	Total        int
	Unrecognized int
	ByIntent     map[Intent]int
}
