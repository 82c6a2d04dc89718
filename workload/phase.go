/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package workload

// Phase identifies one timed segment of the benchmark.
type Phase string

// The workload's phases, in execution order. Reads run after inserts so a
// page is there to read; deletes run last.
const (
	PhaseInsertSingle   Phase = "insert_single"
	PhaseInsertMultiple Phase = "insert_multiple"
	PhaseInsertAll      Phase = "insert_all"
	PhaseReadSpecific   Phase = "read_specific"
	PhaseReadAll        Phase = "read_all"
	PhaseUpdateSpecific Phase = "update_specific"
	PhaseUpdateMany     Phase = "update_many"
	PhaseDeleteSpecific Phase = "delete_specific"
	PhaseDeleteMany     Phase = "delete_many"
)

// Phases returns the full phase list in execution order.
func Phases() []Phase {
	return []Phase{
		PhaseInsertSingle,
		PhaseInsertMultiple,
		PhaseInsertAll,
		PhaseReadSpecific,
		PhaseReadAll,
		PhaseUpdateSpecific,
		PhaseUpdateMany,
		PhaseDeleteSpecific,
		PhaseDeleteMany,
	}
}

// Group returns the operation family ("insert", "read", "update", "delete")
// the reports section results by.
func (p Phase) Group() string {
	switch p {
	case PhaseInsertSingle, PhaseInsertMultiple, PhaseInsertAll:
		return "insert"
	case PhaseReadSpecific, PhaseReadAll:
		return "read"
	case PhaseUpdateSpecific, PhaseUpdateMany:
		return "update"
	case PhaseDeleteSpecific, PhaseDeleteMany:
		return "delete"
	default:
		return ""
	}
}

// recorded reports whether the phase's individual operations feed the
// aggregate latency table. Only the single-record operations do; bulk phases
// are reported by wall time alone.
func (p Phase) recorded() bool {
	switch p {
	case PhaseInsertSingle, PhaseReadSpecific, PhaseUpdateSpecific, PhaseDeleteSpecific:
		return true
	default:
		return false
	}
}
