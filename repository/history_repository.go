package repository

import "sip-planner/domain"

// HistoryRepository keeps recent calculations for the lifetime of the process.
type HistoryRepository interface {
	Save(record domain.Record) error
	Recent(limit int) ([]domain.Record, error)
}
