package offering

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/offerly/console/internal/domain"
)

// Ledger is the in-memory, most-recent-first list of offering records.
type Ledger struct {
	mu      sync.RWMutex
	records []domain.OfferingRecord
}

// NewLedger creates a ledger holding seed in the given order.
func NewLedger(seed ...domain.OfferingRecord) *Ledger {
	records := make([]domain.OfferingRecord, len(seed))
	copy(records, seed)
	return &Ledger{records: records}
}

// Prepend adds record in front of every existing record.
func (l *Ledger) Prepend(record domain.OfferingRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append([]domain.OfferingRecord{record}, l.records...)
}

// List returns a copy of the records, newest first.
func (l *Ledger) List() []domain.OfferingRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.OfferingRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// SampleRecords returns the sample entries a new console starts with.
func SampleRecords() []domain.OfferingRecord {
	things := domain.DonationThings
	return []domain.OfferingRecord{
		{ID: uuid.NewString(), Date: "2025-09-10", Type: domain.OfferingWeekly, Amount: amountOf(5200), Notes: "Morning service"},
		{ID: uuid.NewString(), Date: "2025-09-12", Type: domain.OfferingSpecial, Amount: amountOf(15000), GivenBy: "Community Group", Notes: "Building fund"},
		{ID: uuid.NewString(), Date: "2025-09-13", Type: domain.OfferingDonation, DonationKind: &things, DonationDescription: "Sound system", GivenBy: "Tech Corp"},
	}
}

func amountOf(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
