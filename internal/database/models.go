package database

import (
	"database/sql/driver"
	"fmt"

	"github.com/palemoky/tonetrainer/internal/hanzi"
)

// Availability records whether a word has a known usable pronunciation.
type Availability string

const (
	AvailabilityUnknown Availability = "unknown"
	AvailabilityYes     Availability = "yes"
	AvailabilityNo      Availability = "no"
)

// Scan implements sql.Scanner. NULL and unrecognised values read as unknown.
func (a *Availability) Scan(value any) error {
	var s string
	switch v := value.(type) {
	case nil:
		*a = AvailabilityUnknown
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Availability", value)
	}

	switch Availability(s) {
	case AvailabilityYes, AvailabilityNo:
		*a = Availability(s)
	default:
		*a = AvailabilityUnknown
	}
	return nil
}

// Value implements driver.Valuer.
func (a Availability) Value() (driver.Value, error) {
	if a == "" {
		return string(AvailabilityUnknown), nil
	}
	return string(a), nil
}

// Entry is one two-character vocabulary item of the toneinfo table.
type Entry struct {
	Traditional  string       `gorm:"column:traditional"`
	Simplified   string       `gorm:"column:simplified;primaryKey"`
	Pinyin1      string       `gorm:"column:pinyin_1"`
	Pinyin2      string       `gorm:"column:pinyin_2"`
	Tone1        int          `gorm:"column:tone_1"`
	Tone2        int          `gorm:"column:tone_2"`
	Available    Availability `gorm:"column:forvo_available;type:text"`
	NumberTested int          `gorm:"column:number_tested;not null;default:0"`
}

// TableName specifies the table name for Entry
func (Entry) TableName() string {
	return "toneinfo"
}

// Form returns the word in the requested character form.
// An empty traditional column is derived from the simplified form.
func (e *Entry) Form(lang Lang) string {
	if lang == LangTraditional {
		return hanzi.TraditionalOr(e.Traditional, e.Simplified)
	}
	return e.Simplified
}

// Pinyin returns both syllables separated by a space.
func (e *Entry) Pinyin() string {
	return e.Pinyin1 + " " + e.Pinyin2
}

// AvailabilityCount is the number of words per availability state.
type AvailabilityCount struct {
	Available Availability `gorm:"column:forvo_available"`
	Count     int          `gorm:"column:count"`
}

// Statistics holds overall statistics of the word store
type Statistics struct {
	TotalWords     int
	TotalTested    int
	ByAvailability map[Availability]int
	MostTested     []Entry
}
