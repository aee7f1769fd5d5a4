package record

// StatusFinished is the fixed status stamped on every assembled record.
// Other statuses (DNF, DSQ) would come from a different import path.
const StatusFinished = "finished"

// Record is one normalized result row. String fields use "" for absent
// values; integer fields use 0, which is safe because ranks start at 1 and
// birth years are four digits. The store maps both to SQL NULL.
type Record struct {
	Bib           string
	FirstName     string
	LastName      string
	Gender        string // "M" or "F", "" when unknown
	BirthYear     int
	BirthDate     string // ISO YYYY-MM-DD
	City          string
	Club          string
	Category      string
	FinishTime    string // canonical HH:MM:SS
	FinishDisplay string // raw cell text, kept for audit even when unparsed
	OverallRank   int
	GenderRank    int
	CategoryRank  int
	Status        string
}
