package host

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// LoadItemExt reads the `graphic, paperdoll_appearance, required_hands`
// table equip's conflict resolution consults, one entry per line, all
// fields comma-separated and trimmed. Graphics without an entry default to
// Invalid/Invalid, which callers get for free from a zero-value lookup
// against the returned map. The source is genuinely tabular, so
// encoding/csv is the standard library's matching tool here rather than a
// hand-rolled line-splitter.
func LoadItemExt(r io.Reader) (map[int]ItemExtEntry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 3

	out := make(map[int]ItemExtEntry)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		graphic, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, err
		}
		entry := ItemExtEntry{
			Graphic:             graphic,
			PaperdollAppearance: strings.TrimSpace(rec[1]),
			RequiredHands:       strings.TrimSpace(rec[2]),
		}
		out[graphic] = entry
	}
	return out, nil
}
